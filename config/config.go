package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/sigdiff/errors"
	"github.com/wippyai/sigdiff/normalize"
	"github.com/wippyai/sigdiff/signature"
)

//go:embed default.yaml
var defaultYAML []byte

// ModuleStatus is the support level of a module in the pass-through matrix.
type ModuleStatus string

const (
	ModuleSupported   ModuleStatus = "supported"
	ModulePartial     ModuleStatus = "partial"
	ModuleUnsupported ModuleStatus = "unsupported"
)

// Module is one row of the module support matrix.
type Module struct {
	Name   string       `yaml:"name"`
	Status ModuleStatus `yaml:"status"`
}

// KwargFolding configures signature.Fold.
type KwargFolding struct {
	Replacement string   `yaml:"replacement"`
	Functions   []string `yaml:"functions"`
	Prefixes    []string `yaml:"prefixes"`
}

// Config is the fixed configuration of a comparison run.
type Config struct {
	Aliases        normalize.AliasTable `yaml:"aliases"`
	KwargFolding   *KwargFolding        `yaml:"kwarg_folding"`
	ReferenceLabel string               `yaml:"reference_label"`
	TargetLabel    string               `yaml:"target_label"`
	Exclude        []string             `yaml:"exclude"`
	Modules        []Module             `yaml:"modules"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	if err := overlay(cfg, defaultYAML); err != nil {
		panic(fmt.Sprintf("config: embedded default is invalid: %v", err))
	}
	return cfg
}

// Load returns the default configuration overlaid with the YAML file at
// path. Keys present in the file replace the defaults wholesale; an
// explicitly empty list or map clears them. An empty path yields the
// defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.IO(errors.PhaseRead, path, err)
	}

	cfg := Default()
	if err := overlay(cfg, data); err != nil {
		return nil, errors.WithFile(err, path)
	}
	return cfg, nil
}

// file mirrors Config with every key optional, so absent keys keep the
// value they are overlaid on.
type file struct {
	Aliases        normalize.AliasTable `yaml:"aliases"`
	KwargFolding   *KwargFolding        `yaml:"kwarg_folding"`
	ReferenceLabel *string              `yaml:"reference_label"`
	TargetLabel    *string              `yaml:"target_label"`
	Exclude        []string             `yaml:"exclude"`
	Modules        []Module             `yaml:"modules"`
}

func overlay(cfg *Config, data []byte) error {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return errors.Wrap(errors.PhaseConfig, errors.KindInvalidConfig, err, "decode yaml")
	}

	if f.Aliases != nil {
		cfg.Aliases = f.Aliases
	}
	if f.KwargFolding != nil {
		cfg.KwargFolding = f.KwargFolding
	}
	if f.ReferenceLabel != nil {
		cfg.ReferenceLabel = *f.ReferenceLabel
	}
	if f.TargetLabel != nil {
		cfg.TargetLabel = *f.TargetLabel
	}
	if f.Exclude != nil {
		cfg.Exclude = f.Exclude
	}
	if f.Modules != nil {
		cfg.Modules = f.Modules
	}
	return cfg.Validate()
}

// Validate checks the alias table and the module matrix.
func (c *Config) Validate() error {
	if err := c.Aliases.Validate(); err != nil {
		return err
	}
	for _, m := range c.Modules {
		if m.Name == "" {
			return errors.InvalidConfig("module without a name")
		}
		switch m.Status {
		case ModuleSupported, ModulePartial, ModuleUnsupported:
		default:
			return errors.InvalidConfig("module %q has unknown status %q", m.Name, m.Status)
		}
	}
	if f := c.KwargFolding; f != nil && len(f.Functions) > 0 && len(f.Prefixes) == 0 {
		return errors.InvalidConfig("kwarg_folding lists functions but no prefixes")
	}
	return nil
}

// ParseOptions returns the signature parser options the configuration implies.
func (c *Config) ParseOptions() []signature.Option {
	if c.KwargFolding == nil || len(c.KwargFolding.Functions) == 0 {
		return nil
	}
	return []signature.Option{signature.WithKwargFolding(signature.Fold{
		Functions:   c.KwargFolding.Functions,
		Prefixes:    c.KwargFolding.Prefixes,
		Replacement: c.KwargFolding.Replacement,
	})}
}
