package main

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/sigdiff/compare"
	"github.com/wippyai/sigdiff/config"
	"github.com/wippyai/sigdiff/errors"
	"github.com/wippyai/sigdiff/report"
	"github.com/wippyai/sigdiff/signature"
)

type options struct {
	configPath  string
	format      string
	output      string
	color       string
	jobs        int
	verbose     bool
	details     bool
	interactive bool
	watch       bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "sigdiff [flags] REFERENCE TARGET",
		Short: "Compare the callable surface of two implementations of an API",
		Long: `sigdiff reads two signature listings, a reference implementation and a
target implementation, and reports which functions and methods each side
provides and how their argument and return types differ.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), opts, args[0], args[1])
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML file overriding the built-in aliases, exclusions and module matrix")
	f.StringVarP(&opts.format, "format", "f", "html", "output format: html or text")
	f.StringVarP(&opts.output, "output", "o", "", "write the report to this file instead of stdout")
	f.StringVar(&opts.color, "color", "auto", "colour text output: auto, always or never")
	f.IntVarP(&opts.jobs, "jobs", "j", 0, "entries compared concurrently (0 = GOMAXPROCS)")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug information to stderr")
	f.BoolVar(&opts.details, "details", false, "include argument tables in text output")
	f.BoolVarP(&opts.interactive, "interactive", "i", false, "browse the comparison in a terminal UI")
	f.BoolVar(&opts.watch, "watch", false, "regenerate the report whenever a listing changes")

	return cmd
}

func run(ctx context.Context, stdout io.Writer, opts *options, refPath, tgtPath string) error {
	log, err := newLogger(opts.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	installLogger(log)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	if opts.interactive {
		page, err := buildPage(cfg, refPath, tgtPath, opts.jobs)
		if err != nil {
			return err
		}
		return runInteractive(page)
	}

	generate := func() error {
		page, err := buildPage(cfg, refPath, tgtPath, opts.jobs)
		if err != nil {
			return err
		}
		return emit(stdout, opts, page)
	}

	if opts.watch {
		return watch(ctx, log, []string{refPath, tgtPath}, generate)
	}
	return generate()
}

func buildPage(cfg *config.Config, refPath, tgtPath string, jobs int) (report.Page, error) {
	ref, err := signature.ParseFile(refPath, cfg.ParseOptions()...)
	if err != nil {
		return report.Page{}, err
	}
	tgt, err := signature.ParseFile(tgtPath, cfg.ParseOptions()...)
	if err != nil {
		return report.Page{}, err
	}

	c := compare.New(cfg.Aliases, cfg.Exclude)
	c.Jobs = jobs
	entries := c.Compare(ref, tgt)

	s := compare.Summarize(entries)
	zap.L().Info("comparison complete",
		zap.Int("entries", s.Total()),
		zap.Int("supported", s[compare.Supported]),
		zap.Int("reference_only", s[compare.ReferenceOnly]),
		zap.Int("extension", s[compare.Extension]),
		zap.Int("unsupported", s[compare.Unsupported]))

	return report.NewPage(cfg, entries), nil
}

// emit renders the whole report before writing anything, so a failure
// leaves no partial output behind.
func emit(stdout io.Writer, opts *options, page report.Page) error {
	dest := stdout
	if opts.output != "" {
		dest = nil
	}

	var buf bytes.Buffer
	switch opts.format {
	case "html":
		if err := report.HTML(&buf, page); err != nil {
			return err
		}
	case "text":
		color, err := useColor(opts.color, dest)
		if err != nil {
			return err
		}
		if err := report.Text(&buf, page, report.TextOptions{Color: color, Details: opts.details}); err != nil {
			return err
		}
	default:
		return errors.Unsupported(errors.PhaseRender, "format "+opts.format)
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, buf.Bytes(), 0o644); err != nil {
			return errors.IO(errors.PhaseRender, opts.output, err)
		}
		return nil
	}
	if _, err := stdout.Write(buf.Bytes()); err != nil {
		return errors.Wrap(errors.PhaseRender, errors.KindIO, err, "write report")
	}
	return nil
}

func useColor(mode string, dest io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		f, ok := dest.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	}
	return false, errors.InvalidConfig("unknown colour mode %q", mode)
}
