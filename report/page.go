package report

import (
	"github.com/wippyai/sigdiff/compare"
	"github.com/wippyai/sigdiff/config"
)

// Page is everything a renderer needs to produce a status report.
type Page struct {
	ReferenceLabel string
	TargetLabel    string
	Modules        []config.Module
	Entries        []compare.Entry
}

// NewPage assembles a page from a configuration and comparison entries.
func NewPage(cfg *config.Config, entries []compare.Entry) Page {
	return Page{
		ReferenceLabel: cfg.ReferenceLabel,
		TargetLabel:    cfg.TargetLabel,
		Modules:        cfg.Modules,
		Entries:        entries,
	}
}

// Documented returns the entries implemented by the reference, which get
// their own argument section.
func (p Page) Documented() []compare.Entry {
	var out []compare.Entry
	for _, e := range p.Entries {
		if e.InReference {
			out = append(out, e)
		}
	}
	return out
}

// tone is the presentational weight of a status cell.
type tone int

const (
	toneNeutral tone = iota
	tonePositive
	toneNegative
)

func statusLabel(s compare.Status, referenceLabel string) (string, tone) {
	switch s {
	case compare.Supported:
		return "supported", tonePositive
	case compare.ReferenceOnly:
		return "supported*", tonePositive
	case compare.Extension:
		return referenceLabel + " extension", toneNeutral
	case compare.Unsupported:
		return "unsupported", toneNegative
	}
	return string(s), toneNeutral
}

func moduleTone(s config.ModuleStatus) tone {
	switch s {
	case config.ModuleSupported:
		return tonePositive
	case config.ModuleUnsupported:
		return toneNegative
	}
	return toneNeutral
}

// StatusText returns the label a status is shown with.
func StatusText(s compare.Status, referenceLabel string) string {
	label, _ := statusLabel(s, referenceLabel)
	return label
}
