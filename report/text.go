package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.uber.org/zap"

	"github.com/wippyai/sigdiff/compare"
	"github.com/wippyai/sigdiff/errors"
	"github.com/wippyai/sigdiff/typediff"
)

// TextOptions controls terminal output.
type TextOptions struct {
	// Color enables ANSI styling; without it added types are prefixed with '+'.
	Color bool
	// Details appends an argument table for every entry the reference implements.
	Details bool
}

// StyleMarker marks added alternatives with a lipgloss style and leaves
// shared ones untouched.
type StyleMarker struct {
	AddedStyle lipgloss.Style
}

func (m StyleMarker) Shared(text string) string { return text }
func (m StyleMarker) Added(text string) string  { return m.AddedStyle.Render(text) }

type textStyles struct {
	marker   typediff.Marker
	title    lipgloss.Style
	header   lipgloss.Style
	tones    map[tone]lipgloss.Style
	subtitle lipgloss.Style
}

func newTextStyles(w io.Writer, color bool) textStyles {
	if !color {
		plain := lipgloss.NewStyle()
		return textStyles{
			marker:   typediff.Signed{},
			title:    plain,
			header:   plain,
			subtitle: plain,
			tones:    map[tone]lipgloss.Style{toneNeutral: plain, tonePositive: plain, toneNegative: plain},
		}
	}

	r := lipgloss.NewRenderer(w)
	return textStyles{
		marker: StyleMarker{AddedStyle: r.NewStyle().Foreground(lipgloss.Color("#98FB98")).Bold(true)},
		title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1),
		header:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#87CEEB")),
		subtitle: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#98FB98")),
		tones: map[tone]lipgloss.Style{
			toneNeutral:  r.NewStyle(),
			tonePositive: r.NewStyle().Foreground(lipgloss.Color("#90EE90")),
			toneNegative: r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		},
	}
}

func (s textStyles) table(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.header.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

// Text writes p as terminal tables.
func Text(w io.Writer, p Page, opts TextOptions) error {
	s := newTextStyles(w, opts.Color)
	var b strings.Builder

	b.WriteString(s.title.Render(p.ReferenceLabel + " implementation status"))
	b.WriteString("\n\n")

	if len(p.Modules) > 0 {
		mods := s.table("module", "status")
		for _, m := range p.Modules {
			mods.Row(m.Name, s.tones[moduleTone(m.Status)].Render(string(m.Status)))
		}
		b.WriteString(mods.String())
		b.WriteString("\n\n")
	}

	funcs := s.table("function", "status", p.ReferenceLabel+" return", p.TargetLabel+" return")
	for _, e := range p.Entries {
		label, t := statusLabel(e.Status, p.ReferenceLabel)
		funcs.Row(e.Name, s.tones[t].Render(label), e.Return.AtoB.Render(s.marker), e.Return.BtoA.Render(s.marker))
	}
	b.WriteString(funcs.String())
	b.WriteString("\n")

	if opts.Details {
		for _, e := range p.Documented() {
			b.WriteString("\n")
			b.WriteString(s.subtitle.Render(e.Name))
			b.WriteString("\n")
			b.WriteString(argTable(e, p, s))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(summaryLine(compare.Summarize(p.Entries), p.ReferenceLabel))
	b.WriteString("\n")

	n, err := io.WriteString(w, b.String())
	if err != nil {
		return errors.Wrap(errors.PhaseRender, errors.KindIO, err, fmt.Sprintf("write text (%d bytes written)", n))
	}
	Logger().Debug("rendered text report", zap.Int("bytes", n), zap.Int("entries", len(p.Entries)))
	return nil
}

// ArgTable renders the argument rows of e, or "no arguments". Styles are
// resolved against w, as for Text.
func ArgTable(w io.Writer, e compare.Entry, p Page, color bool) string {
	return argTable(e, p, newTextStyles(w, color))
}

func argTable(e compare.Entry, p Page, s textStyles) string {
	if len(e.Args) == 0 {
		return "no arguments"
	}
	t := s.table("kind", "keyword", p.ReferenceLabel+" type", p.TargetLabel+" type")
	for _, a := range e.Args {
		t.Row(string(a.Category), unescapeKeyword(a.Keyword), a.Diff.AtoB.Render(s.marker), a.Diff.BtoA.Render(s.marker))
	}
	return t.String()
}

var keywordUnescaper = strings.NewReplacer("&#60;", "<", "&#62;", ">")

// The parser escapes keywords for markup; terminals show them as written.
func unescapeKeyword(k string) string {
	return keywordUnescaper.Replace(k)
}

func summaryLine(s compare.Summary, referenceLabel string) string {
	return fmt.Sprintf("%d entries: %d supported, %d supported*, %d %s extension, %d unsupported",
		s.Total(),
		s[compare.Supported],
		s[compare.ReferenceOnly],
		s[compare.Extension], referenceLabel,
		s[compare.Unsupported])
}
