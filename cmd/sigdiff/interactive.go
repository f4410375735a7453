package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/sigdiff/compare"
	"github.com/wippyai/sigdiff/report"
	"github.com/wippyai/sigdiff/typediff"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	funcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	statusStyles = map[compare.Status]lipgloss.Style{
		compare.Supported:     lipgloss.NewStyle().Foreground(lipgloss.Color("#90EE90")),
		compare.ReferenceOnly: lipgloss.NewStyle().Foreground(lipgloss.Color("#90EE90")),
		compare.Extension:     lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB")),
		compare.Unsupported:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
	}

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	addedMarker = report.StyleMarker{
		AddedStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#98FB98")).Bold(true),
	}
)

type modelState int

const (
	stateBrowse modelState = iota
	stateFilter
	stateDetail
)

// listChrome is the number of lines the browse view spends outside the list.
const listChrome = 6

type interactiveModel struct {
	page     report.Page
	visible  []int
	filter   textinput.Model
	detail   viewport.Model
	selected int
	offset   int
	width    int
	height   int
	state    modelState
}

func newInteractiveModel(page report.Page) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "name"
	ti.Prompt = "/"
	ti.Width = 40

	m := &interactiveModel{
		page:   page,
		filter: ti,
		detail: viewport.New(80, 20),
		height: 24,
		width:  80,
		state:  stateBrowse,
	}
	m.applyFilter()
	return m
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) applyFilter() {
	q := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	m.visible = m.visible[:0]
	for i, e := range m.page.Entries {
		if q == "" || strings.Contains(strings.ToLower(e.Name), q) {
			m.visible = append(m.visible, i)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = max(0, len(m.visible)-1)
	}
	m.offset = 0
	m.scroll()
}

func (m *interactiveModel) listHeight() int {
	return max(1, m.height-listChrome)
}

func (m *interactiveModel) scroll() {
	h := m.listHeight()
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+h {
		m.offset = m.selected - h + 1
	}
}

func (m *interactiveModel) current() (compare.Entry, bool) {
	if len(m.visible) == 0 {
		return compare.Entry{}, false
	}
	return m.page.Entries[m.visible[m.selected]], true
}

func (m *interactiveModel) openDetail() {
	e, ok := m.current()
	if !ok {
		return
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s return: %s\n", m.page.ReferenceLabel, e.Return.AtoB.Render(addedMarker))
	fmt.Fprintf(&b, "%s return: %s\n\n", m.page.TargetLabel, e.Return.BtoA.Render(addedMarker))
	b.WriteString(report.ArgTable(os.Stdout, e, m.page, true))
	m.detail.SetContent(b.String())
	m.detail.GotoTop()
	m.state = stateDetail
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.detail.Width = msg.Width
		m.detail.Height = max(1, msg.Height-4)
		m.scroll()
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case stateFilter:
			return m.updateFilter(msg)
		case stateDetail:
			return m.updateDetail(msg)
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m *interactiveModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.visible)-1 {
			m.selected++
		}
	case "pgup":
		m.selected = max(0, m.selected-m.listHeight())
	case "pgdown":
		m.selected = max(0, min(len(m.visible)-1, m.selected+m.listHeight()))
	case "/":
		m.state = stateFilter
		return m, m.filter.Focus()
	case "enter":
		m.openDetail()
	}
	m.scroll()
	return m, nil
}

func (m *interactiveModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter", "esc":
		m.filter.Blur()
		m.state = stateBrowse
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *interactiveModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "esc", "enter", "backspace":
		m.state = stateBrowse
		return m, nil
	}
	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.page.ReferenceLabel + " vs " + m.page.TargetLabel))
	b.WriteString("\n\n")

	if m.state == stateDetail {
		e, _ := m.current()
		b.WriteString(funcStyle.Render(e.Name))
		b.WriteString(" ")
		b.WriteString(m.formatStatus(e.Status))
		b.WriteString("\n")
		b.WriteString(m.detail.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ scroll • esc back • q quit"))
		return b.String()
	}

	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		b.WriteString("no matching entries\n")
	}
	end := min(len(m.visible), m.offset+m.listHeight())
	for i := m.offset; i < end; i++ {
		line := m.formatEntry(m.page.Entries[m.visible[i]])
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.state == stateFilter {
		b.WriteString(helpStyle.Render("type to filter • enter/esc done"))
	} else {
		b.WriteString(helpStyle.Render(fmt.Sprintf("%d/%d • ↑/↓ select • enter details • / filter • q quit",
			len(m.visible), len(m.page.Entries))))
	}
	return b.String()
}

func (m *interactiveModel) formatStatus(s compare.Status) string {
	return statusStyles[s].Render(report.StatusText(s, m.page.ReferenceLabel))
}

func (m *interactiveModel) formatEntry(e compare.Entry) string {
	ret := e.Return.AtoB.Render(typediff.Signed{})
	if ret != "" {
		ret = " -> " + ret
	}
	return fmt.Sprintf("%s  %s%s", e.Name, m.formatStatus(e.Status), ret)
}

func runInteractive(page report.Page) error {
	p := tea.NewProgram(newInteractiveModel(page), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
