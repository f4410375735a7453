package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/sigdiff/config"
	sderrors "github.com/wippyai/sigdiff/errors"
)

const referenceListing = `files
  varargs:
    str
  returns:
    list[file]
extension:fs.relative_to
  posargs:
    str
  returns:
    str
`

const targetListing = `files
  varargs:
    str | file
  returns:
    list[file]
warning
  varargs:
    any
`

func writeListings(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	ref := filepath.Join(dir, "muon.txt")
	tgt := filepath.Join(dir, "meson.txt")
	require.NoError(t, os.WriteFile(ref, []byte(referenceListing), 0o644))
	require.NoError(t, os.WriteFile(tgt, []byte(targetListing), 0o644))
	return ref, tgt
}

func TestRunText(t *testing.T) {
	ref, tgt := writeListings(t)
	var out bytes.Buffer

	err := run(context.Background(), &out, &options{format: "text", color: "auto", details: true}, ref, tgt)
	require.NoError(t, err)

	s := out.String()
	assert.Contains(t, s, "muon implementation status")
	assert.Contains(t, s, "muon extension")
	assert.Contains(t, s, "+file")
	assert.Contains(t, s, "3 entries: 1 supported, 0 supported*, 1 muon extension, 1 unsupported")
	assert.NotContains(t, s, "\x1b[")
}

func TestRunHTMLToFile(t *testing.T) {
	ref, tgt := writeListings(t)
	dest := filepath.Join(t.TempDir(), "status.html")
	var out bytes.Buffer

	err := run(context.Background(), &out, &options{format: "html", color: "auto", output: dest}, ref, tgt)
	require.NoError(t, err)
	assert.Empty(t, out.String(), "nothing goes to stdout when -o is set")

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<!DOCTYPE html>"))
	assert.Contains(t, string(data), `<h1 id="files">files</h1>`)
}

func TestRunParseErrorWritesNothing(t *testing.T) {
	ref, tgt := writeListings(t)
	require.NoError(t, os.WriteFile(tgt, []byte("foo\n  retruns:\n    int\n"), 0o644))
	dest := filepath.Join(t.TempDir(), "status.html")

	err := run(context.Background(), &bytes.Buffer{}, &options{format: "html", color: "auto", output: dest}, ref, tgt)
	require.Error(t, err)
	assert.ErrorIs(t, err, &sderrors.Error{Phase: sderrors.PhaseParse, Kind: sderrors.KindUnknownSection})
	assert.Contains(t, err.Error(), "meson.txt:2")

	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr), "no partial report expected")
}

func TestRunMissingFile(t *testing.T) {
	ref, _ := writeListings(t)
	err := run(context.Background(), &bytes.Buffer{}, &options{format: "html", color: "auto"}, ref, filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunUnknownFormat(t *testing.T) {
	ref, tgt := writeListings(t)
	err := run(context.Background(), &bytes.Buffer{}, &options{format: "yaml", color: "auto"}, ref, tgt)
	require.Error(t, err)
	assert.ErrorIs(t, err, &sderrors.Error{Phase: sderrors.PhaseRender, Kind: sderrors.KindUnsupported})
}

func TestRunConfigOverride(t *testing.T) {
	ref, tgt := writeListings(t)
	cfgPath := filepath.Join(t.TempDir(), "sigdiff.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("reference_label: mine\nexclude: [warning]\n"), 0o644))
	var out bytes.Buffer

	err := run(context.Background(), &out, &options{format: "text", color: "never", configPath: cfgPath}, ref, tgt)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "mine implementation status")
	assert.NotContains(t, out.String(), "warning")
}

func TestUseColor(t *testing.T) {
	on, err := useColor("always", nil)
	require.NoError(t, err)
	assert.True(t, on)

	off, err := useColor("auto", &bytes.Buffer{})
	require.NoError(t, err)
	assert.False(t, off)

	_, err = useColor("sometimes", nil)
	assert.Error(t, err)
}

func TestRootCmdArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"only-one"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())
}

func TestRootCmdExecute(t *testing.T) {
	ref, tgt := writeListings(t)
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--format", "text", "--color", "never", ref, tgt})
	cmd.SetOut(&out)
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "files")
}

func TestInteractiveModel(t *testing.T) {
	ref, tgt := writeListings(t)
	page, err := buildPage(config.Default(), ref, tgt, 1)
	require.NoError(t, err)

	m := newInteractiveModel(page)
	require.Len(t, m.visible, 3)

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	e, ok := m.current()
	require.True(t, ok)
	assert.Equal(t, "warning", e.Name)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, stateDetail, m.state)
	assert.Contains(t, m.View(), "warning")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stateBrowse, m.state)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	assert.Equal(t, stateFilter, m.state)
	for _, r := range "rel" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	require.Len(t, m.visible, 1)
	e, _ = m.current()
	assert.Equal(t, "fs.relative_to", e.Name)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, stateBrowse, m.state)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
