package signature

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	sderrors "github.com/wippyai/sigdiff/errors"
)

const sampleListing = `files
  varargs:
    str
  returns:
    list[file]
extension:fs.relative_to
  posargs:
    str | file
    str | file
  returns:
    str
custom_target
  posargs:
    str
  kwargs:
    command: list[str | file | exe]
    install: bool
  returns:
    custom_tgt
message
  varargs:
    any
  optargs:
    str
  returns:
    void
`

func TestParse(t *testing.T) {
	set, err := ParseString(sampleListing)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if got, want := set.Names(), []string{"custom_target", "files", "fs.relative_to", "message"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}

	files := set["files"]
	if !reflect.DeepEqual(files.VarArgs, []string{"str"}) || files.Returns != "list[file]" {
		t.Errorf("files = %+v", files)
	}
	if files.Extension {
		t.Error("files should not be an extension")
	}

	rel := set["fs.relative_to"]
	if !rel.Extension {
		t.Error("fs.relative_to should be an extension")
	}
	if !rel.IsMethod() {
		t.Error("fs.relative_to should be a method")
	}
	if !reflect.DeepEqual(rel.PosArgs, []string{"str | file", "str | file"}) {
		t.Errorf("PosArgs = %q", rel.PosArgs)
	}

	ct := set["custom_target"]
	wantKw := map[string]string{"command": "list[str | file | exe]", "install": "bool"}
	if !reflect.DeepEqual(ct.KwArgs, wantKw) {
		t.Errorf("KwArgs = %v, want %v", ct.KwArgs, wantKw)
	}
	if ct.ArgCount() != 3 {
		t.Errorf("ArgCount() = %d, want 3", ct.ArgCount())
	}
	if got := ct.Keywords(); !reflect.DeepEqual(got, []string{"command", "install"}) {
		t.Errorf("Keywords() = %v", got)
	}

	msg := set["message"]
	if len(msg.VarArgs) != 1 || len(msg.OptArgs) != 1 || msg.Returns != "void" {
		t.Errorf("message = %+v", msg)
	}
}

func TestParseEdgeCases(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		set, err := ParseString("")
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if len(set) != 0 {
			t.Errorf("expected empty set, got %d records", len(set))
		}
	})

	t.Run("bare_record", func(t *testing.T) {
		set, err := ParseString("summary\n")
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		r := set["summary"]
		if r == nil || r.ArgCount() != 0 || r.Returns != "" {
			t.Errorf("summary = %+v", r)
		}
		if r.KwArgs == nil {
			t.Error("KwArgs should be non-nil")
		}
	})

	t.Run("empty_name_dropped", func(t *testing.T) {
		set, err := ParseString("extension:\n  returns:\n    int\nfoo:\nbar\n")
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if _, ok := set[""]; ok {
			t.Error("record with empty name should be dropped")
		}
		if len(set) != 1 || set["bar"] == nil {
			t.Errorf("names = %v, want [bar]", set.Names())
		}
	})

	t.Run("last_write_wins", func(t *testing.T) {
		set, err := ParseString("foo\n  returns:\n    int\nfoo\n  returns:\n    str\n")
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if set["foo"].Returns != "str" {
			t.Errorf("Returns = %q, want str", set["foo"].Returns)
		}
	})

	t.Run("first_return_wins", func(t *testing.T) {
		set, err := ParseString("foo\n  returns:\n    int\n    str\n")
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if set["foo"].Returns != "int" {
			t.Errorf("Returns = %q, want int", set["foo"].Returns)
		}
	})

	t.Run("blank_lines_and_crlf", func(t *testing.T) {
		set, err := ParseString("foo\r\n\r\n  posargs:\r\n    str\r\n\nbar\n")
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if !reflect.DeepEqual(set["foo"].PosArgs, []string{"str"}) {
			t.Errorf("PosArgs = %q", set["foo"].PosArgs)
		}
		if _, ok := set["bar"]; !ok {
			t.Error("bar missing")
		}
	})

	t.Run("kwarg_escaping", func(t *testing.T) {
		set, err := ParseString("foo\n  kwargs:\n    <lang>_args: list[str]\n")
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if got := set["foo"].KwArgs["&#60;lang&#62;_args"]; got != "list[str]" {
			t.Errorf("KwArgs = %v", set["foo"].KwArgs)
		}
	})

	t.Run("kwarg_without_type", func(t *testing.T) {
		set, err := ParseString("foo\n  kwargs:\n    native\n")
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if typ, ok := set["foo"].KwArgs["native"]; !ok || typ != "" {
			t.Errorf("KwArgs = %v", set["foo"].KwArgs)
		}
	})

	t.Run("kwarg_splits_at_first_separator", func(t *testing.T) {
		set, err := ParseString("foo\n  kwargs:\n    env: dict[str]: x\n")
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if typ := set["foo"].KwArgs["env"]; typ != "dict[str]: x" {
			t.Errorf("env = %q", typ)
		}
	})

	t.Run("name_after_last_colon", func(t *testing.T) {
		set, err := ParseString("extension:a:b\nother:c\n")
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if r := set["b"]; r == nil || !r.Extension {
			t.Errorf("b = %+v", r)
		}
		if r := set["c"]; r == nil || r.Extension {
			t.Errorf("c = %+v", r)
		}
	})

	t.Run("one_column_section", func(t *testing.T) {
		set, err := ParseString("foo\n returns:\n    int\n")
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if set["foo"].Returns != "int" {
			t.Errorf("Returns = %q", set["foo"].Returns)
		}
	})
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  sderrors.Kind
		line  int
	}{
		{"unknown_section", "foo\n  retruns:\n    int\n", sderrors.KindUnknownSection, 2},
		{"section_before_record", "  posargs:\n    str\n", sderrors.KindOrphanSection, 1},
		{"entry_before_record", "    str\n", sderrors.KindOrphanEntry, 1},
		{"entry_before_section", "foo\n    str\n", sderrors.KindOrphanEntry, 2},
		{"section_reset_by_record", "foo\n  posargs:\n    str\nbar\n    int\n", sderrors.KindOrphanEntry, 5},
		{"keyword_with_entry", "foo\n  posargs: str\n", sderrors.KindUnknownSection, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := ParseString(tt.input)
			if err == nil {
				t.Fatal("expected error")
			}
			if set != nil {
				t.Errorf("expected no partial result, got %v", set)
			}
			if !errors.Is(err, &sderrors.Error{Phase: sderrors.PhaseParse, Kind: tt.kind}) {
				t.Errorf("error %v, want kind %s", err, tt.kind)
			}
			var se *sderrors.Error
			if errors.As(err, &se) && se.Line != tt.line {
				t.Errorf("Line = %d, want %d", se.Line, tt.line)
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "muon.txt")
	if err := os.WriteFile(path, []byte(sampleListing), 0o644); err != nil {
		t.Fatal(err)
	}

	set, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if len(set) != 4 {
		t.Errorf("expected 4 records, got %d", len(set))
	}

	bad := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(bad, []byte("foo\n  bogus:\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = ParseFile(bad)
	if err == nil || !strings.Contains(err.Error(), "bad.txt:2") {
		t.Errorf("error should name file and line, got %v", err)
	}

	_, err = ParseFile(filepath.Join(dir, "missing.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
	if !errors.Is(err, &sderrors.Error{Phase: sderrors.PhaseRead, Kind: sderrors.KindIO}) {
		t.Errorf("expected read/io error, got %v", err)
	}
}

func TestSetLookup(t *testing.T) {
	set, err := ParseString(sampleListing)
	if err != nil {
		t.Fatal(err)
	}
	if r, ok := set.Lookup("files"); !ok || r.Name != "files" {
		t.Errorf("Lookup(files) = %+v, %v", r, ok)
	}
	r, ok := set.Lookup("nope")
	if ok || r.Name != "nope" || r.ArgCount() != 0 {
		t.Errorf("Lookup(nope) = %+v, %v", r, ok)
	}
}
