package typeexpr

import (
	"slices"
	"testing"
)

func TestString(t *testing.T) {
	e := Expr{
		NewContainer("list", NewAtom("str"), NewContainer("dict", NewAtom("int"))),
		NewAtom("file"),
	}
	if got, want := e.String(), "list[str | dict[int]] | file"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got := Expr(nil).String(); got != "" {
		t.Errorf("empty String() = %q, want empty", got)
	}
}

func TestEqual(t *testing.T) {
	a := NewContainer("list", NewAtom("str"))
	if !a.Equal(NewContainer("list", NewAtom("str"))) {
		t.Error("identical containers should be equal")
	}
	if a.Equal(NewContainer("list", NewAtom("int"))) {
		t.Error("containers with different elements should differ")
	}
	if a.Equal(NewAtom("list")) {
		t.Error("atom and container of the same name should differ")
	}
	if !Expr(nil).Equal(Expr{}) {
		t.Error("nil and empty exprs should be equal")
	}
	if !NewContainer("list").Equal(Alternative{Kind: Container, Name: "list", Elems: Expr{}}) {
		t.Error("nil and empty elements should be equal")
	}
}

func TestCompare(t *testing.T) {
	alts := []Alternative{
		NewContainer("list", NewAtom("str")),
		NewAtom("str"),
		NewAtom("list"),
		NewContainer("dict", NewAtom("str")),
		NewContainer("list", NewAtom("int")),
		NewAtom("bool"),
	}
	slices.SortFunc(alts, Compare)

	want := "bool | dict[str] | list | list[int] | list[str] | str"
	if got := Expr(alts).String(); got != want {
		t.Errorf("sorted = %q, want %q", got, want)
	}
}

func TestContains(t *testing.T) {
	e := Parse("list[str] | int")
	if !e.Contains(NewAtom("int")) {
		t.Error("expected int")
	}
	if e.Contains(NewContainer("list", NewAtom("int"))) {
		t.Error("list[int] is not present")
	}
}

func TestKindString(t *testing.T) {
	if Atom.String() != "atom" || Container.String() != "container" {
		t.Errorf("got %q, %q", Atom, Container)
	}
	if Kind(7).String() != "kind(7)" {
		t.Errorf("got %q", Kind(7))
	}
}
