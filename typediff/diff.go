package typediff

import (
	"fmt"
	"strings"

	"github.com/wippyai/sigdiff/typeexpr"
)

// Tag says whether an alternative has a counterpart on the other side.
type Tag uint8

const (
	// Shared alternatives are present on both sides.
	Shared Tag = iota
	// Added alternatives are present only on the side being rendered.
	Added
)

func (t Tag) String() string {
	switch t {
	case Shared:
		return "shared"
	case Added:
		return "added"
	}
	return fmt.Sprintf("tag(%d)", uint8(t))
}

// Node is one tagged alternative of a diff.
//
// For a container, Inner holds the diff of its elements against the
// same-named container on the other side when one exists; otherwise
// Inner holds its elements, all Added.
type Node struct {
	Name      string
	Inner     Diff
	Tag       Tag
	Container bool
}

// Diff is the tagged rendering of one side of a comparison,
// in the side's normalized order.
type Diff []Node

// Result holds both directions of a comparison.
type Result struct {
	AtoB Diff
	BtoA Diff
}

// Compare diffs two normalized expressions in both directions.
func Compare(a, b typeexpr.Expr) Result {
	return Result{
		AtoB: Compute(a, b),
		BtoA: Compute(b, a),
	}
}

// Compute tags every alternative of a against b.
//
// An atom is shared when b holds an atom of the same name. A container is
// shared when b holds a container of the same name, whatever either of them
// contains; its Inner is then the recursive diff of both element lists.
// Among same-named containers in b, a structurally equal one is preferred.
func Compute(a, b typeexpr.Expr) Diff {
	if len(a) == 0 {
		return nil
	}

	d := make(Diff, 0, len(a))
	for _, alt := range a {
		switch alt.Kind {
		case typeexpr.Atom:
			tag := Added
			if findAtom(b, alt.Name) {
				tag = Shared
			}
			d = append(d, Node{Name: alt.Name, Tag: tag})
		case typeexpr.Container:
			if other, ok := findContainer(b, alt); ok {
				d = append(d, Node{
					Name:      alt.Name,
					Tag:       Shared,
					Container: true,
					Inner:     Compute(alt.Elems, other.Elems),
				})
				continue
			}
			d = append(d, Node{
				Name:      alt.Name,
				Tag:       Added,
				Container: true,
				Inner:     Compute(alt.Elems, nil),
			})
		default:
			panic(fmt.Sprintf("typediff: unknown kind %v", alt.Kind))
		}
	}
	return d
}

func findAtom(e typeexpr.Expr, name string) bool {
	for _, x := range e {
		if x.Kind == typeexpr.Atom && x.Name == name {
			return true
		}
	}
	return false
}

func findContainer(e typeexpr.Expr, c typeexpr.Alternative) (typeexpr.Alternative, bool) {
	var first typeexpr.Alternative
	found := false
	for _, x := range e {
		if x.Kind != typeexpr.Container || x.Name != c.Name {
			continue
		}
		if x.Equal(c) {
			return x, true
		}
		if !found {
			first, found = x, true
		}
	}
	return first, found
}

// Added counts top-level alternatives tagged Added.
func (d Diff) Added() int {
	n := 0
	for _, node := range d {
		if node.Tag == Added {
			n++
		}
	}
	return n
}

// Identical reports whether no node at any depth is tagged Added.
func (d Diff) Identical() bool {
	for _, node := range d {
		if node.Tag == Added || !node.Inner.Identical() {
			return false
		}
	}
	return true
}

// Marker decorates rendered alternatives according to their tag.
type Marker interface {
	Shared(text string) string
	Added(text string) string
}

// Escaper is implemented by markers whose output format needs type names
// escaped before decoration.
type Escaper interface {
	Escape(text string) string
}

func escape(m Marker, s string) string {
	if e, ok := m.(Escaper); ok {
		return e.Escape(s)
	}
	return s
}

// Render joins the nodes with typeexpr.Separator, decorating each
// top-level node with m. A shared container renders its inner diff with
// m as well; an added container renders its elements undecorated, since
// the whole alternative is already marked.
func (d Diff) Render(m Marker) string {
	parts := make([]string, len(d))
	for i, node := range d {
		parts[i] = node.render(m)
	}
	return strings.Join(parts, typeexpr.Separator)
}

func (n Node) render(m Marker) string {
	text := escape(m, n.Name)
	if n.Container {
		inner := escape(m, n.Inner.String())
		if n.Tag == Shared {
			inner = n.Inner.Render(m)
		}
		text += "[" + inner + "]"
	}
	if n.Tag == Added {
		return m.Added(text)
	}
	return m.Shared(text)
}

// String renders the diff without decoration, reproducing the side's type.
func (d Diff) String() string {
	return d.Render(Plain{})
}

// Plain renders text untouched.
type Plain struct{}

func (Plain) Shared(text string) string { return text }
func (Plain) Added(text string) string  { return text }

// Signed prefixes added alternatives with '+'.
type Signed struct{}

func (Signed) Shared(text string) string { return text }
func (Signed) Added(text string) string  { return "+" + text }
