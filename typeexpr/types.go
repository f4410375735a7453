package typeexpr

import (
	"fmt"
	"strings"
)

// Separator joins the alternatives of a union when rendered.
const Separator = " | "

// Kind distinguishes the two shapes an alternative can take.
type Kind uint8

const (
	// Atom is a bare type name with no parameters.
	Atom Kind = iota
	// Container is a type name with a bracketed union of element alternatives.
	Container
)

func (k Kind) String() string {
	switch k {
	case Atom:
		return "atom"
	case Container:
		return "container"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Alternative is one member of a type union.
// Elems is only meaningful when Kind is Container.
type Alternative struct {
	Name  string
	Elems Expr
	Kind  Kind
}

// NewAtom returns an atom alternative.
func NewAtom(name string) Alternative {
	return Alternative{Kind: Atom, Name: name}
}

// NewContainer returns a container alternative holding elems.
func NewContainer(name string, elems ...Alternative) Alternative {
	return Alternative{Kind: Container, Name: name, Elems: Expr(elems)}
}

// String renders the alternative in listing syntax.
func (a Alternative) String() string {
	switch a.Kind {
	case Atom:
		return a.Name
	case Container:
		return a.Name + "[" + a.Elems.String() + "]"
	default:
		panic(fmt.Sprintf("typeexpr: unknown kind %v", a.Kind))
	}
}

// Equal reports structural equality, element order included.
func (a Alternative) Equal(b Alternative) bool {
	if a.Kind != b.Kind || a.Name != b.Name {
		return false
	}
	switch a.Kind {
	case Atom:
		return true
	case Container:
		return a.Elems.Equal(b.Elems)
	default:
		panic(fmt.Sprintf("typeexpr: unknown kind %v", a.Kind))
	}
}

// Compare orders alternatives by name, atoms before containers of the
// same name, then by rendered form. It returns -1, 0 or +1.
func Compare(a, b Alternative) int {
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	if a.Kind != b.Kind {
		if a.Kind == Atom {
			return -1
		}
		return 1
	}
	return strings.Compare(a.String(), b.String())
}

// Expr is a type expression: an ordered union of alternatives.
// A nil or empty Expr means no type at all.
type Expr []Alternative

// String renders the union with Separator between alternatives.
func (e Expr) String() string {
	parts := make([]string, len(e))
	for i, a := range e {
		parts[i] = a.String()
	}
	return strings.Join(parts, Separator)
}

// Equal reports whether both unions hold equal alternatives in the same order.
// A nil Expr equals an empty one.
func (e Expr) Equal(other Expr) bool {
	if len(e) != len(other) {
		return false
	}
	for i := range e {
		if !e[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// Contains reports whether an alternative structurally equal to a is present.
func (e Expr) Contains(a Alternative) bool {
	for _, x := range e {
		if x.Equal(a) {
			return true
		}
	}
	return false
}
