package normalize

import (
	"fmt"
	"slices"
	"sort"

	"github.com/wippyai/sigdiff/errors"
	"github.com/wippyai/sigdiff/typeexpr"
)

// ListContainer is the container name that listification collapses onto.
const ListContainer = "list"

// AliasTable maps an atom name to the atoms it stands for.
// An empty expansion makes the atom vanish from its union.
type AliasTable map[string][]string

// Validate rejects tables whose expansions name other aliases.
// A chain-free table makes a single expansion pass a fixpoint.
func (t AliasTable) Validate() error {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		for _, target := range t[k] {
			if _, ok := t[target]; ok {
				return errors.AliasChain(k, target)
			}
		}
	}
	return nil
}

// Normalizer canonicalizes type expressions before they are diffed.
// The zero value expands nothing and only sorts, deduplicates and listifies.
type Normalizer struct {
	Aliases AliasTable
}

// New returns a Normalizer using aliases.
func New(aliases AliasTable) *Normalizer {
	return &Normalizer{Aliases: aliases}
}

// Normalize applies alias expansion and then listification collapse.
func (n *Normalizer) Normalize(e typeexpr.Expr) typeexpr.Expr {
	return Listify(n.Expand(e))
}

// NormalizeString parses s and normalizes the result.
func (n *Normalizer) NormalizeString(s string) typeexpr.Expr {
	return n.Normalize(typeexpr.Parse(s))
}

// Expand replaces aliased atoms by their expansions, recursing into containers,
// and returns the alternatives deduplicated and sorted with typeexpr.Compare.
// A container left with no elements becomes the bare atom of its name.
func (n *Normalizer) Expand(e typeexpr.Expr) typeexpr.Expr {
	out := make(typeexpr.Expr, 0, len(e))
	add := func(a typeexpr.Alternative) {
		if !out.Contains(a) {
			out = append(out, a)
		}
	}

	for _, a := range e {
		switch a.Kind {
		case typeexpr.Atom:
			n.expandAtom(a.Name, add)
		case typeexpr.Container:
			elems := n.Expand(a.Elems)
			if len(elems) == 0 {
				n.expandAtom(a.Name, add)
				continue
			}
			add(typeexpr.NewContainer(a.Name, elems...))
		default:
			panic(fmt.Sprintf("normalize: unknown kind %v", a.Kind))
		}
	}

	slices.SortFunc(out, typeexpr.Compare)
	return out
}

func (n *Normalizer) expandAtom(name string, add func(typeexpr.Alternative)) {
	targets, ok := n.Aliases[name]
	if !ok {
		add(typeexpr.NewAtom(name))
		return
	}
	for _, t := range targets {
		add(typeexpr.NewAtom(t))
	}
}

// Listify collapses "T | list[T]" into "list[T]".
//
// The union must consist of a set S of atoms plus exactly one list container
// whose elements are exactly S. Any other shape is returned unchanged.
func Listify(e typeexpr.Expr) typeexpr.Expr {
	var atoms typeexpr.Expr
	var list *typeexpr.Alternative

	for i := range e {
		switch e[i].Kind {
		case typeexpr.Atom:
			if !atoms.Contains(e[i]) {
				atoms = append(atoms, e[i])
			}
		case typeexpr.Container:
			if e[i].Name != ListContainer || list != nil {
				return e
			}
			list = &e[i]
		default:
			panic(fmt.Sprintf("normalize: unknown kind %v", e[i].Kind))
		}
	}

	if list == nil || !sameSet(atoms, list.Elems) {
		return e
	}

	slices.SortFunc(atoms, typeexpr.Compare)
	return typeexpr.Expr{typeexpr.NewContainer(ListContainer, atoms...)}
}

func sameSet(a, b typeexpr.Expr) bool {
	for _, x := range a {
		if !b.Contains(x) {
			return false
		}
	}
	for _, x := range b {
		if !a.Contains(x) {
			return false
		}
	}
	return true
}
