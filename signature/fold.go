package signature

import "strings"

// Fold merges per-language keyword spellings into a single keyword.
//
// For the listed functions, a keyword starting with one of Prefixes has that
// prefix replaced by Replacement: with prefixes "c_" and "cpp_" and the
// replacement "<lang>_", both "c_args" and "cpp_args" become "<lang>_args".
// The later spelling wins when two fold onto the same name.
type Fold struct {
	Replacement string
	Functions   []string
	Prefixes    []string
}

func (f *Fold) appliesTo(name string) bool {
	if f == nil {
		return false
	}
	for _, fn := range f.Functions {
		if fn == name {
			return true
		}
	}
	return false
}

type kwarg struct {
	name string
	typ  string
}

// apply returns kwargs with folded spellings moved to the end, in the
// order they first appeared.
func (f *Fold) apply(kwargs []kwarg) []kwarg {
	var kept []kwarg
	var folded []kwarg
	index := make(map[string]int)

	for _, kw := range kwargs {
		prefix, ok := f.matchPrefix(kw.name)
		if !ok {
			kept = append(kept, kw)
			continue
		}
		name := f.Replacement + strings.TrimPrefix(kw.name, prefix)
		if i, seen := index[name]; seen {
			folded[i].typ = kw.typ
			continue
		}
		index[name] = len(folded)
		folded = append(folded, kwarg{name: name, typ: kw.typ})
	}

	return append(kept, folded...)
}

func (f *Fold) matchPrefix(name string) (string, bool) {
	for _, p := range f.Prefixes {
		if strings.HasPrefix(name, p) {
			return p, true
		}
	}
	return "", false
}
