package signature

import (
	"sort"
	"strings"
)

// Record is the signature of one function or method.
// Records are not modified after parsing.
type Record struct {
	KwArgs    map[string]string
	Name      string
	Returns   string
	PosArgs   []string
	VarArgs   []string
	OptArgs   []string
	Extension bool
}

// Empty returns a record with no arguments and no return type.
func Empty(name string) *Record {
	return &Record{Name: name, KwArgs: map[string]string{}}
}

// ArgCount returns the number of arguments across all categories.
func (r *Record) ArgCount() int {
	return len(r.PosArgs) + len(r.VarArgs) + len(r.OptArgs) + len(r.KwArgs)
}

// IsMethod reports whether the record names a method ("receiver.method").
func (r *Record) IsMethod() bool {
	return IsMethod(r.Name)
}

// Keywords returns the keyword argument names in sorted order.
func (r *Record) Keywords() []string {
	keys := make([]string, 0, len(r.KwArgs))
	for k := range r.KwArgs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsMethod reports whether a qualified name refers to a method.
func IsMethod(name string) bool {
	return strings.Contains(name, ".")
}

// Set maps qualified names to their records.
type Set map[string]*Record

// Names returns every name in the set, sorted.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the record for name, or an empty record and false.
func (s Set) Lookup(name string) (*Record, bool) {
	if r, ok := s[name]; ok {
		return r, true
	}
	return Empty(name), false
}
