package compare

import (
	"runtime"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wippyai/sigdiff/normalize"
	"github.com/wippyai/sigdiff/signature"
	"github.com/wippyai/sigdiff/typediff"
	"github.com/wippyai/sigdiff/typeexpr"
)

// Status classifies a name by where it is implemented.
type Status string

const (
	// Unsupported names exist only in the target.
	Unsupported Status = "unsupported"
	// Extension names exist only in the reference and are flagged as extensions.
	Extension Status = "extension"
	// ReferenceOnly names exist only in the reference without the extension flag.
	ReferenceOnly Status = "reference-only-supported"
	// Supported names exist on both sides.
	Supported Status = "supported"
)

// Category is the kind of argument a row describes.
type Category string

const (
	PosArg Category = "posarg"
	VarArg Category = "vararg"
	OptArg Category = "optarg"
	KwArg  Category = "kwarg"
)

// Arg is one argument row of an entry. Keyword is empty except for KwArg rows.
type Arg struct {
	Category Category
	Keyword  string
	Diff     typediff.Result
}

// Entry is the comparison of one function or method.
// Return and Args diff the reference (AtoB) against the target (BtoA).
type Entry struct {
	Name        string
	Status      Status
	Return      typediff.Result
	Args        []Arg
	InReference bool
}

// Comparator compares two signature sets.
type Comparator struct {
	Normalizer *normalize.Normalizer
	Exclude    map[string]bool
	// Jobs bounds the number of entries compared concurrently.
	// Zero means GOMAXPROCS.
	Jobs int
}

// New returns a Comparator normalizing through aliases and skipping the
// names in exclude.
func New(aliases normalize.AliasTable, exclude []string) *Comparator {
	ex := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		ex[name] = true
	}
	return &Comparator{
		Normalizer: normalize.New(aliases),
		Exclude:    ex,
	}
}

// Compare produces one entry per name found in either set, minus excluded
// names. Plain functions come first, sorted, then methods, sorted.
func (c *Comparator) Compare(reference, target signature.Set) []Entry {
	names := c.names(reference, target)
	entries := make([]Entry, len(names))

	jobs := c.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	var g errgroup.Group
	g.SetLimit(jobs)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			entries[i] = c.entry(name, reference, target)
			return nil
		})
	}
	// Workers never fail; Wait only joins them.
	_ = g.Wait()

	Logger().Debug("compared signatures",
		zap.Int("reference", len(reference)),
		zap.Int("target", len(target)),
		zap.Int("entries", len(entries)))
	return entries
}

func (c *Comparator) names(reference, target signature.Set) []string {
	seen := make(map[string]bool, len(reference)+len(target))
	var funcs, methods []string
	add := func(set signature.Set) {
		for name := range set {
			if seen[name] || c.Exclude[name] {
				continue
			}
			seen[name] = true
			if signature.IsMethod(name) {
				methods = append(methods, name)
			} else {
				funcs = append(funcs, name)
			}
		}
	}
	add(reference)
	add(target)

	sort.Strings(funcs)
	sort.Strings(methods)
	return append(funcs, methods...)
}

func (c *Comparator) entry(name string, reference, target signature.Set) Entry {
	ref, inRef := reference.Lookup(name)
	tgt, inTgt := target.Lookup(name)

	e := Entry{
		Name:        name,
		Status:      status(ref, inRef, inTgt),
		InReference: inRef,
		Return:      c.TypeComp(ref.Returns, tgt.Returns),
	}

	e.Args = append(e.Args, c.positional(PosArg, ref.PosArgs, tgt.PosArgs)...)
	e.Args = append(e.Args, c.positional(VarArg, ref.VarArgs, tgt.VarArgs)...)
	e.Args = append(e.Args, c.positional(OptArg, ref.OptArgs, tgt.OptArgs)...)
	e.Args = append(e.Args, c.keywords(ref.KwArgs, tgt.KwArgs)...)
	return e
}

func status(ref *signature.Record, inRef, inTgt bool) Status {
	switch {
	case !inRef:
		return Unsupported
	case !inTgt && ref.Extension:
		return Extension
	case !inTgt:
		return ReferenceOnly
	default:
		return Supported
	}
}

func (c *Comparator) positional(cat Category, a, b []string) []Arg {
	n := max(len(a), len(b))
	rows := make([]Arg, n)
	for i := 0; i < n; i++ {
		rows[i] = Arg{Category: cat, Diff: c.TypeComp(at(a, i), at(b, i))}
	}
	return rows
}

func at(s []string, i int) string {
	if i < len(s) {
		return s[i]
	}
	return ""
}

func (c *Comparator) keywords(a, b map[string]string) []Arg {
	keys := make([]string, 0, len(a)+len(b))
	for k := range a {
		keys = append(keys, k)
	}
	for k := range b {
		if _, ok := a[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	rows := make([]Arg, len(keys))
	for i, k := range keys {
		rows[i] = Arg{Category: KwArg, Keyword: k, Diff: c.TypeComp(a[k], b[k])}
	}
	return rows
}

// TypeComp parses, normalizes and diffs two type strings.
// An empty string stands for no type.
func (c *Comparator) TypeComp(a, b string) typediff.Result {
	return typediff.Compare(c.normalize(a), c.normalize(b))
}

func (c *Comparator) normalize(s string) typeexpr.Expr {
	n := c.Normalizer
	if n == nil {
		n = &normalize.Normalizer{}
	}
	return n.NormalizeString(s)
}

// Summary counts entries per status.
type Summary map[Status]int

// Summarize tallies entries by status.
func Summarize(entries []Entry) Summary {
	s := make(Summary)
	for _, e := range entries {
		s[e.Status]++
	}
	return s
}

// Total returns the number of entries counted.
func (s Summary) Total() int {
	n := 0
	for _, v := range s {
		n += v
	}
	return n
}
