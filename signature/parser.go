package signature

import (
	"bufio"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/sigdiff/errors"
)

// ExtensionTag marks a record as an intentional extension of the reference.
const ExtensionTag = "extension"

type section int

const (
	sectionNone section = iota
	sectionPosArgs
	sectionVarArgs
	sectionOptArgs
	sectionKwArgs
	sectionReturns
)

var sections = map[string]section{
	"posargs:": sectionPosArgs,
	"varargs:": sectionVarArgs,
	"optargs:": sectionOptArgs,
	"kwargs:":  sectionKwArgs,
	"returns:": sectionReturns,
}

// Keywords may carry placeholders such as "<lang>_args"; escape them so a
// markup renderer shows them verbatim.
var keywordEscaper = strings.NewReplacer("<", "&#60;", ">", "&#62;")

const maxLineSize = 1 << 20

// Option configures parsing.
type Option func(*parser)

// WithKwargFolding folds per-language keyword spellings as described by f.
func WithKwargFolding(f Fold) Option {
	return func(p *parser) {
		p.fold = &f
	}
}

type parser struct {
	out        Set
	fold       *Fold
	cur        *Record
	kwargs     []kwarg
	hasReturns bool
	section    section
}

// ParseFile reads and parses the listing at path.
// Errors carry path as their File.
func ParseFile(path string, opts ...Option) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.IO(errors.PhaseRead, path, err)
	}
	defer f.Close()

	set, err := Parse(f, opts...)
	if err != nil {
		return nil, errors.WithFile(err, path)
	}
	Logger().Debug("parsed signature listing",
		zap.String("file", path),
		zap.Int("records", len(set)))
	return set, nil
}

// ParseString parses a listing held in memory.
func ParseString(s string, opts ...Option) (Set, error) {
	return Parse(strings.NewReader(s), opts...)
}

// Parse reads a signature listing.
//
// A line with no indentation starts a record, optionally tagged
// "extension:". A line indented by one or two columns selects one of the
// sections posargs, varargs, optargs, kwargs or returns. A line indented
// further is an entry of the active section. Blank lines are ignored.
//
// Structural problems (an unknown section, a section or entry with no
// owner) abort parsing and no records are returned.
func Parse(r io.Reader, opts ...Option) (Set, error) {
	p := &parser{out: make(Set)}
	for _, opt := range opts {
		opt(p)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		if err := p.line(lineNo, strings.TrimRight(sc.Text(), "\r")); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.PhaseRead, errors.KindIO, err, "read listing")
	}

	p.flush()
	return p.out, nil
}

func (p *parser) line(n int, line string) error {
	text := strings.TrimSpace(line)
	if text == "" {
		return nil
	}

	switch indent := len(line) - len(strings.TrimLeft(line, " ")); {
	case indent == 0:
		p.flush()
		p.begin(text)
	case indent <= 2:
		if p.cur == nil {
			return errors.OrphanSection(n, text)
		}
		s, ok := sections[text]
		if !ok {
			return errors.UnknownSection(n, text)
		}
		p.section = s
	default:
		if p.cur == nil || p.section == sectionNone {
			return errors.OrphanEntry(n, text)
		}
		p.entry(n, text)
	}
	return nil
}

func (p *parser) begin(header string) {
	parts := strings.Split(header, ":")
	p.cur = &Record{
		Name:      parts[len(parts)-1],
		Extension: len(parts) > 1 && parts[0] == ExtensionTag,
	}
	p.section = sectionNone
	p.kwargs = nil
	p.hasReturns = false
}

func (p *parser) entry(n int, text string) {
	switch p.section {
	case sectionPosArgs:
		p.cur.PosArgs = append(p.cur.PosArgs, text)
	case sectionVarArgs:
		p.cur.VarArgs = append(p.cur.VarArgs, text)
	case sectionOptArgs:
		p.cur.OptArgs = append(p.cur.OptArgs, text)
	case sectionKwArgs:
		name, typ, _ := strings.Cut(text, ": ")
		p.kwargs = append(p.kwargs, kwarg{name: name, typ: typ})
	case sectionReturns:
		if p.hasReturns {
			Logger().Warn("ignoring extra return type",
				zap.String("record", p.cur.Name),
				zap.Int("line", n),
				zap.String("type", text))
			return
		}
		p.cur.Returns = text
		p.hasReturns = true
	}
}

func (p *parser) flush() {
	if p.cur == nil {
		return
	}
	if p.cur.Name == "" {
		Logger().Debug("dropping record without a name")
		p.cur = nil
		return
	}

	kwargs := p.kwargs
	if p.fold.appliesTo(p.cur.Name) {
		kwargs = p.fold.apply(kwargs)
	}
	p.cur.KwArgs = make(map[string]string, len(kwargs))
	for _, kw := range kwargs {
		p.cur.KwArgs[keywordEscaper.Replace(kw.name)] = kw.typ
	}

	if _, dup := p.out[p.cur.Name]; dup {
		Logger().Debug("record redefined, keeping the later one", zap.String("record", p.cur.Name))
	}
	p.out[p.cur.Name] = p.cur
	p.cur = nil
}
