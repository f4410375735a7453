package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseRead   Phase = "read"   // listing and config file access
	PhaseParse  Phase = "parse"  // signature listing structure
	PhaseConfig Phase = "config" // alias tables, exclusions, module matrix
	PhaseRender Phase = "render" // report output
)

// Kind categorizes the error
type Kind string

const (
	KindUnknownSection Kind = "unknown_section"
	KindOrphanSection  Kind = "orphan_section"
	KindOrphanEntry    Kind = "orphan_entry"
	KindIO             Kind = "io"
	KindInvalidConfig  Kind = "invalid_config"
	KindAliasChain     Kind = "alias_chain"
	KindUnsupported    Kind = "unsupported"
)

// Error is the structured error type used throughout sigdiff
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	File   string
	Detail string
	Line   int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.File != "" || e.Line > 0 {
		b.WriteString(" at ")
		if e.File != "" {
			b.WriteString(e.File)
		}
		if e.Line > 0 {
			if e.File != "" {
				b.WriteByte(':')
			} else {
				b.WriteString("line ")
			}
			b.WriteString(strconv.Itoa(e.Line))
		}
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// File sets the file the error refers to
func (b *Builder) File(name string) *Builder {
	b.err.File = name
	return b
}

// Line sets the 1-based line number
func (b *Builder) Line(n int) *Builder {
	b.err.Line = n
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// UnknownSection creates an error for a section line with an unrecognized keyword
func UnknownSection(line int, keyword string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindUnknownSection,
		Line:   line,
		Value:  keyword,
		Detail: fmt.Sprintf("unknown section %q", keyword),
	}
}

// OrphanSection creates an error for a section line that appears before any record
func OrphanSection(line int, keyword string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindOrphanSection,
		Line:   line,
		Value:  keyword,
		Detail: fmt.Sprintf("section %q outside of a record", keyword),
	}
}

// OrphanEntry creates an error for an entry line with no active section
func OrphanEntry(line int, entry string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindOrphanEntry,
		Line:   line,
		Value:  entry,
		Detail: fmt.Sprintf("entry %q outside of a section", entry),
	}
}

// IO wraps a file access failure
func IO(phase Phase, file string, cause error) *Error {
	return &Error{
		Phase: phase,
		Kind:  KindIO,
		File:  file,
		Cause: cause,
	}
}

// InvalidConfig creates a configuration validation error
func InvalidConfig(detail string, args ...any) *Error {
	return &Error{
		Phase:  PhaseConfig,
		Kind:   KindInvalidConfig,
		Detail: fmt.Sprintf(detail, args...),
	}
}

// AliasChain creates an error for an alias whose expansion names another alias
func AliasChain(alias, target string) *Error {
	return &Error{
		Phase:  PhaseConfig,
		Kind:   KindAliasChain,
		Value:  alias,
		Detail: fmt.Sprintf("alias %q expands to alias %q", alias, target),
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// WithFile returns a copy of err annotated with the file it came from.
// Errors that are not *Error are wrapped as read failures.
func WithFile(err error, file string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		cp := *e
		cp.File = file
		return &cp
	}
	return IO(PhaseRead, file, err)
}
