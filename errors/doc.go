// Package errors provides structured error types for sigdiff.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the offending file and line, the offending value and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseParse, errors.KindUnknownSection).
//		File("muon.txt").
//		Line(12).
//		Detail("unknown section %q", "retruns:").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnknownSection(12, "retruns:")
//	err := errors.IO(errors.PhaseRead, path, cause)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
