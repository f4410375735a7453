// Package sigdiff compares the callable surface of two implementations of
// the same API and reports where they agree.
//
// Each implementation dumps a plain-text signature listing: one record per
// function or method, with its positional, variadic, optional and keyword
// arguments and its return type. sigdiff parses both listings, normalizes
// every type expression, diffs them in both directions and renders a status
// report as HTML, as a terminal table, or in an interactive browser.
//
// # Architecture Overview
//
//	sigdiff/
//	├── cmd/sigdiff/     Command line entry point, watch mode and TUI browser
//	├── signature/       Listing parser producing signature records
//	├── typeexpr/        Type-expression grammar: tokenizer, parser, ordering
//	├── normalize/       Alias expansion and list collapsing
//	├── typediff/        Bidirectional structural diff of type expressions
//	├── compare/         Per-entry comparison and support status
//	├── config/          YAML configuration with built-in defaults
//	├── report/          HTML and text renderers
//	└── errors/          Structured error types for diagnostics
//
// # Quick Start
//
//	ref, err := signature.ParseFile("muon.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tgt, err := signature.ParseFile("meson.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cfg := config.Default()
//	entries := compare.New(cfg.Aliases, cfg.Exclude).Compare(ref, tgt)
//	_ = report.HTML(os.Stdout, report.NewPage(cfg, entries))
//
// # Type Expressions
//
// A type expression is a " | "-separated list of alternatives. An
// alternative is either an atom (str, file) or a container holding a nested
// expression (list[str | file], dict[any]). Normalization sorts and
// deduplicates alternatives, replaces aliases with their expansion and
// collapses "T | list[T]" into list[T].
//
// # Thread Safety
//
// Parsed sets and normalizers are read-only after construction and may be
// shared between goroutines. Comparator.Compare fans entries out across a
// bounded worker group.
package sigdiff
