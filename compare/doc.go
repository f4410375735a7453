// Package compare lines up the signatures of a reference implementation
// against a target implementation of the same API.
//
// Every name found in either set yields an Entry with a Status, the diff
// of its return type and one row per argument: positional, variadic and
// optional arguments pair up by position, keyword arguments by name.
// Types are normalized before diffing, so "str | int" and "int | str"
// compare equal.
//
//	c := compare.New(cfg.Aliases, cfg.Exclude)
//	entries := c.Compare(reference, target)
//
// Entries are independent of each other and are computed concurrently;
// the result order is fixed: plain functions sorted by name, then methods.
package compare
