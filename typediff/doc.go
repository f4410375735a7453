// Package typediff computes a bidirectional, recursive diff between two
// normalized type expressions.
//
// Each alternative of one side is tagged Shared or Added relative to the
// other side. Containers match by name first and diff their contents
// second, so "list[str]" against "list[int]" yields a shared list whose
// inner "str" is added:
//
//	r := typediff.Compare(typeexpr.Parse("list[str]"), typeexpr.Parse("list[int]"))
//	r.AtoB.Render(typediff.Signed{}) // "list[+str]"
//	r.BtoA.Render(typediff.Signed{}) // "list[+int]"
//
// Presentation is left to a Marker supplied by the renderer.
package typediff
