// Package report renders comparison entries for human review.
//
// HTML produces a standalone status page: the module support matrix, one
// row per function or method with the diff of its return type, and one
// section per reference entry with its argument table. Text produces the
// same content as terminal tables, styled with lipgloss when colour is
// enabled.
//
// The Marker implementations here decide how shared and added
// alternatives look; the diff itself is computed by package typediff.
package report
