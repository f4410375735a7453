// Package normalize canonicalizes type expressions so that semantically
// equal spellings compare equal.
//
// Two passes run in order. Alias expansion rewrites atoms through an
// AliasTable ("tgt" may stand for "build_tgt | custom_tgt | both_libs",
// "void" for nothing) and leaves the union sorted and free of duplicates.
// Listification collapse then folds the common "T | list[T]" idiom into
// "list[T]".
//
// Both passes are pure and idempotent.
package normalize
