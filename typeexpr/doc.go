// Package typeexpr parses the type strings found in signature listings.
//
// The grammar is small:
//
//	type_expr   := alternative ('|' alternative)*
//	alternative := IDENT | IDENT '[' type_expr ']'
//
// Whitespace is insignificant. Each alternative is an Atom or a Container
// holding a nested union, to any depth:
//
//	expr := typeexpr.Parse("list[str | file] | str")
//	// expr[0] = Container("list", Atom("str"), Atom("file"))
//	// expr[1] = Atom("str")
//
// The empty string parses to an empty Expr, which is distinct from a union
// holding an explicit void atom.
package typeexpr
