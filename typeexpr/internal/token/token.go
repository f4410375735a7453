package token

import "unicode"

type Type int

const (
	Ident Type = iota
	LBracket
	RBracket
	Pipe
)

func (t Type) String() string {
	switch t {
	case Ident:
		return "identifier"
	case LBracket:
		return "'['"
	case RBracket:
		return "']'"
	case Pipe:
		return "'|'"
	}
	return "unknown"
}

type Token struct {
	Value string
	Type  Type
	Pos   int
}

// Tokenize splits a type string into identifiers and punctuation.
// Whitespace separates nothing: "list [ str ]" and "list[str]" yield the same tokens,
// and so do "foo bar" and "foobar".
func Tokenize(input string) []Token {
	var tokens []Token
	runes := []rune(input)

	var ident []rune
	start := 0
	flush := func() {
		if len(ident) > 0 {
			tokens = append(tokens, Token{string(ident), Ident, start})
			ident = ident[:0]
		}
	}

	for i, r := range runes {
		if unicode.IsSpace(r) {
			continue
		}

		switch r {
		case '[':
			flush()
			tokens = append(tokens, Token{"[", LBracket, i})
		case ']':
			flush()
			tokens = append(tokens, Token{"]", RBracket, i})
		case '|':
			flush()
			tokens = append(tokens, Token{"|", Pipe, i})
		default:
			if len(ident) == 0 {
				start = i
			}
			ident = append(ident, r)
		}
	}
	flush()

	return tokens
}
