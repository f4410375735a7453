package typeexpr

import "github.com/wippyai/sigdiff/typeexpr/internal/token"

type parser struct {
	tokens []token.Token
	pos    int
}

// Parse turns a type string into a union of alternatives.
//
// Parsing never fails. Malformed input degrades deterministically:
// a ']' with nothing open and a '|' with nothing before it are skipped,
// a '[' with no preceding name opens a container with an empty name,
// and end of input closes every container still open.
func Parse(s string) Expr {
	p := &parser{tokens: token.Tokenize(s)}
	return p.parseExpr(0)
}

func (p *parser) peek() *token.Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	return &p.tokens[p.pos]
}

func (p *parser) next() *token.Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	t := &p.tokens[p.pos]
	p.pos++
	return t
}

func (p *parser) parseExpr(depth int) Expr {
	var expr Expr
	for {
		t := p.next()
		if t == nil {
			return expr
		}

		switch t.Type {
		case token.Ident:
			if n := p.peek(); n != nil && n.Type == token.LBracket {
				p.next()
				expr = append(expr, NewContainer(t.Value, p.parseExpr(depth+1)...))
				continue
			}
			expr = append(expr, NewAtom(t.Value))
		case token.LBracket:
			expr = append(expr, NewContainer("", p.parseExpr(depth+1)...))
		case token.RBracket:
			if depth > 0 {
				return expr
			}
		case token.Pipe:
		}
	}
}
