package mathexpr

import (
	"fmt"
	"strings"
)

// Parse builds an expression tree from expr using the grammar
//
//	expr    := term (('+' | '-') term)*
//	term    := unary (('*' | '/') unary)*
//	unary   := ('+' | '-') unary | primary
//	primary := number | '(' expr ')'
//
// Only numeric literals, the four operators and parentheses are accepted.
func Parse(expr string) (Node, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, ErrEmptyExpression
	}

	tokens, err := tokenize(expr)
	if err != nil {
		return nil, err
	}

	p := &parser{tokens: tokens}
	node, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.kind != tokEOF {
		if tok.kind == tokRParen {
			return nil, fmt.Errorf("%w: unmatched ')' at position %d", ErrUnbalancedParens, tok.pos)
		}
		return nil, fmt.Errorf("%w %q at position %d", ErrUnexpectedToken, tok.text, tok.pos)
	}

	return node, nil
}

// Eval parses and evaluates expr.
func Eval(expr string) (float64, error) {
	node, err := Parse(expr)
	if err != nil {
		return 0, err
	}
	return node.Eval()
}

type parser struct {
	tokens []token
	pos    int
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) parseExpr(depth int) (Node, error) {
	if depth > MaxDepth {
		return nil, ErrTooDeep
	}

	left, err := p.parseTerm(depth)
	if err != nil {
		return nil, err
	}

	for {
		tok := p.peek()
		if tok.kind != tokPlus && tok.kind != tokMinus {
			return left, nil
		}
		p.next()
		right, err := p.parseTerm(depth)
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: tok.text[0], L: left, R: right}
	}
}

func (p *parser) parseTerm(depth int) (Node, error) {
	left, err := p.parseUnary(depth)
	if err != nil {
		return nil, err
	}

	for {
		tok := p.peek()
		if tok.kind != tokStar && tok.kind != tokSlash {
			return left, nil
		}
		p.next()
		right, err := p.parseUnary(depth)
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: tok.text[0], L: left, R: right}
	}
}

func (p *parser) parseUnary(depth int) (Node, error) {
	if depth > MaxDepth {
		return nil, ErrTooDeep
	}

	tok := p.peek()
	if tok.kind == tokPlus || tok.kind == tokMinus {
		p.next()
		x, err := p.parseUnary(depth + 1)
		if err != nil {
			return nil, err
		}
		return &Unary{Op: tok.text[0], X: x}, nil
	}

	return p.parsePrimary(depth)
}

func (p *parser) parsePrimary(depth int) (Node, error) {
	tok := p.next()

	switch tok.kind {
	case tokNumber:
		return &Number{Value: tok.value}, nil
	case tokLParen:
		inner, err := p.parseExpr(depth + 1)
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return nil, fmt.Errorf("%w: missing ')' for '(' at position %d", ErrUnbalancedParens, tok.pos)
		}
		return inner, nil
	case tokEOF:
		return nil, ErrUnexpectedEnd
	default:
		return nil, fmt.Errorf("%w %q at position %d", ErrUnexpectedToken, tok.text, tok.pos)
	}
}
