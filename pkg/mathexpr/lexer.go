package mathexpr

import (
	"fmt"
	"strconv"
)

func tokenize(expr string) ([]token, error) {
	tokens := make([]token, 0, len(expr))

	for i := 0; i < len(expr); {
		ch := expr[i]
		switch {
		case ch == ' ' || ch == '\t':
			i++
		case isDigit(ch) || ch == '.':
			start := i
			dots := 0
			for i < len(expr) && (isDigit(expr[i]) || expr[i] == '.') {
				if expr[i] == '.' {
					dots++
				}
				i++
			}
			text := expr[start:i]
			if dots > 1 || text == "." {
				return nil, fmt.Errorf("%w %q at position %d", ErrInvalidNumber, text, start)
			}
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, fmt.Errorf("%w %q at position %d", ErrInvalidNumber, text, start)
			}
			tokens = append(tokens, token{kind: tokNumber, text: text, value: v, pos: start})
		default:
			kind, ok := operatorKinds[ch]
			if !ok {
				return nil, fmt.Errorf("%w %q at position %d", ErrUnexpectedToken, string(ch), i)
			}
			tokens = append(tokens, token{kind: kind, text: string(ch), pos: i})
			i++
		}
	}

	return append(tokens, token{kind: tokEOF, pos: len(expr)}), nil
}

var operatorKinds = map[byte]tokenKind{
	'+': tokPlus,
	'-': tokMinus,
	'*': tokStar,
	'/': tokSlash,
	'(': tokLParen,
	')': tokRParen,
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
