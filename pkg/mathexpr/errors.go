package mathexpr

import "errors"

var (
	ErrEmptyExpression  = errors.New("empty expression")
	ErrInvalidNumber    = errors.New("invalid number")
	ErrUnexpectedToken  = errors.New("unexpected token")
	ErrUnexpectedEnd    = errors.New("unexpected end of expression")
	ErrUnbalancedParens = errors.New("unbalanced parentheses")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrNonFinite        = errors.New("result is not a finite number")
	ErrTooDeep          = errors.New("expression nested too deeply")
)
