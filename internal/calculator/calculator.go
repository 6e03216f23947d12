// Package calculator answers arithmetic questions embedded in free text.
package calculator

import (
	"fmt"

	"conversational-assistant/pkg/mathexpr"
)

const (
	MsgNoExpression = "No valid math expression found."
	msgResultFormat = "Result: %s = %s"
	msgErrorFormat  = "Error solving the math problem: %v"
)

// Evaluate finds the arithmetic expression in text and returns a
// user-facing result line. It never fails: parse and evaluation errors are
// reported in the returned text.
func Evaluate(text string) string {
	expr, ok := mathexpr.Extract(text)
	if !ok {
		return MsgNoExpression
	}

	value, err := mathexpr.Eval(expr)
	if err != nil {
		return fmt.Sprintf(msgErrorFormat, err)
	}

	return fmt.Sprintf(msgResultFormat, expr, mathexpr.FormatNumber(value))
}
