package mathexpr

// MaxDepth bounds parenthesis and unary nesting so hostile input cannot exhaust the stack.
const MaxDepth = 64

// Node is a parsed arithmetic expression.
type Node interface {
	Eval() (float64, error)
	String() string
}

// Number is a decimal literal.
type Number struct {
	Value float64
}

// Unary is a sign applied to an operand.
type Unary struct {
	Op byte // '+' or '-'
	X  Node
}

// Binary is one of the four arithmetic operators.
type Binary struct {
	Op   byte // '+', '-', '*', '/'
	L, R Node
}

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokLParen
	tokRParen
	tokEOF
)

type token struct {
	kind  tokenKind
	text  string
	value float64
	pos   int
}
