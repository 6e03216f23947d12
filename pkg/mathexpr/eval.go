package mathexpr

import (
	"fmt"
	"math"
	"strconv"
)

func (n *Number) Eval() (float64, error) { return n.Value, nil }

func (n *Number) String() string { return FormatNumber(n.Value) }

func (u *Unary) Eval() (float64, error) {
	x, err := u.X.Eval()
	if err != nil {
		return 0, err
	}
	if u.Op == '-' {
		return -x, nil
	}
	return x, nil
}

func (u *Unary) String() string { return fmt.Sprintf("(%c%s)", u.Op, u.X) }

func (b *Binary) Eval() (float64, error) {
	l, err := b.L.Eval()
	if err != nil {
		return 0, err
	}
	r, err := b.R.Eval()
	if err != nil {
		return 0, err
	}

	var v float64
	switch b.Op {
	case '+':
		v = l + r
	case '-':
		v = l - r
	case '*':
		v = l * r
	case '/':
		if r == 0 {
			return 0, ErrDivisionByZero
		}
		v = l / r
	default:
		return 0, fmt.Errorf("%w %q", ErrUnexpectedToken, string(b.Op))
	}

	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, ErrNonFinite
	}
	return v, nil
}

func (b *Binary) String() string { return fmt.Sprintf("(%s %c %s)", b.L, b.Op, b.R) }

// FormatNumber renders v with the fewest digits that round-trip ("4", "2.5").
func FormatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
