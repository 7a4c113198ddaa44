package advanced

import "math"

// All of the intersection math goes through one of these policies. wrapping
// is plain Go arithmetic, which silently wraps on overflow. checked detects
// overflow and panics with an *OverflowError (see throw.go).
type arithmetic interface {
	add(a, b int) int
	sub(a, b int) int
	mul(a, b int) int
	div(a, b int) int
	neg(a int) int
}

type wrapping struct{}

func (wrapping) add(a, b int) int { return a + b }
func (wrapping) sub(a, b int) int { return a - b }
func (wrapping) mul(a, b int) int { return a * b }
func (wrapping) div(a, b int) int { return a / b }
func (wrapping) neg(a int) int    { return -a }

type checked struct{}

func (checked) add(a, b int) int {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		overflow("+", a, b)
	}
	return c
}

func (checked) sub(a, b int) int {
	c := a - b
	if (b > 0 && c > a) || (b < 0 && c < a) {
		overflow("-", a, b)
	}
	return c
}

func (checked) mul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	// MinInt * -1 wraps back to MinInt, which the division check below can't
	// see in one of the two operand orders.
	if (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		overflow("*", a, b)
	}
	c := a * b
	if c/b != a {
		overflow("*", a, b)
	}
	return c
}

func (checked) div(a, b int) int {
	if a == math.MinInt && b == -1 {
		overflow("/", a, b)
	}
	return a / b
}

func (checked) neg(a int) int {
	if a == math.MinInt {
		overflow("neg", a, 0)
	}
	return -a
}

func abs[A arithmetic](ar A, a int) int {
	if a < 0 {
		return ar.neg(a)
	}
	return a
}
