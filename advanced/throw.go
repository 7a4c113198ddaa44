package advanced

import (
	"fmt"

	"github.com/pkg/errors"
)

// Threading an overflow error through every dot product and determinant would
// bury the intersection math. Instead, the checked arithmetic panics with an
// *OverflowError, and the checked entry points recover to convert it back into
// an error.

// An integer operation whose result does not fit in an int.
type OverflowError struct {
	// One of "+", "-", "*", "/" or "neg". B is unused for "neg".
	Op   string
	A, B int
}

func (e *OverflowError) Error() string {
	if e.Op == "neg" {
		return fmt.Sprintf("-(%d) overflows int", e.A)
	}
	return fmt.Sprintf("%d %s %d overflows int", e.A, e.Op, e.B)
}

func overflow(op string, a, b int) {
	panic(&OverflowError{Op: op, A: a, B: b})
}

// Convert a recovered overflow panic into an error. Any other panic is
// re-raised, and a nil recover() result gives a nil error, so this can be
// called unconditionally from a deferred function.
func HandleOverflowPanicRecover(r interface{}) error {
	if r != nil {
		if overflowError, ok := r.(*OverflowError); ok {
			return errors.Wrap(overflowError, "integer overflow")
		}
		panic(r)
	}
	return nil
}
