package round

import (
	"math/big"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"

	"github.com/calebcase/fixnum/num"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("round")

// Configuration errors.
var (
	ErrInvalidMode      = Error.New("invalid rounding mode")
	ErrInvalidPrecision = Error.New("invalid target precision")
)

var one = big.NewInt(1)

// Mode selects which representable neighbor a discarded remainder moves
// the result to.
type Mode uint8

// Rounding Modes
const (
	ToZero       Mode = iota // towards 0
	AwayFromZero             // away from 0
	HalfEven                 // to nearest; ties to the even digit
	HalfAway                 // to nearest; ties away from 0
	ToPositive               // towards +infinity
	ToNegative               // towards -infinity

	modeMax
)

func (m Mode) String() string {
	switch m {
	case ToZero:
		return "to-zero"
	case AwayFromZero:
		return "away-from-zero"
	case HalfEven:
		return "half-even"
	case HalfAway:
		return "half-away"
	case ToPositive:
		return "to-positive"
	case ToNegative:
		return "to-negative"
	}

	return "invalid"
}

// Context is a reusable rounding policy. It carries no value-specific
// state and is safe for concurrent use.
type Context struct {
	mode   Mode
	exp    int
	prec   int
	byPrec bool
}

// New returns a context that rounds to the fixed digit position exp.
func New(exp int, mode Mode) (Context, error) {
	if mode >= modeMax {
		return Context{}, oops.Trace(ErrInvalidMode)
	}

	return Context{mode: mode, exp: exp}, nil
}

// NewWithPrecision returns a context that rounds to p significant
// digits. The target position is derived per value from its normalized
// exponent. p must be positive.
func NewWithPrecision(p int, mode Mode) (Context, error) {
	if mode >= modeMax {
		return Context{}, oops.Trace(ErrInvalidMode)
	}
	if p < 1 {
		return Context{}, oops.Trace(ErrInvalidPrecision)
	}

	return Context{mode: mode, prec: p, byPrec: true}, nil
}

// Mode returns the tie-breaking mode.
func (c Context) Mode() Mode {
	return c.mode
}

// Round returns the nearest value to x representable under the
// context, breaking ties by the context's mode. The exponent of the
// result is exactly the target position and a zero result keeps the
// sign of x. Round never fails.
func (c Context) Round(x num.Num) num.Num {
	exp := c.exp
	if c.byPrec {
		e, err := x.E()
		if err != nil {
			// Zero is representable at every precision.
			return x
		}
		exp = e - c.prec + 1
	}

	hi, lo := x.Split(exp - 1)

	if lo.IsZero() {
		// Already representable: re-express at the target position
		// without perturbing the number.
		m := hi.Coeff()
		m.Lsh(m, uint(hi.Exp()-exp))

		return num.New(x.Negative(), m, exp)
	}

	// Two representable neighbors bracket x. The truncated magnitude
	// is the neighbor towards zero; adding one unit gives the neighbor
	// away from zero.
	m := hi.Coeff()

	up := false
	switch c.mode {
	case ToZero:
	case AwayFromZero:
		up = true
	case ToPositive:
		up = !x.Negative()
	case ToNegative:
		up = x.Negative()
	case HalfEven, HalfAway:
		switch half := cmpHalf(lo, exp); {
		case half > 0:
			up = true
		case half == 0:
			if c.mode == HalfAway {
				up = true
			} else {
				// Increment exactly when truncation left the
				// target digit odd.
				up = m.Bit(0) == 1
			}
		}
	}

	if up {
		m.Add(m, one)

		if c.byPrec && m.BitLen() > c.prec {
			// The increment carried out of an all-ones magnitude;
			// the result is a power of two and re-expresses
			// exactly one position up.
			m.Rsh(m, 1)
			exp++
		}
	}

	return num.New(x.Negative(), m, exp)
}

// cmpHalf compares the magnitude of the discarded share against half a
// unit at the target position.
func cmpHalf(lo num.Num, target int) int {
	half := new(big.Int).Lsh(one, uint(target-1-lo.Exp()))

	return lo.Coeff().Cmp(half)
}
