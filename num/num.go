package num

import (
	"fmt"
	"math/big"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("num")

// Contract violations.
var (
	ErrNegativeShift     = Error.New("negative shift")
	ErrInvalidPrecision  = Error.New("negative target precision")
	ErrPrecisionExceeded = Error.New("target precision exceeded")
	ErrEmptyRegion       = Error.New("no significant digits")
)

var one = big.NewInt(1)

// zero is shared by values constructed without a magnitude. It is never
// mutated.
var zero = new(big.Int)

// bitmask returns a mask that is all 1s for the low k bits.
func bitmask(k uint) *big.Int {
	m := new(big.Int).Lsh(one, k)
	return m.Sub(m, one)
}

// Num is an exact fixed-point binary number.
//
// The zero value of the type denotes +0 at exponent 0.
type Num struct {
	neg bool
	c   *big.Int
	exp int
}

// New returns the number (-1)^neg * c * 2^exp. The magnitude is copied
// and is not normalized. A nil magnitude denotes zero. New panics if c
// is negative.
func New(neg bool, c *big.Int, exp int) Num {
	if c == nil {
		return Num{neg: neg, exp: exp}
	}
	if c.Sign() < 0 {
		panic("num: negative magnitude")
	}

	return Num{
		neg: neg,
		c:   new(big.Int).Set(c),
		exp: exp,
	}
}

// FromInt returns the number denoting i, with exponent 0.
func FromInt(i int64) Num {
	c := big.NewInt(i)
	neg := c.Sign() < 0

	return Num{
		neg: neg,
		c:   c.Abs(c),
	}
}

// mag returns the stored magnitude without copying. Callers must not
// mutate the result.
func (x Num) mag() *big.Int {
	if x.c == nil {
		return zero
	}

	return x.c
}

// Negative returns the sign bit. It may be set on a zero value.
func (x Num) Negative() bool {
	return x.neg
}

// Coeff returns a copy of the magnitude.
func (x Num) Coeff() *big.Int {
	return new(big.Int).Set(x.mag())
}

// Exp returns the absolute position of the least significant digit.
func (x Num) Exp() int {
	return x.exp
}

// P returns the minimum number of binary digits required to encode the
// magnitude. It is 0 exactly when the value is zero.
func (x Num) P() int {
	return x.mag().BitLen()
}

// E returns the absolute position of the most significant digit. It
// signals ErrEmptyRegion for zero, which has no such digit.
func (x Num) E() (int, error) {
	if x.IsZero() {
		return 0, oops.Trace(ErrEmptyRegion)
	}

	return x.exp + x.P() - 1, nil
}

// N returns the absolute position of the first digit below the region
// of significance. This is exactly exp - 1 and is defined for zero.
func (x Num) N() int {
	return x.exp - 1
}

// M returns the signed magnitude (-1)^s * c as a fresh big.Int.
func (x Num) M() *big.Int {
	m := x.Coeff()
	if x.neg {
		m.Neg(m)
	}

	return m
}

// IsZero returns whether the denoted number is zero.
func (x Num) IsZero() bool {
	return x.mag().Sign() == 0
}

// IsInteger returns whether the denoted number is an integer, that is,
// whether no digit below position 0 is non-zero.
func (x Num) IsInteger() bool {
	if x.exp >= 0 || x.IsZero() {
		return true
	}

	f := new(big.Int).And(x.mag(), bitmask(uint(-x.exp)))

	return f.Sign() == 0
}

// Bit returns whether the digit at absolute position pos is set. Digits
// below the region of significance are always 0, so no zero check is
// needed.
func (x Num) Bit(pos int) bool {
	if pos < x.exp {
		return false
	}

	return x.mag().Bit(pos-x.exp) == 1
}

// Split partitions the digits of x into those strictly above position
// pos (hi) and those at or below it (lo). Both shares carry the sign of
// x and neither has more precision than x; their sum denotes the same
// number as x. For a non-zero x the exponent of hi is above pos and the
// exponent of lo is at or below it.
func (x Num) Split(pos int) (hi, lo Num) {
	if pos < x.exp {
		return x, Num{neg: x.neg, exp: pos}
	}

	d := uint(pos - x.exp + 1)
	l := new(big.Int).And(x.mag(), bitmask(d))
	h := new(big.Int).Rsh(x.mag(), d)

	hi = Num{neg: x.neg, c: h, exp: pos + 1}
	lo = Num{neg: x.neg, c: l, exp: x.exp}

	return hi, lo
}

// ShiftRight widens the region of significance downward by d positions,
// returning an equivalent value whose exponent is exp - d and whose
// precision is d larger for non-zero values. A negative d signals
// ErrNegativeShift: dropping digits must go through rounding instead.
func (x Num) ShiftRight(d int) (Num, error) {
	if d < 0 {
		return Num{}, oops.Trace(ErrNegativeShift)
	}

	c := new(big.Int).Lsh(x.mag(), uint(d))

	return Num{neg: x.neg, c: c, exp: x.exp - d}, nil
}

// Normalize returns an equivalent value whose precision is exactly p,
// padding the region of significance downward as needed. It signals
// ErrInvalidPrecision for a negative p and ErrPrecisionExceeded when
// the precision of x is already above p; it never truncates.
func (x Num) Normalize(p int) (Num, error) {
	if p < 0 {
		return Num{}, oops.Trace(ErrInvalidPrecision)
	}
	if x.P() > p {
		return Num{}, oops.Trace(ErrPrecisionExceeded)
	}

	return x.ShiftRight(p - x.P())
}

// Cmp compares the denoted numbers:
//
//  -1 if x < y
//   0 if x == y
//  +1 if x > y
//
// Signs of zero are ignored: +0 and -0 compare equal.
func (x Num) Cmp(y Num) int {
	exp := x.exp
	if y.exp < exp {
		exp = y.exp
	}

	xm := x.M()
	xm.Lsh(xm, uint(x.exp-exp))
	ym := y.M()
	ym.Lsh(ym, uint(y.exp-exp))

	return xm.Cmp(ym)
}

// Equiv returns whether x and y denote the same real number. The
// triples need not match: trailing zeros and the sign of zero are
// ignored.
func (x Num) Equiv(y Num) bool {
	return x.Cmp(y) == 0
}

// Add returns the exact sum of x and y. The exponent of the result is
// the smaller of the two operand exponents. A zero result is +0 unless
// both operands are negative.
func (x Num) Add(y Num) Num {
	exp := x.exp
	if y.exp < exp {
		exp = y.exp
	}

	m := x.M()
	m.Lsh(m, uint(x.exp-exp))
	ym := y.M()
	ym.Lsh(ym, uint(y.exp-exp))
	m.Add(m, ym)

	neg := m.Sign() < 0
	if m.Sign() == 0 {
		neg = x.neg && y.neg
	}

	return Num{neg: neg, c: m.Abs(m), exp: exp}
}

// String renders the triple for diagnostics, e.g. "-0b101e-2".
func (x Num) String() string {
	s := "+"
	if x.neg {
		s = "-"
	}

	return fmt.Sprintf("%s0b%se%d", s, x.mag().Text(2), x.exp)
}
