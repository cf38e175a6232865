// Package overflow imposes fixed-width ranges on exact integers.
//
// The core number type is unbounded; mapping a rounded result into a
// machine representation is a separate, pluggable concern. A Schema
// describes the representation's range and a Policy decides what
// happens to values outside it.
package overflow

import (
	"math/big"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"

	"github.com/calebcase/fixnum/num"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("overflow")

var (
	ErrInvalidSchema = Error.New("invalid schema")
	ErrInvalidPolicy = Error.New("invalid policy")
	ErrNotInteger    = Error.New("not an integer")
	ErrRange         = Error.New("out of range")
)

var one = big.NewInt(1)

// Schema fixes the encoded width of an integer value.
type Schema struct {
	Bits   uint
	Signed bool
}

// Min returns the smallest representable value.
func (s Schema) Min() num.Num {
	if !s.Signed {
		return num.New(false, nil, 0)
	}

	return num.New(true, new(big.Int).Lsh(one, s.Bits-1), 0)
}

// Max returns the largest representable value.
func (s Schema) Max() num.Num {
	b := s.Bits
	if s.Signed {
		b--
	}

	m := new(big.Int).Lsh(one, b)
	m.Sub(m, one)

	return num.New(false, m, 0)
}

// Policy decides what happens to a value outside the schema's range.
type Policy uint8

// Overflow Policies
const (
	Reject   Policy = iota // signal ErrRange
	Saturate               // pin to the nearest bound
	Wrap                   // reduce modulo 2^Bits

	policyMax
)

// Fit maps x into the range of the schema. In-range values pass
// through unchanged. Inputs with fractional digits signal
// ErrNotInteger: range handling is layered on top of rounding, not a
// substitute for it.
func Fit(x num.Num, s Schema, p Policy) (num.Num, error) {
	if s.Bits == 0 {
		return num.Num{}, oops.Trace(ErrInvalidSchema)
	}
	if p >= policyMax {
		return num.Num{}, oops.Trace(ErrInvalidPolicy)
	}
	if !x.IsInteger() {
		return num.Num{}, oops.Trace(ErrNotInteger)
	}

	min, max := s.Min(), s.Max()
	if x.Cmp(min) >= 0 && x.Cmp(max) <= 0 {
		return x, nil
	}

	switch p {
	case Saturate:
		if x.Cmp(min) < 0 {
			return min, nil
		}
		return max, nil
	case Wrap:
		mod := new(big.Int).Lsh(one, s.Bits)
		w := whole(x)
		w.Mod(w, mod)
		if s.Signed && w.BitLen() == int(s.Bits) {
			w.Sub(w, mod)
		}

		neg := w.Sign() < 0

		return num.New(neg, w.Abs(w), 0), nil
	}

	return num.Num{}, oops.Trace(ErrRange)
}

// whole returns the denoted integer. The caller must have checked
// IsInteger: a negative exponent only shifts away zero digits here.
func whole(x num.Num) *big.Int {
	m := x.M()
	if e := x.Exp(); e >= 0 {
		return m.Lsh(m, uint(e))
	} else {
		return m.Rsh(m, uint(-e))
	}
}
