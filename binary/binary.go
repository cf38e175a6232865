// Package binary serializes exact fixed-point numbers.
//
// Magnitude and exponent are each encoded big-endian with a trailing
// sign bit (aka zigzag). The exponent section is length-prefixed so the
// layout is self-delimiting:
//
//  | exponent size (1 byte) | exponent | magnitude |
//
// The encoding round-trips the full triple, including the sign and
// exponent of zero values.
package binary

import (
	"math/big"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"

	"github.com/calebcase/fixnum/num"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("binary")

var ErrShortData = Error.New("short data")

// Marshal encodes x.
func Marshal(x num.Num) (data []byte, err error) {
	defer Error.WrapP(&err)

	c := x.Coeff()
	c.Lsh(c, 1)
	if x.Negative() {
		c.SetBit(c, 0, 1)
	}

	mb := c.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(mb) == 0 {
		mb = []byte{0}
	}

	e := big.NewInt(int64(x.Exp()))
	e.Lsh(e, 1)
	if e.Sign() < 0 {
		e.Abs(e)
		e.SetBit(e, 0, 1)
	}

	eb := e.Bytes()
	if len(eb) == 0 {
		eb = []byte{0}
	}

	data = make([]byte, 0, 1+len(eb)+len(mb))
	data = append(data, byte(len(eb)))
	data = append(data, eb...)
	data = append(data, mb...)

	return data, nil
}

// Unmarshal decodes data produced by Marshal.
func Unmarshal(data []byte) (x num.Num, err error) {
	defer Error.WrapP(&err)

	if len(data) < 1 {
		return num.Num{}, oops.Trace(ErrShortData)
	}

	es := int(data[0])
	if es == 0 || len(data) < 1+es+1 {
		return num.Num{}, oops.Trace(ErrShortData)
	}

	e := new(big.Int).SetBytes(data[1 : 1+es])
	eneg := e.Bit(0) == 1
	e.Rsh(e, 1)
	if !e.IsInt64() {
		return num.Num{}, Error.New("exponent too large")
	}
	exp := int(e.Int64())
	if eneg {
		exp = -exp
	}

	c := new(big.Int).SetBytes(data[1+es:])
	neg := c.Bit(0) == 1
	c.Rsh(c, 1)

	return num.New(neg, c, exp), nil
}
