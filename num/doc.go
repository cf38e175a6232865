// Package num provides exact fixed-point binary numbers.
//
// The equation for a number is:
//
//  number = (-1)^s * c * 2^exp
//
// Where s is a sign bit, c is an unbounded non-negative magnitude, and
// exp is the absolute position of the least significant digit relative
// to the binary point. For example:
//
//  +1.25 = 0b101 * 2^-2
//
// A negative exp means fractional digits are present. The magnitude is
// not required to be minimal: trailing zero digits within the stored
// region of significance are permitted, so distinct (s, c, exp) triples
// may denote the same real number. Equiv compares the denoted numbers
// rather than the triples.
//
// Region of Significance
//
// The digits of c occupy the contiguous span of absolute positions
// [exp, exp+p), where p is the bit length of c. No digit outside this
// span is ever non-zero. Operations that widen the span (ShiftRight,
// Normalize) pad it downward with zeros; they never change the denoted
// number. Operations that would discard digits signal an error instead
// of truncating. Truncation is the job of the round package.
//
// Zero
//
// A magnitude of zero denotes the number zero regardless of exp. The
// sign and exponent of a zero value still carry information: the sign
// distinguishes +0 from -0, and the exponent records a precision floor
// for later operations. Equiv treats +0 and -0 as the same number. The
// normalized exponent E is undefined for zero and signals
// ErrEmptyRegion.
//
// Values are immutable. Every operation returns a new value and no
// operation mutates its receiver or arguments, so values may be shared
// freely across goroutines.
package num
