// Package round maps exact fixed-point numbers onto the nearest value
// representable at a chosen digit position.
//
// A Context carries the target position and the tie-breaking mode. It
// is constructed once per policy and reused: rounding itself is total
// and never fails, all configuration errors are reported by the
// constructors.
//
// A number is representable under a context when all of its significant
// digits sit at or above the target position. Rounding such a number
// returns an equivalent value re-expressed at the target exponent; any
// other number is bracketed by its two representable neighbors and the
// mode selects one of them.
package round
