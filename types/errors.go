package types

import (
	"fmt"
	"math/big"
)

// ParseError reports a numeric literal that could not be converted into a
// canonical integer: malformed numerals, non-integer numbers, and values of
// an unsupported runtime shape.
type ParseError struct {
	Literal any
	Reason  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse literal %v: %s", e.Literal, e.Reason)
}

// RangeError reports a value that is not strictly below its field modulus.
// Label localizes the fault ("field element", "pi_a.x", ...).
type RangeError struct {
	Label   string
	Value   *big.Int
	Modulus *big.Int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: value %s is not below modulus %s", e.Label, e.Value, e.Modulus)
}

// FormatError reports a structurally malformed input: wrong coordinate
// arity, a non-unit fraction denominator, or a non-array public-input list.
type FormatError struct {
	Label  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %s", e.Label, e.Reason)
}

// NonAffinePointError reports a projective point whose normalization
// coordinate marks neither infinity nor affine form. The encoder does not
// normalize points itself.
type NonAffinePointError struct {
	Label string
	Z     string
}

func (e *NonAffinePointError) Error() string {
	return fmt.Sprintf("%s: point is not in affine form (z = %s)", e.Label, e.Z)
}
