package types

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
)

// Literal is one accepted external representation of a numeric value. The
// set of variants is closed: raw decoded JSON is mapped onto it once, by
// LiteralFromJSON, so downstream code never inspects runtime shapes.
type Literal interface {
	literal()
}

// Integer is an arbitrary-precision integer literal.
type Integer struct {
	Value *big.Int
}

// DecimalString is a base-10 numeral string.
type DecimalString string

// HexString is a base-16 numeral string carrying a 0x prefix.
type HexString string

// Fraction is a (numerator, denominator) pair. Only unit denominators can be
// represented as a single field element.
type Fraction struct {
	Numerator   Literal
	Denominator Literal
}

func (Integer) literal()       {}
func (DecimalString) literal() {}
func (HexString) literal()     {}
func (Fraction) literal()      {}

// StringLiteral classifies a numeral string by its prefix convention.
func StringLiteral(s string) Literal {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return HexString(s)
	}
	return DecimalString(s)
}

// IntLiteral wraps a machine integer.
func IntLiteral(v int64) Literal {
	return Integer{Value: big.NewInt(v)}
}

// BigLiteral wraps an arbitrary-precision integer.
func BigLiteral(v *big.Int) Literal {
	return Integer{Value: v}
}

// LiteralFromJSON maps a value produced by JSON decoding onto a Literal.
// Strings are classified by prefix, numbers are accepted only when they
// denote an exact integer, and 2- or 3-element arrays are read as
// (numerator, denominator[, radix]) fraction pairs with the radix ignored.
// Anything else fails with a ParseError naming the offending runtime type.
func LiteralFromJSON(v any) (Literal, error) {
	switch t := v.(type) {
	case string:
		return StringLiteral(t), nil
	case json.Number:
		return numberLiteral(t)
	case float64:
		n, acc := big.NewFloat(t).Int(nil)
		if acc != big.Exact {
			return nil, &ParseError{Literal: t, Reason: "number has a fractional component"}
		}
		return Integer{Value: n}, nil
	case int:
		return Integer{Value: big.NewInt(int64(t))}, nil
	case int64:
		return Integer{Value: big.NewInt(t)}, nil
	case uint64:
		return Integer{Value: new(big.Int).SetUint64(t)}, nil
	case *big.Int:
		return Integer{Value: t}, nil
	case []any:
		return fractionLiteral(t)
	case []string:
		elems := make([]any, len(t))
		for i := range t {
			elems[i] = t[i]
		}
		return fractionLiteral(elems)
	case nil:
		return nil, &ParseError{Literal: nil, Reason: "null literal"}
	default:
		return nil, &ParseError{Literal: v, Reason: fmt.Sprintf("unsupported literal type %T", v)}
	}
}

func numberLiteral(n json.Number) (Literal, error) {
	if _, ok := new(big.Int).SetString(n.String(), 10); ok {
		return DecimalString(n.String()), nil
	}
	f, _, err := big.ParseFloat(n.String(), 10, 256, big.ToNearestEven)
	if err != nil {
		return nil, &ParseError{Literal: n.String(), Reason: "malformed numeric literal"}
	}
	i, acc := f.Int(nil)
	if acc != big.Exact {
		return nil, &ParseError{Literal: n.String(), Reason: "number has a fractional component"}
	}
	return Integer{Value: i}, nil
}

// fractionLiteral reads a decoded JSON array as a fraction pair. A trailing
// third element (a radix tag) is ignored. Arrays of any other arity are not
// a recognized literal shape.
func fractionLiteral(elems []any) (Literal, error) {
	if len(elems) != 2 && len(elems) != 3 {
		return nil, &ParseError{
			Literal: elems,
			Reason:  fmt.Sprintf("array of %d elements is not a fraction pair", len(elems)),
		}
	}
	num, err := LiteralFromJSON(elems[0])
	if err != nil {
		return nil, err
	}
	den, err := LiteralFromJSON(elems[1])
	if err != nil {
		return nil, err
	}
	return Fraction{Numerator: num, Denominator: den}, nil
}
