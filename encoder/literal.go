package encoder

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/deaddrop-labs/go-proof-encoder/types"
)

var one = big.NewInt(1)

// ParseLiteral reduces a literal to the non-negative integer it denotes.
// Fractions must carry a unit denominator; the result is always a fresh
// value the caller may use freely.
func ParseLiteral(lit types.Literal) (*big.Int, error) {
	switch v := lit.(type) {
	case types.Integer:
		if v.Value == nil {
			return nil, &types.ParseError{Literal: v, Reason: "nil integer literal"}
		}
		return nonNegative(new(big.Int).Set(v.Value))
	case types.DecimalString:
		return parseNumeral(string(v), 10)
	case types.HexString:
		s := strings.TrimPrefix(strings.TrimPrefix(string(v), "0x"), "0X")
		return parseNumeral(s, 16)
	case types.Fraction:
		den, err := ParseLiteral(v.Denominator)
		if err != nil {
			return nil, err
		}
		if den.Cmp(one) != 0 {
			return nil, &types.FormatError{
				Label:  "fraction",
				Reason: fmt.Sprintf("denominator %s is not 1, cannot represent as a field element", den),
			}
		}
		return ParseLiteral(v.Numerator)
	case nil:
		return nil, &types.ParseError{Literal: nil, Reason: "nil literal"}
	default:
		return nil, &types.ParseError{Literal: lit, Reason: fmt.Sprintf("unsupported literal type %T", lit)}
	}
}

func parseNumeral(s string, base int) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, &types.ParseError{Literal: s, Reason: fmt.Sprintf("malformed base-%d numeral", base)}
	}
	return nonNegative(n)
}

func nonNegative(n *big.Int) (*big.Int, error) {
	if n.Sign() < 0 {
		return nil, &types.ParseError{Literal: n, Reason: "negative literal"}
	}
	return n, nil
}
