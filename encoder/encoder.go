// Package encoder serializes Groth16/BN254 proof artifacts into the exact
// byte layout the on-chain verifier expects. The verifier tolerates no
// encoding drift: field-element width, byte order, extension-field component
// order and the all-zero infinity convention must all match bit for bit.
package encoder

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/pkg/errors"

	"github.com/deaddrop-labs/go-proof-encoder/constants"
	"github.com/deaddrop-labs/go-proof-encoder/types"
)

// FieldElement range-checks a literal against the scalar field modulus and
// serializes it as a 32-byte big-endian, left-zero-padded buffer.
func FieldElement(lit types.Literal) ([]byte, error) {
	n, err := ParseLiteral(lit)
	if err != nil {
		return nil, err
	}
	if mod := constants.FrModulus(); n.Cmp(mod) >= 0 {
		return nil, &types.RangeError{Label: "field element", Value: n, Modulus: mod}
	}
	return beBytes(n, constants.FieldElementLen)
}

// G1Point serializes a projective G1 coordinate triple [x, y, z] to 64
// bytes. z = 0 marks the point at infinity and encodes as all zeroes with x
// and y ignored; z must otherwise be 1, since this encoder never divides
// through by z.
func G1Point(point []string, label string) ([]byte, error) {
	if len(point) != 3 {
		return nil, &types.FormatError{
			Label:  label,
			Reason: fmt.Sprintf("expected 3 projective coordinates, got %d", len(point)),
		}
	}
	z, err := ParseLiteral(types.StringLiteral(point[2]))
	if err != nil {
		return nil, errors.Wrap(err, label)
	}
	if z.Sign() == 0 {
		return make([]byte, constants.G1Len), nil
	}
	if z.Cmp(one) != 0 {
		return nil, &types.NonAffinePointError{Label: label, Z: point[2]}
	}
	x, err := coordinate(point[0], label+".x")
	if err != nil {
		return nil, err
	}
	y, err := coordinate(point[1], label+".y")
	if err != nil {
		return nil, err
	}
	return concatBE(x, y)
}

// G2Point serializes a projective G2 coordinate representation
// [[x0,x1], [y0,y1], [z0,z1]] to 128 bytes. The verifier lays extension
// field elements out high component first, so the output order is
// x1 || x0 || y1 || y0.
func G2Point(point [][]string, label string) ([]byte, error) {
	if len(point) != 3 {
		return nil, &types.FormatError{
			Label:  label,
			Reason: fmt.Sprintf("expected 3 extension-field coordinates, got %d", len(point)),
		}
	}
	z0, z1, err := extensionPair(point[2], label+".z")
	if err != nil {
		return nil, err
	}
	if z0.Sign() == 0 && z1.Sign() == 0 {
		return make([]byte, constants.G2Len), nil
	}
	if z0.Cmp(one) != 0 || z1.Sign() != 0 {
		return nil, &types.NonAffinePointError{
			Label: label,
			Z:     fmt.Sprintf("(%s, %s)", point[2][0], point[2][1]),
		}
	}
	if len(point[0]) != 2 {
		return nil, extensionArityError(label+".x", len(point[0]))
	}
	if len(point[1]) != 2 {
		return nil, extensionArityError(label+".y", len(point[1]))
	}
	x0, err := coordinate(point[0][0], label+".x0")
	if err != nil {
		return nil, err
	}
	x1, err := coordinate(point[0][1], label+".x1")
	if err != nil {
		return nil, err
	}
	y0, err := coordinate(point[1][0], label+".y0")
	if err != nil {
		return nil, err
	}
	y1, err := coordinate(point[1][1], label+".y1")
	if err != nil {
		return nil, err
	}
	return concatBE(x1, x0, y1, y0)
}

// ProofBytes concatenates the three proof points as G1(A) || G2(B) || G1(C),
// 256 bytes in total. Sub-encode failures carry the pi_a/pi_b/pi_c label of
// the offending point.
func ProofBytes(p *types.ProofData) ([]byte, error) {
	if p == nil {
		return nil, &types.FormatError{Label: "proof", Reason: "missing proof data"}
	}
	a, err := G1Point(p.A, "pi_a")
	if err != nil {
		return nil, err
	}
	b, err := G2Point(p.B, "pi_b")
	if err != nil {
		return nil, err
	}
	c, err := G1Point(p.C, "pi_c")
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, constants.ProofLen)
	out = append(out, a...)
	out = append(out, b...)
	return append(out, c...), nil
}

// Proof returns the hex form of ProofBytes.
func Proof(p *types.ProofData) (string, error) {
	b, err := ProofBytes(p)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func coordinate(s, label string) (*big.Int, error) {
	n, err := ParseLiteral(types.StringLiteral(s))
	if err != nil {
		return nil, errors.Wrap(err, label)
	}
	if mod := constants.FqModulus(); n.Cmp(mod) >= 0 {
		return nil, &types.RangeError{Label: label, Value: n, Modulus: mod}
	}
	return n, nil
}

func extensionPair(pair []string, label string) (*big.Int, *big.Int, error) {
	if len(pair) != 2 {
		return nil, nil, extensionArityError(label, len(pair))
	}
	c0, err := ParseLiteral(types.StringLiteral(pair[0]))
	if err != nil {
		return nil, nil, errors.Wrap(err, label)
	}
	c1, err := ParseLiteral(types.StringLiteral(pair[1]))
	if err != nil {
		return nil, nil, errors.Wrap(err, label)
	}
	return c0, c1, nil
}

func extensionArityError(label string, got int) error {
	return &types.FormatError{
		Label:  label,
		Reason: fmt.Sprintf("extension field element must have 2 components, got %d", got),
	}
}

// beBytes writes n as a fixed-width big-endian buffer. A value wider than
// the target indicates a missed range check upstream and fails rather than
// truncating.
func beBytes(n *big.Int, width int) ([]byte, error) {
	if len(n.Bytes()) > width {
		return nil, errors.Errorf("value %#x does not fit in %d bytes", n, width)
	}
	return n.FillBytes(make([]byte, width)), nil
}

func concatBE(values ...*big.Int) ([]byte, error) {
	out := make([]byte, 0, len(values)*constants.FieldElementLen)
	for _, v := range values {
		b, err := beBytes(v, constants.FieldElementLen)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}
