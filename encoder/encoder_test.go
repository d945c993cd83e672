package encoder_test

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deaddrop-labs/go-proof-encoder/constants"
	"github.com/deaddrop-labs/go-proof-encoder/encoder"
	"github.com/deaddrop-labs/go-proof-encoder/types"
)

func be32(t *testing.T, v *big.Int) []byte {
	t.Helper()
	require.LessOrEqual(t, len(v.Bytes()), 32)
	return v.FillBytes(make([]byte, 32))
}

func TestFieldElementRoundTrip(t *testing.T) {
	values := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(1 << 40),
		new(big.Int).Sub(constants.FrModulus(), big.NewInt(1)),
	}
	for _, v := range values {
		out, err := encoder.FieldElement(types.BigLiteral(v))
		require.NoError(t, err, "value %s", v)
		require.Len(t, out, constants.FieldElementLen)
		require.Zero(t, new(big.Int).SetBytes(out).Cmp(v), "round trip of %s", v)
	}
}

func TestFieldElementOutOfRange(t *testing.T) {
	for _, v := range []*big.Int{
		constants.FrModulus(),
		new(big.Int).Add(constants.FrModulus(), big.NewInt(1)),
		new(big.Int).Lsh(big.NewInt(1), 260),
	} {
		_, err := encoder.FieldElement(types.BigLiteral(v))
		var rangeErr *types.RangeError
		require.ErrorAs(t, err, &rangeErr, "value %s", v)
		require.Zero(t, rangeErr.Modulus.Cmp(constants.FrModulus()))
		require.Zero(t, rangeErr.Value.Cmp(v))
	}
}

func TestG1PointInfinity(t *testing.T) {
	out, err := encoder.G1Point([]string{"0", "0", "0"}, "pi_a")
	require.NoError(t, err)
	require.Equal(t, make([]byte, constants.G1Len), out)

	// non-canonical infinity coordinates are ignored, not validated
	out, err = encoder.G1Point([]string{"123", "456", "0"}, "pi_a")
	require.NoError(t, err)
	require.Equal(t, make([]byte, constants.G1Len), out)
}

func TestG1PointAffine(t *testing.T) {
	x := big.NewInt(11)
	y := new(big.Int).Sub(constants.FqModulus(), big.NewInt(1))
	out, err := encoder.G1Point([]string{x.String(), y.String(), "1"}, "pi_a")
	require.NoError(t, err)
	require.Equal(t, append(be32(t, x), be32(t, y)...), out)
}

func TestG1PointNonAffine(t *testing.T) {
	for _, z := range []string{"2", "3", "0x2"} {
		_, err := encoder.G1Point([]string{"1", "2", z}, "pi_c")
		var nonAffine *types.NonAffinePointError
		require.ErrorAs(t, err, &nonAffine, "z = %s", z)
		require.Equal(t, "pi_c", nonAffine.Label)
	}
}

func TestG1PointCoordinateOutOfRange(t *testing.T) {
	tooBig := constants.FqModulus().String()
	_, err := encoder.G1Point([]string{tooBig, "2", "1"}, "pi_a")
	var rangeErr *types.RangeError
	require.ErrorAs(t, err, &rangeErr)
	require.Equal(t, "pi_a.x", rangeErr.Label)

	_, err = encoder.G1Point([]string{"2", tooBig, "1"}, "pi_a")
	require.ErrorAs(t, err, &rangeErr)
	require.Equal(t, "pi_a.y", rangeErr.Label)
}

func TestG1PointWrongArity(t *testing.T) {
	_, err := encoder.G1Point([]string{"1", "2"}, "pi_a")
	var formatErr *types.FormatError
	require.ErrorAs(t, err, &formatErr)
}

func TestG2PointInfinity(t *testing.T) {
	out, err := encoder.G2Point([][]string{{"9", "8"}, {"7", "6"}, {"0", "0"}}, "pi_b")
	require.NoError(t, err)
	require.Equal(t, make([]byte, constants.G2Len), out)
}

func TestG2PointComponentOrder(t *testing.T) {
	// distinct small values make any ordering mistake visible
	out, err := encoder.G2Point([][]string{{"2", "3"}, {"5", "7"}, {"1", "0"}}, "pi_b")
	require.NoError(t, err)

	var want bytes.Buffer
	for _, v := range []int64{3, 2, 7, 5} {
		want.Write(be32(t, big.NewInt(v)))
	}
	require.Equal(t, want.Bytes(), out)
}

func TestG2PointNonAffine(t *testing.T) {
	for _, z := range [][]string{{"2", "0"}, {"1", "1"}, {"0", "1"}} {
		_, err := encoder.G2Point([][]string{{"2", "3"}, {"5", "7"}, z}, "pi_b")
		var nonAffine *types.NonAffinePointError
		require.ErrorAs(t, err, &nonAffine, "z = %v", z)
	}
}

func TestG2PointMalformedExtensionField(t *testing.T) {
	var formatErr *types.FormatError

	_, err := encoder.G2Point([][]string{{"2"}, {"5", "7"}, {"1", "0"}}, "pi_b")
	require.ErrorAs(t, err, &formatErr)
	require.Equal(t, "pi_b.x", formatErr.Label)

	_, err = encoder.G2Point([][]string{{"2", "3"}, {"5", "7", "9"}, {"1", "0"}}, "pi_b")
	require.ErrorAs(t, err, &formatErr)
	require.Equal(t, "pi_b.y", formatErr.Label)

	_, err = encoder.G2Point([][]string{{"2", "3"}, {"5", "7"}, {"1"}}, "pi_b")
	require.ErrorAs(t, err, &formatErr)
	require.Equal(t, "pi_b.z", formatErr.Label)
}

func TestG2PointCoordinateOutOfRange(t *testing.T) {
	tooBig := constants.FqModulus().String()
	_, err := encoder.G2Point([][]string{{"2", tooBig}, {"5", "7"}, {"1", "0"}}, "pi_b")
	var rangeErr *types.RangeError
	require.ErrorAs(t, err, &rangeErr)
	require.Equal(t, "pi_b.x1", rangeErr.Label)
}

func TestProofComposition(t *testing.T) {
	p := &types.ProofData{
		A: []string{"11", "12", "1"},
		B: [][]string{{"2", "3"}, {"5", "7"}, {"1", "0"}},
		C: []string{"0", "0", "0"},
	}

	a, err := encoder.G1Point(p.A, "pi_a")
	require.NoError(t, err)
	b, err := encoder.G2Point(p.B, "pi_b")
	require.NoError(t, err)
	c, err := encoder.G1Point(p.C, "pi_c")
	require.NoError(t, err)

	out, err := encoder.ProofBytes(p)
	require.NoError(t, err)
	require.Len(t, out, constants.ProofLen)

	var want bytes.Buffer
	want.Write(a)
	want.Write(b)
	want.Write(c)
	require.Equal(t, want.Bytes(), out)
}

func TestProofLabelsFaults(t *testing.T) {
	p := &types.ProofData{
		A: []string{"11", "12", "1"},
		B: [][]string{{"2", "3"}, {"5", "7"}, {"1", "0"}},
		C: []string{"1", "2", "5"},
	}
	_, err := encoder.ProofBytes(p)
	var nonAffine *types.NonAffinePointError
	require.ErrorAs(t, err, &nonAffine)
	require.Equal(t, "pi_c", nonAffine.Label)
}

func TestProofMissing(t *testing.T) {
	_, err := encoder.ProofBytes(nil)
	var formatErr *types.FormatError
	require.ErrorAs(t, err, &formatErr)
}
