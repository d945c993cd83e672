package pubsignals_test

import (
	"encoding/hex"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deaddrop-labs/go-proof-encoder/constants"
	"github.com/deaddrop-labs/go-proof-encoder/pubsignals"
	"github.com/deaddrop-labs/go-proof-encoder/types"
)

func TestEncodeEmpty(t *testing.T) {
	out, err := pubsignals.Encode(nil)
	require.NoError(t, err)
	require.Equal(t, "00000000", out)

	out, err = pubsignals.Encode([]types.Literal{})
	require.NoError(t, err)
	require.Equal(t, "00000000", out)
}

func TestEncodeTwoElements(t *testing.T) {
	out, err := pubsignals.EncodeBytes([]types.Literal{
		types.DecimalString("5"),
		types.DecimalString("10"),
	})
	require.NoError(t, err)
	require.Len(t, out, constants.CountPrefixLen+2*constants.FieldElementLen)

	require.Equal(t, []byte{0, 0, 0, 2}, out[:4])
	require.Equal(t, big.NewInt(5).FillBytes(make([]byte, 32)), out[4:36])
	require.Equal(t, big.NewInt(10).FillBytes(make([]byte, 32)), out[36:68])
}

func TestEncodeMixedLiterals(t *testing.T) {
	frac, err := types.LiteralFromJSON([]string{"9", "1", "16"})
	require.NoError(t, err)

	out, err := pubsignals.EncodeBytes([]types.Literal{
		types.IntLiteral(7),
		types.HexString("0x2a"),
		frac,
	})
	require.NoError(t, err)

	want := "00000003" +
		strings.Repeat("0", 63) + "7" +
		strings.Repeat("0", 62) + "2a" +
		strings.Repeat("0", 63) + "9"
	require.Equal(t, want, hex.EncodeToString(out))
}

func TestEncodeFailsWithIndex(t *testing.T) {
	_, err := pubsignals.Encode([]types.Literal{
		types.DecimalString("5"),
		types.DecimalString("bogus"),
	})
	var parseErr *types.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Contains(t, err.Error(), "public input 1")
}

func TestEncodeRangeFailure(t *testing.T) {
	_, err := pubsignals.Encode([]types.Literal{
		types.BigLiteral(constants.FrModulus()),
	})
	var rangeErr *types.RangeError
	require.ErrorAs(t, err, &rangeErr)
	require.Contains(t, err.Error(), "public input 0")
}

func TestUnmarshal(t *testing.T) {
	signals, err := pubsignals.Unmarshal([]byte(`[7, "33", "0x2a", ["9", "1", "16"]]`))
	require.NoError(t, err)
	require.Len(t, signals, 4)

	out, err := pubsignals.EncodeBytes(signals)
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 0, 4}, out[:4])
}

func TestUnmarshalNotAnArray(t *testing.T) {
	var formatErr *types.FormatError
	for _, doc := range []string{`{"a": 1}`, `"5"`, `42`} {
		_, err := pubsignals.Unmarshal([]byte(doc))
		require.ErrorAs(t, err, &formatErr, "document %s", doc)
	}
}

func TestUnmarshalBadElement(t *testing.T) {
	_, err := pubsignals.Unmarshal([]byte(`["5", true]`))
	var parseErr *types.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Contains(t, err.Error(), "public input 1")
}
