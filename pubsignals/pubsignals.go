// Package pubsignals encodes the ordered public-input vector for the
// on-chain verifier: a 4-byte big-endian element count followed by one
// 32-byte field element per signal, in circuit declaration order.
package pubsignals

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/deaddrop-labs/go-proof-encoder/constants"
	"github.com/deaddrop-labs/go-proof-encoder/encoder"
	"github.com/deaddrop-labs/go-proof-encoder/types"
)

// EncodeBytes serializes the signal vector. The first failing element aborts
// the whole call, its index wrapped into the error.
func EncodeBytes(signals []types.Literal) ([]byte, error) {
	out := make([]byte, constants.CountPrefixLen, constants.CountPrefixLen+len(signals)*constants.FieldElementLen)
	binary.BigEndian.PutUint32(out, uint32(len(signals)))
	for i, lit := range signals {
		fe, err := encoder.FieldElement(lit)
		if err != nil {
			return nil, errors.Wrapf(err, "public input %d", i)
		}
		out = append(out, fe...)
	}
	return out, nil
}

// Encode returns the hex form of EncodeBytes.
func Encode(signals []types.Literal) (string, error) {
	b, err := EncodeBytes(signals)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Unmarshal reads a JSON public-signal list (snarkjs public.json) into
// literals. Non-array documents fail with a FormatError; element shapes are
// classified by the literal boundary in types.
func Unmarshal(data []byte) ([]types.Literal, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "parse public signals JSON")
	}
	elems, ok := raw.([]any)
	if !ok {
		return nil, &types.FormatError{Label: "public inputs", Reason: "not an array"}
	}
	signals := make([]types.Literal, len(elems))
	for i, e := range elems {
		lit, err := types.LiteralFromJSON(e)
		if err != nil {
			return nil, errors.Wrapf(err, "public input %d", i)
		}
		signals[i] = lit
	}
	return signals, nil
}
