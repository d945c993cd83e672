// Package proofencoder turns Groth16/BN254 proof artifacts into the two hex
// byte strings the on-chain verifier consumes: a 256-byte proof encoding and
// a length-prefixed public-input encoding. Every operation is a pure
// transform; concurrent calls on independent inputs need no coordination.
package proofencoder

import (
	"github.com/deaddrop-labs/go-proof-encoder/encoder"
	"github.com/deaddrop-labs/go-proof-encoder/pubsignals"
	"github.com/deaddrop-labs/go-proof-encoder/types"
)

// Encode produces the proof and public-input encodings for a full proof.
// Failure of either sub-encoding fails the whole call; no partial output is
// returned.
func Encode(fp *types.FullProof) (proofHex, publicHex string, err error) {
	if fp == nil {
		return "", "", &types.FormatError{Label: "proof", Reason: "missing proof artifacts"}
	}
	proofHex, err = encoder.Proof(fp.Proof)
	if err != nil {
		return "", "", err
	}
	publicHex, err = pubsignals.Encode(fp.PubSignals)
	if err != nil {
		return "", "", err
	}
	return proofHex, publicHex, nil
}
