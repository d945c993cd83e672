// Package constants holds the BN254 field moduli and the fixed byte widths
// of the verifier wire format.
package constants

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

const (
	// FieldElementLen is the serialized width of one field element.
	FieldElementLen = 32
	// G1Len is the serialized width of an affine G1 point (x || y).
	G1Len = 2 * FieldElementLen
	// G2Len is the serialized width of an affine G2 point (four Fq components).
	G2Len = 4 * FieldElementLen
	// ProofLen is the serialized width of a full Groth16 proof (A || B || C).
	ProofLen = 2*G1Len + G2Len
	// CountPrefixLen is the width of the public-input count prefix.
	CountPrefixLen = 4
)

// FrModulus returns the BN254 scalar field modulus. Public inputs and scalars
// must be strictly below it.
func FrModulus() *big.Int {
	return fr.Modulus()
}

// FqModulus returns the BN254 base field modulus. Curve point coordinates
// must be strictly below it.
func FqModulus() *big.Int {
	return fp.Modulus()
}
