// Package journal decodes the prover host's receipt journal: the public
// outputs committed by the guest, packed as little-endian u32 fields
// followed by the two player commitments.
package journal

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"

	"github.com/pkg/errors"

	"github.com/deaddrop-labs/go-proof-encoder/types"
)

// Len is the exact wire length of a journal.
const Len = 84

// Journal holds the public outputs of one ping proof.
type Journal struct {
	SessionID   uint32
	Turn        uint32
	Distance    uint32
	X           uint32
	Y           uint32
	CommitmentA [32]byte
	CommitmentB [32]byte
}

// Decode reads an 84-byte journal. Inputs of any other length are rejected
// outright rather than partially decoded.
func Decode(b []byte) (*Journal, error) {
	if len(b) != Len {
		return nil, errors.Errorf("journal length mismatch: got %d bytes, want %d", len(b), Len)
	}
	j := &Journal{
		SessionID: binary.LittleEndian.Uint32(b[0:4]),
		Turn:      binary.LittleEndian.Uint32(b[4:8]),
		Distance:  binary.LittleEndian.Uint32(b[8:12]),
		X:         binary.LittleEndian.Uint32(b[12:16]),
		Y:         binary.LittleEndian.Uint32(b[16:20]),
	}
	copy(j.CommitmentA[:], b[20:52])
	copy(j.CommitmentB[:], b[52:84])
	return j, nil
}

// Encode packs the journal back into its 84-byte wire form.
func (j *Journal) Encode() []byte {
	b := make([]byte, Len)
	binary.LittleEndian.PutUint32(b[0:4], j.SessionID)
	binary.LittleEndian.PutUint32(b[4:8], j.Turn)
	binary.LittleEndian.PutUint32(b[8:12], j.Distance)
	binary.LittleEndian.PutUint32(b[12:16], j.X)
	binary.LittleEndian.PutUint32(b[16:20], j.Y)
	copy(b[20:52], j.CommitmentA[:])
	copy(b[52:84], j.CommitmentB[:])
	return b
}

// Digest returns the SHA-256 of the wire form, as attested by the prover
// host alongside the seal.
func (j *Journal) Digest() [32]byte {
	return sha256.Sum256(j.Encode())
}

// PublicInputs derives the verifier's public-input literals from the
// journal, in the circuit's declared order:
// [session_id, turn, x, y, drop_commitment, distance]. The commitment is
// passed as a hex literal; if it exceeds the scalar field modulus, encoding
// it downstream fails with a range error.
func (j *Journal) PublicInputs(dropCommitment [32]byte) []types.Literal {
	return []types.Literal{
		types.IntLiteral(int64(j.SessionID)),
		types.IntLiteral(int64(j.Turn)),
		types.IntLiteral(int64(j.X)),
		types.IntLiteral(int64(j.Y)),
		types.HexString("0x" + hex.EncodeToString(dropCommitment[:])),
		types.IntLiteral(int64(j.Distance)),
	}
}
