// Package compare checks an encoder output against an independently
// maintained reference encoder: content digests plus the index of the first
// diverging byte, so an encoding drift can be localized without re-running
// either side under tracing.
package compare

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

// Report describes how two encoder outputs relate.
type Report struct {
	OursDigest      [32]byte
	ReferenceDigest [32]byte
	OursLen         int
	ReferenceLen    int
	// Divergence is the index of the first differing byte, or -1 when the
	// outputs are identical.
	Divergence int
}

// Identical reports whether the two outputs were byte-identical.
func (r *Report) Identical() bool {
	return r.Divergence < 0
}

// DecodeHex accepts a bare or 0x-prefixed hex string.
func DecodeHex(s string) ([]byte, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		b, err := hexutil.Decode("0x" + s[2:])
		return b, errors.Wrap(err, "decode hex")
	}
	b, err := hex.DecodeString(s)
	return b, errors.Wrap(err, "decode hex")
}

// Digest returns the SHA-256 content hash of a hex-encoded output.
func Digest(hexOutput string) ([32]byte, error) {
	b, err := DecodeHex(hexOutput)
	if err != nil {
		return [32]byte{}, err
	}
	return sha256.Sum256(b), nil
}

// FirstDivergence returns the index of the first byte where a and b differ,
// or -1 when they are equal. A length mismatch diverges at the shorter
// length.
func FirstDivergence(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	if len(a) != len(b) {
		return n
	}
	return -1
}

// Compare decodes both outputs and builds a divergence report.
func Compare(ours, reference string) (*Report, error) {
	a, err := DecodeHex(ours)
	if err != nil {
		return nil, errors.Wrap(err, "our output")
	}
	b, err := DecodeHex(reference)
	if err != nil {
		return nil, errors.Wrap(err, "reference output")
	}
	return &Report{
		OursDigest:      sha256.Sum256(a),
		ReferenceDigest: sha256.Sum256(b),
		OursLen:         len(a),
		ReferenceLen:    len(b),
		Divergence:      FirstDivergence(a, b),
	}, nil
}
