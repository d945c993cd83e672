// Package loaders reads prover artifacts (a proof and its public signals)
// from different sources and hands them to the encoder as one bundle.
package loaders

import (
	"embed"
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/deaddrop-labs/go-proof-encoder/pubsignals"
	"github.com/deaddrop-labs/go-proof-encoder/types"
)

//go:embed fixtures/proof.json fixtures/public.json
var fixtures embed.FS

// ArtifactLoader loads a proof together with its ordered public signals.
type ArtifactLoader interface {
	Load() (*types.FullProof, error)
}

// FSLoader reads toolkit-emitted proof.json / public.json files from the
// filesystem.
type FSLoader struct {
	ProofPath  string
	PublicPath string
}

// Load reads and parses both artifact files.
func (l FSLoader) Load() (*types.FullProof, error) {
	proofData, err := os.ReadFile(l.ProofPath)
	if err != nil {
		return nil, errors.Wrap(err, "read proof file")
	}
	pubData, err := os.ReadFile(l.PublicPath)
	if err != nil {
		return nil, errors.Wrap(err, "read public signals file")
	}
	return parseArtifacts(proofData, pubData)
}

// EmbeddedLoader serves the checked-in reference fixture. It backs the
// golden cross-implementation test and the CLI self-test.
type EmbeddedLoader struct{}

// Load parses the embedded fixture pair.
func (EmbeddedLoader) Load() (*types.FullProof, error) {
	proofData, err := fixtures.ReadFile("fixtures/proof.json")
	if err != nil {
		return nil, errors.Wrap(err, "read embedded proof fixture")
	}
	pubData, err := fixtures.ReadFile("fixtures/public.json")
	if err != nil {
		return nil, errors.Wrap(err, "read embedded public fixture")
	}
	return parseArtifacts(proofData, pubData)
}

func parseArtifacts(proofData, pubData []byte) (*types.FullProof, error) {
	var p types.ProofData
	if err := json.Unmarshal(proofData, &p); err != nil {
		return nil, errors.Wrap(err, "parse proof JSON")
	}
	signals, err := pubsignals.Unmarshal(pubData)
	if err != nil {
		return nil, err
	}
	return &types.FullProof{Proof: &p, PubSignals: signals}, nil
}
