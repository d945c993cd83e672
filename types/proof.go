package types

import (
	rstypes "github.com/iden3/go-rapidsnark/types"
)

// ProofData describes the three components of a Groth16 proof as emitted by
// the proving toolkit: projective coordinate strings for each point.
type ProofData struct {
	A        []string   `json:"pi_a"`
	B        [][]string `json:"pi_b"`
	C        []string   `json:"pi_c"`
	Protocol string     `json:"protocol,omitempty"`
}

// FullProof bundles a proof with its ordered public signals. Signal order is
// semantically significant: it must match the verifier circuit's public
// input declarations.
type FullProof struct {
	Proof      *ProofData
	PubSignals []Literal
}

// FromRapidsnark converts a rapidsnark proof structure into the encoder's
// input shape.
func FromRapidsnark(p *rstypes.ProofData) *ProofData {
	if p == nil {
		return nil
	}
	return &ProofData{
		A:        p.A,
		B:        p.B,
		C:        p.C,
		Protocol: p.Protocol,
	}
}

// FromRapidsnarkZK converts a full rapidsnark proof, classifying each public
// signal string as a literal.
func FromRapidsnarkZK(zk *rstypes.ZKProof) *FullProof {
	if zk == nil {
		return nil
	}
	signals := make([]Literal, len(zk.PubSignals))
	for i, s := range zk.PubSignals {
		signals[i] = StringLiteral(s)
	}
	return &FullProof{
		Proof:      FromRapidsnark(zk.Proof),
		PubSignals: signals,
	}
}
