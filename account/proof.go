package account

import (
	"strconv"

	"github.com/joshuapare/acctkit/internal/format"
)

const (
	proofClaimableOffset = 0x00

	// ProofSize is the byte size of the Proof record fields.
	ProofSize = 0x08
)

// Proof is a zero-cost read-only view over a proof account, which tracks the
// rewards a miner may claim.
type Proof struct {
	buf []byte
}

func (Proof) Kind() Kind { return KindProof }

func (Proof) Size() int { return ProofSize }

func (p Proof) Bytes() []byte { return p.buf }

func (p *Proof) bind(body []byte) { p.buf = body }

// ClaimableRewards returns the rewards the proof's authority may claim.
func (p Proof) ClaimableRewards() uint64 {
	return format.ReadU64(p.buf, proofClaimableOffset)
}

// Fields lists the decoded fields for display.
func (p Proof) Fields() []Field {
	return []Field{
		{Name: "claimable_rewards", Value: strconv.FormatUint(p.ClaimableRewards(), 10)},
	}
}

// ProofMut is a mutable view over a proof account.
type ProofMut struct {
	Proof
}

func (ProofMut) mutable() {}

func (p ProofMut) SetClaimableRewards(v uint64) {
	format.PutU64(p.buf, proofClaimableOffset, v)
}
