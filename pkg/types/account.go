package types

import (
	"github.com/dfuse-io/solana-go"

	"github.com/joshuapare/acctkit/pda"
)

// AccountInfo is a borrowed handle to one storage account. Data aliases the
// runtime's storage: writes through it are writes to the account.
type AccountInfo struct {
	Key        solana.PublicKey
	Owner      solana.PublicKey
	Lamports   uint64
	Data       []byte
	IsSigner   bool
	IsWritable bool
}

// Meta returns the instruction account meta for a.
func (a *AccountInfo) Meta() *solana.AccountMeta {
	return &solana.AccountMeta{PublicKey: a.Key, IsSigner: a.IsSigner, IsWritable: a.IsWritable}
}

// Rent answers rent-exemption queries.
type Rent interface {
	// MinimumBalance returns the lamports an account of size data bytes must
	// hold to be exempt from rent.
	MinimumBalance(size int) uint64
}

// Invoker executes an instruction on behalf of the calling program. Signers
// carry the seed lists that authorise program-derived addresses.
type Invoker interface {
	InvokeSigned(ix solana.TransactionInstruction, accounts []*AccountInfo, signers ...pda.Signer) error
}
