package alloc

import (
	"fmt"

	bin "github.com/dfuse-io/binary"
	"github.com/dfuse-io/solana-go"
	"github.com/dfuse-io/solana-go/programs/system"

	"github.com/joshuapare/acctkit/account"
	"github.com/joshuapare/acctkit/pda"
	"github.com/joshuapare/acctkit/pkg/types"
)

// createAccountTypeID is the system-program instruction index of create account.
const createAccountTypeID = 0

// Allocator creates accounts through a runtime's signed-invoke primitive.
type Allocator struct {
	inv    types.Invoker
	rent   types.Rent
	system *types.AccountInfo
}

// New returns an Allocator that invokes the system program account system
// through inv and funds new accounts according to rent.
func New(inv types.Invoker, rent types.Rent, system *types.AccountInfo) *Allocator {
	return &Allocator{inv: inv, rent: rent, system: system}
}

// Allocate creates an account of exactly size bytes at target, owned by
// owner and funded by payer with the rent-exempt minimum. seeds must derive
// target under the calling program, bump included.
//
// On success the runtime has updated target (data, owner, lamports) and
// payer (lamports) in place.
func (a *Allocator) Allocate(target *types.AccountInfo, owner solana.PublicKey, size int, seeds [][]byte, payer *types.AccountInfo) error {
	if target == nil || payer == nil || a.system == nil {
		return ErrNilAccount
	}
	if size < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	lamports := a.rent.MinimumBalance(size)
	ix := CreateAccountInstruction(payer.Key, target.Key, owner, lamports, uint64(size))

	accounts := []*types.AccountInfo{payer, target, a.system}
	if err := a.inv.InvokeSigned(ix, accounts, pda.Signer{Seeds: seeds}); err != nil {
		return fmt.Errorf("alloc: create %s: %w", target.Key, err)
	}
	return nil
}

// CreateAccountInstruction builds the system-program instruction that moves
// lamports from payer into a new account of space bytes owned by owner.
func CreateAccountInstruction(payer, target, owner solana.PublicKey, lamports, space uint64) *system.Instruction {
	return &system.Instruction{
		BaseVariant: bin.BaseVariant{
			TypeID: createAccountTypeID,
			Impl: &system.CreateAccount{
				Lamports: bin.Uint64(lamports),
				Space:    bin.Uint64(space),
				Owner:    owner,
				Accounts: &system.CreateAccountAccounts{
					From: &solana.AccountMeta{PublicKey: payer, IsSigner: true, IsWritable: true},
					New:  &solana.AccountMeta{PublicKey: target, IsSigner: true, IsWritable: true},
				},
			},
		},
	}
}

// Create allocates an account sized for record type V and stamps its
// discriminator, returning a mutable view over the new data.
func Create[V any, P account.MutViewer[V]](a *Allocator, target *types.AccountInfo, owner solana.PublicKey, seeds [][]byte, payer *types.AccountInfo) (V, error) {
	var zero V
	size := account.HeaderSize + P(&zero).Size()
	if err := a.Allocate(target, owner, size, seeds, payer); err != nil {
		return zero, err
	}
	return account.Init[V, P](target.Data)
}
