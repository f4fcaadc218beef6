package runtime

import (
	"errors"
	"fmt"
	"math"

	"github.com/dfuse-io/solana-go"
	"github.com/dfuse-io/solana-go/programs/system"

	"github.com/joshuapare/acctkit/pda"
	"github.com/joshuapare/acctkit/pkg/types"
)

// ErrUnsupportedInstruction indicates an instruction the runtime cannot run.
var ErrUnsupportedInstruction = errors.New("runtime: unsupported instruction")

// Invoker returns a types.Invoker that runs instructions on behalf of
// program. Seeds presented to it derive addresses under program.
func (l *Ledger) Invoker(program solana.PublicKey) types.Invoker {
	return &invoker{ledger: l, program: program}
}

type invoker struct {
	ledger  *Ledger
	program solana.PublicKey
}

// InvokeSigned executes ix. Only system-program create account is supported.
func (inv *invoker) InvokeSigned(ix solana.TransactionInstruction, accounts []*types.AccountInfo, signers ...pda.Signer) error {
	sysIx, ok := ix.(*system.Instruction)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnsupportedInstruction, ix)
	}
	create, ok := sysIx.Impl.(*system.CreateAccount)
	if !ok || create.Accounts == nil || create.Accounts.From == nil || create.Accounts.New == nil {
		return fmt.Errorf("%w: system type %v", ErrUnsupportedInstruction, sysIx.TypeID)
	}
	if err := requireAccounts(accounts, SystemProgramID, create.Accounts.From.PublicKey, create.Accounts.New.PublicKey); err != nil {
		return err
	}
	return inv.createAccount(create, accounts, signers)
}

func (inv *invoker) createAccount(ix *system.CreateAccount, accounts []*types.AccountInfo, signers []pda.Signer) error {
	l := inv.ledger
	from := ix.Accounts.From.PublicKey
	to := ix.Accounts.New.PublicKey
	lamports := uint64(ix.Lamports)
	if uint64(ix.Space) > math.MaxInt {
		return fmt.Errorf("%w: %d", types.ErrInvalidSize, uint64(ix.Space))
	}
	space := int(ix.Space)

	payer := find(accounts, from)
	if !payer.IsSigner {
		return fmt.Errorf("%w: payer %s", types.ErrMissingSignature, from)
	}
	if target := find(accounts, to); !target.IsSigner && !inv.derivesFrom(to, signers) {
		return fmt.Errorf("%w: %s", types.ErrAddressMismatch, to)
	}
	if l.Exists(to) {
		return fmt.Errorf("%w: %s", types.ErrAlreadyInitialized, to)
	}
	payerAcct := l.Account(from)
	if payerAcct.Lamports < lamports {
		return fmt.Errorf("%w: have %d, need %d", types.ErrInsufficientFunds, payerAcct.Lamports, lamports)
	}

	data, err := l.backend.Create(to, ix.Owner, lamports, space)
	if err != nil {
		return fmt.Errorf("runtime: create %s: %w", to, err)
	}
	if err := l.backend.SetLamports(from, payerAcct.Lamports-lamports); err != nil {
		return fmt.Errorf("runtime: debit %s: %w", from, err)
	}
	payerAcct.Lamports -= lamports

	newAcct := l.Account(to)
	newAcct.Owner = ix.Owner
	newAcct.Lamports = lamports
	newAcct.Data = data

	// Callers may hold their own handles; bring them in line with the ledger.
	for _, a := range accounts {
		switch a.Key {
		case from:
			a.Lamports = payerAcct.Lamports
		case to:
			a.Owner, a.Lamports, a.Data = newAcct.Owner, newAcct.Lamports, newAcct.Data
		}
	}

	l.log.Debug("account created",
		"address", to.String(),
		"owner", ix.Owner.String(),
		"space", space,
		"lamports", lamports,
	)
	return nil
}

// derivesFrom reports whether one of signers derives key under the program.
func (inv *invoker) derivesFrom(key solana.PublicKey, signers []pda.Signer) bool {
	for _, s := range signers {
		addr, err := s.Address(inv.program)
		if err == nil && addr == key {
			return true
		}
	}
	return false
}

func requireAccounts(accounts []*types.AccountInfo, keys ...solana.PublicKey) error {
	for _, k := range keys {
		if find(accounts, k) == nil {
			return fmt.Errorf("%w: %s", types.ErrMissingAccount, k)
		}
	}
	return nil
}

func find(accounts []*types.AccountInfo, key solana.PublicKey) *types.AccountInfo {
	for _, a := range accounts {
		if a != nil && a.Key == key {
			return a
		}
	}
	return nil
}
