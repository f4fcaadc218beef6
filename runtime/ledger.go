package runtime

import (
	"log/slog"

	"github.com/dfuse-io/solana-go"

	"github.com/joshuapare/acctkit/internal/logger"
	"github.com/joshuapare/acctkit/pkg/types"
)

// SystemProgramID is the address of the system program.
var SystemProgramID = solana.PublicKey{}

// Options configures a Ledger.
type Options struct {
	Rent    Rent         // zero value means DefaultRent
	Backend Backend      // nil means heap-backed accounts
	Logger  *slog.Logger // nil means logger.L
}

// Ledger holds every account known to the runtime.
type Ledger struct {
	accounts map[solana.PublicKey]*types.AccountInfo
	rent     Rent
	backend  Backend
	log      *slog.Logger
}

// NewLedger returns an empty ledger.
func NewLedger(opts Options) *Ledger {
	l := &Ledger{
		accounts: make(map[solana.PublicKey]*types.AccountInfo),
		rent:     opts.Rent,
		backend:  opts.Backend,
		log:      opts.Logger,
	}
	if l.rent == (Rent{}) {
		l.rent = DefaultRent
	}
	if l.backend == nil {
		l.backend = memBackend{}
	}
	if l.log == nil {
		l.log = logger.L
	}
	return l
}

// Rent returns the ledger's rent model.
func (l *Ledger) Rent() Rent { return l.rent }

// Account returns the handle for key. Unknown keys yield an empty,
// system-owned account that is registered so later updates are visible
// through the same handle.
func (l *Ledger) Account(key solana.PublicKey) *types.AccountInfo {
	if a, ok := l.accounts[key]; ok {
		return a
	}
	a := &types.AccountInfo{Key: key, Owner: SystemProgramID}
	l.accounts[key] = a
	return a
}

// Put registers an existing account, replacing any handle for its key.
func (l *Ledger) Put(a *types.AccountInfo) {
	l.accounts[a.Key] = a
}

// Exists reports whether key holds lamports or data.
func (l *Ledger) Exists(key solana.PublicKey) bool {
	a, ok := l.accounts[key]
	return ok && inUse(a)
}

// Fund credits lamports to key.
func (l *Ledger) Fund(key solana.PublicKey, lamports uint64) error {
	a := l.Account(key)
	a.Lamports += lamports
	return l.backend.SetLamports(key, a.Lamports)
}

// Signer returns the handle for key marked as a transaction signer.
func (l *Ledger) Signer(key solana.PublicKey) *types.AccountInfo {
	a := l.Account(key)
	a.IsSigner = true
	a.IsWritable = true
	return a
}

// Len returns the number of accounts in use.
func (l *Ledger) Len() int {
	n := 0
	for _, a := range l.accounts {
		if inUse(a) {
			n++
		}
	}
	return n
}

func inUse(a *types.AccountInfo) bool {
	return a.Lamports > 0 || len(a.Data) > 0
}
