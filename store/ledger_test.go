package store_test

import (
	"testing"

	"github.com/dfuse-io/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/acctkit/account"
	"github.com/joshuapare/acctkit/alloc"
	"github.com/joshuapare/acctkit/pda"
	"github.com/joshuapare/acctkit/runtime"
	"github.com/joshuapare/acctkit/store"
)

func TestLedgerOnStore(t *testing.T) {
	dir := t.TempDir()
	program := solana.PublicKey{0x77}
	payerKey := solana.PublicKey{0x01}

	d, err := store.Open(dir)
	require.NoError(t, err)
	l := runtime.NewLedger(runtime.Options{Backend: d})
	require.NoError(t, l.Fund(payerKey, 1_000_000_000))

	addr, bump, err := pda.FindProgramAddress(account.BusSeeds(2), program)
	require.NoError(t, err)
	a := alloc.New(l.Invoker(program), l.Rent(), l.Account(runtime.SystemProgramID))
	bus, err := alloc.Create[account.BusMut](a, l.Account(addr), program,
		append(account.BusSeeds(2), []byte{bump}), l.Signer(payerKey))
	require.NoError(t, err)
	bus.SetID(2)
	bus.SetRewards(4_000)
	require.NoError(t, d.Close())

	d, err = store.Open(dir)
	require.NoError(t, err)
	defer d.Close()

	keys, err := d.Keys()
	require.NoError(t, err)
	require.Equal(t, []solana.PublicKey{addr}, keys)

	info, err := d.Load(addr)
	require.NoError(t, err)
	assert.Equal(t, program, info.Owner)
	assert.Equal(t, runtime.DefaultRent.MinimumBalance(account.Space(account.KindBus)), info.Lamports)

	view, err := account.View[account.Bus](info.Data)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), view.ID())
	assert.Equal(t, uint64(4_000), view.Rewards())

	// A ledger rebuilt from the store refuses to recreate the account.
	l = runtime.NewLedger(runtime.Options{Backend: d})
	l.Put(info)
	require.NoError(t, l.Fund(payerKey, 1_000_000_000))
	a = alloc.New(l.Invoker(program), l.Rent(), l.Account(runtime.SystemProgramID))
	err = a.Allocate(l.Account(addr), program, account.Space(account.KindBus),
		append(account.BusSeeds(2), []byte{bump}), l.Signer(payerKey))
	require.ErrorIs(t, err, alloc.ErrAlreadyInitialized)
}
