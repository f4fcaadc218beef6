package account

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/acctkit/internal/format"
)

func newAccount(kind Kind, size int) []byte {
	b := make([]byte, HeaderSize+size)
	b[0] = byte(kind)
	for i := HeaderSize; i < len(b); i++ {
		b[i] = byte(i * 7)
	}
	return b
}

func TestViewReturnsBodyBytes(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		size int
		view func([]byte) (Record, error)
	}{
		{"bus", KindBus, BusSize, func(b []byte) (Record, error) { return View[Bus](b) }},
		{"proof", KindProof, ProofSize, func(b []byte) (Record, error) { return View[Proof](b) }},
		{"treasury", KindTreasury, TreasurySize, func(b []byte) (Record, error) { return View[Treasury](b) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := newAccount(tt.kind, tt.size)
			r, err := tt.view(data)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, r.Kind())
			assert.Equal(t, data[HeaderSize:], RawBytes(r))

			// Trailing bytes beyond the record are allowed and not exposed.
			long := append(append([]byte(nil), data...), 0xEE, 0xEE)
			r, err = tt.view(long)
			require.NoError(t, err)
			assert.Len(t, r.Bytes(), tt.size)
		})
	}
}

func TestViewRejectsWrongDiscriminator(t *testing.T) {
	for _, size := range []int{0, 1, HeaderSize, HeaderSize + BusSize, 4096} {
		data := make([]byte, size)
		if size > 0 {
			data[0] = byte(KindProof)
		}
		_, err := View[Bus](data)
		require.ErrorIs(t, err, ErrInvalidLayout, "size %d", size)
		_, err = ViewMut[BusMut](data)
		require.ErrorIs(t, err, ErrInvalidLayout, "size %d", size)
	}
}

func TestViewRejectsShortBuffer(t *testing.T) {
	for n := 0; n < HeaderSize+TreasurySize; n++ {
		data := make([]byte, n)
		if n > 0 {
			data[0] = byte(KindTreasury)
		}
		_, err := View[Treasury](data)
		require.ErrorIs(t, err, ErrInvalidLayout, "len %d", n)
		_, err = ViewMut[TreasuryMut](data)
		require.ErrorIs(t, err, ErrInvalidLayout, "len %d", n)
	}
}

func TestViewIgnoresReservedBytes(t *testing.T) {
	data := newAccount(KindBus, BusSize)
	for i := format.ReservedOffset; i < HeaderSize; i++ {
		data[i] = 0xFF
	}
	_, err := View[Bus](data)
	require.NoError(t, err)
}

func TestMutableRoundTrip(t *testing.T) {
	data := make([]byte, Space(KindBus))
	data[0] = byte(KindBus)

	bm, err := ViewMut[BusMut](data)
	require.NoError(t, err)
	bm.SetID(7)
	bm.SetRewards(1_000_000)

	b, err := View[Bus](data)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), b.ID())
	assert.Equal(t, uint64(1_000_000), b.Rewards())
	assert.Equal(t, uint64(7), binary.LittleEndian.Uint64(data[8:16]))
	assert.Equal(t, uint64(1_000_000), binary.LittleEndian.Uint64(data[16:24]))

	// The read view aliases the same bytes as the mutable one.
	bm.SetRewards(5)
	assert.Equal(t, uint64(5), b.Rewards())
}

func TestProofScenario(t *testing.T) {
	data := []byte{2, 0, 0, 0, 0, 0, 0, 0, 0x39, 0x30, 0, 0, 0, 0, 0, 0}

	p, err := View[Proof](data)
	require.NoError(t, err)
	assert.Equal(t, uint64(12345), p.ClaimableRewards())
	assert.Equal(t, data[8:16], p.Bytes())

	_, err = View[Bus](data)
	require.ErrorIs(t, err, ErrInvalidLayout)
	require.ErrorIs(t, err, format.ErrTagMismatch)
}

func TestTreasuryFields(t *testing.T) {
	data := make([]byte, Space(KindTreasury))
	tm, err := Init[TreasuryMut](data)
	require.NoError(t, err)

	var admin [32]byte
	admin[0], admin[31] = 0xAB, 0xCD
	var difficulty [32]byte
	difficulty[0] = 0x0F
	tm.SetBump(254)
	tm.SetAdmin(admin)
	tm.SetDifficulty(difficulty)
	tm.SetLastResetAt(-1)
	tm.SetRewardRate(10)
	tm.SetTotalClaimedRewards(99)

	tr, err := View[Treasury](data)
	require.NoError(t, err)
	assert.Equal(t, uint64(254), tr.Bump())
	assert.Equal(t, admin, [32]byte(tr.Admin()))
	assert.Equal(t, difficulty, tr.Difficulty())
	assert.Equal(t, int64(-1), tr.LastResetAt())
	assert.Equal(t, uint64(10), tr.RewardRate())
	assert.Equal(t, uint64(99), tr.TotalClaimedRewards())
	assert.Equal(t, byte(0xAB), data[HeaderSize+0x08])
}

func TestInit(t *testing.T) {
	data := make([]byte, Space(KindProof))
	for i := range data {
		data[i] = 0x11
	}
	pm, err := Init[ProofMut](data)
	require.NoError(t, err)
	assert.Equal(t, byte(KindProof), data[0])
	assert.Equal(t, make([]byte, format.ReservedSize), data[1:HeaderSize])
	assert.Equal(t, uint64(0x1111111111111111), pm.ClaimableRewards())

	_, err = Init[BusMut](make([]byte, HeaderSize+BusSize-1))
	require.ErrorIs(t, err, ErrInvalidLayout)
}

func TestCheck(t *testing.T) {
	data := newAccount(KindBus, BusSize)
	require.NoError(t, Check(data, KindBus, BusSize))
	require.ErrorIs(t, Check(data, KindProof, ProofSize), ErrInvalidLayout)
	require.ErrorIs(t, Check(data[:10], KindBus, BusSize), ErrInvalidLayout)
}

func TestViewMutabilityFollowsType(t *testing.T) {
	data := newAccount(KindBus, BusSize)

	bm, err := View[BusMut](data)
	require.NoError(t, err)
	bm.SetRewards(42)

	b, err := View[Bus](data)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), b.Rewards())

	// The mutable view goes through the same discriminator check.
	_, err = View[ProofMut](data)
	require.ErrorIs(t, err, ErrInvalidLayout)
}
