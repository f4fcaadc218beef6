package account

import (
	"encoding/hex"
	"strconv"

	"github.com/dfuse-io/solana-go"

	"github.com/joshuapare/acctkit/internal/format"
)

// Treasury field layout, relative to the record body:
//
//	Offset  Size  Field
//	0x00    8     Bump (derivation bump, widened to keep 8-byte alignment)
//	0x08    32    Admin address
//	0x28    32    Difficulty (hash target)
//	0x48    8     LastResetAt (unix seconds, signed)
//	0x50    8     RewardRate
//	0x58    8     TotalClaimedRewards
const (
	treasuryBumpOffset         = 0x00
	treasuryAdminOffset        = 0x08
	treasuryDifficultyOffset   = 0x28
	treasuryLastResetOffset    = 0x48
	treasuryRewardRateOffset   = 0x50
	treasuryTotalClaimedOffset = 0x58

	// TreasurySize is the byte size of the Treasury record fields.
	TreasurySize = 0x60
)

// Treasury is a zero-cost read-only view over the program treasury account.
type Treasury struct {
	buf []byte
}

func (Treasury) Kind() Kind { return KindTreasury }

func (Treasury) Size() int { return TreasurySize }

func (t Treasury) Bytes() []byte { return t.buf }

func (t *Treasury) bind(body []byte) { t.buf = body }

func (t Treasury) Bump() uint64 {
	return format.ReadU64(t.buf, treasuryBumpOffset)
}

// Admin returns the address allowed to update treasury parameters.
func (t Treasury) Admin() solana.PublicKey {
	return solana.PublicKey(format.ReadKey(t.buf, treasuryAdminOffset))
}

// Difficulty returns the current hash target.
func (t Treasury) Difficulty() [32]byte {
	return format.ReadKey(t.buf, treasuryDifficultyOffset)
}

// LastResetAt returns the unix time of the last epoch reset.
func (t Treasury) LastResetAt() int64 {
	return format.ReadI64(t.buf, treasuryLastResetOffset)
}

func (t Treasury) RewardRate() uint64 {
	return format.ReadU64(t.buf, treasuryRewardRateOffset)
}

func (t Treasury) TotalClaimedRewards() uint64 {
	return format.ReadU64(t.buf, treasuryTotalClaimedOffset)
}

// Fields lists the decoded fields for display.
func (t Treasury) Fields() []Field {
	difficulty := t.Difficulty()
	return []Field{
		{Name: "bump", Value: strconv.FormatUint(t.Bump(), 10)},
		{Name: "admin", Value: t.Admin().String()},
		{Name: "difficulty", Value: hex.EncodeToString(difficulty[:])},
		{Name: "last_reset_at", Value: strconv.FormatInt(t.LastResetAt(), 10)},
		{Name: "reward_rate", Value: strconv.FormatUint(t.RewardRate(), 10)},
		{Name: "total_claimed_rewards", Value: strconv.FormatUint(t.TotalClaimedRewards(), 10)},
	}
}

// TreasuryMut is a mutable view over the treasury account.
type TreasuryMut struct {
	Treasury
}

func (TreasuryMut) mutable() {}

func (t TreasuryMut) SetBump(v uint64) {
	format.PutU64(t.buf, treasuryBumpOffset, v)
}

func (t TreasuryMut) SetAdmin(k solana.PublicKey) {
	format.PutKey(t.buf, treasuryAdminOffset, k)
}

func (t TreasuryMut) SetDifficulty(d [32]byte) {
	format.PutKey(t.buf, treasuryDifficultyOffset, d)
}

func (t TreasuryMut) SetLastResetAt(v int64) {
	format.PutI64(t.buf, treasuryLastResetOffset, v)
}

func (t TreasuryMut) SetRewardRate(v uint64) {
	format.PutU64(t.buf, treasuryRewardRateOffset, v)
}

func (t TreasuryMut) SetTotalClaimedRewards(v uint64) {
	format.PutU64(t.buf, treasuryTotalClaimedOffset, v)
}
