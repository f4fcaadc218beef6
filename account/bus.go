package account

import (
	"strconv"

	"github.com/joshuapare/acctkit/internal/format"
)

// Bus field layout, relative to the record body:
//
//	Offset  Size  Field
//	0x00    8     ID
//	0x08    8     Rewards
const (
	busIDOffset      = 0x00
	busRewardsOffset = 0x08

	// BusSize is the byte size of the Bus record fields.
	BusSize = 0x10
)

// Bus is a zero-cost read-only view over a bus account.
// It does NOT own memory; it only points into the account buffer.
type Bus struct {
	buf []byte
}

func (Bus) Kind() Kind { return KindBus }

func (Bus) Size() int { return BusSize }

func (b Bus) Bytes() []byte { return b.buf }

func (b *Bus) bind(body []byte) { b.buf = body }

// ID returns the bus index.
func (b Bus) ID() uint64 {
	return format.ReadU64(b.buf, busIDOffset)
}

// Rewards returns the rewards remaining on the bus for the current epoch.
func (b Bus) Rewards() uint64 {
	return format.ReadU64(b.buf, busRewardsOffset)
}

// Fields lists the decoded fields for display.
func (b Bus) Fields() []Field {
	return []Field{
		{Name: "id", Value: strconv.FormatUint(b.ID(), 10)},
		{Name: "rewards", Value: strconv.FormatUint(b.Rewards(), 10)},
	}
}

// BusMut is a mutable view over a bus account.
type BusMut struct {
	Bus
}

func (BusMut) mutable() {}

func (b BusMut) SetID(v uint64) {
	format.PutU64(b.buf, busIDOffset, v)
}

func (b BusMut) SetRewards(v uint64) {
	format.PutU64(b.buf, busRewardsOffset, v)
}
