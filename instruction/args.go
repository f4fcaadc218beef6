// Package instruction parses fixed-layout instruction arguments. Argument
// payloads carry no header: the payload length must equal the argument
// type's size exactly, otherwise the whole request is rejected with
// ErrInvalidInstructionData.
package instruction

import (
	"encoding/binary"
	"fmt"

	"github.com/joshuapare/acctkit/pkg/types"
)

// ErrInvalidInstructionData is returned for payloads that do not match the
// requested argument layout.
var ErrInvalidInstructionData = types.ErrInvalidInstructionData

// Args is implemented by every fixed-layout argument type.
type Args interface {
	// Size returns the exact payload size in bytes.
	Size() int
	// Bytes encodes the arguments in their wire layout.
	Bytes() []byte
}

type decoder[A any] interface {
	*A
	Args
	decode(b []byte)
}

// Parse decodes data as argument type A.
func Parse[A any, P decoder[A]](data []byte) (A, error) {
	var a A
	p := P(&a)
	if len(data) != p.Size() {
		var zero A
		return zero, fmt.Errorf("%w: have %d bytes, need %d", ErrInvalidInstructionData, len(data), p.Size())
	}
	p.decode(data)
	return a, nil
}

// ClaimArgs requests a withdrawal of claimable rewards.
//
//	Offset  Size  Field
//	0x00    8     Amount
type ClaimArgs struct {
	Amount uint64
}

func (ClaimArgs) Size() int { return 8 }

func (a ClaimArgs) Bytes() []byte {
	return binary.LittleEndian.AppendUint64(nil, a.Amount)
}

func (a *ClaimArgs) decode(b []byte) {
	a.Amount = binary.LittleEndian.Uint64(b)
}

// MineArgs submits a proof-of-work solution.
//
//	Offset  Size  Field
//	0x00    32    Hash
//	0x20    8     Nonce
type MineArgs struct {
	Hash  [32]byte
	Nonce uint64
}

func (MineArgs) Size() int { return 40 }

func (a MineArgs) Bytes() []byte {
	out := make([]byte, 0, a.Size())
	out = append(out, a.Hash[:]...)
	return binary.LittleEndian.AppendUint64(out, a.Nonce)
}

func (a *MineArgs) decode(b []byte) {
	copy(a.Hash[:], b[:32])
	a.Nonce = binary.LittleEndian.Uint64(b[32:40])
}

// UpdateDifficultyArgs replaces the treasury hash target.
//
//	Offset  Size  Field
//	0x00    32    Difficulty
type UpdateDifficultyArgs struct {
	Difficulty [32]byte
}

func (UpdateDifficultyArgs) Size() int { return 32 }

func (a UpdateDifficultyArgs) Bytes() []byte {
	return append([]byte(nil), a.Difficulty[:]...)
}

func (a *UpdateDifficultyArgs) decode(b []byte) {
	copy(a.Difficulty[:], b)
}
