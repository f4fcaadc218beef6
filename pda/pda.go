// Package pda derives program addresses: account addresses computed from a
// seed list and the owning program's identity, with no private key. A
// derived address is valid only when it lies off the ed25519 curve, which
// guarantees nobody holds a signing key for it.
package pda

import (
	"errors"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/dfuse-io/solana-go"
	sha256 "github.com/minio/sha256-simd"
)

const (
	// MaxSeeds is the maximum number of seeds, bump included.
	MaxSeeds = 16
	// MaxSeedLen is the maximum length of a single seed in bytes.
	MaxSeedLen = 32
)

// marker is appended after the program id so derived addresses cannot
// collide with hashes computed for other purposes.
var marker = []byte("ProgramDerivedAddress")

var (
	// ErrMaxSeedLength indicates too many seeds or an oversized seed.
	ErrMaxSeedLength = errors.New("pda: max seed length exceeded")
	// ErrOnCurve indicates the seeds hash to a valid ed25519 point.
	ErrOnCurve = errors.New("pda: derived address is on curve")
	// ErrNoBump indicates no bump seed yields an off-curve address.
	ErrNoBump = errors.New("pda: unable to find a viable bump seed")
)

// Signer bundles the seeds that authorise a program-derived address. A
// runtime accepts it in place of a signature from that address.
type Signer struct {
	Seeds [][]byte
}

// NewSigner copies seeds into a Signer.
func NewSigner(seeds ...[]byte) Signer {
	out := make([][]byte, len(seeds))
	for i, s := range seeds {
		out[i] = append([]byte(nil), s...)
	}
	return Signer{Seeds: out}
}

// Address derives the address the signer stands for under program.
func (s Signer) Address(program solana.PublicKey) (solana.PublicKey, error) {
	return CreateProgramAddress(s.Seeds, program)
}

// CreateProgramAddress hashes seeds, program and the marker and returns the
// result when it is a valid program address.
func CreateProgramAddress(seeds [][]byte, program solana.PublicKey) (solana.PublicKey, error) {
	if len(seeds) > MaxSeeds {
		return solana.PublicKey{}, fmt.Errorf("%w: %d seeds", ErrMaxSeedLength, len(seeds))
	}
	h := sha256.New()
	for i, s := range seeds {
		if len(s) > MaxSeedLen {
			return solana.PublicKey{}, fmt.Errorf("%w: seed %d is %d bytes", ErrMaxSeedLength, i, len(s))
		}
		h.Write(s)
	}
	h.Write(program[:])
	h.Write(marker)

	var out solana.PublicKey
	copy(out[:], h.Sum(nil))
	if OnCurve(out) {
		return solana.PublicKey{}, ErrOnCurve
	}
	return out, nil
}

// FindProgramAddress searches bump seeds from 255 down and returns the first
// valid address together with its bump.
func FindProgramAddress(seeds [][]byte, program solana.PublicKey) (solana.PublicKey, uint8, error) {
	withBump := make([][]byte, len(seeds)+1)
	copy(withBump, seeds)
	bump := []byte{0}
	withBump[len(seeds)] = bump
	for b := 255; b >= 0; b-- {
		bump[0] = byte(b)
		addr, err := CreateProgramAddress(withBump, program)
		switch {
		case err == nil:
			return addr, uint8(b), nil
		case errors.Is(err, ErrOnCurve):
			continue
		default:
			return solana.PublicKey{}, 0, err
		}
	}
	return solana.PublicKey{}, 0, ErrNoBump
}

// OnCurve reports whether key decodes as an ed25519 point.
func OnCurve(key solana.PublicKey) bool {
	_, err := new(edwards25519.Point).SetBytes(key[:])
	return err == nil
}
