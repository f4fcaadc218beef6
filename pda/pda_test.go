package pda

import (
	"bytes"
	"testing"

	"github.com/dfuse-io/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProgram() solana.PublicKey {
	var p solana.PublicKey
	for i := range p {
		p[i] = byte(i + 1)
	}
	return p
}

func TestFindProgramAddressIsDeterministic(t *testing.T) {
	seeds := [][]byte{[]byte("treasury")}
	a1, b1, err := FindProgramAddress(seeds, testProgram())
	require.NoError(t, err)
	a2, b2, err := FindProgramAddress(seeds, testProgram())
	require.NoError(t, err)

	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)
	assert.False(t, OnCurve(a1))
}

func TestFindProgramAddressMatchesCreate(t *testing.T) {
	seeds := [][]byte{[]byte("bus"), {3}}
	addr, bump, err := FindProgramAddress(seeds, testProgram())
	require.NoError(t, err)

	got, err := CreateProgramAddress([][]byte{[]byte("bus"), {3}, {bump}}, testProgram())
	require.NoError(t, err)
	assert.Equal(t, addr, got)

	signer := NewSigner([]byte("bus"), []byte{3}, []byte{bump})
	viaSigner, err := signer.Address(testProgram())
	require.NoError(t, err)
	assert.Equal(t, addr, viaSigner)
}

func TestDerivationDependsOnProgramAndSeeds(t *testing.T) {
	other := testProgram()
	other[0] ^= 0xff

	a, _, err := FindProgramAddress([][]byte{[]byte("proof")}, testProgram())
	require.NoError(t, err)
	b, _, err := FindProgramAddress([][]byte{[]byte("proof")}, other)
	require.NoError(t, err)
	c, _, err := FindProgramAddress([][]byte{[]byte("proof"), {1}}, testProgram())
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestCreateProgramAddressLimits(t *testing.T) {
	tooLong := bytes.Repeat([]byte{1}, MaxSeedLen+1)
	_, err := CreateProgramAddress([][]byte{tooLong}, testProgram())
	require.ErrorIs(t, err, ErrMaxSeedLength)

	many := make([][]byte, MaxSeeds+1)
	_, err = CreateProgramAddress(many, testProgram())
	require.ErrorIs(t, err, ErrMaxSeedLength)

	// 16 seeds leave no room for a bump.
	_, _, err = FindProgramAddress(make([][]byte, MaxSeeds), testProgram())
	require.ErrorIs(t, err, ErrMaxSeedLength)
}

func TestNewSignerCopiesSeeds(t *testing.T) {
	seed := []byte("bus")
	s := NewSigner(seed)
	seed[0] = 'x'
	assert.Equal(t, []byte("bus"), s.Seeds[0])
}

func TestOnCurve(t *testing.T) {
	// The ed25519 base point encoding is on the curve.
	base := solana.PublicKey{0x58, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
		0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
		0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
		0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66}
	assert.True(t, OnCurve(base))
}
