package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscriminatorsAreStable(t *testing.T) {
	assert.Equal(t, Kind(1), KindBus)
	assert.Equal(t, Kind(2), KindProof)
	assert.Equal(t, Kind(3), KindTreasury)
}

func TestDeclsAreUniqueAndMatchViews(t *testing.T) {
	seen := map[Kind]bool{}
	for _, d := range Decls() {
		require.NotZero(t, d.Kind)
		require.False(t, seen[d.Kind], "duplicate discriminator %d", d.Kind)
		seen[d.Kind] = true
	}
	require.Len(t, seen, 3)

	records := []Record{Bus{}, Proof{}, Treasury{}}
	for _, r := range records {
		d, ok := Lookup(r.Kind())
		require.True(t, ok)
		assert.Equal(t, d.Size, r.Size())
		assert.Equal(t, HeaderSize+r.Size(), Space(r.Kind()))
	}
}

func TestValidateDecls(t *testing.T) {
	tests := []struct {
		name  string
		decls []Decl
		ok    bool
	}{
		{"valid", []Decl{{1, "a", 8}, {2, "b", 8}}, true},
		{"zero", []Decl{{0, "a", 8}}, false},
		{"duplicate", []Decl{{1, "a", 8}, {1, "b", 16}}, false},
		{"empty", []Decl{{1, "a", 0}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDecls(tt.decls)
			if tt.ok {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	for _, b := range []byte{1, 2, 3} {
		k, err := ParseKind(b)
		require.NoError(t, err)
		assert.Equal(t, Kind(b), k)
	}
	for _, b := range []byte{0, 4, 255} {
		_, err := ParseKind(b)
		require.ErrorIs(t, err, ErrUnknownKind)
	}
}

func TestKindNames(t *testing.T) {
	assert.Equal(t, "bus", KindBus.String())
	assert.Equal(t, "treasury", KindTreasury.String())
	assert.Equal(t, "kind(9)", Kind(9).String())

	k, err := KindByName("proof")
	require.NoError(t, err)
	assert.Equal(t, KindProof, k)
	_, err = KindByName("vault")
	require.ErrorIs(t, err, ErrUnknownKind)
	assert.Zero(t, Space(Kind(9)))
}
