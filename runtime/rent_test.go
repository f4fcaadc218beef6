package runtime

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinimumBalance(t *testing.T) {
	tests := []struct {
		size int
		want uint64
	}{
		{0, 890_880},
		{16, 1_002_240},
		{104, 1_614_720},
		{-1, 890_880},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DefaultRent.MinimumBalance(tt.size), "size %d", tt.size)
	}
}

func TestCustomRent(t *testing.T) {
	r := Rent{LamportsPerByteYear: 1, ExemptionThreshold: 1}
	assert.Equal(t, uint64(AccountStorageOverhead+10), r.MinimumBalance(10))
}

func TestMinimumBalanceSaturates(t *testing.T) {
	assert.Equal(t, uint64(math.MaxUint64), DefaultRent.MinimumBalance(math.MaxInt))

	r := Rent{LamportsPerByteYear: math.MaxUint64 / 256, ExemptionThreshold: 4}
	assert.Equal(t, uint64(math.MaxUint64), r.MinimumBalance(0))
}
