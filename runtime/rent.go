package runtime

import (
	"math"
	"math/bits"
)

// Rent parameters of the default host configuration.
const (
	DefaultLamportsPerByteYear = 3480
	DefaultExemptionThreshold  = 2.0
	// AccountStorageOverhead is charged on top of every account's data.
	AccountStorageOverhead = 128
)

// Rent computes rent-exempt balances.
type Rent struct {
	LamportsPerByteYear uint64
	ExemptionThreshold  float64
}

// DefaultRent is the rent model used when none is configured.
var DefaultRent = Rent{
	LamportsPerByteYear: DefaultLamportsPerByteYear,
	ExemptionThreshold:  DefaultExemptionThreshold,
}

// MinimumBalance returns the lamports an account with size data bytes must
// hold to be rent exempt. Results that do not fit a uint64 saturate at
// math.MaxUint64, which no payer can cover.
func (r Rent) MinimumBalance(size int) uint64 {
	if size < 0 {
		size = 0
	}
	bytes := uint64(AccountStorageOverhead) + uint64(size)
	hi, lo := bits.Mul64(bytes, r.LamportsPerByteYear)
	if hi != 0 {
		return math.MaxUint64
	}
	v := math.Floor(float64(lo) * r.ExemptionThreshold)
	if v >= math.MaxUint64 {
		return math.MaxUint64
	}
	return uint64(v)
}
