package account

import "github.com/dfuse-io/solana-go"

// Seed prefixes for the program's derived accounts.
const (
	BusSeed      = "bus"
	ProofSeed    = "proof"
	TreasurySeed = "treasury"

	// BusCount is the number of bus accounts the program maintains.
	BusCount = 8
)

// BusSeeds returns the derivation seeds of bus id (bump excluded).
func BusSeeds(id uint8) [][]byte {
	return [][]byte{[]byte(BusSeed), {id}}
}

// ProofSeeds returns the derivation seeds of authority's proof account.
func ProofSeeds(authority solana.PublicKey) [][]byte {
	return [][]byte{[]byte(ProofSeed), authority[:]}
}

// TreasurySeeds returns the derivation seeds of the treasury account.
func TreasurySeeds() [][]byte {
	return [][]byte{[]byte(TreasurySeed)}
}
