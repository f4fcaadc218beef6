package runtime

import "github.com/dfuse-io/solana-go"

// Backend provides the storage behind newly created accounts.
type Backend interface {
	// Create reserves size zeroed bytes for key and returns them. The
	// returned slice is the account's data for its whole lifetime.
	Create(key, owner solana.PublicKey, lamports uint64, size int) ([]byte, error)
	// SetLamports records a balance change for key.
	SetLamports(key solana.PublicKey, lamports uint64) error
}

// memBackend keeps account data on the Go heap.
type memBackend struct{}

func (memBackend) Create(_, _ solana.PublicKey, _ uint64, size int) ([]byte, error) {
	return make([]byte, size), nil
}

func (memBackend) SetLamports(solana.PublicKey, uint64) error { return nil }
