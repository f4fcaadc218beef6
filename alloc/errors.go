package alloc

import (
	"errors"

	"github.com/joshuapare/acctkit/pkg/types"
)

var (
	// ErrInvalidSize indicates a negative account size.
	ErrInvalidSize = types.ErrInvalidSize

	// ErrNilAccount indicates a required account handle was nil.
	ErrNilAccount = errors.New("alloc: nil account handle")

	// ErrInsufficientFunds is surfaced by the runtime when the payer cannot
	// cover the rent-exempt balance.
	ErrInsufficientFunds = types.ErrInsufficientFunds

	// ErrAddressMismatch is surfaced by the runtime when the target is not the
	// address derived from the seeds.
	ErrAddressMismatch = types.ErrAddressMismatch

	// ErrAlreadyInitialized is surfaced by the runtime when the target exists.
	ErrAlreadyInitialized = types.ErrAlreadyInitialized
)
