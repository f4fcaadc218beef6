package types

import "errors"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindLayout      ErrKind = iota // discriminator mismatch or undersized account buffer
	ErrKindInstruction                // malformed fixed-layout instruction payload
	ErrKindAllocation                 // account creation refused by the runtime
	ErrKindState                      // operation invalid for the current state
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindLayout:
		return "layout"
	case ErrKindInstruction:
		return "instruction"
	case ErrKindAllocation:
		return "allocation"
	case ErrKindState:
		return "state"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels returned by the account layer, the allocator and runtimes.
// Wrap them with fmt.Errorf("%w") to add detail; match with errors.Is.
var (
	// ErrInvalidLayout indicates an account buffer is too short for the
	// requested record or carries a different discriminator.
	ErrInvalidLayout = &Error{Kind: ErrKindLayout, Msg: "invalid account layout"}
	// ErrInvalidInstructionData indicates instruction arguments do not match
	// the fixed layout of the requested argument type.
	ErrInvalidInstructionData = &Error{Kind: ErrKindInstruction, Msg: "invalid instruction data"}
	// ErrInsufficientFunds indicates the funding account cannot cover the
	// rent-exempt balance of the new account.
	ErrInsufficientFunds = &Error{Kind: ErrKindAllocation, Msg: "insufficient funds for rent exemption"}
	// ErrAddressMismatch indicates the target address is not the address
	// derived from the signer seeds under the calling program.
	ErrAddressMismatch = &Error{Kind: ErrKindAllocation, Msg: "target address does not match seeds"}
	// ErrAlreadyInitialized indicates an account already exists at the target.
	ErrAlreadyInitialized = &Error{Kind: ErrKindAllocation, Msg: "account already in use"}
	// ErrInvalidSize indicates an account size that is negative or does not
	// fit the host's address space.
	ErrInvalidSize = &Error{Kind: ErrKindAllocation, Msg: "invalid account size"}
	// ErrMissingAccount indicates an instruction referenced an account that was
	// not passed to the invoke.
	ErrMissingAccount = &Error{Kind: ErrKindState, Msg: "missing account for instruction"}
	// ErrMissingSignature indicates a required signer did not sign.
	ErrMissingSignature = &Error{Kind: ErrKindState, Msg: "missing required signature"}
)

// KindOf returns the category of err when it is (or wraps) an *Error.
func KindOf(err error) (ErrKind, bool) {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e.Kind, true
	}
	return 0, false
}
