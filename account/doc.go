// Package account implements the typed buffer layer for program account
// data.
//
// # Layout
//
// Every account starts with an 8-byte header. Byte 0 is the record kind
// (discriminator); bytes 1-7 are reserved, zeroed on creation and ignored on
// read. The fixed-layout, little-endian record fields follow from byte 8:
//
//	Offset  Size  Field
//	0x00    1     Kind (Bus=1, Proof=2, Treasury=3)
//	0x01    7     Reserved
//	0x08    n     Record fields (n = declared record size)
//
// # Views
//
// Records are never decoded into copies. View and ViewMut validate the
// buffer length and tag, then return a small view value that aliases the
// field region:
//
//	bus, err := account.View[account.Bus](info.Data)
//	if err != nil {
//	    return err // wraps ErrInvalidLayout
//	}
//	rewards := bus.Rewards()
//
//	proof, err := account.ViewMut[account.ProofMut](info.Data)
//	if err != nil {
//	    return err
//	}
//	proof.SetClaimableRewards(proof.ClaimableRewards() + reward)
//
// A mutable view must be the only live view over its buffer; the package
// does not enforce this. RawBytes returns the field bytes (without the
// header) for writing back or hashing.
//
// # Thread Safety
//
// Views are not synchronized. Callers serialize access to an account.
package account
