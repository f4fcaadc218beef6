// Package format houses the low-level layout of program account data. The
// goal is to keep header validation and field codecs focused and
// allocation-free so the typed views in package account stay thin.
//
// Account data layout (little-endian):
//
//	Offset  Size  Field
//	0x00    1     Discriminator (record kind tag)
//	0x01    7     Reserved, zero on creation, ignored on read
//	0x08    n     Fixed-layout record fields
package format

const (
	// HeaderSize is the size of the account header in bytes.
	HeaderSize = 8

	// DiscriminatorOffset is the offset of the record kind tag.
	DiscriminatorOffset = 0x00

	// ReservedOffset is the first reserved header byte.
	ReservedOffset = 0x01

	// ReservedSize is the number of reserved header bytes.
	ReservedSize = HeaderSize - ReservedOffset

	// BodyOffset is where record fields begin.
	BodyOffset = HeaderSize

	// KeySize is the width of an address or 32-byte hash field.
	KeySize = 32
)
