package format

import (
	"fmt"

	"github.com/joshuapare/acctkit/internal/buf"
	"github.com/joshuapare/acctkit/pkg/types"
)

// Body validates that b holds a header tagged with tag followed by at least
// size field bytes, and returns the field region b[8:8+size]. The returned
// slice aliases b.
//
// Failures wrap both types.ErrInvalidLayout and the specific cause
// (ErrTruncated or ErrTagMismatch). The tag is compared first, so a buffer
// of another kind reports ErrTagMismatch whatever its length.
func Body(b []byte, tag byte, size int) ([]byte, error) {
	if got, ok := Tag(b); ok && got != tag {
		return nil, fmt.Errorf("%w: %w (got %d, want %d)",
			types.ErrInvalidLayout, ErrTagMismatch, got, tag)
	}
	body, ok := buf.Slice(b, BodyOffset, size)
	if !ok {
		return nil, fmt.Errorf("%w: %w (have %d, need %d)",
			types.ErrInvalidLayout, ErrTruncated, len(b), HeaderSize+size)
	}
	return body, nil
}

// Tag returns the discriminator byte of b, or false when b is empty.
func Tag(b []byte) (byte, bool) {
	if len(b) == 0 {
		return 0, false
	}
	return b[DiscriminatorOffset], true
}

// WriteHeader stamps tag into b and zeroes the reserved bytes. It fails when
// b cannot hold the header plus size field bytes.
func WriteHeader(b []byte, tag byte, size int) error {
	if !buf.Has(b, BodyOffset, size) {
		return fmt.Errorf("%w: %w (have %d, need %d)",
			types.ErrInvalidLayout, ErrTruncated, len(b), HeaderSize+size)
	}
	b[DiscriminatorOffset] = tag
	clear(b[ReservedOffset:HeaderSize])
	return nil
}
