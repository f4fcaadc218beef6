package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a record.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrTagMismatch indicates the discriminator byte named a different record.
	ErrTagMismatch = errors.New("format: discriminator mismatch")
)
