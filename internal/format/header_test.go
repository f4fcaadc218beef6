package format

import (
	"errors"
	"testing"

	"github.com/joshuapare/acctkit/pkg/types"
)

func TestBody(t *testing.T) {
	b := make([]byte, HeaderSize+16)
	b[0] = 1
	for i := 0; i < 16; i++ {
		b[HeaderSize+i] = byte(i)
	}

	body, err := Body(b, 1, 16)
	if err != nil {
		t.Fatalf("Body: %v", err)
	}
	if len(body) != 16 || body[0] != 0 || body[15] != 15 {
		t.Fatalf("unexpected body: %v", body)
	}
	body[0] = 0xAA
	if b[HeaderSize] != 0xAA {
		t.Fatalf("body must alias the account buffer")
	}

	// Longer buffers are accepted; the body stays exactly size bytes.
	long := append(b, 0xFF, 0xFF)
	body, err = Body(long, 1, 16)
	if err != nil || len(body) != 16 {
		t.Fatalf("Body on long buffer: %v len=%d", err, len(body))
	}
}

func TestBodyErrors(t *testing.T) {
	short := make([]byte, HeaderSize+7)
	short[0] = 2
	_, err := Body(short, 2, 8)
	if !errors.Is(err, types.ErrInvalidLayout) || !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected truncated layout error, got %v", err)
	}

	wrong := make([]byte, HeaderSize+8)
	wrong[0] = 2
	_, err = Body(wrong, 1, 8)
	if !errors.Is(err, types.ErrInvalidLayout) || !errors.Is(err, ErrTagMismatch) {
		t.Fatalf("expected tag mismatch layout error, got %v", err)
	}

	if _, err := Body(nil, 1, 0); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected truncated error for empty buffer, got %v", err)
	}
}

func TestBodyChecksTagBeforeLength(t *testing.T) {
	// A 16-byte proof account is too short for a bus, but the tag decides.
	proof := make([]byte, HeaderSize+8)
	proof[0] = 2
	_, err := Body(proof, 1, 16)
	if !errors.Is(err, ErrTagMismatch) || errors.Is(err, ErrTruncated) {
		t.Fatalf("expected tag mismatch, got %v", err)
	}

	one := []byte{2}
	if _, err := Body(one, 1, 16); !errors.Is(err, ErrTagMismatch) {
		t.Fatalf("expected tag mismatch for 1-byte buffer, got %v", err)
	}
	one[0] = 1
	if _, err := Body(one, 1, 16); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected truncated error for matching tag, got %v", err)
	}
}

func TestWriteHeader(t *testing.T) {
	b := []byte{9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9}
	if err := WriteHeader(b, 3, 8); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}
	if b[0] != 3 {
		t.Fatalf("tag = %d, want 3", b[0])
	}
	for i := ReservedOffset; i < HeaderSize; i++ {
		if b[i] != 0 {
			t.Fatalf("reserved byte %d = %d, want 0", i, b[i])
		}
	}
	if b[HeaderSize] != 9 {
		t.Fatalf("WriteHeader must not touch the body")
	}
	if err := WriteHeader(b, 3, 9); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected truncated error, got %v", err)
	}
}

func TestTag(t *testing.T) {
	if _, ok := Tag(nil); ok {
		t.Fatalf("Tag on empty buffer should fail")
	}
	if tag, ok := Tag([]byte{2}); !ok || tag != 2 {
		t.Fatalf("Tag = %d,%v want 2,true", tag, ok)
	}
}
