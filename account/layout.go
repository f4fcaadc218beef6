package account

import (
	"github.com/joshuapare/acctkit/internal/format"
	"github.com/joshuapare/acctkit/pkg/types"
)

// HeaderSize is the size of the discriminator header preceding record fields.
const HeaderSize = format.HeaderSize

// ErrInvalidLayout is returned when a buffer is too short for a record or
// carries another record's discriminator.
var ErrInvalidLayout = types.ErrInvalidLayout

// Record is implemented by every record view.
type Record interface {
	// Kind returns the discriminator the record type declares.
	Kind() Kind
	// Size returns the byte size of the record fields.
	Size() int
	// Bytes returns the record fields, header excluded. The slice aliases
	// the account buffer.
	Bytes() []byte
}

// Viewer is satisfied by pointers to record views. Only types in this
// package can satisfy it.
type Viewer[V any] interface {
	*V
	Record
	bind(body []byte)
}

// MutViewer is satisfied by pointers to mutable record views.
type MutViewer[V any] interface {
	Viewer[V]
	mutable()
}

// Check validates that data can be viewed as a record of the given kind and
// field size.
func Check(data []byte, kind Kind, size int) error {
	_, err := format.Body(data, byte(kind), size)
	return err
}

// View returns a view of data as record type V. It fails with
// ErrInvalidLayout when data is shorter than the header plus V's size or
// when data[0] is not V's discriminator.
//
// Whether the view can write is decided by V, not by the entry point:
// View[Bus] is read-only, while View[BusMut] is accepted and behaves like
// ViewMut, since the caller already holds data. Use ViewMut when a mutable
// view is required at compile time.
func View[V any, P Viewer[V]](data []byte) (V, error) {
	return bind[V, P](data)
}

// ViewMut returns a mutable view of data as record type V, with the same
// checks as View. Setters on the view write straight into data.
func ViewMut[V any, P MutViewer[V]](data []byte) (V, error) {
	return bind[V, P](data)
}

func bind[V any, P Viewer[V]](data []byte) (V, error) {
	var v V
	p := P(&v)
	body, err := format.Body(data, byte(p.Kind()), p.Size())
	if err != nil {
		var zero V
		return zero, err
	}
	p.bind(body)
	return v, nil
}

// Init stamps data with V's discriminator, zeroes the reserved header bytes
// and returns a mutable view. Record fields are left untouched; a freshly
// allocated account is already zero.
func Init[V any, P MutViewer[V]](data []byte) (V, error) {
	var v V
	p := P(&v)
	if err := format.WriteHeader(data, byte(p.Kind()), p.Size()); err != nil {
		var zero V
		return zero, err
	}
	return bind[V, P](data)
}

// RawBytes returns the exact field bytes of r without the header.
func RawBytes(r Record) []byte {
	return r.Bytes()
}
