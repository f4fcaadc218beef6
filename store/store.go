// Package store persists accounts as memory-mapped files, one file per
// account. Account data handed out by the store aliases the mapping, so typed
// views write straight to the file; Flush makes those writes durable.
//
// File layout (little-endian):
//
//	Offset  Size  Field
//	0x00    4     'A' 'C' 'C' 'T'
//	0x04    4     Data length
//	0x08    32    Owner
//	0x28    8     Lamports
//	0x30    n     Account data
package store

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dfuse-io/solana-go"

	"github.com/joshuapare/acctkit/internal/buf"
	"github.com/joshuapare/acctkit/internal/mmfile"
	"github.com/joshuapare/acctkit/pkg/types"
)

const (
	metaSize       = 0x30
	lenOffset      = 0x04
	ownerOffset    = 0x08
	lamportsOffset = 0x28

	// Ext is the file extension of account files.
	Ext = ".acct"
)

var magic = []byte{'A', 'C', 'C', 'T'}

var (
	// ErrExists indicates an account file already exists for the key.
	ErrExists = errors.New("store: account exists")
	// ErrNotFound indicates no account file exists for the key.
	ErrNotFound = errors.New("store: account not found")
	// ErrCorrupt indicates an account file with a bad header.
	ErrCorrupt = errors.New("store: corrupt account file")
	// ErrClosed indicates use of a closed store.
	ErrClosed = errors.New("store: closed")
)

type mapping struct {
	raw   []byte
	unmap func() error
}

// Dir is a directory of account files. It is not safe for concurrent use.
type Dir struct {
	path string
	maps map[solana.PublicKey]*mapping
}

// Open opens (creating if needed) the account directory at path.
func Open(path string) (*Dir, error) {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	return &Dir{path: path, maps: make(map[solana.PublicKey]*mapping)}, nil
}

// Path returns the file path of key's account.
func (d *Dir) Path(key solana.PublicKey) string {
	return filepath.Join(d.path, key.String()+Ext)
}

// Create writes a new account file with size zeroed data bytes and returns
// the mapped data.
func (d *Dir) Create(key, owner solana.PublicKey, lamports uint64, size int) ([]byte, error) {
	if d.maps == nil {
		return nil, ErrClosed
	}
	if size < 0 || uint64(size) > uint64(^uint32(0)) {
		return nil, fmt.Errorf("store: invalid size %d", size)
	}
	path := d.Path(key)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("%w: %s", ErrExists, key)
		}
		return nil, fmt.Errorf("store: %w", err)
	}

	raw := make([]byte, metaSize+size)
	copy(raw, magic)
	binary.LittleEndian.PutUint32(raw[lenOffset:], uint32(size))
	copy(raw[ownerOffset:], owner[:])
	binary.LittleEndian.PutUint64(raw[lamportsOffset:], lamports)
	if _, err := f.Write(raw); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return nil, fmt.Errorf("store: write %s: %w", key, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}

	m, err := d.mapFile(key)
	if err != nil {
		return nil, err
	}
	return m.raw[metaSize:], nil
}

// SetLamports updates the stored balance of key. Keys without an account
// file are ignored; their balances live only in the runtime.
func (d *Dir) SetLamports(key solana.PublicKey, lamports uint64) error {
	if d.maps == nil {
		return ErrClosed
	}
	m, ok := d.maps[key]
	if !ok {
		if _, err := os.Stat(d.Path(key)); err != nil {
			return nil
		}
		var err error
		if m, err = d.mapFile(key); err != nil {
			return err
		}
	}
	binary.LittleEndian.PutUint64(m.raw[lamportsOffset:], lamports)
	return nil
}

// Load maps key's account file and returns a handle whose Data aliases it.
func (d *Dir) Load(key solana.PublicKey) (*types.AccountInfo, error) {
	if d.maps == nil {
		return nil, ErrClosed
	}
	m, ok := d.maps[key]
	if !ok {
		var err error
		if m, err = d.mapFile(key); err != nil {
			return nil, err
		}
	}
	var owner solana.PublicKey
	copy(owner[:], m.raw[ownerOffset:ownerOffset+32])
	return &types.AccountInfo{
		Key:        key,
		Owner:      owner,
		Lamports:   buf.U64LE(m.raw[lamportsOffset:]),
		Data:       m.raw[metaSize:],
		IsWritable: true,
	}, nil
}

// Keys lists the accounts in the directory in file-name order.
func (d *Dir) Keys() ([]solana.PublicKey, error) {
	entries, err := os.ReadDir(d.path)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), Ext) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	keys := make([]solana.PublicKey, 0, len(names))
	for _, name := range names {
		key, err := solana.PublicKeyFromBase58(strings.TrimSuffix(name, Ext))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrCorrupt, name, err)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// Accounts loads every account in the directory.
func (d *Dir) Accounts() ([]*types.AccountInfo, error) {
	keys, err := d.Keys()
	if err != nil {
		return nil, err
	}
	out := make([]*types.AccountInfo, 0, len(keys))
	for _, k := range keys {
		a, err := d.Load(k)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// Flush writes every mapped account back to disk.
func (d *Dir) Flush() error {
	if d.maps == nil {
		return ErrClosed
	}
	var errs []error
	for key, m := range d.maps {
		if err := mmfile.Sync(m.raw); err != nil {
			errs = append(errs, fmt.Errorf("store: sync %s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}

// Close flushes and unmaps every account. Data slices obtained from the
// store must not be used afterwards.
func (d *Dir) Close() error {
	if d.maps == nil {
		return nil
	}
	errs := []error{d.Flush()}
	for _, m := range d.maps {
		errs = append(errs, m.unmap())
	}
	d.maps = nil
	return errors.Join(errs...)
}

func (d *Dir) mapFile(key solana.PublicKey) (*mapping, error) {
	raw, unmap, err := mmfile.Map(d.Path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("store: map %s: %w", key, err)
	}
	if len(raw) < metaSize || !bytes.Equal(raw[:len(magic)], magic) ||
		int(buf.U32LE(raw[lenOffset:])) != len(raw)-metaSize {
		_ = unmap()
		return nil, fmt.Errorf("%w: %s", ErrCorrupt, key)
	}
	m := &mapping{raw: raw, unmap: unmap}
	d.maps[key] = m
	return m, nil
}
