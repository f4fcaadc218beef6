//go:build !unix

// Package mmfile provides platform-specific helpers for memory-mapping
// account files read-write.
package mmfile

import (
	"os"
	"sync"
)

var (
	mu    sync.Mutex
	paths = map[*byte]string{}
)

// Map reads the entire file when mmap is not available. Sync writes the
// buffer back; cleanup forgets it.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, func() error { return nil }, err
	}
	if len(data) == 0 {
		return data, func() error { return nil }, nil
	}
	mu.Lock()
	paths[&data[0]] = path
	mu.Unlock()
	cleanup := func() error {
		mu.Lock()
		delete(paths, &data[0])
		mu.Unlock()
		return nil
	}
	return data, cleanup, nil
}

// Sync writes a buffer returned by Map back to its file.
func Sync(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	mu.Lock()
	path, ok := paths[&data[0]]
	mu.Unlock()
	if !ok {
		return nil
	}
	return os.WriteFile(path, data, 0o644)
}
