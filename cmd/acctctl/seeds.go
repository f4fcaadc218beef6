package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/mr-tron/base58"
	"golang.org/x/text/unicode/norm"
)

// parseSeed decodes one seed argument. Prefixes select the encoding:
//
//	hex:0a0b     raw bytes
//	b58:<addr>   base58 bytes (addresses)
//	u8:3         a single byte
//
// Anything else is text, NFC-normalised so visually identical input derives
// the same address.
func parseSeed(arg string) ([]byte, error) {
	switch {
	case strings.HasPrefix(arg, "hex:"):
		b, err := hex.DecodeString(strings.TrimPrefix(arg, "hex:"))
		if err != nil {
			return nil, fmt.Errorf("seed %q: %w", arg, err)
		}
		return b, nil
	case strings.HasPrefix(arg, "b58:"):
		b, err := base58.Decode(strings.TrimPrefix(arg, "b58:"))
		if err != nil {
			return nil, fmt.Errorf("seed %q: %w", arg, err)
		}
		return b, nil
	case strings.HasPrefix(arg, "u8:"):
		n, err := strconv.ParseUint(strings.TrimPrefix(arg, "u8:"), 10, 8)
		if err != nil {
			return nil, fmt.Errorf("seed %q: %w", arg, err)
		}
		return []byte{byte(n)}, nil
	default:
		return []byte(norm.NFC.String(arg)), nil
	}
}

func parseSeeds(args []string) ([][]byte, error) {
	seeds := make([][]byte, 0, len(args))
	for _, a := range args {
		s, err := parseSeed(a)
		if err != nil {
			return nil, err
		}
		seeds = append(seeds, s)
	}
	return seeds, nil
}
