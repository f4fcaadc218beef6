package account

import (
	"errors"
	"fmt"
)

// Kind is the one-byte discriminator stored at offset 0 of every account.
// Values are part of the on-chain format and must never be renumbered.
type Kind uint8

const (
	KindBus      Kind = 1
	KindProof    Kind = 2
	KindTreasury Kind = 3
)

// ErrUnknownKind indicates a discriminator byte that names no record type.
var ErrUnknownKind = errors.New("account: unknown record kind")

// Decl binds a record type to its discriminator and field size.
type Decl struct {
	Kind Kind
	Name string
	Size int
}

var decls = []Decl{
	{Kind: KindBus, Name: "bus", Size: BusSize},
	{Kind: KindProof, Name: "proof", Size: ProofSize},
	{Kind: KindTreasury, Name: "treasury", Size: TreasurySize},
}

func init() {
	if err := validateDecls(decls); err != nil {
		panic(err)
	}
}

// validateDecls rejects zero or duplicate discriminators and empty records.
func validateDecls(ds []Decl) error {
	seen := make(map[Kind]string, len(ds))
	for _, d := range ds {
		if d.Kind == 0 {
			return fmt.Errorf("account: %s declares discriminator 0", d.Name)
		}
		if d.Size <= 0 {
			return fmt.Errorf("account: %s declares size %d", d.Name, d.Size)
		}
		if prev, dup := seen[d.Kind]; dup {
			return fmt.Errorf("account: %s and %s share discriminator %d", prev, d.Name, d.Kind)
		}
		seen[d.Kind] = d.Name
	}
	return nil
}

// Decls returns the declaration of every record kind in discriminator order.
func Decls() []Decl {
	return append([]Decl(nil), decls...)
}

// Lookup returns the declaration for k.
func Lookup(k Kind) (Decl, bool) {
	for _, d := range decls {
		if d.Kind == k {
			return d, true
		}
	}
	return Decl{}, false
}

// ParseKind converts a discriminator byte into a Kind.
func ParseKind(b byte) (Kind, error) {
	k := Kind(b)
	if _, ok := Lookup(k); !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownKind, b)
	}
	return k, nil
}

// KindByName resolves a record name such as "bus".
func KindByName(name string) (Kind, error) {
	for _, d := range decls {
		if d.Name == name {
			return d.Kind, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

func (k Kind) String() string {
	if d, ok := Lookup(k); ok {
		return d.Name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Space returns the account size needed to hold a record of kind k, or 0
// for unknown kinds.
func Space(k Kind) int {
	d, ok := Lookup(k)
	if !ok {
		return 0
	}
	return HeaderSize + d.Size
}
