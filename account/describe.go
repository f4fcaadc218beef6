package account

import (
	"fmt"

	"github.com/joshuapare/acctkit/internal/format"
)

// Field is one decoded record field rendered as text.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Describe decodes whichever record data's discriminator names and returns
// its fields. It is meant for tooling; program logic uses View directly.
func Describe(data []byte) (Kind, []Field, error) {
	tag, ok := format.Tag(data)
	if !ok {
		return 0, nil, fmt.Errorf("%w: %w", ErrInvalidLayout, format.ErrTruncated)
	}
	kind, err := ParseKind(tag)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %w", ErrInvalidLayout, err)
	}
	switch kind {
	case KindBus:
		v, err := View[Bus](data)
		if err != nil {
			return kind, nil, err
		}
		return kind, v.Fields(), nil
	case KindProof:
		v, err := View[Proof](data)
		if err != nil {
			return kind, nil, err
		}
		return kind, v.Fields(), nil
	case KindTreasury:
		v, err := View[Treasury](data)
		if err != nil {
			return kind, nil, err
		}
		return kind, v.Fields(), nil
	default:
		return kind, nil, fmt.Errorf("%w: %d", ErrUnknownKind, tag)
	}
}
