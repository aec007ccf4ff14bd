package kernel

import (
	"strings"

	"github.com/sheronjay/supply-chain-management-sys/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrIDIsNotConstructed indicates a zero-value ID that was not created through
// NewID or NewGeneratedID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or NewGeneratedID")

// ID is a value object for entity identifiers. It wraps a non-empty string
// and is immutable; the zero value is invalid.
type ID struct {
	value string
}

// NewID creates an ID from its string form. Leading and trailing whitespace is
// rejected rather than trimmed, since identifiers are exact keys.
func NewID(value string) (ID, error) {
	if value == "" {
		return ID{}, errs.NewValueIsRequiredError("id")
	}
	if strings.TrimSpace(value) != value {
		return ID{}, errs.NewValueIsInvalidError("id")
	}
	return ID{value: value}, nil
}

// NewGeneratedID issues a fresh identifier with the given prefix, e.g.
// NewGeneratedID("ORD") -> "ORD-6ba7b810-…". Used when an entity is created
// inside this system rather than referenced from outside.
func NewGeneratedID(prefix string) ID {
	if prefix == "" {
		return ID{value: uuid.NewString()}
	}
	return ID{value: prefix + "-" + uuid.NewString()}
}

// String returns the identifier's string form.
func (id ID) String() string {
	return id.value
}

// IsEqual reports whether two IDs refer to the same entity.
func (id ID) IsEqual(other ID) bool {
	return id.value == other.value
}

// IsZero reports whether the ID is the invalid zero value.
func (id ID) IsZero() bool {
	return id.value == ""
}

// Validate returns ErrIDIsNotConstructed for a zero-value ID.
func (id ID) Validate() error {
	if id.value == "" {
		return ErrIDIsNotConstructed
	}
	return nil
}
