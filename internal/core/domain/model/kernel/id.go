package kernel

import (
	"fmt"
	"strconv"

	"parceltrack/internal/pkg/errs"
)

// ID identifies an entity persisted by the remote authority. Identifiers are positive;
// the zero value stands for "not assigned yet".
type ID int64

// NewID validates a raw identifier received from outside the domain.
func NewID(raw int64) (ID, error) {
	id := ID(raw)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// ParseID parses the decimal form used in URLs and command-line arguments.
func ParseID(s string) (ID, error) {
	raw, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return NewID(raw)
}

// Validate reports whether the identifier was assigned by the remote authority.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a positive identifier", int64(id)))
	}
	return nil
}

// IsZero reports whether no identifier has been assigned.
func (id ID) IsZero() bool {
	return id == 0
}

func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// OptionalID converts a nullable identifier into a pointer, nil for zero.
func OptionalID(id ID) *ID {
	if id.IsZero() {
		return nil
	}
	return &id
}
