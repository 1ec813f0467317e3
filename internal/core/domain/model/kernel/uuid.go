package kernel

import (
	"fmt"

	"printflow/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned by Validate for the zero UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies orders, batches, catalog entries and users. It wraps
// github.com/google/uuid so that the zero value can be told apart from a
// constructed identifier; outside the domain it travels as its string form.
type UUID struct {
	id uuid.UUID
}

// NewUUID returns a random (version 4) identifier.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses the canonical, braced, urn or hyphenless forms.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes builds a UUID from 16 raw bytes, as stored by postgres uuid columns.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}

	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}
	return newID, nil
}

// ParseUUIDs converts a list of opaque identifiers received from a caller.
// Every malformed entry is reported under paramName.
func ParseUUIDs(paramName string, raw []string) ([]UUID, error) {
	ids := make([]UUID, 0, len(raw))
	for i, s := range raw {
		id, err := UUIDFromString(s)
		if err == nil {
			err = id.Validate()
		}
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("%s[%d]", paramName, i),
				fmt.Errorf("%q is not a valid identifier", s),
			)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// String returns the canonical hyphenated form.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes exposes the wrapped google UUID for persistence adapters.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate rejects the nil UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
