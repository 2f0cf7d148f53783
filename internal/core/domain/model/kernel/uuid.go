package kernel

import (
	"gigdelivery/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID.
// It matches errs.ErrIDIsInvalid, which is how callers recognise a malformed identifier.
var ErrUUIDIsNotConstructed = errs.NewIDIsInvalidError("uuid", uuid.Nil.String())

// UUID is the opaque identifier used for locations, deliveries, delivery steps and shifts.
// It wraps github.com/google/uuid so that the rest of the domain depends on a single
// value type with explicit equality.
//
// The zero value is not a valid identifier: every operation that accepts a UUID
// rejects it with an error matching errs.ErrIDIsInvalid. Build one with NewUUID,
// UUIDFromString or UUIDFromBytes.
//
// UUID is comparable and may be used as a map key.
//
//	id := kernel.NewUUID()
//	parsed, err := kernel.UUIDFromString(id.String())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(parsed.IsEqual(id)) // true
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random (version 4) UUID.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses the canonical, braced, URN and hyphen-less forms.
// Malformed input and the nil UUID both yield an error matching errs.ErrIDIsInvalid.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewIDIsInvalidErrorWithCause("uuid", s, err)
	}

	parsed := UUID{id: id}
	if err = parsed.Validate(); err != nil {
		return UUID{}, err
	}
	return parsed, nil
}

// UUIDFromBytes builds a UUID from exactly 16 bytes.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, errs.NewIDIsInvalidErrorWithCause("uuid", b, err)
	}

	parsed := UUID{id: id}
	if err = parsed.Validate(); err != nil {
		return UUID{}, err
	}
	return parsed, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying google/uuid value.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether both identifiers carry the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// IsZero reports whether u is the zero value.
func (u UUID) IsZero() bool {
	return u.id == uuid.Nil
}

// Validate returns ErrUUIDIsNotConstructed for the zero value.
func (u UUID) Validate() error {
	if u.IsZero() {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
