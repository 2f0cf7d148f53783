// Package reference holds the reference data the entities validate against.
package reference

import (
	"fmt"
	"slices"
	"strings"

	"gigdelivery/internal/pkg/errs"
	"gigdelivery/internal/pkg/guard"
)

// ErrLocationTypesIsNotConstructed is returned by Validate for a zero-value LocationTypes.
var ErrLocationTypesIsNotConstructed = errs.NewValueIsRequiredError(
	"location types must be created via NewLocationTypes or DefaultLocationTypes")

var defaultLocationTypeNames = []string{
	"Customer",
	"Grocery Store",
	"Restaurant",
	"Retail Store",
	"Convenience Store",
	"Pharmacy",
	"Warehouse",
	"Distribution Center",
	"Other",
}

// LocationTypes is the fixed set of location type names a Location may carry.
// It is an immutable value object; the zero value contains nothing and fails Validate.
type LocationTypes struct {
	names []string
	set   map[string]struct{}
	guard guard.ConstructorGuard
}

// NewLocationTypes builds a set from names, keeping first-seen order and dropping duplicates.
// At least one name is required and blank names are rejected. Matching is exact:
// "grocery store" is not a member of a set holding "Grocery Store".
func NewLocationTypes(names ...string) (LocationTypes, error) {
	if len(names) == 0 {
		return LocationTypes{}, errs.NewValueIsRequiredError("location types")
	}

	t := LocationTypes{
		names: make([]string, 0, len(names)),
		set:   make(map[string]struct{}, len(names)),
		guard: guard.NewConstructorGuard(),
	}
	for i, name := range names {
		if strings.TrimSpace(name) == "" {
			return LocationTypes{}, errs.NewValueIsInvalidErrorWithCause(
				"location types", fmt.Errorf("name at position %d is blank", i))
		}
		if _, ok := t.set[name]; ok {
			continue
		}
		t.set[name] = struct{}{}
		t.names = append(t.names, name)
	}

	return t, nil
}

// DefaultLocationTypes returns the built-in set used when nothing is configured.
func DefaultLocationTypes() LocationTypes {
	t, err := NewLocationTypes(defaultLocationTypeNames...)
	if err != nil {
		panic(err)
	}
	return t
}

// DefaultLocationTypeNames returns a copy of the built-in type names.
func DefaultLocationTypeNames() []string {
	return slices.Clone(defaultLocationTypeNames)
}

// Validate reports whether t was built by a constructor.
func (t LocationTypes) Validate() error {
	return t.guard.Validate(ErrLocationTypesIsNotConstructed)
}

// Contains reports whether name is an allowed location type.
func (t LocationTypes) Contains(name string) bool {
	_, ok := t.set[name]
	return ok
}

// Names returns the allowed names in configuration order.
func (t LocationTypes) Names() []string {
	return slices.Clone(t.names)
}

// Len returns the number of allowed names.
func (t LocationTypes) Len() int {
	return len(t.names)
}
