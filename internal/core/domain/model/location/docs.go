// Package location provides the Location entity: a unique physical address that
// delivery steps visit.
//
// Key business rules:
//   - A Location is identified by a generated id; equality ignores every other field
//   - Names may contain only letters, digits, spaces and & ' . , - (see IsValidName)
//   - Types must belong to the configured reference.LocationTypes
//   - Each delivery id is recorded at most once; the delivery count never goes below zero
//
// Rejected names and types unwrap to ErrInvalidName and ErrInvalidType as well as
// errs.ErrValueIsInvalid.
package location
