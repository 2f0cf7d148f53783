// Package errs provides the typed errors shared by the gigdelivery domain packages.
//
// Each error type pairs a sentinel with a struct carrying the offending parameter:
//   - IDIsInvalidError (ErrIDIsInvalid): an identifier is not a well-formed token
//   - IDAlreadyExistsError (ErrIDAlreadyExists): an identifier is already registered
//   - IDNotFoundError (ErrIDNotFound): an identifier was expected but is absent
//   - ValueIsInvalidError (ErrValueIsInvalid): a value breaks a business rule
//   - ValueIsRequiredError (ErrValueIsRequired): a mandatory value is missing
//
// Every struct unwraps to its sentinel and, when present, to its Cause. Domain
// packages put their own sentinels (for example location.ErrInvalidName) into the
// cause, so errors.Is answers both "what kind of failure" and "which rule".
package errs
