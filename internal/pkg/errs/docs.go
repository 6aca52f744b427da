// Package errs provides the typed errors shared by the quoting engine.
//
// Every error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrValueIsRequired) returned by Unwrap
//   - a struct carrying the offending parameter and an optional cause
//   - constructors with and without cause
//
// Callers classify failures with errors.Is against the sentinels and read the
// details through errors.As.
package errs
