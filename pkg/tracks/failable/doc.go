// Package failable provides Failable[T, F], the outcome of a computation:
// Success with a value of type T, or Failure with a failure value of type F.
//
// Shape and guards match package option, but faults come from the
// Failable family (diag.ErrFailable) so a handler can tell a failed
// outcome access from an option access.
package failable
