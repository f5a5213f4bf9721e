// Package efailable provides EFailable[T, E], the outcome of a computation
// whose failure is an error value of type E.
//
// It has the same guards as package failable plus two rules of its own:
// Wrap runs a computation once and captures its result or the E it
// returned or panicked with, and Value on a Failure returns the stored E
// itself rather than an access fault, so the original cause survives.
package efailable
