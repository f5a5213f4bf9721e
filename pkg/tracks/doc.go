// Package tracks holds what every container package shares: the nil guard
// that protects payload-bearing variants, type naming for diagnostics,
// payload equality, and the {variant, value} wire envelope.
//
// The containers themselves live in sub-packages:
// - maybe: Present(value) or Absent
// - option: Primary(value) or Alternate(failure value)
// - failable: Success(value) or Failure(failure value)
// - efailable: Success(value) or Failure(error), with Wrap over a computation
// - validation: Valid or Invalid(failure value)
// - evalidation: Valid or Invalid(error), with Wrap over a computation
//
// Contract violations are reported as *diag.Error values, see package diag.
package tracks
