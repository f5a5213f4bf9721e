// Package diag is the diagnostic taxonomy shared by all container packages.
//
// Every contract violation is an *Error with a leaf Kind. Each Kind belongs
// to one Family (the container) and one Phase (construction or access), so
// a handler can catch at any depth:
//
//	errors.Is(err, diag.KindNoValue)     // exact leaf
//	errors.Is(err, diag.ErrMaybeAccess)  // family and phase
//	errors.Is(err, diag.ErrMaybe)        // whole family
//	errors.Is(err, diag.ErrConstruction) // phase, across families
//
// or take the error apart with errors.As and switch on Kind.
//
// Errors are raised only by the container packages. Reconstruct exists for
// codecs that rebuild a diagnostic after it crossed a wire boundary.
package diag
