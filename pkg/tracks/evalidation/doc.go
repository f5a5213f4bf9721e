// Package evalidation provides EValidation[E]: Valid, or Invalid with an
// error of type E.
//
// Wrap runs a check once: a normal return is Valid, an E returned or
// panicked with is Invalid and is kept as the very same value.
package evalidation
