// Package validation provides Validation[F]: Valid, carrying nothing, or
// Invalid with a failure value of type F. The zero Validation is Valid.
package validation
