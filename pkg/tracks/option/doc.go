// Package option provides Option[T, F], holding either a Primary value of
// type T or an Alternate failure value of type F.
//
// Neither payload may be nil. Reading the payload of the other variant
// fails with diag.KindOptionNoValue or diag.KindOptionNoFailure, both
// naming T and F. The zero Option is unset: it is neither Primary nor
// Alternate and both accessors fail.
package option
