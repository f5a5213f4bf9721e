// Package maybe provides Maybe[T], a value that is either Present or Absent.
//
// Present never holds a nil reference: Present(nil) fails with
// diag.KindSomeConstruction. Value on an Absent Maybe fails with
// diag.KindNoValue naming T. The zero Maybe is Absent.
package maybe
