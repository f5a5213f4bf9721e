package tracks

import "fmt"

// Container is implemented by every container type.
type Container interface {
	fmt.Stringer
	// Variant returns the wire name of the active variant
	Variant() string
}

// ValueProvider is a container with a success-side payload.
type ValueProvider[T any] interface {
	Container
	// Value returns the payload or the error explaining why there is none
	Value() (T, error)
}

// FailureProvider is a container with a failure-side payload.
type FailureProvider[F any] interface {
	Container
	// FailureValue returns the failure payload or an access error
	FailureValue() (F, error)
}

// Outcome is a container holding either a value or a failure.
type Outcome[T, F any] interface {
	ValueProvider[T]
	FailureProvider[F]
}
