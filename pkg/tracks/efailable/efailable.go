package efailable

import (
	"fmt"

	"github.com/ib-77/tracks/pkg/tracks"
	"github.com/ib-77/tracks/pkg/tracks/internal/diagnostic"
)

type state uint8

const (
	unset state = iota
	success
	failure
)

type EFailable[T any, E error] struct {
	value   T
	failure E
	state   state
}

func raise[T any, E error](kind diagnostic.Kind) *diagnostic.Error {
	return diagnostic.Raise(kind, tracks.TypeName[T](), tracks.TypeName[E]())
}

func Success[T any, E error](v T) (EFailable[T, E], error) {
	if tracks.IsNil(v) {
		return EFailable[T, E]{}, raise[T, E](diagnostic.KindEFailableSuccessConstruction)
	}
	return EFailable[T, E]{value: v, state: success}, nil
}

func Failure[T any, E error](e E) (EFailable[T, E], error) {
	if tracks.IsNil(e) {
		return EFailable[T, E]{}, raise[T, E](diagnostic.KindEFailableFailureConstruction)
	}
	return EFailable[T, E]{failure: e, state: failure}, nil
}

func MustSuccess[T any, E error](v T) EFailable[T, E] {
	r, err := Success[T, E](v)
	if err != nil {
		panic(err)
	}
	return r
}

func MustFailure[T any, E error](e E) EFailable[T, E] {
	r, err := Failure[T](e)
	if err != nil {
		panic(err)
	}
	return r
}

// Wrap runs fn once and captures its outcome. A non-nil E, returned or
// panicked with, becomes the Failure as is; otherwise the result becomes
// the Success. Panics with any other value propagate unchanged.
// Wrap fails only when fn is nil, or when fn returns a nil result
// without an error.
func Wrap[T any, E error](fn func() (T, E)) (result EFailable[T, E], err error) {
	if fn == nil {
		return EFailable[T, E]{}, raise[T, E](diagnostic.KindEFailableWrapConstruction)
	}

	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(E)
			if !ok || tracks.IsNil(e) {
				panic(r)
			}
			result, err = EFailable[T, E]{failure: e, state: failure}, nil
		}
	}()

	v, e := fn()
	if !tracks.IsNil(e) {
		return EFailable[T, E]{failure: e, state: failure}, nil
	}
	return Success[T, E](v)
}

func (r EFailable[T, E]) IsSuccess() bool {
	return r.state == success
}

func (r EFailable[T, E]) IsFailure() bool {
	return r.state == failure
}

// Value returns the Success value. On a Failure the error is the stored E
// itself, not a diagnostic.
func (r EFailable[T, E]) Value() (T, error) {
	var zero T
	switch r.state {
	case success:
		return r.value, nil
	case failure:
		return zero, r.failure
	}
	return zero, raise[T, E](diagnostic.KindEFailableValueAccess)
}

// MustValue returns the Success value or panics with the stored E.
func (r EFailable[T, E]) MustValue() T {
	v, err := r.Value()
	if err != nil {
		panic(err)
	}
	return v
}

// FailureValue returns the stored E, or a diag.KindEFailableFailureAccess
// fault when r is not a Failure.
func (r EFailable[T, E]) FailureValue() (E, error) {
	if r.state != failure {
		var zero E
		return zero, raise[T, E](diagnostic.KindEFailableFailureAccess)
	}
	return r.failure, nil
}

func (r EFailable[T, E]) MustFailureValue() E {
	e, err := r.FailureValue()
	if err != nil {
		panic(err)
	}
	return e
}

// Err returns the stored E as an error, or nil unless r is a Failure.
func (r EFailable[T, E]) Err() error {
	if r.state != failure {
		return nil
	}
	return r.failure
}

func (r EFailable[T, E]) ValueOr(def T) T {
	if r.state != success {
		return def
	}
	return r.value
}

func (r EFailable[T, E]) Equal(other EFailable[T, E]) bool {
	if r.state != other.state {
		return false
	}
	switch r.state {
	case success:
		return tracks.Equal(r.value, other.value)
	case failure:
		return tracks.Equal(r.failure, other.failure)
	}
	return true
}

func (r EFailable[T, E]) Variant() string {
	switch r.state {
	case success:
		return tracks.VariantSuccess
	case failure:
		return tracks.VariantFailure
	}
	return tracks.VariantUnset
}

func (r EFailable[T, E]) String() string {
	switch r.state {
	case success:
		return fmt.Sprintf("Success(%v)", r.value)
	case failure:
		return fmt.Sprintf("Failure(%v)", r.failure.Error())
	}
	return "Unset"
}
