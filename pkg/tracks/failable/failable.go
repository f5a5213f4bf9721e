package failable

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

type Failable[T, F any] struct {
	value   T
	failure F
	state   state
}

func raise[T, F any](kind diagnostic.Kind) *diagnostic.Error {
	return diagnostic.Raise(kind, tracks.TypeName[T](), tracks.TypeName[F]())
}

func Success[T, F any](v T) (Failable[T, F], error) {
	if tracks.IsNil(v) {
		return Failable[T, F]{}, raise[T, F](diagnostic.KindFailableSuccessConstruction)
	}
	return Failable[T, F]{value: v, state: success}, nil
}

func Failure[T, F any](f F) (Failable[T, F], error) {
	if tracks.IsNil(f) {
		return Failable[T, F]{}, raise[T, F](diagnostic.KindFailableFailureConstruction)
	}
	return Failable[T, F]{failure: f, state: failure}, nil
}

func MustSuccess[T, F any](v T) Failable[T, F] {
	r, err := Success[T, F](v)
	if err != nil {
		panic(err)
	}
	return r
}

func MustFailure[T, F any](f F) Failable[T, F] {
	r, err := Failure[T](f)
	if err != nil {
		panic(err)
	}
	return r
}

func (r Failable[T, F]) IsSuccess() bool {
	return r.state == success
}

func (r Failable[T, F]) IsFailure() bool {
	return r.state == failure
}

// Value returns the Success value, or a diag.KindFailableValueAccess fault.
func (r Failable[T, F]) Value() (T, error) {
	if r.state != success {
		var zero T
		return zero, raise[T, F](diagnostic.KindFailableValueAccess)
	}
	return r.value, nil
}

// FailureValue returns the Failure value, or a diag.KindFailableFailureAccess fault.
func (r Failable[T, F]) FailureValue() (F, error) {
	if r.state != failure {
		var zero F
		return zero, raise[T, F](diagnostic.KindFailableFailureAccess)
	}
	return r.failure, nil
}

func (r Failable[T, F]) MustValue() T {
	v, err := r.Value()
	if err != nil {
		panic(err)
	}
	return v
}

func (r Failable[T, F]) MustFailureValue() F {
	f, err := r.FailureValue()
	if err != nil {
		panic(err)
	}
	return f
}

func (r Failable[T, F]) ValueOr(def T) T {
	if r.state != success {
		return def
	}
	return r.value
}

func (r Failable[T, F]) Equal(other Failable[T, F]) bool {
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

func (r Failable[T, F]) Variant() string {
	switch r.state {
	case success:
		return tracks.VariantSuccess
	case failure:
		return tracks.VariantFailure
	}
	return tracks.VariantUnset
}

func (r Failable[T, F]) String() string {
	switch r.state {
	case success:
		return fmt.Sprintf("Success(%v)", r.value)
	case failure:
		return fmt.Sprintf("Failure(%v)", r.failure)
	}
	return "Unset"
}
