package option

import (
	"fmt"

	"github.com/ib-77/tracks/pkg/tracks"
	"github.com/ib-77/tracks/pkg/tracks/internal/diagnostic"
)

type variant uint8

const (
	unset variant = iota
	primary
	alternate
)

type Option[T, F any] struct {
	value   T
	failure F
	variant variant
}

func raise[T, F any](kind diagnostic.Kind) *diagnostic.Error {
	return diagnostic.Raise(kind, tracks.TypeName[T](), tracks.TypeName[F]())
}

// Primary wraps v. It fails if v is nil.
func Primary[T, F any](v T) (Option[T, F], error) {
	if tracks.IsNil(v) {
		return Option[T, F]{}, raise[T, F](diagnostic.KindOptionPrimaryConstruction)
	}
	return Option[T, F]{value: v, variant: primary}, nil
}

// Alternate wraps the failure value f. It fails if f is nil.
func Alternate[T, F any](f F) (Option[T, F], error) {
	if tracks.IsNil(f) {
		return Option[T, F]{}, raise[T, F](diagnostic.KindOptionAlternateConstruction)
	}
	return Option[T, F]{failure: f, variant: alternate}, nil
}

func MustPrimary[T, F any](v T) Option[T, F] {
	o, err := Primary[T, F](v)
	if err != nil {
		panic(err)
	}
	return o
}

func MustAlternate[T, F any](f F) Option[T, F] {
	o, err := Alternate[T](f)
	if err != nil {
		panic(err)
	}
	return o
}

func (o Option[T, F]) IsPrimary() bool {
	return o.variant == primary
}

func (o Option[T, F]) IsAlternate() bool {
	return o.variant == alternate
}

func (o Option[T, F]) Value() (T, error) {
	if o.variant != primary {
		var zero T
		return zero, raise[T, F](diagnostic.KindOptionNoValue)
	}
	return o.value, nil
}

func (o Option[T, F]) FailureValue() (F, error) {
	if o.variant != alternate {
		var zero F
		return zero, raise[T, F](diagnostic.KindOptionNoFailure)
	}
	return o.failure, nil
}

func (o Option[T, F]) MustValue() T {
	v, err := o.Value()
	if err != nil {
		panic(err)
	}
	return v
}

func (o Option[T, F]) MustFailureValue() F {
	f, err := o.FailureValue()
	if err != nil {
		panic(err)
	}
	return f
}

// ValueOr returns the Primary value, or def otherwise.
func (o Option[T, F]) ValueOr(def T) T {
	if o.variant != primary {
		return def
	}
	return o.value
}

func (o Option[T, F]) Equal(other Option[T, F]) bool {
	if o.variant != other.variant {
		return false
	}
	switch o.variant {
	case primary:
		return tracks.Equal(o.value, other.value)
	case alternate:
		return tracks.Equal(o.failure, other.failure)
	}
	return true
}

func (o Option[T, F]) Variant() string {
	switch o.variant {
	case primary:
		return tracks.VariantPrimary
	case alternate:
		return tracks.VariantAlternate
	}
	return tracks.VariantUnset
}

func (o Option[T, F]) String() string {
	switch o.variant {
	case primary:
		return fmt.Sprintf("Primary(%v)", o.value)
	case alternate:
		return fmt.Sprintf("Alternate(%v)", o.failure)
	}
	return "Unset"
}
