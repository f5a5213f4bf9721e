package maybe

import (
	"fmt"

	"github.com/ib-77/tracks/pkg/tracks"
	"github.com/ib-77/tracks/pkg/tracks/internal/diagnostic"
)

type Maybe[T any] struct {
	value   T
	present bool
}

// Present wraps v. It fails if v is nil.
func Present[T any](v T) (Maybe[T], error) {
	if tracks.IsNil(v) {
		return Maybe[T]{}, diagnostic.Raise(diagnostic.KindSomeConstruction, tracks.TypeName[T]())
	}
	return Maybe[T]{value: v, present: true}, nil
}

// MustPresent is Present that panics with the construction fault.
func MustPresent[T any](v T) Maybe[T] {
	m, err := Present(v)
	if err != nil {
		panic(err)
	}
	return m
}

func Absent[T any]() Maybe[T] {
	return Maybe[T]{}
}

// FromPointer is Present(*p), or Absent when p is nil.
func FromPointer[T any](p *T) Maybe[T] {
	if p == nil {
		return Absent[T]()
	}
	m, err := Present(*p)
	if err != nil {
		return Absent[T]()
	}
	return m
}

func (m Maybe[T]) IsPresent() bool {
	return m.present
}

func (m Maybe[T]) IsAbsent() bool {
	return !m.present
}

// Value returns the payload, or a diag.KindNoValue fault when Absent.
func (m Maybe[T]) Value() (T, error) {
	if !m.present {
		var zero T
		return zero, diagnostic.Raise(diagnostic.KindNoValue, tracks.TypeName[T]())
	}
	return m.value, nil
}

func (m Maybe[T]) MustValue() T {
	v, err := m.Value()
	if err != nil {
		panic(err)
	}
	return v
}

// ValueOr returns the payload, or def when Absent.
func (m Maybe[T]) ValueOr(def T) T {
	if !m.present {
		return def
	}
	return m.value
}

func (m Maybe[T]) Equal(other Maybe[T]) bool {
	if m.present != other.present {
		return false
	}
	return !m.present || tracks.Equal(m.value, other.value)
}

func (m Maybe[T]) Variant() string {
	if m.present {
		return tracks.VariantPresent
	}
	return tracks.VariantAbsent
}

func (m Maybe[T]) String() string {
	if m.present {
		return fmt.Sprintf("Present(%v)", m.value)
	}
	return "Absent"
}
