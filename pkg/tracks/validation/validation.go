package validation

import (
	"fmt"

	"github.com/ib-77/tracks/pkg/tracks"
	"github.com/ib-77/tracks/pkg/tracks/internal/diagnostic"
)

type Validation[F any] struct {
	failure F
	invalid bool
}

func Valid[F any]() Validation[F] {
	return Validation[F]{}
}

// Invalid wraps the failure value f. It fails if f is nil.
func Invalid[F any](f F) (Validation[F], error) {
	if tracks.IsNil(f) {
		return Validation[F]{}, diagnostic.Raise(diagnostic.KindValidationFailureConstruction, tracks.TypeName[F]())
	}
	return Validation[F]{failure: f, invalid: true}, nil
}

func MustInvalid[F any](f F) Validation[F] {
	v, err := Invalid(f)
	if err != nil {
		panic(err)
	}
	return v
}

func (v Validation[F]) IsValid() bool {
	return !v.invalid
}

func (v Validation[F]) IsInvalid() bool {
	return v.invalid
}

// FailureValue returns the failure value, or a diag.KindValidationNoFailure
// fault when v is Valid.
func (v Validation[F]) FailureValue() (F, error) {
	if !v.invalid {
		var zero F
		return zero, diagnostic.Raise(diagnostic.KindValidationNoFailure, tracks.TypeName[F]())
	}
	return v.failure, nil
}

func (v Validation[F]) MustFailureValue() F {
	f, err := v.FailureValue()
	if err != nil {
		panic(err)
	}
	return f
}

func (v Validation[F]) Equal(other Validation[F]) bool {
	if v.invalid != other.invalid {
		return false
	}
	return !v.invalid || tracks.Equal(v.failure, other.failure)
}

func (v Validation[F]) Variant() string {
	if v.invalid {
		return tracks.VariantInvalid
	}
	return tracks.VariantValid
}

func (v Validation[F]) String() string {
	if v.invalid {
		return fmt.Sprintf("Invalid(%v)", v.failure)
	}
	return "Valid"
}
