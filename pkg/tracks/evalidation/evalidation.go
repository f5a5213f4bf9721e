package evalidation

import (
	"github.com/ib-77/tracks/pkg/tracks"
	"github.com/ib-77/tracks/pkg/tracks/internal/diagnostic"
)

type EValidation[E error] struct {
	failure E
	invalid bool
}

func Valid[E error]() EValidation[E] {
	return EValidation[E]{}
}

// Invalid wraps e. It fails if e is nil.
func Invalid[E error](e E) (EValidation[E], error) {
	if tracks.IsNil(e) {
		return EValidation[E]{}, diagnostic.Raise(diagnostic.KindEValidationFailureConstruction, tracks.TypeName[E]())
	}
	return EValidation[E]{failure: e, invalid: true}, nil
}

func MustInvalid[E error](e E) EValidation[E] {
	v, err := Invalid(e)
	if err != nil {
		panic(err)
	}
	return v
}

// Wrap runs check once. A nil result is Valid; a non-nil E, returned or
// panicked with, is Invalid. Panics with any other value propagate.
func Wrap[E error](check func() E) (result EValidation[E], err error) {
	if check == nil {
		return EValidation[E]{}, diagnostic.Raise(diagnostic.KindEValidationWrapConstruction, tracks.TypeName[E]())
	}

	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(E)
			if !ok || tracks.IsNil(e) {
				panic(r)
			}
			result, err = EValidation[E]{failure: e, invalid: true}, nil
		}
	}()

	if e := check(); !tracks.IsNil(e) {
		return EValidation[E]{failure: e, invalid: true}, nil
	}
	return Valid[E](), nil
}

func (v EValidation[E]) IsValid() bool {
	return !v.invalid
}

func (v EValidation[E]) IsInvalid() bool {
	return v.invalid
}

// FailureValue returns the stored E, or a diag.KindEValidationNoFailure
// fault when v is Valid.
func (v EValidation[E]) FailureValue() (E, error) {
	if !v.invalid {
		var zero E
		return zero, diagnostic.Raise(diagnostic.KindEValidationNoFailure, tracks.TypeName[E]())
	}
	return v.failure, nil
}

func (v EValidation[E]) MustFailureValue() E {
	e, err := v.FailureValue()
	if err != nil {
		panic(err)
	}
	return e
}

// Err returns the stored E, or nil when v is Valid.
func (v EValidation[E]) Err() error {
	if !v.invalid {
		return nil
	}
	return v.failure
}

func (v EValidation[E]) Equal(other EValidation[E]) bool {
	if v.invalid != other.invalid {
		return false
	}
	return !v.invalid || tracks.Equal(v.failure, other.failure)
}

func (v EValidation[E]) Variant() string {
	if v.invalid {
		return tracks.VariantInvalid
	}
	return tracks.VariantValid
}

func (v EValidation[E]) String() string {
	if v.invalid {
		return "Invalid(" + v.failure.Error() + ")"
	}
	return "Valid"
}
