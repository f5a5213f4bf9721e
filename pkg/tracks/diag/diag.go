package diag

import (
	"github.com/ib-77/tracks/pkg/tracks/internal/diagnostic"
	"go.uber.org/zap"
)

type (
	Error   = diagnostic.Error
	Kind    = diagnostic.Kind
	Family  = diagnostic.Family
	Phase   = diagnostic.Phase
	Class   = diagnostic.Class
	Carried = diagnostic.Carried
)

const (
	FamilyAny         = diagnostic.FamilyAny
	FamilyMaybe       = diagnostic.FamilyMaybe
	FamilyOption      = diagnostic.FamilyOption
	FamilyFailable    = diagnostic.FamilyFailable
	FamilyEFailable   = diagnostic.FamilyEFailable
	FamilyValidation  = diagnostic.FamilyValidation
	FamilyEValidation = diagnostic.FamilyEValidation
)

const (
	PhaseAny          = diagnostic.PhaseAny
	PhaseConstruction = diagnostic.PhaseConstruction
	PhaseAccess       = diagnostic.PhaseAccess
)

const (
	KindUnknown = diagnostic.KindUnknown

	KindSomeConstruction = diagnostic.KindSomeConstruction
	KindNoValue          = diagnostic.KindNoValue

	KindOptionPrimaryConstruction   = diagnostic.KindOptionPrimaryConstruction
	KindOptionAlternateConstruction = diagnostic.KindOptionAlternateConstruction
	KindOptionNoValue               = diagnostic.KindOptionNoValue
	KindOptionNoFailure             = diagnostic.KindOptionNoFailure

	KindFailableSuccessConstruction = diagnostic.KindFailableSuccessConstruction
	KindFailableFailureConstruction = diagnostic.KindFailableFailureConstruction
	KindFailableValueAccess         = diagnostic.KindFailableValueAccess
	KindFailableFailureAccess       = diagnostic.KindFailableFailureAccess

	KindEFailableSuccessConstruction = diagnostic.KindEFailableSuccessConstruction
	KindEFailableFailureConstruction = diagnostic.KindEFailableFailureConstruction
	KindEFailableWrapConstruction    = diagnostic.KindEFailableWrapConstruction
	KindEFailableValueAccess         = diagnostic.KindEFailableValueAccess
	KindEFailableFailureAccess       = diagnostic.KindEFailableFailureAccess

	KindValidationFailureConstruction = diagnostic.KindValidationFailureConstruction
	KindValidationNoFailure           = diagnostic.KindValidationNoFailure

	KindEValidationFailureConstruction = diagnostic.KindEValidationFailureConstruction
	KindEValidationWrapConstruction    = diagnostic.KindEValidationWrapConstruction
	KindEValidationNoFailure           = diagnostic.KindEValidationNoFailure
)

// Roots of the taxonomy.
var (
	ErrAny          error = Class{}
	ErrConstruction error = Class{Phase: PhaseConstruction}
	ErrAccess       error = Class{Phase: PhaseAccess}

	ErrMaybe             error = Class{Family: FamilyMaybe}
	ErrMaybeConstruction error = Class{Family: FamilyMaybe, Phase: PhaseConstruction}
	ErrMaybeAccess       error = Class{Family: FamilyMaybe, Phase: PhaseAccess}

	ErrOption             error = Class{Family: FamilyOption}
	ErrOptionConstruction error = Class{Family: FamilyOption, Phase: PhaseConstruction}
	ErrOptionAccess       error = Class{Family: FamilyOption, Phase: PhaseAccess}

	ErrFailable             error = Class{Family: FamilyFailable}
	ErrFailableConstruction error = Class{Family: FamilyFailable, Phase: PhaseConstruction}
	ErrFailableAccess       error = Class{Family: FamilyFailable, Phase: PhaseAccess}

	ErrEFailable             error = Class{Family: FamilyEFailable}
	ErrEFailableConstruction error = Class{Family: FamilyEFailable, Phase: PhaseConstruction}
	ErrEFailableAccess       error = Class{Family: FamilyEFailable, Phase: PhaseAccess}

	ErrValidation             error = Class{Family: FamilyValidation}
	ErrValidationConstruction error = Class{Family: FamilyValidation, Phase: PhaseConstruction}
	ErrValidationAccess       error = Class{Family: FamilyValidation, Phase: PhaseAccess}

	ErrEValidation             error = Class{Family: FamilyEValidation}
	ErrEValidationConstruction error = Class{Family: FamilyEValidation, Phase: PhaseConstruction}
	ErrEValidationAccess       error = Class{Family: FamilyEValidation, Phase: PhaseAccess}
)

// Reconstruct rebuilds a diagnostic from its (message, cause) pair. It is
// meant for wire codecs only; containers raise their own diagnostics.
func Reconstruct(kind Kind, message string, cause error) *Error {
	return diagnostic.Reconstruct(kind, message, cause)
}

// Carry rebuilds an error payload from its (message, cause) pair.
func Carry(message string, cause error) *Carried {
	return diagnostic.Carry(message, cause)
}

// CarryError flattens err and its Unwrap chain into a Carried.
func CarryError(err error) *Carried {
	return diagnostic.CarryError(err)
}

func ParseKind(s string) (Kind, error) {
	return diagnostic.ParseKind(s)
}

func Kinds() []Kind {
	return diagnostic.Kinds()
}

// As returns the diagnostic in err's chain, if any.
func As(err error) (*Error, bool) {
	return diagnostic.As(err)
}

// Report logs err at error level on logger.
func Report(logger *zap.Logger, err error) {
	diagnostic.Report(logger, err)
}
