package diagnostic

import "fmt"

// Family names the container whose contract was violated.
type Family uint8

const (
	FamilyAny Family = iota
	FamilyMaybe
	FamilyOption
	FamilyFailable
	FamilyEFailable
	FamilyValidation
	FamilyEValidation
)

var familyNames = [...]string{
	FamilyAny:         "any",
	FamilyMaybe:       "maybe",
	FamilyOption:      "option",
	FamilyFailable:    "failable",
	FamilyEFailable:   "efailable",
	FamilyValidation:  "validation",
	FamilyEValidation: "evalidation",
}

func (f Family) String() string {
	if int(f) < len(familyNames) {
		return familyNames[f]
	}
	return fmt.Sprintf("Family(%d)", f)
}

// Phase tells construction faults from access faults.
type Phase uint8

const (
	PhaseAny Phase = iota
	PhaseConstruction
	PhaseAccess
)

func (p Phase) String() string {
	switch p {
	case PhaseAny:
		return "any"
	case PhaseConstruction:
		return "construction"
	case PhaseAccess:
		return "access"
	}
	return fmt.Sprintf("Phase(%d)", p)
}

// Kind is the leaf identity of a contract violation. Kind implements error
// so that errors.Is(err, KindNoValue) matches the exact leaf.
type Kind uint16

const (
	KindUnknown Kind = iota

	KindSomeConstruction
	KindNoValue

	KindOptionPrimaryConstruction
	KindOptionAlternateConstruction
	KindOptionNoValue
	KindOptionNoFailure

	KindFailableSuccessConstruction
	KindFailableFailureConstruction
	KindFailableValueAccess
	KindFailableFailureAccess

	KindEFailableSuccessConstruction
	KindEFailableFailureConstruction
	KindEFailableWrapConstruction
	KindEFailableValueAccess
	KindEFailableFailureAccess

	KindValidationFailureConstruction
	KindValidationNoFailure

	KindEValidationFailureConstruction
	KindEValidationWrapConstruction
	KindEValidationNoFailure

	kindCount
)

type kindInfo struct {
	family Family
	phase  Phase
	name   string
	// format takes one %s per type parameter of the container
	format string
	arity  int
}

var kinds = [kindCount]kindInfo{
	KindUnknown: {FamilyAny, PhaseAny, "UnknownError", "unknown container contract violation", 0},

	KindSomeConstruction: {FamilyMaybe, PhaseConstruction, "SomeConstructionError",
		"cannot construct Present of Maybe[%s] from a nil value", 1},
	KindNoValue: {FamilyMaybe, PhaseAccess, "NoValueError",
		"Maybe[%s] is Absent: no value present", 1},

	KindOptionPrimaryConstruction: {FamilyOption, PhaseConstruction, "PrimaryConstructionError",
		"cannot construct Primary of Option[%s, %s] from a nil value", 2},
	KindOptionAlternateConstruction: {FamilyOption, PhaseConstruction, "AlternateConstructionError",
		"cannot construct Alternate of Option[%s, %s] from a nil failure value", 2},
	KindOptionNoValue: {FamilyOption, PhaseAccess, "NoValueError",
		"Option[%s, %s] is not Primary: no value present", 2},
	KindOptionNoFailure: {FamilyOption, PhaseAccess, "NoFailureError",
		"Option[%s, %s] is not Alternate: no failure value present", 2},

	KindFailableSuccessConstruction: {FamilyFailable, PhaseConstruction, "SuccessConstructionError",
		"cannot construct Success of Failable[%s, %s] from a nil value", 2},
	KindFailableFailureConstruction: {FamilyFailable, PhaseConstruction, "FailureConstructionError",
		"cannot construct Failure of Failable[%s, %s] from a nil failure value", 2},
	KindFailableValueAccess: {FamilyFailable, PhaseAccess, "ValueAccessError",
		"Failable[%s, %s] is not Success: cannot access value", 2},
	KindFailableFailureAccess: {FamilyFailable, PhaseAccess, "FailureAccessError",
		"Failable[%s, %s] is not Failure: cannot access failure value", 2},

	KindEFailableSuccessConstruction: {FamilyEFailable, PhaseConstruction, "SuccessConstructionError",
		"cannot construct Success of EFailable[%s, %s] from a nil value", 2},
	KindEFailableFailureConstruction: {FamilyEFailable, PhaseConstruction, "FailureConstructionError",
		"cannot construct Failure of EFailable[%s, %s] from a nil error", 2},
	KindEFailableWrapConstruction: {FamilyEFailable, PhaseConstruction, "WrapConstructionError",
		"cannot wrap a nil computation into EFailable[%s, %s]", 2},
	KindEFailableValueAccess: {FamilyEFailable, PhaseAccess, "ValueAccessError",
		"EFailable[%s, %s] is unset: neither value nor error present", 2},
	KindEFailableFailureAccess: {FamilyEFailable, PhaseAccess, "FailureAccessError",
		"EFailable[%s, %s] is not Failure: cannot access error", 2},

	KindValidationFailureConstruction: {FamilyValidation, PhaseConstruction, "FailureConstructionError",
		"cannot construct Invalid of Validation[%s] from a nil failure value", 1},
	KindValidationNoFailure: {FamilyValidation, PhaseAccess, "NoFailureError",
		"Validation[%s] is Valid: no failure value present", 1},

	KindEValidationFailureConstruction: {FamilyEValidation, PhaseConstruction, "FailureConstructionError",
		"cannot construct Invalid of EValidation[%s] from a nil error", 1},
	KindEValidationWrapConstruction: {FamilyEValidation, PhaseConstruction, "WrapConstructionError",
		"cannot wrap a nil computation into EValidation[%s]", 1},
	KindEValidationNoFailure: {FamilyEValidation, PhaseAccess, "NoFailureError",
		"EValidation[%s] is Valid: no error present", 1},
}

func (k Kind) info() kindInfo {
	if k < kindCount {
		return kinds[k]
	}
	return kinds[KindUnknown]
}

func (k Kind) Family() Family { return k.info().family }

func (k Kind) Phase() Phase { return k.info().phase }

// Name is the leaf name without family, e.g. "NoValueError".
func (k Kind) Name() string { return k.info().name }

func (k Kind) known() bool {
	return k > KindUnknown && k < kindCount
}

// String is the stable wire identity of the kind, e.g. "maybe.NoValueError".
func (k Kind) String() string {
	if !k.known() {
		return kinds[KindUnknown].name
	}
	return k.Family().String() + "." + k.Name()
}

func (k Kind) Error() string { return k.String() }

// Arity is the number of type names the kind's message takes.
func (k Kind) Arity() int { return k.info().arity }

// Kinds lists every leaf kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := KindUnknown + 1; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// ParseKind is the inverse of Kind.String. It accepts the name of
// KindUnknown, so that an unknown-kind diagnostic survives a round trip.
func ParseKind(s string) (Kind, error) {
	for k := KindUnknown; k < kindCount; k++ {
		if k.String() == s {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("diag: unknown kind %q", s)
}
