package diagnostic

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// Error is a container contract violation. Its message is rendered once,
// when the error is raised.
type Error struct {
	kind  Kind
	msg   string
	types []string
	id    uuid.UUID
	cause error
}

// Raise builds the diagnostic for kind, naming the container's type
// parameters in the message. Only container packages call it.
func Raise(kind Kind, typeNames ...string) *Error {
	return &Error{
		kind:  kind,
		msg:   render(kind, typeNames),
		types: typeNames,
		id:    uuid.New(),
	}
}

// Reconstruct rebuilds a diagnostic from its message and cause after it
// crossed a wire boundary. A kind outside the table becomes KindUnknown,
// which only the catch-all root matches.
func Reconstruct(kind Kind, message string, cause error) *Error {
	if !kind.known() {
		kind = KindUnknown
	}
	if message == "" {
		message = kind.String()
	}
	return &Error{
		kind:  kind,
		msg:   message,
		id:    uuid.New(),
		cause: cause,
	}
}

func render(kind Kind, typeNames []string) string {
	info := kind.info()
	args := make([]any, info.arity)
	for i := range args {
		if i < len(typeNames) {
			args[i] = typeNames[i]
		} else {
			args[i] = "?"
		}
	}
	return fmt.Sprintf(info.format, args...)
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Kind() Kind { return e.kind }

func (e *Error) Family() Family { return e.kind.Family() }

func (e *Error) Phase() Phase { return e.kind.Phase() }

// TypeNames returns the type parameters named in the message.
func (e *Error) TypeNames() []string { return slices.Clone(e.types) }

// ID identifies this particular raise, for correlating logs.
func (e *Error) ID() uuid.UUID { return e.id }

func (e *Error) Unwrap() error { return e.cause }

// Is matches the exact leaf (a Kind) or a root (a Class).
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case Kind:
		return e.kind == t
	case Class:
		return t.Contains(e.kind)
	}
	return false
}

// Class is a root of the taxonomy. A zero Family or Phase matches any.
//
//	errors.Is(err, Class{Family: FamilyMaybe})                     // any Maybe fault
//	errors.Is(err, Class{Phase: PhaseAccess})                      // any access fault
//	errors.Is(err, Class{Family: FamilyOption, Phase: PhaseAccess}) // Option access faults
type Class struct {
	Family Family
	Phase  Phase
}

func (c Class) Error() string {
	switch {
	case c.Family == FamilyAny && c.Phase == PhaseAny:
		return "container contract violation"
	case c.Family == FamilyAny:
		return c.Phase.String() + " fault"
	case c.Phase == PhaseAny:
		return c.Family.String() + " contract violation"
	}
	return c.Family.String() + " " + c.Phase.String() + " fault"
}

// Contains reports whether kind falls under this root. An unknown kind has
// neither family nor phase and falls only under the catch-all root.
func (c Class) Contains(kind Kind) bool {
	if !kind.known() {
		return c.Family == FamilyAny && c.Phase == PhaseAny
	}
	if c.Family != FamilyAny && c.Family != kind.Family() {
		return false
	}
	return c.Phase == PhaseAny || c.Phase == kind.Phase()
}

// As returns the diagnostic in err's chain, if any.
func As(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
