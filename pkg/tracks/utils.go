package tracks

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Variant names used by String, logging and the wire envelope.
const (
	VariantPresent   = "present"
	VariantAbsent    = "absent"
	VariantPrimary   = "primary"
	VariantAlternate = "alternate"
	VariantSuccess   = "success"
	VariantFailure   = "failure"
	VariantValid     = "valid"
	VariantInvalid   = "invalid"
	VariantUnset     = "unset"
)

// IsNil reports whether v is the forbidden sentinel: a nil interface or a nil
// pointer, map, slice, channel, func or unsafe pointer.
func IsNil[T any](v T) bool {
	return isNil(any(v))
}

func isNil(i any) bool {
	if i == nil {
		return true
	}
	rv := reflect.ValueOf(i)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func,
		reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// TypeName returns the Go name of T as used in diagnostic messages.
func TypeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

// payloadEquality compares unexported fields too and treats NaN as equal to
// itself, so that every payload equals itself.
var payloadEquality = []cmp.Option{
	cmpopts.EquateNaNs(),
	cmp.Exporter(func(reflect.Type) bool { return true }),
}

// Equal compares two payloads structurally. A payload type with an
// Equal(T) bool method decides for itself. Equal is reflexive: a NaN float,
// at the top or nested anywhere in the payload, equals itself.
func Equal[T any](a, b T) bool {
	if IsNil(a) || IsNil(b) {
		return IsNil(a) && IsNil(b)
	}
	if eq, ok := any(a).(interface{ Equal(T) bool }); ok {
		return eq.Equal(b)
	}
	return cmp.Equal(a, b, payloadEquality...)
}
