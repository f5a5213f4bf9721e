package diagnostic

import (
	"errors"
	"fmt"

	"github.com/ib-77/tracks/pkg/tracks"
)

// NullAs turns a null wire payload into the construction fault of the
// decoding container. Other errors pass through unchanged.
func NullAs(err error, kind Kind, typeNames ...string) error {
	if errors.Is(err, tracks.ErrNullPayload) {
		return Raise(kind, typeNames...)
	}
	return err
}

// EncodePayload returns the wire form of a stored error. A *Error travels
// whole with its kind; anything else as its Carried tree.
func EncodePayload(err error) any {
	if de, ok := err.(*Error); ok {
		return de
	}
	return CarryError(err)
}

// DecodePayload is the inverse of EncodePayload. decode fills its target
// from the wire payload. A payload with a kind comes back as a *Error, any
// other as a *Carried; either must be assignable to E.
func DecodePayload[E error](decode func(target any) error) (E, error) {
	var zero E
	var head struct {
		Kind string `json:"kind" yaml:"kind"`
	}
	if err := decode(&head); err != nil {
		return zero, err
	}
	var got any
	if head.Kind != "" {
		de := new(Error)
		if err := decode(de); err != nil {
			return zero, err
		}
		got = de
	} else {
		c := new(Carried)
		if err := decode(c); err != nil {
			return zero, err
		}
		got = c
	}
	e, ok := got.(E)
	if !ok {
		return zero, fmt.Errorf("tracks: cannot rebuild %s from a %T payload", tracks.TypeName[E](), got)
	}
	return e, nil
}
