package efailable

import (
	"encoding/json"

	"github.com/ib-77/tracks/pkg/tracks"
	"github.com/ib-77/tracks/pkg/tracks/internal/diagnostic"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// nullPayload maps a null payload to the construction fault of its variant.
func nullPayload[T any, E error](err error, kind diagnostic.Kind) error {
	return diagnostic.NullAs(err, kind, tracks.TypeName[T](), tracks.TypeName[E]())
}

// The error of a Failure travels whole when it is a *diag.Error and as its
// Carried tree otherwise. E must be able to hold what comes back.
func failureFromJSON[T any, E error](name string, raw json.RawMessage) (EFailable[T, E], error) {
	e, err := diagnostic.DecodePayload[E](func(target any) error {
		return tracks.DecodeJSONInto(name, raw, target)
	})
	if err != nil {
		return EFailable[T, E]{}, nullPayload[T, E](err, diagnostic.KindEFailableFailureConstruction)
	}
	return Failure[T](e)
}

func failureFromYAML[T any, E error](name string, node *yaml.Node) (EFailable[T, E], error) {
	e, err := diagnostic.DecodePayload[E](func(target any) error {
		return tracks.DecodeYAMLInto(name, node, target)
	})
	if err != nil {
		return EFailable[T, E]{}, nullPayload[T, E](err, diagnostic.KindEFailableFailureConstruction)
	}
	return Failure[T](e)
}

func (r EFailable[T, E]) MarshalJSON() ([]byte, error) {
	switch r.state {
	case success:
		return tracks.EncodeJSONValue(tracks.VariantSuccess, r.value)
	case failure:
		return tracks.EncodeJSONValue(tracks.VariantFailure, diagnostic.EncodePayload(r.failure))
	}
	return tracks.EncodeJSON(tracks.VariantUnset)
}

func (r *EFailable[T, E]) UnmarshalJSON(data []byte) error {
	name, raw, err := tracks.DecodeJSON(data)
	if err != nil {
		return err
	}
	var built EFailable[T, E]
	switch name {
	case tracks.VariantUnset:
	case tracks.VariantSuccess:
		v, err := tracks.DecodeJSONPayload[T](name, raw)
		if err != nil {
			return nullPayload[T, E](err, diagnostic.KindEFailableSuccessConstruction)
		}
		if built, err = Success[T, E](v); err != nil {
			return err
		}
	case tracks.VariantFailure:
		if built, err = failureFromJSON[T, E](name, raw); err != nil {
			return err
		}
	default:
		return tracks.UnknownVariant("EFailable", name)
	}
	*r = built
	return nil
}

func (r EFailable[T, E]) MarshalYAML() (interface{}, error) {
	switch r.state {
	case success:
		return tracks.EncodeYAMLValue(tracks.VariantSuccess, r.value), nil
	case failure:
		return tracks.EncodeYAMLValue(tracks.VariantFailure, diagnostic.EncodePayload(r.failure)), nil
	}
	return tracks.EncodeYAML(tracks.VariantUnset), nil
}

func (r *EFailable[T, E]) UnmarshalYAML(node *yaml.Node) error {
	name, payload, err := tracks.DecodeYAML(node)
	if err != nil {
		return err
	}
	var built EFailable[T, E]
	switch name {
	case tracks.VariantUnset:
	case tracks.VariantSuccess:
		v, err := tracks.DecodeYAMLPayload[T](name, payload)
		if err != nil {
			return nullPayload[T, E](err, diagnostic.KindEFailableSuccessConstruction)
		}
		if built, err = Success[T, E](v); err != nil {
			return err
		}
	case tracks.VariantFailure:
		if built, err = failureFromYAML[T, E](name, payload); err != nil {
			return err
		}
	default:
		return tracks.UnknownVariant("EFailable", name)
	}
	*r = built
	return nil
}

func (r EFailable[T, E]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("variant", r.Variant())
	switch r.state {
	case success:
		return enc.AddReflected("value", r.value)
	case failure:
		enc.AddString("failure", r.failure.Error())
	}
	return nil
}
