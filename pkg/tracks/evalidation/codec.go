package evalidation

import (
	"encoding/json"

	"github.com/ib-77/tracks/pkg/tracks"
	"github.com/ib-77/tracks/pkg/tracks/internal/diagnostic"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

func invalidFrom[E error](decode func(target any) error) (EValidation[E], error) {
	e, err := diagnostic.DecodePayload[E](decode)
	if err != nil {
		return EValidation[E]{}, diagnostic.NullAs(err,
			diagnostic.KindEValidationFailureConstruction, tracks.TypeName[E]())
	}
	return Invalid(e)
}

func invalidFromJSON[E error](name string, raw json.RawMessage) (EValidation[E], error) {
	return invalidFrom[E](func(target any) error {
		return tracks.DecodeJSONInto(name, raw, target)
	})
}

func invalidFromYAML[E error](name string, node *yaml.Node) (EValidation[E], error) {
	return invalidFrom[E](func(target any) error {
		return tracks.DecodeYAMLInto(name, node, target)
	})
}

func (v EValidation[E]) MarshalJSON() ([]byte, error) {
	if v.invalid {
		return tracks.EncodeJSONValue(tracks.VariantInvalid, diagnostic.EncodePayload(v.failure))
	}
	return tracks.EncodeJSON(tracks.VariantValid)
}

func (v *EValidation[E]) UnmarshalJSON(data []byte) error {
	name, raw, err := tracks.DecodeJSON(data)
	if err != nil {
		return err
	}
	switch name {
	case tracks.VariantValid:
		*v = Valid[E]()
		return nil
	case tracks.VariantInvalid:
		built, err := invalidFromJSON[E](name, raw)
		if err != nil {
			return err
		}
		*v = built
		return nil
	}
	return tracks.UnknownVariant("EValidation", name)
}

func (v EValidation[E]) MarshalYAML() (interface{}, error) {
	if v.invalid {
		return tracks.EncodeYAMLValue(tracks.VariantInvalid, diagnostic.EncodePayload(v.failure)), nil
	}
	return tracks.EncodeYAML(tracks.VariantValid), nil
}

func (v *EValidation[E]) UnmarshalYAML(node *yaml.Node) error {
	name, payload, err := tracks.DecodeYAML(node)
	if err != nil {
		return err
	}
	switch name {
	case tracks.VariantValid:
		*v = Valid[E]()
		return nil
	case tracks.VariantInvalid:
		built, err := invalidFromYAML[E](name, payload)
		if err != nil {
			return err
		}
		*v = built
		return nil
	}
	return tracks.UnknownVariant("EValidation", name)
}

func (v EValidation[E]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("variant", v.Variant())
	if v.invalid {
		enc.AddString("failure", v.failure.Error())
	}
	return nil
}
