package validation

import (
	"github.com/ib-77/tracks/pkg/tracks"
	"github.com/ib-77/tracks/pkg/tracks/internal/diagnostic"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

func nullPayload[F any](err error) error {
	return diagnostic.NullAs(err, diagnostic.KindValidationFailureConstruction, tracks.TypeName[F]())
}

func (v Validation[F]) MarshalJSON() ([]byte, error) {
	if v.invalid {
		return tracks.EncodeJSONValue(tracks.VariantInvalid, v.failure)
	}
	return tracks.EncodeJSON(tracks.VariantValid)
}

func (v *Validation[F]) UnmarshalJSON(data []byte) error {
	name, raw, err := tracks.DecodeJSON(data)
	if err != nil {
		return err
	}
	switch name {
	case tracks.VariantValid:
		*v = Valid[F]()
		return nil
	case tracks.VariantInvalid:
		f, err := tracks.DecodeJSONPayload[F](name, raw)
		if err != nil {
			return nullPayload[F](err)
		}
		built, err := Invalid(f)
		if err != nil {
			return err
		}
		*v = built
		return nil
	}
	return tracks.UnknownVariant("Validation", name)
}

func (v Validation[F]) MarshalYAML() (interface{}, error) {
	if v.invalid {
		return tracks.EncodeYAMLValue(tracks.VariantInvalid, v.failure), nil
	}
	return tracks.EncodeYAML(tracks.VariantValid), nil
}

func (v *Validation[F]) UnmarshalYAML(node *yaml.Node) error {
	name, payload, err := tracks.DecodeYAML(node)
	if err != nil {
		return err
	}
	switch name {
	case tracks.VariantValid:
		*v = Valid[F]()
		return nil
	case tracks.VariantInvalid:
		f, err := tracks.DecodeYAMLPayload[F](name, payload)
		if err != nil {
			return nullPayload[F](err)
		}
		built, err := Invalid(f)
		if err != nil {
			return err
		}
		*v = built
		return nil
	}
	return tracks.UnknownVariant("Validation", name)
}

func (v Validation[F]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("variant", v.Variant())
	if v.invalid {
		return enc.AddReflected("failure", v.failure)
	}
	return nil
}
