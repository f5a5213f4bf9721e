package option

import (
	"github.com/ib-77/tracks/pkg/tracks"
	"github.com/ib-77/tracks/pkg/tracks/internal/diagnostic"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// nullPayload maps a null payload to the construction fault of its variant.
func nullPayload[T, F any](err error, kind diagnostic.Kind) error {
	return diagnostic.NullAs(err, kind, tracks.TypeName[T](), tracks.TypeName[F]())
}

func (o Option[T, F]) MarshalJSON() ([]byte, error) {
	switch o.variant {
	case primary:
		return tracks.EncodeJSONValue(tracks.VariantPrimary, o.value)
	case alternate:
		return tracks.EncodeJSONValue(tracks.VariantAlternate, o.failure)
	}
	return tracks.EncodeJSON(tracks.VariantUnset)
}

func (o *Option[T, F]) UnmarshalJSON(data []byte) error {
	name, raw, err := tracks.DecodeJSON(data)
	if err != nil {
		return err
	}
	var built Option[T, F]
	switch name {
	case tracks.VariantUnset:
	case tracks.VariantPrimary:
		v, err := tracks.DecodeJSONPayload[T](name, raw)
		if err != nil {
			return nullPayload[T, F](err, diagnostic.KindOptionPrimaryConstruction)
		}
		if built, err = Primary[T, F](v); err != nil {
			return err
		}
	case tracks.VariantAlternate:
		f, err := tracks.DecodeJSONPayload[F](name, raw)
		if err != nil {
			return nullPayload[T, F](err, diagnostic.KindOptionAlternateConstruction)
		}
		if built, err = Alternate[T](f); err != nil {
			return err
		}
	default:
		return tracks.UnknownVariant("Option", name)
	}
	*o = built
	return nil
}

func (o Option[T, F]) MarshalYAML() (interface{}, error) {
	switch o.variant {
	case primary:
		return tracks.EncodeYAMLValue(tracks.VariantPrimary, o.value), nil
	case alternate:
		return tracks.EncodeYAMLValue(tracks.VariantAlternate, o.failure), nil
	}
	return tracks.EncodeYAML(tracks.VariantUnset), nil
}

func (o *Option[T, F]) UnmarshalYAML(node *yaml.Node) error {
	name, payload, err := tracks.DecodeYAML(node)
	if err != nil {
		return err
	}
	var built Option[T, F]
	switch name {
	case tracks.VariantUnset:
	case tracks.VariantPrimary:
		v, err := tracks.DecodeYAMLPayload[T](name, payload)
		if err != nil {
			return nullPayload[T, F](err, diagnostic.KindOptionPrimaryConstruction)
		}
		if built, err = Primary[T, F](v); err != nil {
			return err
		}
	case tracks.VariantAlternate:
		f, err := tracks.DecodeYAMLPayload[F](name, payload)
		if err != nil {
			return nullPayload[T, F](err, diagnostic.KindOptionAlternateConstruction)
		}
		if built, err = Alternate[T](f); err != nil {
			return err
		}
	default:
		return tracks.UnknownVariant("Option", name)
	}
	*o = built
	return nil
}

func (o Option[T, F]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("variant", o.Variant())
	switch o.variant {
	case primary:
		return enc.AddReflected("value", o.value)
	case alternate:
		return enc.AddReflected("failure", o.failure)
	}
	return nil
}
