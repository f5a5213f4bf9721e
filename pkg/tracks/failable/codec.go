package failable

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

func (r Failable[T, F]) MarshalJSON() ([]byte, error) {
	switch r.state {
	case success:
		return tracks.EncodeJSONValue(tracks.VariantSuccess, r.value)
	case failure:
		return tracks.EncodeJSONValue(tracks.VariantFailure, r.failure)
	}
	return tracks.EncodeJSON(tracks.VariantUnset)
}

func (r *Failable[T, F]) UnmarshalJSON(data []byte) error {
	name, raw, err := tracks.DecodeJSON(data)
	if err != nil {
		return err
	}
	var built Failable[T, F]
	switch name {
	case tracks.VariantUnset:
	case tracks.VariantSuccess:
		v, err := tracks.DecodeJSONPayload[T](name, raw)
		if err != nil {
			return nullPayload[T, F](err, diagnostic.KindFailableSuccessConstruction)
		}
		if built, err = Success[T, F](v); err != nil {
			return err
		}
	case tracks.VariantFailure:
		f, err := tracks.DecodeJSONPayload[F](name, raw)
		if err != nil {
			return nullPayload[T, F](err, diagnostic.KindFailableFailureConstruction)
		}
		if built, err = Failure[T](f); err != nil {
			return err
		}
	default:
		return tracks.UnknownVariant("Failable", name)
	}
	*r = built
	return nil
}

func (r Failable[T, F]) MarshalYAML() (interface{}, error) {
	switch r.state {
	case success:
		return tracks.EncodeYAMLValue(tracks.VariantSuccess, r.value), nil
	case failure:
		return tracks.EncodeYAMLValue(tracks.VariantFailure, r.failure), nil
	}
	return tracks.EncodeYAML(tracks.VariantUnset), nil
}

func (r *Failable[T, F]) UnmarshalYAML(node *yaml.Node) error {
	name, payload, err := tracks.DecodeYAML(node)
	if err != nil {
		return err
	}
	var built Failable[T, F]
	switch name {
	case tracks.VariantUnset:
	case tracks.VariantSuccess:
		v, err := tracks.DecodeYAMLPayload[T](name, payload)
		if err != nil {
			return nullPayload[T, F](err, diagnostic.KindFailableSuccessConstruction)
		}
		if built, err = Success[T, F](v); err != nil {
			return err
		}
	case tracks.VariantFailure:
		f, err := tracks.DecodeYAMLPayload[F](name, payload)
		if err != nil {
			return nullPayload[T, F](err, diagnostic.KindFailableFailureConstruction)
		}
		if built, err = Failure[T](f); err != nil {
			return err
		}
	default:
		return tracks.UnknownVariant("Failable", name)
	}
	*r = built
	return nil
}

func (r Failable[T, F]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("variant", r.Variant())
	switch r.state {
	case success:
		return enc.AddReflected("value", r.value)
	case failure:
		return enc.AddReflected("failure", r.failure)
	}
	return nil
}
