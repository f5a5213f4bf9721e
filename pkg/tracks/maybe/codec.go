package maybe

import (
	"github.com/ib-77/tracks/pkg/tracks"
	"github.com/ib-77/tracks/pkg/tracks/internal/diagnostic"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

func nullPayload[T any](err error) error {
	return diagnostic.NullAs(err, diagnostic.KindSomeConstruction, tracks.TypeName[T]())
}

func (m Maybe[T]) MarshalJSON() ([]byte, error) {
	if m.present {
		return tracks.EncodeJSONValue(tracks.VariantPresent, m.value)
	}
	return tracks.EncodeJSON(tracks.VariantAbsent)
}

// UnmarshalJSON rebuilds a Maybe through Present. A null payload is
// rejected with the construction fault whatever T is.
func (m *Maybe[T]) UnmarshalJSON(data []byte) error {
	name, raw, err := tracks.DecodeJSON(data)
	if err != nil {
		return err
	}
	switch name {
	case tracks.VariantAbsent:
		*m = Absent[T]()
		return nil
	case tracks.VariantPresent:
		v, err := tracks.DecodeJSONPayload[T](name, raw)
		if err != nil {
			return nullPayload[T](err)
		}
		built, err := Present(v)
		if err != nil {
			return err
		}
		*m = built
		return nil
	}
	return tracks.UnknownVariant("Maybe", name)
}

func (m Maybe[T]) MarshalYAML() (interface{}, error) {
	if m.present {
		return tracks.EncodeYAMLValue(tracks.VariantPresent, m.value), nil
	}
	return tracks.EncodeYAML(tracks.VariantAbsent), nil
}

func (m *Maybe[T]) UnmarshalYAML(node *yaml.Node) error {
	name, payload, err := tracks.DecodeYAML(node)
	if err != nil {
		return err
	}
	switch name {
	case tracks.VariantAbsent:
		*m = Absent[T]()
		return nil
	case tracks.VariantPresent:
		v, err := tracks.DecodeYAMLPayload[T](name, payload)
		if err != nil {
			return nullPayload[T](err)
		}
		built, err := Present(v)
		if err != nil {
			return err
		}
		*m = built
		return nil
	}
	return tracks.UnknownVariant("Maybe", name)
}

func (m Maybe[T]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("variant", m.Variant())
	if m.present {
		return enc.AddReflected("value", m.value)
	}
	return nil
}
