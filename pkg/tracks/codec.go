package tracks

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Envelope field names shared by the JSON and YAML forms of every container.
const (
	VariantField = "variant"
	ValueField   = "value"
)

var (
	ErrMissingVariant = errors.New("tracks: envelope has no variant")
	// ErrNullPayload reports a null payload on the wire. Container codecs
	// turn it into their construction fault.
	ErrNullPayload = errors.New("tracks: envelope payload is null")
)

var jsonNull = []byte("null")

const yamlNull = "!!null"

// EncodeJSON writes the envelope of a variant without payload.
func EncodeJSON(variant string) ([]byte, error) {
	return json.Marshal(map[string]any{VariantField: variant})
}

// EncodeJSONValue writes the envelope of a payload-bearing variant.
func EncodeJSONValue(variant string, value any) ([]byte, error) {
	return json.Marshal(map[string]any{VariantField: variant, ValueField: value})
}

// DecodeJSON splits an envelope into its variant name and raw payload.
// The payload is nil when the envelope carries none.
func DecodeJSON(data []byte) (string, json.RawMessage, error) {
	var env struct {
		Variant string          `json:"variant"`
		Value   json.RawMessage `json:"value,omitempty"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return "", nil, err
	}
	if env.Variant == "" {
		return "", nil, ErrMissingVariant
	}
	return env.Variant, env.Value, nil
}

// DecodeJSONPayload decodes the payload of a value-bearing variant. A null
// payload is the forbidden sentinel and fails with ErrNullPayload, whatever T is.
func DecodeJSONPayload[T any](variant string, raw json.RawMessage) (T, error) {
	var v T
	err := DecodeJSONInto(variant, raw, &v)
	return v, err
}

// DecodeJSONInto is DecodeJSONPayload for a target chosen at run time.
func DecodeJSONInto(variant string, raw json.RawMessage, target any) error {
	if raw == nil {
		return fmt.Errorf("tracks: %s envelope has no %s", variant, ValueField)
	}
	if bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return ErrNullPayload
	}
	return json.Unmarshal(raw, target)
}

// EncodeYAML returns the envelope of a variant without payload.
func EncodeYAML(variant string) any {
	return map[string]any{VariantField: variant}
}

// EncodeYAMLValue returns the envelope of a payload-bearing variant.
func EncodeYAMLValue(variant string, value any) any {
	return map[string]any{VariantField: variant, ValueField: value}
}

// DecodeYAML splits an envelope node into its variant name and payload node.
// The payload node is nil when the envelope carries none.
func DecodeYAML(node *yaml.Node) (string, *yaml.Node, error) {
	var env struct {
		Variant string    `yaml:"variant"`
		Value   yaml.Node `yaml:"value"`
	}
	if err := node.Decode(&env); err != nil {
		return "", nil, err
	}
	if env.Variant == "" {
		return "", nil, ErrMissingVariant
	}
	if env.Value.Kind == 0 {
		return env.Variant, nil, nil
	}
	return env.Variant, &env.Value, nil
}

// DecodeYAMLPayload decodes the payload of a value-bearing variant. A null
// node fails with ErrNullPayload.
func DecodeYAMLPayload[T any](variant string, node *yaml.Node) (T, error) {
	var v T
	err := DecodeYAMLInto(variant, node, &v)
	return v, err
}

// DecodeYAMLInto is DecodeYAMLPayload for a target chosen at run time.
func DecodeYAMLInto(variant string, node *yaml.Node, target any) error {
	if node == nil {
		return fmt.Errorf("tracks: %s envelope has no %s", variant, ValueField)
	}
	if node.Kind == yaml.ScalarNode && node.ShortTag() == yamlNull {
		return ErrNullPayload
	}
	return node.Decode(target)
}

// UnknownVariant is returned by decoders meeting a variant name the
// container does not have.
func UnknownVariant(container, variant string) error {
	return fmt.Errorf("tracks: %s has no variant %q", container, variant)
}
