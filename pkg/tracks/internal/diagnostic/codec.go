package diagnostic

import (
	"encoding/json"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

type wireError struct {
	Kind    string   `json:"kind" yaml:"kind"`
	Message string   `json:"message" yaml:"message"`
	Types   []string `json:"types,omitempty" yaml:"types,omitempty"`
	ID      string   `json:"id,omitempty" yaml:"id,omitempty"`
	Cause   *Carried `json:"cause,omitempty" yaml:"cause,omitempty"`
}

func (e *Error) wire() wireError {
	return wireError{
		Kind:    e.kind.String(),
		Message: e.msg,
		Types:   e.types,
		ID:      e.id.String(),
		Cause:   CarryError(e.cause),
	}
}

func (e *Error) fromWire(w wireError) error {
	kind, err := ParseKind(w.Kind)
	if err != nil {
		return err
	}
	var cause error
	if w.Cause != nil {
		cause = w.Cause
	}
	*e = *Reconstruct(kind, w.Message, cause)
	e.types = w.Types
	if id, err := uuid.Parse(w.ID); err == nil {
		e.id = id
	}
	return nil
}

func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.wire())
}

func (e *Error) UnmarshalJSON(data []byte) error {
	var w wireError
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	return e.fromWire(w)
}

func (e *Error) MarshalYAML() (interface{}, error) {
	return e.wire(), nil
}

func (e *Error) UnmarshalYAML(node *yaml.Node) error {
	var w wireError
	if err := node.Decode(&w); err != nil {
		return err
	}
	return e.fromWire(w)
}
