package diagnostic

import "errors"

// Carried is an error payload rebuilt on the far side of a wire boundary
// from its message and causes. A joined error keeps every branch.
type Carried struct {
	Message string     `json:"message" yaml:"message"`
	Causes  []*Carried `json:"causes,omitempty" yaml:"causes,omitempty"`
}

// Carry builds a Carried from a message and an optional cause.
func Carry(message string, cause error) *Carried {
	c := &Carried{Message: message}
	if cause != nil {
		c.Causes = []*Carried{CarryError(cause)}
	}
	return c
}

// CarryError flattens err and its Unwrap tree into a Carried. Errors built
// by errors.Join or by fmt.Errorf with several %w keep all their causes.
func CarryError(err error) *Carried {
	if err == nil {
		return nil
	}
	if c, ok := err.(*Carried); ok {
		return c
	}
	c := &Carried{Message: err.Error()}
	switch u := err.(type) {
	case interface{ Unwrap() []error }:
		for _, cause := range u.Unwrap() {
			if cause != nil {
				c.Causes = append(c.Causes, CarryError(cause))
			}
		}
	default:
		if cause := errors.Unwrap(err); cause != nil {
			c.Causes = []*Carried{CarryError(cause)}
		}
	}
	return c
}

func (c *Carried) Error() string { return c.Message }

// Unwrap exposes the causes to errors.Is and errors.As.
func (c *Carried) Unwrap() []error {
	if len(c.Causes) == 0 {
		return nil
	}
	errs := make([]error, len(c.Causes))
	for i, cause := range c.Causes {
		errs[i] = cause
	}
	return errs
}
