package diagnostic

import (
	"errors"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func (e *Error) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("kind", e.kind.String())
	enc.AddString("family", e.Family().String())
	enc.AddString("phase", e.Phase().String())
	enc.AddString("message", e.msg)
	enc.AddString("id", e.id.String())
	if len(e.types) > 0 {
		if err := enc.AddArray("types", zapcore.ArrayMarshalerFunc(func(ae zapcore.ArrayEncoder) error {
			for _, t := range e.types {
				ae.AppendString(t)
			}
			return nil
		})); err != nil {
			return err
		}
	}
	if e.cause != nil {
		enc.AddString("cause", e.cause.Error())
	}
	return nil
}

// Report logs err at error level. Contract violations carry their kind,
// family, phase, id and type names as fields; other errors are logged as is.
func Report(logger *zap.Logger, err error) {
	if logger == nil || err == nil {
		return
	}
	var de *Error
	if !errors.As(err, &de) {
		logger.Error("container failure", zap.Error(err))
		return
	}
	logger.Error(de.msg,
		zap.String("kind", de.kind.String()),
		zap.String("family", de.Family().String()),
		zap.String("phase", de.Phase().String()),
		zap.String("id", de.id.String()),
		zap.Strings("types", de.types))
}
