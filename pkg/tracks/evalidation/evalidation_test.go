package evalidation

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/ib-77/tracks/pkg/tracks"
	"github.com/ib-77/tracks/pkg/tracks/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"
)

var _ tracks.FailureProvider[error] = EValidation[error]{}

type fieldError struct{ field string }

func (e *fieldError) Error() string { return e.field + " is required" }

func requireName(name string) func() *fieldError {
	return func() *fieldError {
		if strings.TrimSpace(name) == "" {
			return &fieldError{field: "name"}
		}
		return nil
	}
}

func TestValid(t *testing.T) {
	t.Parallel()

	v := Valid[error]()
	assert.True(t, v.IsValid())
	assert.False(t, v.IsInvalid())
	assert.NoError(t, v.Err())

	_, err := v.FailureValue()
	assert.ErrorIs(t, err, diag.KindEValidationNoFailure)
	assert.ErrorIs(t, err, diag.ErrEValidationAccess)
	assert.NotErrorIs(t, err, diag.KindValidationNoFailure)
}

func TestInvalid(t *testing.T) {
	t.Parallel()

	cause := &fieldError{field: "email"}
	v, err := Invalid(cause)
	require.NoError(t, err)
	assert.True(t, v.IsInvalid())
	assert.Same(t, cause, v.MustFailureValue())
	assert.Same(t, cause, v.Err())
}

func TestInvalid_NilFails(t *testing.T) {
	t.Parallel()

	_, err := Invalid[error](nil)
	assert.ErrorIs(t, err, diag.KindEValidationFailureConstruction)

	_, err = Invalid[*fieldError](nil)
	assert.ErrorIs(t, err, diag.KindEValidationFailureConstruction)
	assert.Equal(t, "cannot construct Invalid of EValidation[*evalidation.fieldError] from a nil error", err.Error())
}

func TestWrap(t *testing.T) {
	t.Parallel()

	ok, err := Wrap(requireName("ada"))
	require.NoError(t, err)
	assert.True(t, ok.IsValid())

	bad, err := Wrap(requireName("  "))
	require.NoError(t, err)
	assert.True(t, bad.IsInvalid())
	assert.Equal(t, "name is required", bad.MustFailureValue().Error())
}

func TestWrap_RunsOnce(t *testing.T) {
	t.Parallel()

	calls := 0
	_, err := Wrap(func() error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestWrap_PanicKeepsReference(t *testing.T) {
	t.Parallel()

	cause := errors.New("checksum mismatch")
	v, err := Wrap(func() error { panic(cause) })
	require.NoError(t, err)
	assert.Same(t, cause, v.MustFailureValue())
}

func TestWrap_OtherPanicPropagates(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, 42, func() {
		_, _ = Wrap(func() error { panic(42) })
	})
}

func TestWrap_NilCheck(t *testing.T) {
	t.Parallel()

	_, err := Wrap[error](nil)
	assert.ErrorIs(t, err, diag.KindEValidationWrapConstruction)
	assert.ErrorIs(t, err, diag.ErrEValidationConstruction)
}

func TestEqual(t *testing.T) {
	t.Parallel()

	cause := errors.New("x")
	assert.True(t, MustInvalid(cause).Equal(MustInvalid(cause)))
	assert.False(t, MustInvalid(cause).Equal(Valid[error]()))
	assert.True(t, Valid[error]().Equal(Valid[error]()))
}

func TestCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	in := MustInvalid[error](&fieldError{field: "id"})

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"variant":"invalid","value":{"message":"id is required"}}`, string(data))

	var fromJSON EValidation[error]
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	assert.Equal(t, "id is required", fromJSON.Err().Error())

	data, err = yaml.Marshal(Valid[error]())
	require.NoError(t, err)
	fromYAML := in
	require.NoError(t, yaml.Unmarshal(data, &fromYAML))
	assert.True(t, fromYAML.IsValid())

	var narrow EValidation[*fieldError]
	assert.Error(t, json.Unmarshal([]byte(`{"variant":"invalid","value":{"message":"x"}}`), &narrow))
}

func TestCodec_DiagnosticFailureRoundTrip(t *testing.T) {
	t.Parallel()

	var fault *diag.Error
	_, err := Wrap[*diag.Error](nil)
	require.ErrorAs(t, err, &fault)
	in := MustInvalid(fault)

	data, err := json.Marshal(in)
	require.NoError(t, err)
	var fromJSON EValidation[*diag.Error]
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	assert.Equal(t, diag.KindEValidationWrapConstruction, fromJSON.MustFailureValue().Kind())
	assert.Equal(t, fault.Error(), fromJSON.Err().Error())

	data, err = yaml.Marshal(in)
	require.NoError(t, err)
	var fromYAML EValidation[*diag.Error]
	require.NoError(t, yaml.Unmarshal(data, &fromYAML))
	assert.ErrorIs(t, fromYAML.Err(), diag.ErrEValidationConstruction)
	assert.Equal(t, fault.ID(), fromYAML.MustFailureValue().ID())
}

func TestCodec_JoinedFailureKeepsEveryCause(t *testing.T) {
	t.Parallel()

	in := MustInvalid[error](errors.Join(&fieldError{field: "id"}, &fieldError{field: "zip"}))

	data, err := yaml.Marshal(in)
	require.NoError(t, err)
	var back EValidation[*diag.Carried]
	require.NoError(t, yaml.Unmarshal(data, &back))

	got := back.MustFailureValue()
	assert.Equal(t, "id is required\nzip is required", got.Message)
	require.Len(t, got.Causes, 2)
	assert.Equal(t, "zip is required", got.Causes[1].Message)
}

func TestCodec_NullFailureRejected(t *testing.T) {
	t.Parallel()

	var v EValidation[error]
	err := json.Unmarshal([]byte(`{"variant":"invalid","value":null}`), &v)
	assert.ErrorIs(t, err, diag.KindEValidationFailureConstruction)

	err = yaml.Unmarshal([]byte("variant: invalid\nvalue: null\n"), &v)
	assert.ErrorIs(t, err, diag.KindEValidationFailureConstruction)
}

func TestMarshalLogObject(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	zap.New(core).Info("checked", zap.Object("validation", MustInvalid[error](&fieldError{field: "zip"})))

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, map[string]interface{}{"variant": "invalid", "failure": "zip is required"},
		logs.All()[0].ContextMap()["validation"])
}
