package failable

import (
	"encoding/json"
	"testing"

	"github.com/ib-77/tracks/pkg/tracks"
	"github.com/ib-77/tracks/pkg/tracks/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var _ tracks.Outcome[int, string] = Failable[int, string]{}

type reason struct {
	Code int    `json:"code" yaml:"code"`
	Text string `json:"text" yaml:"text"`
}

func TestSuccess(t *testing.T) {
	t.Parallel()

	r, err := Success[int, string](5)
	require.NoError(t, err)
	assert.True(t, r.IsSuccess())
	assert.False(t, r.IsFailure())
	assert.Equal(t, 5, r.MustValue())
}

func TestSuccess_FailureValueNamesBothTypes(t *testing.T) {
	t.Parallel()

	_, err := MustSuccess[int, string](5).FailureValue()
	require.Error(t, err)
	assert.ErrorIs(t, err, diag.KindFailableFailureAccess)
	assert.ErrorIs(t, err, diag.ErrFailableAccess)
	assert.NotErrorIs(t, err, diag.ErrOption)
	assert.Contains(t, err.Error(), "Failable[int, string]")

	de, ok := diag.As(err)
	require.True(t, ok)
	assert.Equal(t, []string{"int", "string"}, de.TypeNames())
}

func TestFailure(t *testing.T) {
	t.Parallel()

	why := reason{Code: 404, Text: "not found"}
	r, err := Failure[string](why)
	require.NoError(t, err)
	assert.True(t, r.IsFailure())
	assert.False(t, r.IsSuccess())
	assert.Equal(t, why, r.MustFailureValue())
	assert.Equal(t, "fallback", r.ValueOr("fallback"))

	_, err = r.Value()
	assert.ErrorIs(t, err, diag.KindFailableValueAccess)
	assert.Panics(t, func() { r.MustValue() })
}

func TestConstruction_NilFails(t *testing.T) {
	t.Parallel()

	_, err := Failure[int, *reason](nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, diag.KindFailableFailureConstruction)
	assert.ErrorIs(t, err, diag.ErrConstruction)

	_, err = Success[*reason, string](nil)
	assert.ErrorIs(t, err, diag.KindFailableSuccessConstruction)
}

func TestPredicatesAreExclusive(t *testing.T) {
	t.Parallel()

	for _, r := range []Failable[int, string]{MustSuccess[int, string](0), MustFailure[int]("")} {
		assert.NotEqual(t, r.IsSuccess(), r.IsFailure(), r.String())
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	s := MustSuccess[int, int](1)
	f := MustFailure[int](1)

	assert.False(t, s.Equal(f))
	assert.True(t, s.Equal(MustSuccess[int, int](1)))
	assert.True(t, f.Equal(MustFailure[int](1)))
	assert.False(t, f.Equal(MustFailure[int](2)))
}

func TestCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	cases := []Failable[string, reason]{
		MustSuccess[string, reason]("done"),
		MustFailure[string](reason{Code: 1, Text: "bad"}),
	}
	for _, r := range cases {
		data, err := json.Marshal(r)
		require.NoError(t, err)
		var fromJSON Failable[string, reason]
		require.NoError(t, json.Unmarshal(data, &fromJSON))
		assert.True(t, r.Equal(fromJSON), "json: %s != %s", r, fromJSON)

		data, err = yaml.Marshal(r)
		require.NoError(t, err)
		var fromYAML Failable[string, reason]
		require.NoError(t, yaml.Unmarshal(data, &fromYAML))
		assert.True(t, r.Equal(fromYAML), "yaml: %s != %s", r, fromYAML)
	}
}

func TestCodec_Shape(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(MustFailure[int](reason{Code: 7, Text: "x"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"variant":"failure","value":{"code":7,"text":"x"}}`, string(data))
}

func TestCodec_NullFailureRejected(t *testing.T) {
	t.Parallel()

	var r Failable[int, *reason]
	err := json.Unmarshal([]byte(`{"variant":"failure","value":null}`), &r)
	assert.ErrorIs(t, err, diag.KindFailableFailureConstruction)
}

func TestCodec_NullPayloadRejectedForValueTypes(t *testing.T) {
	t.Parallel()

	var r Failable[int, reason]
	err := json.Unmarshal([]byte(`{"variant":"success","value":null}`), &r)
	assert.ErrorIs(t, err, diag.KindFailableSuccessConstruction)

	err = json.Unmarshal([]byte(`{"variant":"failure","value":null}`), &r)
	assert.ErrorIs(t, err, diag.KindFailableFailureConstruction)

	err = yaml.Unmarshal([]byte("variant: success\nvalue: ~\n"), &r)
	assert.ErrorIs(t, err, diag.KindFailableSuccessConstruction)
	assert.False(t, r.IsSuccess() || r.IsFailure())
}
