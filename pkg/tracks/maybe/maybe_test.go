package maybe

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ib-77/tracks/pkg/tracks"
	"github.com/ib-77/tracks/pkg/tracks/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ tracks.ValueProvider[int] = Maybe[int]{}

type point struct{ X, Y int }

func TestPresent_Value(t *testing.T) {
	t.Parallel()

	m, err := Present("x")
	require.NoError(t, err)

	v, err := m.Value()
	require.NoError(t, err)
	assert.Equal(t, "x", v)
	assert.True(t, m.IsPresent())
	assert.False(t, m.IsAbsent())
}

func TestPresent_KeepsReference(t *testing.T) {
	t.Parallel()

	p := &point{X: 1, Y: 2}
	m := MustPresent(p)

	v := m.MustValue()
	assert.Same(t, p, v)
}

func TestPresent_NilFails(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		make func() error
	}{
		{"pointer", func() error { _, err := Present[*point](nil); return err }},
		{"slice", func() error { _, err := Present[[]int](nil); return err }},
		{"map", func() error { _, err := Present[map[string]int](nil); return err }},
		{"func", func() error { _, err := Present[func()](nil); return err }},
		{"interface", func() error { _, err := Present[error](nil); return err }},
		{"any", func() error { _, err := Present[any](nil); return err }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.make()
			require.Error(t, err)
			assert.ErrorIs(t, err, diag.KindSomeConstruction)
			assert.ErrorIs(t, err, diag.ErrMaybeConstruction)
			assert.ErrorIs(t, err, diag.ErrConstruction)
			assert.NotErrorIs(t, err, diag.ErrAccess)
		})
	}
}

func TestPresent_ZeroValuesAreNotNil(t *testing.T) {
	t.Parallel()

	m, err := Present(0)
	require.NoError(t, err)
	assert.Equal(t, 0, m.MustValue())

	s, err := Present([]int{})
	require.NoError(t, err)
	assert.Empty(t, s.MustValue())
}

func TestMustPresent_Panics(t *testing.T) {
	t.Parallel()

	assert.PanicsWithError(t, "cannot construct Present of Maybe[*maybe.point] from a nil value", func() {
		MustPresent[*point](nil)
	})
}

func TestAbsent_Value(t *testing.T) {
	t.Parallel()

	m := Absent[string]()
	v, err := m.Value()

	assert.Empty(t, v)
	require.Error(t, err)
	assert.ErrorIs(t, err, diag.KindNoValue)
	assert.ErrorIs(t, err, diag.ErrMaybeAccess)
	assert.NotErrorIs(t, err, diag.KindOptionNoValue)
	assert.Equal(t, "Maybe[string] is Absent: no value present", err.Error())

	de, ok := diag.As(err)
	require.True(t, ok)
	assert.Equal(t, []string{"string"}, de.TypeNames())
	assert.Equal(t, diag.FamilyMaybe, de.Family())
	assert.Equal(t, diag.PhaseAccess, de.Phase())
}

func TestAbsent_MustValuePanics(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, diag.KindNoValue))
	}()
	Absent[int]().MustValue()
}

func TestZeroValueIsAbsent(t *testing.T) {
	t.Parallel()

	var m Maybe[int]
	assert.True(t, m.IsAbsent())
	assert.True(t, m.Equal(Absent[int]()))
}

func TestValueOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, MustPresent(3).ValueOr(9))
	assert.Equal(t, 9, Absent[int]().ValueOr(9))
}

func TestFromPointer(t *testing.T) {
	t.Parallel()

	n := 4
	assert.Equal(t, 4, FromPointer(&n).MustValue())
	assert.True(t, FromPointer[int](nil).IsAbsent())

	var nested *point
	assert.True(t, FromPointer(&nested).IsAbsent())
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a := MustPresent(point{1, 2})
	b := MustPresent(point{1, 2})
	c := MustPresent(point{2, 1})
	absent := Absent[point]()

	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(b) && b.Equal(a))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(absent))
	assert.False(t, absent.Equal(a))
	assert.True(t, absent.Equal(Absent[point]()))

	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("unexpected diff (-want +got):\n%s", diff)
	}

	// structural, not by reference
	p1, p2 := &point{1, 1}, &point{1, 1}
	assert.True(t, MustPresent(p1).Equal(MustPresent(p2)))
}

func TestEqual_NaNPayloadIsReflexive(t *testing.T) {
	t.Parallel()

	m := MustPresent(math.NaN())
	assert.True(t, m.Equal(m))
	assert.True(t, m.Equal(MustPresent(math.NaN())))
	assert.False(t, m.Equal(MustPresent(0.0)))

	type sample struct{ Temp float64 }
	s := MustPresent(sample{math.NaN()})
	assert.True(t, s.Equal(s))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Present(7)", MustPresent(7).String())
	assert.Equal(t, "Absent", Absent[int]().String())
	assert.Equal(t, tracks.VariantPresent, MustPresent(7).Variant())
	assert.Equal(t, tracks.VariantAbsent, Absent[int]().Variant())
}

func TestEachFaultHasOwnID(t *testing.T) {
	t.Parallel()

	_, err1 := Absent[int]().Value()
	_, err2 := Absent[int]().Value()

	de1, _ := diag.As(err1)
	de2, _ := diag.As(err2)
	assert.NotEqual(t, de1.ID(), de2.ID())
}
