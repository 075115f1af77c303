package fuzzy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/fuzzy-engine/internal/apperr"
)

func newCarSpeed(t *testing.T) *LinguisticVariable {
	t.Helper()
	lv := NewLinguisticVariable("carSpeed")
	require.NoError(t, lv.AddTerm("low", NewTrapezoid(20, 60, 60, 100)))
	require.NoError(t, lv.AddTerm("medium", NewTrapezoid(60, 100, 100, 140)))
	return lv
}

func newBrakeForce(t *testing.T) *LinguisticVariable {
	t.Helper()
	lv := NewLinguisticVariable("brakeForce")
	require.NoError(t, lv.AddTerm("moderate", NewTrapezoid(40, 60, 60, 80)))
	require.NoError(t, lv.AddTerm("strong", NewTrapezoid(70, 85, 85, 100)))
	return lv
}

func TestLinguisticVariable_Is(t *testing.T) {
	carSpeed := newCarSpeed(t)
	brakeForce := newBrakeForce(t)

	carSpeed.SetValue(70)
	low, err := carSpeed.Is("low")
	require.NoError(t, err)
	medium, err := carSpeed.Is("medium")
	require.NoError(t, err)
	assert.Equal(t, 0.75, low)
	assert.Equal(t, 0.25, medium)

	brakeForce.SetValue(60)
	moderate, err := brakeForce.Is("moderate")
	require.NoError(t, err)
	strong, err := brakeForce.Is("strong")
	require.NoError(t, err)
	assert.Equal(t, 1.0, moderate)
	assert.Equal(t, 0.0, strong)

	brakeForce.SetValue(70)
	moderate, err = brakeForce.Is("moderate")
	require.NoError(t, err)
	strong, err = brakeForce.Is("strong")
	require.NoError(t, err)
	assert.Equal(t, 0.5, moderate)
	assert.Equal(t, 0.0, strong)
}

func TestLinguisticVariable_UnknownTerm(t *testing.T) {
	lv := newCarSpeed(t)

	_, err := lv.Is("fast")
	require.Error(t, err)
	var undefined *apperr.UndefinedSymbolError
	require.True(t, errors.As(err, &undefined))
	assert.Equal(t, "fast", undefined.Symbol)

	_, err = lv.Term("fast")
	assert.Error(t, err)
}

func TestLinguisticVariable_AddTerm(t *testing.T) {
	lv := NewLinguisticVariable("Ambient")

	require.NoError(t, lv.AddTerm("Dark", NewTriangle(0, 0, 0.5)))
	require.NoError(t, lv.AddTerm("bright", NewTriangle(0.5, 1, 1)))

	err := lv.AddTerm("dark", NewTriangle(0, 0.1, 0.2))
	require.Error(t, err)
	var modelErr *apperr.ModelError
	assert.True(t, errors.As(err, &modelErr))

	assert.Equal(t, "ambient", lv.Name())
	assert.True(t, lv.HasTerm("DARK"))
	assert.Equal(t, []string{"dark", "bright"}, lv.Terms())
	assert.Equal(t, "T(ambient) = {dark, bright}", lv.String())

	mf, err := lv.Term("dark")
	require.NoError(t, err)
	assert.Equal(t, NewTriangle(0, 0, 0.5), mf)
}

func TestSymbolTable(t *testing.T) {
	st := NewSymbolTable()
	require.NoError(t, st.Register(newCarSpeed(t)))
	require.NoError(t, st.Register(newBrakeForce(t)))

	t.Run("lookup is case insensitive", func(t *testing.T) {
		lv, ok := st.Lookup("CARSPEED")
		require.True(t, ok)
		assert.Equal(t, "carspeed", lv.Name())
		assert.True(t, st.HasVariable("brakeforce"))
		assert.False(t, st.HasVariable("speed"))
	})

	t.Run("terms are checked per variable", func(t *testing.T) {
		assert.True(t, st.HasTerm("carSpeed", "low"))
		assert.False(t, st.HasTerm("carSpeed", "moderate"))
		assert.False(t, st.HasTerm("speed", "low"))
	})

	t.Run("registration order", func(t *testing.T) {
		vars := st.Variables()
		require.Len(t, vars, 2)
		assert.Equal(t, "carspeed", vars[0].Name())
		assert.Equal(t, "brakeforce", vars[1].Name())
		assert.Equal(t, 2, st.Len())
	})

	t.Run("duplicate variable", func(t *testing.T) {
		err := st.Register(NewLinguisticVariable("CarSpeed"))
		require.Error(t, err)
		var modelErr *apperr.ModelError
		assert.True(t, errors.As(err, &modelErr))
		assert.Equal(t, 2, st.Len())
	})

	t.Run("frozen", func(t *testing.T) {
		frozen := NewSymbolTable()
		frozen.Freeze()

		assert.True(t, frozen.Frozen())
		assert.Error(t, frozen.Register(newCarSpeed(t)))
		assert.Equal(t, 0, frozen.Len())
	})
}

func TestStack(t *testing.T) {
	var s Stack
	s.Push("x")
	s.Push("a")
	s.Push("IS")

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "a", s.At(1))
	assert.Equal(t, "x a IS", s.String())

	items := s.Items()
	items[0] = "changed"
	assert.Equal(t, "x", s.At(0))
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "IDLE", StatusIdle.String())
	assert.Equal(t, "DONE", StatusDone.String())
	assert.Equal(t, "ERRONEOUS", StatusErroneous.String())
}
