package fuzzy

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/fuzzy-engine/internal/apperr"
)

const delta = 0.01

func TestMembershipFunction_Fuzzify(t *testing.T) {
	t.Run("trapezoid", func(t *testing.T) {
		mf := NewTrapezoid(0, 1, 3, 4)

		assert.Equal(t, 0.0, mf.Fuzzify(0))
		assert.Equal(t, 1.0, mf.Fuzzify(1))
		assert.Equal(t, 1.0, mf.Fuzzify(3))
		assert.Equal(t, 0.0, mf.Fuzzify(4))
		assert.InDelta(t, 0.5, mf.Fuzzify(0.5), 1e-9)
		assert.InDelta(t, 0.5, mf.Fuzzify(3.5), 1e-9)
		assert.Equal(t, 0.0, mf.Fuzzify(-1))
		assert.Equal(t, 0.0, mf.Fuzzify(10))
	})

	t.Run("triangle", func(t *testing.T) {
		mf := NewTriangle(2, 5, 8)

		assert.Equal(t, 0.0, mf.Fuzzify(2))
		assert.Equal(t, 1.0, mf.Fuzzify(5))
		assert.Equal(t, 0.0, mf.Fuzzify(8))
		assert.InDelta(t, 1.0/3, mf.Fuzzify(3), 1e-9)
	})

	t.Run("degenerate left shoulder", func(t *testing.T) {
		mf := NewTrapezoid(0, 0, 0, 1)

		assert.Equal(t, 0.0, mf.Fuzzify(0))
		assert.InDelta(t, 0.75, mf.Fuzzify(0.25), 1e-9)
	})
}

func TestMembershipFunction_Reason(t *testing.T) {
	t.Run("trapezoid", func(t *testing.T) {
		mf, err := NewTrapezoid(0, 1, 3, 4).Reason(0.5)
		require.NoError(t, err)

		assert.True(t, mf.Reasoned())
		assert.Equal(t, 0.5, mf.Height())
		assert.InDelta(t, 0.5, mf.Fuzzify(0.5), 1e-9)
		assert.InDelta(t, 0.5, mf.Fuzzify(3.5), 1e-9)
		assert.InDelta(t, 0.5, mf.Fuzzify(2), 1e-9)
		assert.InDelta(t, 0.25, mf.Fuzzify(0.25), 1e-9)
		assert.InDelta(t, 0.25, mf.Fuzzify(3.75), 1e-9)
	})

	t.Run("triangle", func(t *testing.T) {
		mf, err := NewTriangle(2, 5, 8).Reason(0.65)
		require.NoError(t, err)

		assert.InDelta(t, 0.65, mf.Fuzzify(4), 1e-9)
		assert.InDelta(t, 0.65, mf.Fuzzify(5), 1e-9)
		assert.InDelta(t, 0.65, mf.Fuzzify(6), 1e-9)
		assert.InDelta(t, 0.5, mf.Fuzzify(3.5), 1e-9)
		assert.InDelta(t, 0.5, mf.Fuzzify(6.5), 1e-9)
		assert.Equal(t, 2.0, mf.Start())
		assert.Equal(t, 8.0, mf.End())
	})

	t.Run("zero degree yields zero function", func(t *testing.T) {
		mf, err := NewTriangle(2, 5, 8).Reason(0)
		require.NoError(t, err)

		assert.Equal(t, MembershipFunction{}, mf)
		assert.Equal(t, 0.0, mf.Fuzzify(5))
	})

	t.Run("reasoned twice", func(t *testing.T) {
		mf, err := NewTriangle(2, 5, 8).Reason(0.5)
		require.NoError(t, err)

		_, err = mf.Reason(0.5)
		require.Error(t, err)
		var engineErr *apperr.EngineError
		assert.True(t, errors.As(err, &engineErr))
	})
}

func TestMembershipFunction_Validate(t *testing.T) {
	assert.NoError(t, NewTrapezoid(0, 1, 3, 4).Validate())
	assert.NoError(t, NewTriangle(0, 0, 0).Validate())
	assert.Error(t, NewTrapezoid(0, 3, 1, 4).Validate())
	assert.Error(t, NewTriangle(5, 2, 8).Validate())
}

func TestMembershipFunction_Plot(t *testing.T) {
	t.Run("trapezoid", func(t *testing.T) {
		c := NewTrapezoid(0, 1, 3, 4).Plot(0, 8, 8)

		require.Equal(t, 9, c.Len())
		assert.Equal(t, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8}, c.X())
		assert.Equal(t, []float64{0, 1, 1, 1, 0, 0, 0, 0, 0}, c.Y())
	})

	t.Run("triangle", func(t *testing.T) {
		c := NewTriangle(2, 5, 8).Plot(0, 8, 8)

		want := []float64{0, 0, 0, 0.33, 0.66, 1, 0.66, 0.33, 0}
		require.Equal(t, len(want), c.Len())
		for i, y := range want {
			assert.InDelta(t, y, c.Y()[i], delta, "sample %d", i)
		}
	})
}

func TestMembershipFunction_String(t *testing.T) {
	assert.Equal(t,
		"MF { start = 0.00, left_top = 1.00, right_top = 3.00, end = 4.00, height = 1.00 }",
		NewTrapezoid(0, 1, 3, 4).String())
}

func reasonedPair(t *testing.T) []MembershipFunction {
	t.Helper()

	trapezoid, err := NewTrapezoid(0, 1, 3, 4).Reason(0.5)
	require.NoError(t, err)
	triangle, err := NewTriangle(2, 5, 8).Reason(0.65)
	require.NoError(t, err)

	return []MembershipFunction{trapezoid, triangle}
}

func TestSuperposition(t *testing.T) {
	t.Run("max of reasoned functions", func(t *testing.T) {
		c, err := Superposition(reasonedPair(t), 8)
		require.NoError(t, err)

		want := []float64{0, 0.5, 0.5, 0.5, 0.65, 0.65, 0.65, 0.33, 0}
		require.Equal(t, len(want), c.Len())
		for i, y := range want {
			assert.InDelta(t, y, c.Y()[i], delta, "sample %d", i)
		}
		assert.Equal(t, 0.0, c.X()[0])
		assert.Equal(t, 8.0, c.X()[8])
	})

	t.Run("folds every function", func(t *testing.T) {
		third, err := NewTriangle(6, 7, 8).Reason(0.9)
		require.NoError(t, err)

		c, err := Superposition(append(reasonedPair(t), third), 8)
		require.NoError(t, err)
		assert.InDelta(t, 0.9, c.Y()[7], 1e-9)
	})

	t.Run("window includes zero", func(t *testing.T) {
		a := NewTriangle(2, 3, 4)
		b := NewTriangle(3, 4, 5)

		c, err := Superposition([]MembershipFunction{a, b}, 5)
		require.NoError(t, err)
		assert.Equal(t, 0.0, c.X()[0])
		assert.Equal(t, 5.0, c.X()[5])
	})

	t.Run("less than two functions", func(t *testing.T) {
		_, err := Superposition(reasonedPair(t)[:1], 8)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "less than two membership functions")
	})

	t.Run("non positive steps", func(t *testing.T) {
		_, err := Superposition(reasonedPair(t), 0)
		assert.Error(t, err)
	})
}

func TestCenterOfMass(t *testing.T) {
	t.Run("superposition", func(t *testing.T) {
		c, err := Superposition(reasonedPair(t), 8)
		require.NoError(t, err)

		assert.InDelta(t, 3.9867, CenterOfMass(c), 1e-4)
	})

	t.Run("rectangle", func(t *testing.T) {
		c := Curve{{0, 1, 2, 3, 4}, {0, 0, 4, 4, 0}}

		assert.Equal(t, 2.5, CenterOfMass(c))
	})

	t.Run("no area", func(t *testing.T) {
		c := Curve{{0, 1, 2}, {0, 0, 0}}

		assert.True(t, math.IsNaN(CenterOfMass(c)))
	})
}
