package geometry

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

const tol = 1e-9

func TestMapEndpoints(t *testing.T) {
	ranges := []struct{ srcMin, srcMax, dstMin, dstMax float64 }{
		{0, 800, -2, 1},
		{0, 790, -1.5, 1.5},
		{10, -10, 3, 7},
		{-0.25, 0.125, 1e-6, 2e-6},
	}
	for _, r := range ranges {
		lo, err := Map(r.srcMin, r.srcMin, r.srcMax, r.dstMin, r.dstMax)
		require.NoError(t, err)
		hi, err := Map(r.srcMax, r.srcMin, r.srcMax, r.dstMin, r.dstMax)
		require.NoError(t, err)
		assert.True(t, scalar.EqualWithinAbs(lo, r.dstMin, tol), "Map(srcMin) = %g, want %g", lo, r.dstMin)
		assert.True(t, scalar.EqualWithinAbs(hi, r.dstMax, tol), "Map(srcMax) = %g, want %g", hi, r.dstMax)
	}
}

func TestMapMidpointAndExtrapolation(t *testing.T) {
	got, err := Map(30, 0, 100, 0, 10)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, got, tol)

	got, err = Map(150, 0, 100, 0, 10)
	require.NoError(t, err)
	assert.InDelta(t, 15.0, got, tol)

	got, err = Map(-50, 0, 100, 0, 10)
	require.NoError(t, err)
	assert.InDelta(t, -5.0, got, tol)
}

func TestMapMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	prev, err := Map(-100, 0, 800, -2, 1)
	require.NoError(t, err)
	for v := -99.0; v < 900; v += rng.Float64() * 3 {
		got, err := Map(v, 0, 800, -2, 1)
		require.NoError(t, err)
		require.GreaterOrEqual(t, got, prev, "Map not monotonic at %g", v)
		prev = got
	}
}

func TestMapDegenerateRange(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 50; i++ {
		src := rng.NormFloat64() * 100
		_, err := Map(rng.NormFloat64(), src, src, rng.NormFloat64(), rng.NormFloat64())
		require.Error(t, err)

		var dre *DegenerateRangeError
		require.True(t, errors.As(err, &dre))
		assert.Equal(t, src, dre.Min)
		assert.True(t, errors.Is(err, ErrDegenerateRange))
	}
}

func TestMapRectCorners(t *testing.T) {
	window := NewRect(0, 0, 800, 790)
	math := NewRect(-2, -1.5, 3, 3)

	tl, err := MapRect(NewPoint2D(window.Left(), window.Top()), window, math)
	require.NoError(t, err)
	assert.Equal(t, NewPoint2D(-2, -1.5), tl)

	br, err := MapRect(NewPoint2D(window.Right(), window.Bottom()), window, math)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, br.X, tol)
	assert.InDelta(t, 1.5, br.Y, tol)
}

func TestMapRectDegenerateAxis(t *testing.T) {
	_, err := MapRect(Point2D{}, NewRect(0, 0, 10, 0), NewRect(0, 0, 1, 1))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDegenerateRange)
	assert.Contains(t, err.Error(), "y axis")
}
