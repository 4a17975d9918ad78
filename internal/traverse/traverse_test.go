package traverse_test

import (
	"errors"
	"testing"

	"github.com/Houeta/deedplot/internal/distance"
	"github.com/Houeta/deedplot/internal/models"
	"github.com/Houeta/deedplot/internal/traverse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBuilder() *traverse.Builder {
	return traverse.NewBuilder(distance.NewNormalizer(distance.DefaultVaraFeet))
}

// squareCalls walks due east, south, west, north, 100 feet each.
func squareCalls() []models.Call {
	return []models.Call{
		{BearingText: `N90°00'00"E`, DistanceText: "100"},
		{BearingText: `S00°00'00"E`, DistanceText: "100"},
		{BearingText: `S90°00'00"W`, DistanceText: "100"},
		{BearingText: `N00°00'00"W`, DistanceText: "100"},
	}
}

func TestBuildSequence(t *testing.T) {
	builder := newBuilder()

	t.Run("valid sequence preserves order", func(t *testing.T) {
		calls := []models.Call{
			{BearingText: "N45E", DistanceText: "1 chain", Monument: "iron pin"},
			{BearingText: "S45E", DistanceText: "100"},
			{BearingText: "W", DistanceText: "2 rods", Description: "along the fence"},
		}

		normalized, err := builder.BuildSequence(calls)
		require.NoError(t, err)
		require.Len(t, normalized, 3)

		assert.InDelta(t, 45.0, normalized[0].AzimuthDegrees, 1e-9)
		assert.InDelta(t, 66.0, normalized[0].DistanceFeet, 1e-9)
		assert.Equal(t, "iron pin", normalized[0].Monument)
		assert.InDelta(t, 135.0, normalized[1].AzimuthDegrees, 1e-9)
		assert.InDelta(t, 270.0, normalized[2].AzimuthDegrees, 1e-9)
		assert.InDelta(t, 33.0, normalized[2].DistanceFeet, 1e-9)
		assert.Equal(t, "along the fence", normalized[2].Description)
	})

	t.Run("collects every defect instead of failing fast", func(t *testing.T) {
		calls := []models.Call{
			{BearingText: "N45E", DistanceText: "100"},
			{BearingText: "not a bearing", DistanceText: "100"},
			{BearingText: "S45W", DistanceText: "100"},
			{BearingText: "N10W", DistanceText: "-5"},
			{BearingText: "E", DistanceText: "50"},
		}

		normalized, err := builder.BuildSequence(calls)
		require.Error(t, err)
		assert.Nil(t, normalized)

		var errs models.CallErrors
		require.True(t, errors.As(err, &errs))
		require.Len(t, errs, 2)
		assert.Equal(t, 1, errs[0].Index)
		assert.Equal(t, models.KindInvalidBearing, errs[0].Kind)
		assert.Equal(t, "not a bearing", errs[0].OriginalText)
		assert.Equal(t, 3, errs[1].Index)
		assert.Equal(t, models.KindInvalidDistance, errs[1].Kind)
	})

	t.Run("one call can carry two defects", func(t *testing.T) {
		calls := []models.Call{
			{BearingText: "bogus", DistanceText: "nope"},
			{BearingText: "N45E", DistanceText: "100"},
			{BearingText: "S45W", DistanceText: "100"},
			{BearingText: "E", DistanceText: "10"},
		}

		_, err := builder.BuildSequence(calls)
		require.Error(t, err)

		var errs models.CallErrors
		require.True(t, errors.As(err, &errs))
		require.Len(t, errs, 2)
		assert.Equal(t, 0, errs[0].Index)
		assert.Equal(t, 0, errs[1].Index)
	})

	t.Run("fewer than three calls is degenerate", func(t *testing.T) {
		calls := []models.Call{
			{BearingText: "N45E", DistanceText: "100"},
			{BearingText: "S45W", DistanceText: "100"},
		}

		_, err := builder.BuildSequence(calls)
		require.Error(t, err)

		var errs models.CallErrors
		require.True(t, errors.As(err, &errs))
		require.Len(t, errs, 1)
		assert.Equal(t, models.KindDegeneratePolygon, errs[0].Kind)
	})
}

func TestCompute_Square(t *testing.T) {
	normalized, err := newBuilder().BuildSequence(squareCalls())
	require.NoError(t, err)

	coords := traverse.Compute(normalized)
	require.Len(t, coords, 5)

	assert.Equal(t, "POB", coords[0].Label)
	assert.Zero(t, coords[0].X)
	assert.Zero(t, coords[0].Y)
	assert.Empty(t, coords[0].Bearing)

	want := [][2]float64{{0, 0}, {100, 0}, {100, -100}, {0, -100}, {0, 0}}
	for i, w := range want {
		assert.InDelta(t, w[0], coords[i].X, 1e-9, "x of point %d", i)
		assert.InDelta(t, w[1], coords[i].Y, 1e-9, "y of point %d", i)
		assert.Equal(t, i, coords[i].PointNumber)
	}

	// Each point records the incoming call.
	assert.Equal(t, `N90°00'00"E`, coords[1].Bearing)
	assert.InDelta(t, 100.0, coords[1].Distance, 1e-9)
	assert.Equal(t, "feet", coords[1].Units)
	assert.Equal(t, "P4", coords[4].Label)
}

func TestCompute_IsDeterministic(t *testing.T) {
	normalized, err := newBuilder().BuildSequence(squareCalls())
	require.NoError(t, err)

	first := traverse.Compute(normalized)
	second := traverse.Compute(normalized)
	assert.Equal(t, first, second)
}

func TestPerimeter(t *testing.T) {
	normalized, err := newBuilder().BuildSequence(squareCalls())
	require.NoError(t, err)

	assert.InDelta(t, 400.0, traverse.Perimeter(normalized), 1e-9)
}
