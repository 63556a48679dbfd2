package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitBounds_NoPoints(t *testing.T) {
	assert.Nil(t, FitBounds(nil))
	assert.Nil(t, FitBounds([]orb.Point{}))
}

func TestFitBounds_SinglePoint(t *testing.T) {
	viewport := FitBounds([]orb.Point{{90.4125, 23.7808}}) // Dhaka

	require.NotNil(t, viewport)
	assert.InDelta(t, 23.7808, viewport.Center.Latitude, 1e-9)
	assert.InDelta(t, 90.4125, viewport.Center.Longitude, 1e-9)
	assert.Equal(t, MaxZoom, viewport.Zoom, "a degenerate bound zooms all the way in")
}

func TestFitBounds_ContainsEveryPoint(t *testing.T) {
	points := []orb.Point{
		{90.4125, 23.7808}, // Dhaka
		{90.4071, 23.7925}, // Gulshan
		{90.3654, 23.8067}, // Mirpur
	}

	viewport := FitBounds(points)
	require.NotNil(t, viewport)

	for _, p := range points {
		assert.LessOrEqual(t, viewport.SouthWest.Longitude, p[0])
		assert.GreaterOrEqual(t, viewport.NorthEast.Longitude, p[0])
		assert.LessOrEqual(t, viewport.SouthWest.Latitude, p[1])
		assert.GreaterOrEqual(t, viewport.NorthEast.Latitude, p[1])
	}
}

func TestFitBoundsPadded_PaddingGrowsBound(t *testing.T) {
	points := []orb.Point{
		{90.40, 23.78},
		{90.45, 23.82},
	}

	tight := FitBoundsPadded(points, 0)
	padded := FitBoundsPadded(points, 0.25)
	require.NotNil(t, tight)
	require.NotNil(t, padded)

	assert.Less(t, padded.SouthWest.Longitude, tight.SouthWest.Longitude)
	assert.Less(t, padded.SouthWest.Latitude, tight.SouthWest.Latitude)
	assert.Greater(t, padded.NorthEast.Longitude, tight.NorthEast.Longitude)
	assert.Greater(t, padded.NorthEast.Latitude, tight.NorthEast.Latitude)

	// Padding shifts the edges, not the center
	assert.InDelta(t, tight.Center.Latitude, padded.Center.Latitude, 1e-9)
	assert.InDelta(t, tight.Center.Longitude, padded.Center.Longitude, 1e-9)
}

func TestFitBounds_ZoomScalesWithSpread(t *testing.T) {
	neighborhood := FitBounds([]orb.Point{
		{90.4125, 23.7808},
		{90.4071, 23.7925},
	})
	country := FitBounds([]orb.Point{
		{88.60, 21.60}, // southwest Bangladesh
		{92.67, 26.63}, // northeast Bangladesh
		{90.41, 23.78},
	})
	require.NotNil(t, neighborhood)
	require.NotNil(t, country)

	assert.Greater(t, neighborhood.Zoom, country.Zoom)
	assert.GreaterOrEqual(t, country.Zoom, 0.0)
	assert.LessOrEqual(t, neighborhood.Zoom, MaxZoom)
}

func TestFitBounds_WorldSpanClampsToZero(t *testing.T) {
	viewport := FitBoundsPadded([]orb.Point{
		{-179.0, -60.0},
		{179.0, 70.0},
	}, DefaultPadding)

	require.NotNil(t, viewport)
	assert.Equal(t, 0.0, viewport.Zoom)
}
