package geo

import (
	"math"

	"github.com/paulmach/orb"
)

const (
	// DefaultPadding grows the fitted bound on each side so markers near the
	// edge are not clipped by the viewport
	DefaultPadding = 0.1

	// MaxZoom caps how far the fitter zooms in. A single point would otherwise
	// produce an infinite zoom.
	MaxZoom = 15.0

	// worldSpanDeg is the longitude span visible at zoom level zero
	worldSpanDeg = 360.0
)

// Viewport describes where a map should center and how far it should zoom to
// show a set of markers
type Viewport struct {
	Center    Coordinate `json:"center"`
	Zoom      float64    `json:"zoom"`
	SouthWest Coordinate `json:"south_west"`
	NorthEast Coordinate `json:"north_east"`
}

type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// FitBounds computes the viewport that contains every point with padding
// applied. No points means no viewport: the caller keeps its default view.
func FitBounds(points []orb.Point) *Viewport {
	return FitBoundsPadded(points, DefaultPadding)
}

// FitBoundsPadded is FitBounds with an explicit padding fraction per side
func FitBoundsPadded(points []orb.Point, padding float64) *Viewport {
	if len(points) == 0 {
		return nil
	}

	bound := orb.MultiPoint(points).Bound()

	spanLng := bound.Max[0] - bound.Min[0]
	spanLat := bound.Max[1] - bound.Min[1]
	bound = bound.Pad(math.Max(spanLng, spanLat) * padding)

	center := bound.Center()

	return &Viewport{
		Center: Coordinate{
			Latitude:  center[1],
			Longitude: center[0],
		},
		Zoom: zoomFor(bound),
		SouthWest: Coordinate{
			Latitude:  bound.Min[1],
			Longitude: bound.Min[0],
		},
		NorthEast: Coordinate{
			Latitude:  bound.Max[1],
			Longitude: bound.Max[0],
		},
	}
}

// zoomFor picks the deepest zoom level whose visible span still covers the
// bound, capped at MaxZoom
func zoomFor(bound orb.Bound) float64 {
	spanLng := bound.Max[0] - bound.Min[0]
	spanLat := bound.Max[1] - bound.Min[1]

	// Latitude rows render at half the world span, so weight it double
	span := math.Max(spanLng, spanLat*2)
	if span <= 0 {
		return MaxZoom
	}

	zoom := math.Log2(worldSpanDeg / span)
	if zoom > MaxZoom {
		return MaxZoom
	}
	if zoom < 0 {
		return 0
	}
	return math.Floor(zoom*2) / 2
}
