// Package traverse validates ordered call sequences and walks them into
// Cartesian coordinates on the local survey grid.
package traverse

import (
	"fmt"
	"math"

	"github.com/Houeta/deedplot/internal/bearing"
	"github.com/Houeta/deedplot/internal/distance"
	"github.com/Houeta/deedplot/internal/models"
)

// minPolygonCalls is the minimum number of valid calls a boundary needs;
// a polygon has at least three vertices.
const minPolygonCalls = 3

// Builder normalizes raw call sequences. It carries the distance normalizer
// so the vara factor configured for the deployment applies to every deed.
type Builder struct {
	distances *distance.Normalizer
}

// NewBuilder returns a Builder using the given distance normalizer.
func NewBuilder(distances *distance.Normalizer) *Builder {
	return &Builder{distances: distances}
}

// BuildSequence normalizes every call in order. It does not fail fast: each
// call is normalized independently, and the caller receives either the full
// normalized sequence or the complete list of per-call errors, so an
// upstream extractor can report every defect at once. A sequence with fewer
// than three valid calls is rejected before traversal.
func (b *Builder) BuildSequence(calls []models.Call) ([]models.NormalizedCall, error) {
	var errs models.CallErrors
	normalized := make([]models.NormalizedCall, 0, len(calls))

	for i, call := range calls {
		bad := false

		azimuth, err := bearing.Parse(call.BearingText)
		if err != nil {
			errs = append(errs, atIndex(err, i))
			bad = true
		}

		feet, err := b.distances.Parse(call.DistanceText, call.Unit)
		if err != nil {
			errs = append(errs, atIndex(err, i))
			bad = true
		}

		if bad {
			continue
		}
		normalized = append(normalized, models.NormalizedCall{
			AzimuthDegrees: azimuth,
			DistanceFeet:   feet,
			Monument:       call.Monument,
			Description:    call.Description,
		})
	}

	if len(errs) > 0 {
		return nil, errs
	}

	if len(normalized) < minPolygonCalls {
		return nil, models.CallErrors{{
			Kind:   models.KindDegeneratePolygon,
			Index:  -1,
			Reason: fmt.Sprintf("a boundary needs at least %d calls, got %d", minPolygonCalls, len(normalized)),
		}}
	}
	return normalized, nil
}

// atIndex stamps the failing call's index onto a parse error.
func atIndex(err error, index int) *models.ParseError {
	if perr, ok := err.(*models.ParseError); ok {
		stamped := *perr
		stamped.Index = index
		return &stamped
	}
	return &models.ParseError{
		Kind:   models.KindInvalidBearing,
		Index:  index,
		Reason: err.Error(),
	}
}

// Compute folds a normalized call sequence into coordinates, starting from
// the point of beginning at the local origin. Survey convention: north is
// +y, east is +x, azimuth is measured clockwise from north, so
//
//	x += d * sin(θ)
//	y += d * cos(θ)
//
// Coordinate i carries the incoming call's bearing, distance, monument and
// description; point 0 carries none. Compute is a pure fold, deterministic
// and independent of any prior invocation.
func Compute(calls []models.NormalizedCall) []models.Coordinate {
	coords := make([]models.Coordinate, 0, len(calls)+1)
	coords = append(coords, models.Coordinate{
		PointNumber: 0,
		X:           0,
		Y:           0,
		Label:       "POB",
		Description: "Point of Beginning",
	})

	x, y := 0.0, 0.0
	for i, call := range calls {
		theta := call.AzimuthDegrees * math.Pi / 180
		x += call.DistanceFeet * math.Sin(theta)
		y += call.DistanceFeet * math.Cos(theta)

		coords = append(coords, models.Coordinate{
			PointNumber: i + 1,
			X:           x,
			Y:           y,
			Label:       fmt.Sprintf("P%d", i+1),
			Description: call.Description,
			Monument:    call.Monument,
			Bearing:     bearing.Format(call.AzimuthDegrees),
			Distance:    call.DistanceFeet,
			Units:       "feet",
		})
	}
	return coords
}

// Perimeter sums the call distances. The perimeter is taken from the calls
// rather than recomputed from coordinate deltas, keeping it robust to
// floating rounding in the walk.
func Perimeter(calls []models.NormalizedCall) float64 {
	total := 0.0
	for _, call := range calls {
		total += call.DistanceFeet
	}
	return total
}
