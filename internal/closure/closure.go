// Package closure derives closure, precision and area metrics from a
// computed traverse.
package closure

import (
	"fmt"
	"math"

	"github.com/Houeta/deedplot/internal/bearing"
	"github.com/Houeta/deedplot/internal/models"
)

const (
	// DefaultToleranceFeet is the survey-industry closure convention: a
	// traverse closing within a tenth of a foot is considered closed.
	DefaultToleranceFeet = 0.10

	// DefaultPrecisionWarnPPM is the closure-error level above which a plot
	// is flagged as low precision (worse than 1:200).
	DefaultPrecisionWarnPPM = 5000.0

	// SquareFeetPerAcre converts enclosed area to acres.
	SquareFeetPerAcre = 43560.0

	ppmScale  = 1_000_000.0
	minPoints = 3
)

// Analyzer computes closure reports against configured tolerances. The zero
// value is not usable; create one with NewAnalyzer.
type Analyzer struct {
	toleranceFeet    float64
	precisionWarnPPM float64
}

// NewAnalyzer returns an Analyzer. Non-positive arguments fall back to the
// package defaults.
func NewAnalyzer(toleranceFeet, precisionWarnPPM float64) *Analyzer {
	if toleranceFeet <= 0 {
		toleranceFeet = DefaultToleranceFeet
	}
	if precisionWarnPPM <= 0 {
		precisionWarnPPM = DefaultPrecisionWarnPPM
	}
	return &Analyzer{toleranceFeet: toleranceFeet, precisionWarnPPM: precisionWarnPPM}
}

// Analyze produces the closure report for a coordinate sequence. The
// perimeter is supplied by the caller (summed from the call distances, not
// recomputed from deltas). The area treats the sequence as an implicitly
// closed polygon whether or not the traverse itself closes.
func (a *Analyzer) Analyze(coords []models.Coordinate, perimeterFeet float64) (models.ClosureResult, error) {
	if len(coords) < minPoints {
		return models.ClosureResult{}, &models.ParseError{
			Kind:   models.KindDegenerateGeometry,
			Index:  -1,
			Reason: fmt.Sprintf("closure analysis needs at least %d points, got %d", minPoints, len(coords)),
		}
	}
	if perimeterFeet <= 0 {
		return models.ClosureResult{}, &models.ParseError{
			Kind:   models.KindDegenerateGeometry,
			Index:  -1,
			Reason: "perimeter must be positive",
		}
	}

	first, last := coords[0], coords[len(coords)-1]
	dx := first.X - last.X
	dy := first.Y - last.Y
	closureDistance := math.Hypot(dx, dy)

	closureBearing := "N/A"
	if closureDistance > a.toleranceFeet {
		// Azimuth of the vector needed to travel from the last point back to
		// the point of beginning.
		azimuth := math.Atan2(dx, dy) * 180 / math.Pi
		closureBearing = bearing.Format(azimuth)
	}

	precisionRatio := "1:∞"
	if closureDistance > 0 {
		precisionRatio = fmt.Sprintf("1:%.0f", math.Round(perimeterFeet/closureDistance))
	}

	areaSqFeet := shoelaceArea(coords)

	return models.ClosureResult{
		ClosureDistance: closureDistance,
		ClosureBearing:  closureBearing,
		PrecisionRatio:  precisionRatio,
		AreaAcres:       areaSqFeet / SquareFeetPerAcre,
		AreaSqFeet:      areaSqFeet,
		PerimeterFeet:   perimeterFeet,
		IsClosed:        closureDistance <= a.toleranceFeet,
		ClosureErrorPPM: closureDistance / perimeterFeet * ppmScale,
	}, nil
}

// Validate turns a closure report into the quality findings surfaced to the
// user: an open traverse and low precision are warnings, too few points is
// an error.
func (a *Analyzer) Validate(coords []models.Coordinate, result models.ClosureResult) models.ValidationReport {
	report := models.ValidationReport{
		IsValid:  true,
		Warnings: []models.Issue{},
		Errors:   []models.Issue{},
	}

	if !result.IsClosed {
		report.Warnings = append(report.Warnings, models.Issue{
			Type:    "closure",
			Message: fmt.Sprintf("plot does not close; closure distance is %.3f feet", result.ClosureDistance),
		})
	}
	if result.ClosureErrorPPM > a.precisionWarnPPM {
		report.Warnings = append(report.Warnings, models.Issue{
			Type:    "precision",
			Message: fmt.Sprintf("low precision: %s", result.PrecisionRatio),
		})
	}
	if len(coords) < minPoints {
		report.IsValid = false
		report.Errors = append(report.Errors, models.Issue{
			Type:    "insufficient_data",
			Message: "insufficient coordinate points for a valid plot",
		})
	}
	return report
}

// shoelaceArea computes the polygon area of the coordinate sequence,
// implicitly closing from the last point back to the first. The absolute
// value makes the result independent of winding direction.
func shoelaceArea(coords []models.Coordinate) float64 {
	n := len(coords)
	if n < minPoints {
		return 0
	}

	sum := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += coords[i].X*coords[j].Y - coords[j].X*coords[i].Y
	}
	return math.Abs(sum) / 2
}
