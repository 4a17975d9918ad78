// Package plotting wires the normalization, traverse and closure stages into
// one pipeline, and offers a content-addressed cache for callers that plot
// the same deed repeatedly.
package plotting

import (
	"github.com/Houeta/deedplot/internal/closure"
	"github.com/Houeta/deedplot/internal/distance"
	"github.com/Houeta/deedplot/internal/models"
	"github.com/Houeta/deedplot/internal/traverse"
)

// Options carries the survey conventions the pipeline runs under. Zero
// values fall back to the package defaults of the respective stage.
type Options struct {
	VaraFeet             float64 // VaraFeet is the vara-to-feet factor; varies by jurisdiction.
	ClosureToleranceFeet float64 // ClosureToleranceFeet is the closed-traverse threshold.
	PrecisionWarnPPM     float64 // PrecisionWarnPPM is the low-precision warning threshold.
}

// Pipeline turns raw call sequences into plot results. It is stateless and
// safe for concurrent use: every stage takes immutable input and returns a
// new result.
type Pipeline struct {
	builder  *traverse.Builder
	analyzer *closure.Analyzer
}

// NewPipeline creates a Pipeline with the given survey conventions.
func NewPipeline(opts Options) *Pipeline {
	return &Pipeline{
		builder:  traverse.NewBuilder(distance.NewNormalizer(opts.VaraFeet)),
		analyzer: closure.NewAnalyzer(opts.ClosureToleranceFeet, opts.PrecisionWarnPPM),
	}
}

// Plot normalizes the calls, walks them into coordinates and analyzes the
// closure. On parse failure the error is the complete per-call defect list,
// never a partial result.
func (p *Pipeline) Plot(calls []models.Call) (*models.PlotResult, error) {
	normalized, err := p.builder.BuildSequence(calls)
	if err != nil {
		return nil, err
	}

	coords := traverse.Compute(normalized)
	result, err := p.analyzer.Analyze(coords, traverse.Perimeter(normalized))
	if err != nil {
		return nil, err
	}

	return &models.PlotResult{Coordinates: coords, Closure: result}, nil
}

// Validate reports the quality findings for a computed plot.
func (p *Pipeline) Validate(result *models.PlotResult) models.ValidationReport {
	return p.analyzer.Validate(result.Coordinates, result.Closure)
}
