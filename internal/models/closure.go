package models

// ClosureResult quantifies how well a traverse returns to its point of
// beginning, plus the derived area and perimeter figures. It is recomputed
// in full whenever the coordinate sequence changes.
type ClosureResult struct {
	ClosureDistance float64 `json:"closure_distance"`  // ClosureDistance is the gap from the last point back to the POB, feet.
	ClosureBearing  string  `json:"closure_bearing"`   // ClosureBearing is the direction of that gap in quadrant form, or "N/A".
	PrecisionRatio  string  `json:"precision_ratio"`   // PrecisionRatio is perimeter/closure rendered as "1:N" ("1:∞" when exact).
	AreaAcres       float64 `json:"area_acres"`        // AreaAcres is the enclosed area in acres.
	AreaSqFeet      float64 `json:"area_sq_feet"`      // AreaSqFeet is the enclosed area in square feet.
	PerimeterFeet   float64 `json:"perimeter_feet"`    // PerimeterFeet is the sum of all call distances.
	IsClosed        bool    `json:"is_closed"`         // IsClosed reports whether the closure gap is within tolerance.
	ClosureErrorPPM float64 `json:"closure_error_ppm"` // ClosureErrorPPM is the closure gap in parts per million of perimeter.
}

// PlotResult is the analysis output for one deed: the computed coordinate
// sequence together with its closure report.
type PlotResult struct {
	Coordinates []Coordinate  `json:"coordinates"`
	Closure     ClosureResult `json:"closure"`
}

// Issue is a single finding in a validation report.
type Issue struct {
	Type    string `json:"type"`    // Type classifies the finding, e.g. "closure" or "precision".
	Message string `json:"message"` // Message is the human-readable finding.
}

// ValidationReport summarizes plot quality checks: closure, precision and
// minimum point count. Warnings do not make the plot invalid; errors do.
type ValidationReport struct {
	IsValid  bool    `json:"is_valid"`
	Warnings []Issue `json:"warnings"`
	Errors   []Issue `json:"errors"`
}
