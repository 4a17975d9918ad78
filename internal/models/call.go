package models

// Call represents a single raw metes-and-bounds call as received from the
// upstream extraction layer. It is never mutated after creation.
type Call struct {
	BearingText  string `json:"bearing_text"`          // BearingText is the bearing exactly as extracted, e.g. `N45°30'15"E`.
	DistanceText string `json:"distance_text"`         // DistanceText is the distance token, optionally with an inline unit.
	Unit         string `json:"unit,omitempty"`        // Unit is an optional explicit unit when not inlined in DistanceText.
	Monument     string `json:"monument,omitempty"`    // Monument is the physical marker referenced by the call, if any.
	Description  string `json:"description,omitempty"` // Description is the free-text description of the call.
}

// NormalizedCall is the canonical numeric form of a Call: an azimuth in
// decimal degrees [0,360) and a distance in feet. There is exactly one
// NormalizedCall per valid Call; an invalid Call yields an error instead.
type NormalizedCall struct {
	AzimuthDegrees float64 `json:"azimuth_degrees"` // AzimuthDegrees is measured clockwise from north, [0,360).
	DistanceFeet   float64 `json:"distance_feet"`   // DistanceFeet is the call length converted to feet, >= 0.
	Monument       string  `json:"monument,omitempty"`
	Description    string  `json:"description,omitempty"`
}

// Deed is a unit of work for the plotting service: an ordered call sequence
// plus the identity of the source it was read from.
type Deed struct {
	ID    string // ID is the deed identifier, derived from the source file name.
	Path  string // Path is the location of the source file in the intake directory.
	Calls []Call // Calls is the ordered call sequence describing the boundary walk.
}
