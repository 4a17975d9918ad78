package models

// Coordinate is one vertex of the computed traverse. Coordinates form an
// ordered sequence: the order is the boundary traversal direction and must
// never be treated as a set. Point 0 is always the point of beginning at the
// local origin (0,0). Each later point carries the incoming call, i.e. how
// the surveyor got there from the previous point.
type Coordinate struct {
	PointNumber int     `json:"point_number"`          // PointNumber is the 0-based insertion index.
	X           float64 `json:"x"`                     // X is east in feet on the local survey grid.
	Y           float64 `json:"y"`                     // Y is north in feet on the local survey grid.
	Label       string  `json:"label"`                 // Label is "POB" for point 0, otherwise a sequence tag like "P3".
	Description string  `json:"description"`           // Description is carried over from the incoming call.
	Monument    string  `json:"monument,omitempty"`    // Monument is the marker at this point, if the call named one.
	Bearing     string  `json:"bearing,omitempty"`     // Bearing is the incoming call's bearing in quadrant form; empty for point 0.
	Distance    float64 `json:"distance"`              // Distance is the incoming call's length in feet; zero for point 0.
	Units       string  `json:"units"`                 // Units names the unit of Distance, "feet" after normalization; empty for point 0.
}
