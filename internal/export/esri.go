package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/Houeta/deedplot/internal/models"
)

// renderEsriTraverse emits the ArcGIS traverse-import file: one COURSE line
// per leg with the leg's azimuth (degrees clockwise from north) and length
// in feet, recovered from the coordinate deltas.
func renderEsriTraverse(coords []models.Coordinate) []byte {
	var b strings.Builder

	b.WriteString("TRAVERSE\nUNITS FEET\nBEGIN\n")
	for i := 1; i < len(coords); i++ {
		dx := coords[i].X - coords[i-1].X
		dy := coords[i].Y - coords[i-1].Y
		length := math.Hypot(dx, dy)
		azimuth := math.Atan2(dx, dy) * 180 / math.Pi
		if azimuth < 0 {
			azimuth += 360
		}
		fmt.Fprintf(&b, "COURSE %.6f %.3f\n", azimuth, length)
	}
	b.WriteString("END\n")
	return []byte(b.String())
}
