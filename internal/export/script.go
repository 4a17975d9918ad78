package export

import (
	"fmt"
	"strings"

	"github.com/Houeta/deedplot/internal/models"
)

// renderAutoCADScript emits a command script that draws the boundary as a
// closed polyline and places a TEXT label at every point.
func renderAutoCADScript(coords []models.Coordinate) []byte {
	var b strings.Builder

	b.WriteString("PLINE\n")
	for _, c := range coords {
		fmt.Fprintf(&b, "%.3f,%.3f\n", c.X, c.Y)
	}
	b.WriteString("C\n")

	for _, c := range coords {
		fmt.Fprintf(&b, "TEXT %.3f,%.3f %.1f 0 %s\n", c.X, c.Y, labelTextHeight, c.Label)
	}
	return []byte(b.String())
}
