package export

import (
	"fmt"
	"strings"

	"github.com/Houeta/deedplot/internal/models"
)

// labelTextHeight is the drawing-units height of point labels in the DXF
// and AutoCAD outputs.
const labelTextHeight = 2.0

// renderDXF emits a minimal DXF ENTITIES section: the boundary as a
// POLYLINE/VERTEX chain on layer BOUNDARY, plus a TEXT entity per point on
// layer LABELS. Group codes follow the classic DXF pairing of code line then
// value line.
func renderDXF(coords []models.Coordinate) []byte {
	var b strings.Builder

	b.WriteString("0\nSECTION\n2\nENTITIES\n")
	b.WriteString("0\nPOLYLINE\n8\nBOUNDARY\n66\n1\n10\n0.0\n20\n0.0\n30\n0.0\n")
	for _, c := range coords {
		fmt.Fprintf(&b, "0\nVERTEX\n8\nBOUNDARY\n10\n%.3f\n20\n%.3f\n30\n0.0\n", c.X, c.Y)
	}
	b.WriteString("0\nSEQEND\n")

	for _, c := range coords {
		fmt.Fprintf(&b, "0\nTEXT\n8\nLABELS\n10\n%.3f\n20\n%.3f\n30\n0.0\n40\n%.1f\n1\n%s\n",
			c.X, c.Y, labelTextHeight, c.Label)
	}

	b.WriteString("0\nENDSEC\n0\nEOF\n")
	return []byte(b.String())
}
