package export

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/Houeta/deedplot/internal/models"
)

// renderKML emits a Placemark with the boundary as a LineString. The
// coordinates are the local survey grid values, not longitude/latitude; the
// document says so explicitly rather than pretending to a projection it does
// not have.
func renderKML(coords []models.Coordinate) []byte {
	var b strings.Builder

	b.WriteString(xml.Header)
	b.WriteString("<kml xmlns=\"http://www.opengis.net/kml/2.2\">\n")
	b.WriteString("  <Document>\n")
	b.WriteString("    <name>Deed Plot</name>\n")
	b.WriteString("    <description>Coordinates are on a local survey grid (feet from the point of beginning), not geographic. Reproject before overlaying on a map.</description>\n")
	b.WriteString("    <Placemark>\n")
	b.WriteString("      <name>Property Boundary</name>\n")
	b.WriteString("      <LineString>\n")
	b.WriteString("        <coordinates>\n")
	for _, c := range coords {
		fmt.Fprintf(&b, "          %.3f,%.3f,0\n", c.X, c.Y)
	}
	b.WriteString("        </coordinates>\n")
	b.WriteString("      </LineString>\n")
	b.WriteString("    </Placemark>\n")
	b.WriteString("  </Document>\n")
	b.WriteString("</kml>\n")
	return []byte(b.String())
}
