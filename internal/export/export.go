// Package export serializes a computed coordinate sequence into the
// industry exchange formats consumed by CAD and GIS tools. Every serializer
// is a pure function of the coordinate list: the same input always yields
// byte-identical output.
package export

import (
	"fmt"

	"github.com/Houeta/deedplot/internal/models"
)

// Format identifies one of the supported exchange formats. The enumeration
// is closed: adding a format means adding a constant and a serializer case.
type Format string

const (
	// FormatDXF is the CAD drawing-exchange format (polyline + text entities).
	FormatDXF Format = "dxf"
	// FormatCSV is a plain coordinate table.
	FormatCSV Format = "csv"
	// FormatEsriTraverse is the ArcGIS traverse-import bearing/distance file.
	FormatEsriTraverse Format = "esri_traverse"
	// FormatAutoCADScript is a scripted sequence of AutoCAD commands.
	FormatAutoCADScript Format = "autocad_script"
	// FormatKML is the Google Earth placemark format, on the local grid.
	FormatKML Format = "kml"
)

// Formats lists every supported format in bundle order.
var Formats = []Format{FormatDXF, FormatCSV, FormatEsriTraverse, FormatAutoCADScript, FormatKML}

// Export serializes the coordinate sequence into the requested format.
// Unknown formats yield an UnsupportedFormat parse error.
func Export(coords []models.Coordinate, format Format) ([]byte, error) {
	switch format {
	case FormatDXF:
		return renderDXF(coords), nil
	case FormatCSV:
		return renderCSV(coords)
	case FormatEsriTraverse:
		return renderEsriTraverse(coords), nil
	case FormatAutoCADScript:
		return renderAutoCADScript(coords), nil
	case FormatKML:
		return renderKML(coords), nil
	default:
		return nil, &models.ParseError{
			Kind:         models.KindUnsupportedFormat,
			Index:        -1,
			OriginalText: string(format),
			Reason:       fmt.Sprintf("export format %q is not supported", format),
		}
	}
}

// Filename returns the deterministic file name used for a format inside an
// export bundle.
func Filename(format Format) (string, error) {
	switch format {
	case FormatDXF:
		return "deed_plot.dxf", nil
	case FormatCSV:
		return "deed_plot.csv", nil
	case FormatEsriTraverse:
		return "deed_plot.txt", nil
	case FormatAutoCADScript:
		return "deed_plot.scr", nil
	case FormatKML:
		return "deed_plot.kml", nil
	default:
		return "", &models.ParseError{
			Kind:         models.KindUnsupportedFormat,
			Index:        -1,
			OriginalText: string(format),
			Reason:       fmt.Sprintf("export format %q is not supported", format),
		}
	}
}
