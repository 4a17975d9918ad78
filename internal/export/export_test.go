package export_test

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/Houeta/deedplot/internal/export"
	"github.com/Houeta/deedplot/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// squareCoords is the computed traverse of a 100 ft square: east, south,
// west, north, back at the point of beginning.
func squareCoords() []models.Coordinate {
	return []models.Coordinate{
		{PointNumber: 0, X: 0, Y: 0, Label: "POB", Description: "Point of Beginning"},
		{PointNumber: 1, X: 100, Y: 0, Label: "P1", Bearing: `N90°00'00"E`, Distance: 100, Units: "feet"},
		{PointNumber: 2, X: 100, Y: -100, Label: "P2", Bearing: `S00°00'00"E`, Distance: 100, Units: "feet"},
		{PointNumber: 3, X: 0, Y: -100, Label: "P3", Bearing: `S90°00'00"W`, Distance: 100, Units: "feet"},
		{PointNumber: 4, X: 0, Y: 0, Label: "P4", Bearing: `N00°00'00"W`, Distance: 100, Units: "feet"},
	}
}

func TestExport_CSV(t *testing.T) {
	got, err := export.Export(squareCoords(), export.FormatCSV)
	require.NoError(t, err)

	want := strings.Join([]string{
		"point_number,x,y,label,description",
		"0,0.000,0.000,POB,Point of Beginning",
		"1,100.000,0.000,P1,",
		"2,100.000,-100.000,P2,",
		"3,0.000,-100.000,P3,",
		"4,0.000,0.000,P4,",
		"",
	}, "\n")
	assert.Equal(t, want, string(got))
}

func TestExport_EsriTraverse(t *testing.T) {
	got, err := export.Export(squareCoords(), export.FormatEsriTraverse)
	require.NoError(t, err)

	want := strings.Join([]string{
		"TRAVERSE",
		"UNITS FEET",
		"BEGIN",
		"COURSE 90.000000 100.000",
		"COURSE 180.000000 100.000",
		"COURSE 270.000000 100.000",
		"COURSE 0.000000 100.000",
		"END",
		"",
	}, "\n")
	assert.Equal(t, want, string(got))
}

func TestExport_AutoCADScript(t *testing.T) {
	got, err := export.Export(squareCoords(), export.FormatAutoCADScript)
	require.NoError(t, err)

	text := string(got)
	assert.True(t, strings.HasPrefix(text, "PLINE\n0.000,0.000\n"))
	assert.Contains(t, text, "\nC\n")
	assert.Contains(t, text, "TEXT 0.000,0.000 2.0 0 POB\n")
	assert.Contains(t, text, "TEXT 100.000,-100.000 2.0 0 P2\n")
}

func TestExport_DXF(t *testing.T) {
	got, err := export.Export(squareCoords(), export.FormatDXF)
	require.NoError(t, err)

	text := string(got)
	assert.True(t, strings.HasPrefix(text, "0\nSECTION\n2\nENTITIES\n0\nPOLYLINE\n8\nBOUNDARY\n"))
	assert.True(t, strings.HasSuffix(text, "0\nENDSEC\n0\nEOF\n"))
	assert.Equal(t, 5, strings.Count(text, "0\nVERTEX\n"))
	assert.Equal(t, 5, strings.Count(text, "0\nTEXT\n"))
	assert.Contains(t, text, "0\nVERTEX\n8\nBOUNDARY\n10\n100.000\n20\n-100.000\n30\n0.0\n")
	assert.Contains(t, text, "1\nPOB\n")
	assert.Equal(t, 1, strings.Count(text, "0\nSEQEND\n"))
}

func TestExport_KML(t *testing.T) {
	got, err := export.Export(squareCoords(), export.FormatKML)
	require.NoError(t, err)

	text := string(got)
	assert.True(t, strings.HasPrefix(text, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, text, `<kml xmlns="http://www.opengis.net/kml/2.2">`)
	assert.Contains(t, text, "<LineString>")
	assert.Contains(t, text, "100.000,-100.000,0")
	// Local-grid outputs must say so instead of posing as geographic.
	assert.Contains(t, text, "local survey grid")
}

func TestExport_Unsupported(t *testing.T) {
	_, err := export.Export(squareCoords(), export.Format("shapefile"))
	require.Error(t, err)

	var perr *models.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, models.KindUnsupportedFormat, perr.Kind)
	assert.Equal(t, "shapefile", perr.OriginalText)

	_, err = export.Filename(export.Format("shapefile"))
	require.Error(t, err)
}

// Exporting the same coordinate list twice must yield byte-identical output
// for every format.
func TestExport_Deterministic(t *testing.T) {
	for _, format := range export.Formats {
		t.Run(string(format), func(t *testing.T) {
			first, err := export.Export(squareCoords(), format)
			require.NoError(t, err)
			second, err := export.Export(squareCoords(), format)
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestAll(t *testing.T) {
	outputs, failures := export.All(squareCoords())

	assert.Nil(t, failures)
	require.Len(t, outputs, len(export.Formats))
	for _, format := range export.Formats {
		single, err := export.Export(squareCoords(), format)
		require.NoError(t, err)
		assert.Equal(t, single, outputs[format], "format %s", format)
	}
}

func TestBundle(t *testing.T) {
	outputs, failures := export.All(squareCoords())
	require.Nil(t, failures)

	first, err := export.Bundle(outputs)
	require.NoError(t, err)
	second, err := export.Bundle(outputs)
	require.NoError(t, err)
	assert.Equal(t, first, second, "bundle must be byte-identical across runs")

	zr, err := zip.NewReader(bytes.NewReader(first), int64(len(first)))
	require.NoError(t, err)
	require.Len(t, zr.File, len(export.Formats))

	wantNames := []string{"deed_plot.dxf", "deed_plot.csv", "deed_plot.txt", "deed_plot.scr", "deed_plot.kml"}
	for i, f := range zr.File {
		assert.Equal(t, wantNames[i], f.Name)

		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())

		content, err := export.Export(squareCoords(), export.Formats[i])
		require.NoError(t, err)
		assert.Equal(t, content, data)
	}
}
