package bearing_test

import (
	"errors"
	"testing"

	"github.com/Houeta/deedplot/internal/bearing"
	"github.com/Houeta/deedplot/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_QuadrantForms(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"DMS with symbols", `N45°30'15"E`, 45.504166666666666},
		{"DMS with dashes", "N45-30-15E", 45.504166666666666},
		{"DMS with spaces", "N45 30 15 E", 45.504166666666666},
		{"decimal degrees", "N45.504E", 45.504},
		{"degrees and minutes only", "N45°30'E", 45.5},
		{"southeast", `S30°00'00"E`, 150},
		{"southwest", `S30°00'00"W`, 210},
		{"northwest", `N30°00'00"W`, 330},
		{"lowercase with noise", "  n45°30'15\"e ", 45.504166666666666},
		{"spelled out", "North 45 degrees 30 minutes East", 45.5},
		{"spelled out with seconds", "South 12 degrees 34 minutes 56 seconds West", 180 + 12.0 + 34.0/60 + 56.0/3600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := bearing.Parse(tt.text)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParse_AzimuthAndCardinals(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"0", 0},
		{"359.999", 359.999},
		{"123.456", 123.456},
		{"N", 0},
		{"E", 90},
		{"S", 180},
		{"W", 270},
		{"west", 270},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := bearing.Parse(tt.text)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

// Quadrant angles of exactly 0 or 90 degrees reduce to cardinal directions
// and must not be rejected.
func TestParse_QuadrantBoundaryAngles(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{`N00°00'00"E`, 0},
		{`N90°00'00"E`, 90},
		{`S00°00'00"E`, 180},
		{`S90°00'00"W`, 270},
		{`N00°00'00"W`, 0}, // 360 normalizes to 0
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := bearing.Parse(tt.text)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"swapped quadrant letters", "E45N"},
		{"angle above 90", `N95°00'00"E`},
		{"minutes above 59", "N45 75 00 E"},
		{"azimuth out of range", "360"},
		{"negative azimuth", "-12"},
		{"empty", "   "},
		{"prose", "thence along the creek"},
		{"too many components", "N45 30 15 10 E"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := bearing.Parse(tt.text)
			require.Error(t, err)

			var perr *models.ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, models.KindInvalidBearing, perr.Kind)
			assert.NotEmpty(t, perr.Reason)
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		azimuth float64
		want    string
	}{
		{0, `N00°00'00"E`},
		{45.504166666666666, `N45°30'15"E`},
		{90, `N90°00'00"E`},
		{150, `S30°00'00"E`},
		{180, `S00°00'00"E`},
		{210, `S30°00'00"W`},
		{270, `S90°00'00"W`},
		{315, `N45°00'00"W`},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, bearing.Format(tt.azimuth))
		})
	}
}

// Azimuths carrying floating residue from coordinate arithmetic must land in
// the same quadrant as the exact value they represent.
func TestFormat_FloatingResidue(t *testing.T) {
	tests := []struct {
		name    string
		azimuth float64
		want    string
	}{
		{"just below 360", 360 - 1e-13, `N00°00'00"E`},
		{"just below zero", -1e-13, `N00°00'00"E`},
		{"just above 90", 90 + 1e-13, `N90°00'00"E`},
		{"just above 180", 180 + 1e-13, `S00°00'00"E`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bearing.Format(tt.azimuth))
		})
	}
}

// Re-parsing a rendered bearing must recover the azimuth for every supported
// input grammar.
func TestFormat_RoundTrip(t *testing.T) {
	inputs := []string{
		`N45°30'15"E`,
		"N45-30-15E",
		"N45.504E",
		"S89 59 59 W",
		"123.456",
		"N",
		"W",
		"0.0001",
	}

	for _, text := range inputs {
		t.Run(text, func(t *testing.T) {
			first, err := bearing.Parse(text)
			require.NoError(t, err)

			again, err := bearing.Parse(bearing.Format(first))
			require.NoError(t, err)
			assert.InDelta(t, first, again, 1e-6)
		})
	}
}
