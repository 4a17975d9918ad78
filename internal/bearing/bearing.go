// Package bearing normalizes surveyor bearings into azimuth degrees and
// renders azimuths back into the quadrant form used in professional reports.
package bearing

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/Houeta/deedplot/internal/models"
)

const (
	fullCircle    = 360.0
	halfCircle    = 180.0
	quarterCircle = 90.0

	minutesPerDegree = 60.0
	secondsPerDegree = 3600.0
)

var (
	// quadrantRe matches the quadrant grammar: an N/S letter, an angle in any
	// DMS or decimal notation, and an E/W letter. The angle part is parsed
	// separately so that `N45°30'15"E`, `N45-30-15E`, `N45 30 15 E` and
	// `N45.504E` all land here.
	quadrantRe = regexp.MustCompile(`^([NS])\s*([0-9][0-9 .°'":-]*?)\s*([EW])$`)

	// angleSeparatorRe splits a quadrant angle into its degree, minute and
	// second tokens regardless of which separator style the document used.
	angleSeparatorRe = regexp.MustCompile(`[°'":\s-]+`)

	// wordForms rewrites spelled-out bearings ("North 45 degrees 30 minutes
	// East") into the symbol grammar before matching. Longer words first so
	// e.g. SECONDS is not half-consumed as SECOND.
	wordForms = strings.NewReplacer(
		"NORTH", "N",
		"SOUTH", "S",
		"EAST", "E",
		"WEST", "W",
		"DEGREES", "°",
		"DEGREE", "°",
		"DEG", "°",
		"MINUTES", "'",
		"MINUTE", "'",
		"MIN", "'",
		"SECONDS", `"`,
		"SECOND", `"`,
		"SEC", `"`,
	)
)

// cardinals maps bare shorthand directions to their azimuths.
var cardinals = map[string]float64{
	"N": 0,
	"E": 90,
	"S": 180,
	"W": 270,
}

// Parse converts a bearing string into azimuth degrees, clockwise from
// north, in [0,360). Supported grammars, all case-insensitive and
// whitespace-tolerant:
//
//   - quadrant DMS or decimal: `N45°30'15"E`, `N45-30-15E`, `N45 30 15 E`, `N45.504E`
//   - spelled-out quadrant: `North 45 degrees 30 minutes East`
//   - pure azimuth: a bare number in [0,360)
//   - cardinal shorthand: `N`, `S`, `E`, `W`
//
// Anything that matches no grammar returns a ParseError; Parse never guesses
// intent from a partial match.
func Parse(text string) (float64, error) {
	s := strings.ToUpper(strings.TrimSpace(text))
	if s == "" {
		return 0, invalid(text, "empty bearing")
	}
	s = strings.TrimSpace(wordForms.Replace(s))

	if az, ok := cardinals[s]; ok {
		return az, nil
	}

	if m := quadrantRe.FindStringSubmatch(s); m != nil {
		angle, err := parseQuadrantAngle(text, m[2])
		if err != nil {
			return 0, err
		}
		return quadrantToAzimuth(m[1], m[3], angle), nil
	}

	// Pure azimuth: the whole token must be a number.
	if az, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(az) || math.IsInf(az, 0) || az < 0 || az >= fullCircle {
			return 0, invalid(text, "azimuth must be within [0,360)")
		}
		return az, nil
	}

	return 0, invalid(text, "unrecognized bearing format")
}

// parseQuadrantAngle parses the angle between the N/S and E/W legs of a
// quadrant bearing. Up to three tokens (degrees, minutes, seconds); the
// result must lie in [0,90]. An angle of exactly 0 or 90 is valid in any
// quadrant pairing and reduces to a cardinal direction.
func parseQuadrantAngle(original, angleText string) (float64, error) {
	trimmed := strings.Trim(angleText, `°'": -`)
	tokens := angleSeparatorRe.Split(trimmed, -1)
	if len(tokens) == 0 || len(tokens) > 3 {
		return 0, invalid(original, "quadrant angle must have 1 to 3 components")
	}

	parts := make([]float64, 0, 3)
	for _, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return 0, invalid(original, fmt.Sprintf("non-numeric angle component %q", tok))
		}
		parts = append(parts, v)
	}

	angle := parts[0]
	if len(parts) > 1 {
		if parts[1] >= minutesPerDegree {
			return 0, invalid(original, "minutes must be below 60")
		}
		angle += parts[1] / minutesPerDegree
	}
	if len(parts) > 2 {
		if parts[2] >= minutesPerDegree {
			return 0, invalid(original, "seconds must be below 60")
		}
		angle += parts[2] / secondsPerDegree
	}

	if angle < 0 || angle > quarterCircle {
		return 0, invalid(original, "quadrant angle must be within [0,90] degrees")
	}
	return angle, nil
}

// quadrantToAzimuth applies the survey convention for turning a quadrant
// angle into an azimuth: the angle opens from the N/S leg toward the E/W leg.
func quadrantToAzimuth(ns, ew string, angle float64) float64 {
	var az float64
	switch {
	case ns == "N" && ew == "E":
		az = angle
	case ns == "S" && ew == "E":
		az = halfCircle - angle
	case ns == "S" && ew == "W":
		az = halfCircle + angle
	default: // N..W
		az = fullCircle - angle
	}
	return math.Mod(az+fullCircle, fullCircle)
}

// Format renders an azimuth as a quadrant DMS bearing, e.g. `N45°30'15"E`.
// Seconds keep fractional digits when the azimuth does not fall on a whole
// second, so re-parsing the rendered bearing recovers the azimuth.
func Format(azimuthDegrees float64) string {
	az := math.Mod(azimuthDegrees, fullCircle)
	if az < 0 {
		az += fullCircle
	}
	// Snap to the 1/10000-second grid before picking the quadrant, so an
	// azimuth carrying floating residue just below 360 renders as north
	// rather than N..W.
	az = math.Round(az*secondsPerDegree*10000) / (secondsPerDegree * 10000)
	az = math.Mod(az, fullCircle)

	var ns, ew string
	var angle float64
	switch {
	case az <= quarterCircle:
		ns, ew, angle = "N", "E", az
	case az <= halfCircle:
		ns, ew, angle = "S", "E", halfCircle-az
	case az <= halfCircle+quarterCircle:
		ns, ew, angle = "S", "W", az-halfCircle
	default:
		ns, ew, angle = "N", "W", fullCircle-az
	}

	// Round to 1/10000 of a second to shed floating noise without losing
	// meaningful precision.
	totalSeconds := math.Round(angle*secondsPerDegree*10000) / 10000
	deg := math.Floor(totalSeconds / secondsPerDegree)
	totalSeconds -= deg * secondsPerDegree
	min := math.Floor(totalSeconds / minutesPerDegree)
	sec := totalSeconds - min*minutesPerDegree

	secText := strconv.FormatFloat(sec, 'f', -1, 64)
	if sec < 10 {
		secText = "0" + secText
	}
	return fmt.Sprintf(`%s%02.0f°%02.0f'%s"%s`, ns, deg, min, secText, ew)
}

func invalid(text, reason string) error {
	return &models.ParseError{
		Kind:         models.KindInvalidBearing,
		Index:        -1,
		OriginalText: text,
		Reason:       reason,
	}
}
