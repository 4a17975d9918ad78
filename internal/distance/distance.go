// Package distance normalizes surveying distances into feet, covering the
// historical units that appear in metes-and-bounds descriptions.
package distance

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/Houeta/deedplot/internal/models"
)

// Feet-per-unit factors for the units recognized in deed text.
const (
	FeetPerFoot  = 1.0
	FeetPerChain = 66.0
	FeetPerRod   = 16.5
	FeetPerLink  = 0.66

	// DefaultVaraFeet is the Texas vara convention (33/36 ft). Varas vary by
	// jurisdiction, so the factor is configurable on the Normalizer.
	DefaultVaraFeet = 33.0 / 36.0
)

var (
	// valueUnitRe matches one "number [unit]" term; compound distances such
	// as "5 chains 25 links" are a sequence of these terms.
	valueUnitRe = regexp.MustCompile(`^(-?\d+(?:\.\d+)?)\s*([A-Za-z]*)\.?\s*`)
)

// Normalizer converts distance text into feet. The zero value is not usable;
// create one with NewNormalizer.
type Normalizer struct {
	varaFeet float64
}

// NewNormalizer returns a Normalizer using the given vara length in feet.
// A non-positive value falls back to DefaultVaraFeet.
func NewNormalizer(varaFeet float64) *Normalizer {
	if varaFeet <= 0 {
		varaFeet = DefaultVaraFeet
	}
	return &Normalizer{varaFeet: varaFeet}
}

// Parse converts a distance token into feet. The token is a number with an
// optional trailing unit ("66.0 ch"); compound tokens sum their terms
// ("5 chains 25 links"). The unit parameter applies when the token itself
// carries none; with neither, feet is assumed. Negative or non-finite
// distances are rejected.
func (n *Normalizer) Parse(text, unit string) (float64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, invalid(text, "empty distance")
	}

	total := 0.0
	terms := 0
	for s != "" {
		m := valueUnitRe.FindStringSubmatch(s)
		if m == nil {
			return 0, invalid(text, fmt.Sprintf("unrecognized distance syntax near %q", s))
		}

		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			return 0, invalid(text, fmt.Sprintf("non-finite distance value %q", m[1]))
		}
		if value < 0 {
			return 0, invalid(text, "distance must not be negative")
		}

		unitToken := m[2]
		if unitToken == "" {
			unitToken = unit
		}
		factor, err := n.feetPerUnit(unitToken)
		if err != nil {
			return 0, invalid(text, err.Error())
		}

		total += value * factor
		terms++
		s = strings.TrimSpace(s[len(m[0]):])
	}

	if terms == 0 {
		return 0, invalid(text, "no distance value found")
	}
	return total, nil
}

// feetPerUnit resolves a unit token to its feet factor. An empty token
// defaults to feet.
func (n *Normalizer) feetPerUnit(unit string) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "", "feet", "foot", "ft":
		return FeetPerFoot, nil
	case "chains", "chain", "ch":
		return FeetPerChain, nil
	case "rods", "rod", "rd", "poles", "pole", "p":
		return FeetPerRod, nil
	case "links", "link", "li", "lk":
		return FeetPerLink, nil
	case "varas", "vara", "vr":
		return n.varaFeet, nil
	default:
		return 0, fmt.Errorf("unknown distance unit %q", unit)
	}
}

func invalid(text, reason string) error {
	return &models.ParseError{
		Kind:         models.KindInvalidDistance,
		Index:        -1,
		OriginalText: text,
		Reason:       reason,
	}
}
