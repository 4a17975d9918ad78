package models

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a ParseError.
type ErrorKind string

const (
	// KindInvalidBearing marks a bearing that matched no supported grammar.
	KindInvalidBearing ErrorKind = "invalid_bearing"
	// KindInvalidDistance marks a distance that is malformed, negative or non-finite.
	KindInvalidDistance ErrorKind = "invalid_distance"
	// KindDegeneratePolygon marks a call sequence with fewer than three valid calls.
	KindDegeneratePolygon ErrorKind = "degenerate_polygon"
	// KindDegenerateGeometry marks geometry that cannot be analyzed, such as a zero perimeter.
	KindDegenerateGeometry ErrorKind = "degenerate_geometry"
	// KindUnsupportedFormat marks an export format outside the supported enumeration.
	KindUnsupportedFormat ErrorKind = "unsupported_format"
)

// ParseError describes one defect in the input, keeping the offending
// original text and the call index so the caller can surface every problem
// alongside its source.
type ParseError struct {
	Kind         ErrorKind `json:"kind"`
	Index        int       `json:"index"`         // Index is the 0-based call index, or -1 when not call-specific.
	OriginalText string    `json:"original_text"` // OriginalText is the input that failed to parse.
	Reason       string    `json:"reason"`
}

func (e *ParseError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("call %d: %s: %q: %s", e.Index, e.Kind, e.OriginalText, e.Reason)
	}
	if e.OriginalText != "" {
		return fmt.Sprintf("%s: %q: %s", e.Kind, e.OriginalText, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

// CallErrors aggregates every defect found in a call sequence. Parsing does
// not fail fast: the caller receives either the full normalized sequence or
// the complete list of per-call errors.
type CallErrors []*ParseError

func (errs CallErrors) Error() string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Error())
	}
	return fmt.Sprintf("%d invalid call(s): %s", len(errs), strings.Join(parts, "; "))
}
