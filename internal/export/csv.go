package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/Houeta/deedplot/internal/models"
)

// renderCSV emits the coordinate table with one row per point.
func renderCSV(coords []models.Coordinate) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"point_number", "x", "y", "label", "description"}); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, c := range coords {
		record := []string{
			strconv.Itoa(c.PointNumber),
			strconv.FormatFloat(c.X, 'f', 3, 64),
			strconv.FormatFloat(c.Y, 'f', 3, 64),
			c.Label,
			c.Description,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv row %d: %w", c.PointNumber, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
