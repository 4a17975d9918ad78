package export

import (
	"archive/zip"
	"bytes"
	"fmt"
	"sync"

	"github.com/Houeta/deedplot/internal/models"
	"golang.org/x/sync/errgroup"
)

// BundleName is the deterministic name of the archive holding one file per
// export format.
const BundleName = "deed_plot_exports.zip"

// All runs every serializer over the same coordinate list. The serializers
// are independent pure functions, so they run concurrently; a failure in one
// format is reported per format and does not abort its siblings. The second
// return value is nil when every format succeeded.
func All(coords []models.Coordinate) (map[Format][]byte, map[Format]error) {
	var mu sync.Mutex
	outputs := make(map[Format][]byte, len(Formats))
	failures := make(map[Format]error)

	var group errgroup.Group
	for _, format := range Formats {
		format := format
		group.Go(func() error {
			data, err := Export(coords, format)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures[format] = err
				return nil
			}
			outputs[format] = data
			return nil
		})
	}
	_ = group.Wait() // workers report per-format, never an error

	if len(failures) == 0 {
		failures = nil
	}
	return outputs, failures
}

// Bundle packages format outputs into one zip archive, one deterministically
// named file per format, in the fixed Formats order. Entry headers carry no
// timestamps, so identical inputs produce byte-identical archives.
func Bundle(outputs map[Format][]byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, format := range Formats {
		data, ok := outputs[format]
		if !ok {
			continue
		}
		name, err := Filename(format)
		if err != nil {
			return nil, err
		}

		entry, err := zw.CreateHeader(&zip.FileHeader{
			Name:   name,
			Method: zip.Deflate,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create bundle entry %s: %w", name, err)
		}
		if _, err = entry.Write(data); err != nil {
			return nil, fmt.Errorf("failed to write bundle entry %s: %w", name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize bundle: %w", err)
	}
	return buf.Bytes(), nil
}
