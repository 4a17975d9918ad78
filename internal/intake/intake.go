// Package intake is the filesystem boundary of the plotting service. Pending
// deeds are JSON call-sequence files dropped into an intake directory; the
// service moves each one to processed/ or failed/ and writes the analysis and
// export bundle for completed deeds into the output directory.
package intake

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Houeta/deedplot/internal/models"
)

const (
	processedDirName = "processed"
	failedDirName    = "failed"

	analysisFileName = "deed_plot.json"
	bundleFileName   = "deed_plot_exports.zip"

	dirPerm  = 0o755
	filePerm = 0o644
)

// Intake reads pending deeds from the intake directory and writes results to
// the output directory.
type Intake struct {
	log       *slog.Logger
	intakeDir string
	outputDir string
}

// NewIntake creates the intake with its state subdirectories. It returns an
// error if any directory cannot be created.
func NewIntake(log *slog.Logger, intakeDir, outputDir string) (*Intake, error) {
	for _, dir := range []string{
		intakeDir,
		filepath.Join(intakeDir, processedDirName),
		filepath.Join(intakeDir, failedDirName),
		outputDir,
	} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return nil, fmt.Errorf("failed to create intake directory %s: %w", dir, err)
		}
	}
	return &Intake{log: log, intakeDir: intakeDir, outputDir: outputDir}, nil
}

// deedPayload accepts both input shapes the upstream extractor produces: a
// bare call array, or an object wrapping it under "calls".
type deedPayload struct {
	Calls []models.Call `json:"calls"`
}

// FetchPendingDeeds lists pending deed files, oldest first, up to the limit,
// and parses each into an ordered call sequence. Files that are not valid
// deed JSON are failed immediately so they do not wedge the intake.
func (in *Intake) FetchPendingDeeds(ctx context.Context, limit int) ([]models.Deed, error) {
	entries, err := os.ReadDir(in.intakeDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read intake directory: %w", err)
	}

	type pending struct {
		name    string
		modTime int64
	}
	var files []pending
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		info, infoErr := entry.Info()
		if infoErr != nil {
			return nil, fmt.Errorf("failed to stat pending deed %s: %w", entry.Name(), infoErr)
		}
		files = append(files, pending{name: entry.Name(), modTime: info.ModTime().UnixNano()})
	}
	sort.Slice(files, func(i, j int) bool {
		if files[i].modTime != files[j].modTime {
			return files[i].modTime < files[j].modTime
		}
		return files[i].name < files[j].name
	})

	deeds := make([]models.Deed, 0, limit)
	for _, file := range files {
		if len(deeds) == limit {
			break
		}

		deed := models.Deed{
			ID:   strings.TrimSuffix(file.name, ".json"),
			Path: filepath.Join(in.intakeDir, file.name),
		}

		calls, readErr := readCalls(deed.Path)
		if readErr != nil {
			in.log.ErrorContext(ctx, "Pending deed is not valid deed JSON, failing it",
				"deed", deed.ID, "error", readErr)
			if failErr := in.FailDeed(ctx, deed, readErr.Error()); failErr != nil {
				return nil, failErr
			}
			continue
		}

		deed.Calls = calls
		in.log.DebugContext(ctx, "A new pending deed has been received.", "deed", deed.ID, "calls", len(calls))
		deeds = append(deeds, deed)
	}
	return deeds, nil
}

// readCalls loads a deed file as either a bare call array or a {"calls":[...]}
// object.
func readCalls(path string) ([]models.Call, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deed file: %w", err)
	}

	var wrapped deedPayload
	if err = json.Unmarshal(data, &wrapped); err == nil && wrapped.Calls != nil {
		return wrapped.Calls, nil
	}

	var list []models.Call
	if err = json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to decode deed file: %w", err)
	}
	return list, nil
}

// CompleteDeed writes the analysis document and export bundle for a deed
// into the output directory and moves the source file to processed/. The
// move is a rename within the intake tree, so a deed never shows up in two
// state directories.
func (in *Intake) CompleteDeed(ctx context.Context, deed models.Deed, analysis, bundle []byte) error {
	deedOut := filepath.Join(in.outputDir, deed.ID)
	if err := os.MkdirAll(deedOut, dirPerm); err != nil {
		return fmt.Errorf("failed to create output directory for deed %s: %w", deed.ID, err)
	}

	if err := os.WriteFile(filepath.Join(deedOut, analysisFileName), analysis, filePerm); err != nil {
		return fmt.Errorf("failed to write analysis for deed %s: %w", deed.ID, err)
	}
	if err := os.WriteFile(filepath.Join(deedOut, bundleFileName), bundle, filePerm); err != nil {
		return fmt.Errorf("failed to write export bundle for deed %s: %w", deed.ID, err)
	}

	dest := filepath.Join(in.intakeDir, processedDirName, filepath.Base(deed.Path))
	if err := os.Rename(deed.Path, dest); err != nil {
		return fmt.Errorf("failed to move deed %s to processed: %w", deed.ID, err)
	}

	in.log.DebugContext(ctx, "Deed completed.", "deed", deed.ID, "output", deedOut)
	return nil
}

// FailDeed records the failure reason and moves the source file to failed/.
func (in *Intake) FailDeed(ctx context.Context, deed models.Deed, reason string) error {
	failedDir := filepath.Join(in.intakeDir, failedDirName)

	reasonPath := filepath.Join(failedDir, deed.ID+".error.txt")
	if err := os.WriteFile(reasonPath, []byte(reason+"\n"), filePerm); err != nil {
		return fmt.Errorf("failed to write failure reason for deed %s: %w", deed.ID, err)
	}

	dest := filepath.Join(failedDir, filepath.Base(deed.Path))
	if err := os.Rename(deed.Path, dest); err != nil {
		return fmt.Errorf("failed to move deed %s to failed: %w", deed.ID, err)
	}

	in.log.DebugContext(ctx, "Deed failed.", "deed", deed.ID, "reason", reason)
	return nil
}

// Healthy reports whether the intake directory is reachable. Used by the
// monitoring server's health check.
func (in *Intake) Healthy(_ context.Context) error {
	if _, err := os.Stat(in.intakeDir); err != nil {
		return fmt.Errorf("intake directory unavailable: %w", err)
	}
	return nil
}
