package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/Houeta/deedplot/internal/export"
	"github.com/Houeta/deedplot/internal/metrics"
	"github.com/Houeta/deedplot/internal/models"
	"github.com/google/uuid"
)

// Intake is the deed source and result sink the service runs against.
type Intake interface {
	FetchPendingDeeds(ctx context.Context, limit int) ([]models.Deed, error)
	CompleteDeed(ctx context.Context, deed models.Deed, analysis, bundle []byte) error
	FailDeed(ctx context.Context, deed models.Deed, reason string) error
}

// Plotter computes a plot result from an ordered call sequence and reports
// its quality findings.
type Plotter interface {
	Plot(calls []models.Call) (*models.PlotResult, error)
	Validate(result *models.PlotResult) models.ValidationReport
}

// PlottingService polls the intake for pending deeds and processes them
// through the plotting pipeline with a pool of workers, writing the analysis
// document and export bundle for each deed.
type PlottingService struct {
	log          *slog.Logger     // Logger for logging service activities
	intake       Intake           // Source of pending deeds and sink for results
	plotter      Plotter          // Plotting pipeline, usually behind the memoizing cache
	metrics      *metrics.Metrics // Metrics for tracking service performance
	numWorkers   int              // Number of concurrent workers for processing
	pollInterval time.Duration    // Interval for polling the intake directory
}

// NewPlottingService creates a new instance of PlottingService. It takes a
// logger, the deed intake, the plotter, metrics for monitoring, the number
// of workers to use, and the intake polling interval.
func NewPlottingService(
	log *slog.Logger,
	intake Intake,
	plotter Plotter,
	metrics *metrics.Metrics,
	numWorkers int,
	pollInterval time.Duration,
) *PlottingService {
	return &PlottingService{
		log:          log,
		intake:       intake,
		plotter:      plotter,
		metrics:      metrics,
		numWorkers:   numWorkers,
		pollInterval: pollInterval,
	}
}

// Run starts the plotting service, which periodically polls the intake for
// pending deeds. It listens for a cancellation signal from the context to
// gracefully stop the service; in-flight workers drain before Run returns.
func (ps *PlottingService) Run(ctx context.Context) {
	ticker := time.NewTicker(ps.pollInterval)
	defer ticker.Stop()

	ps.log.InfoContext(ctx, "Plotting service started...")

	for {
		select {
		case <-ctx.Done():
			ps.log.InfoContext(ctx, "Plotting service stopped.")
			return
		case <-ticker.C:
			ps.log.InfoContext(ctx, "Polling for pending deeds...")
			ps.processBatch(ctx)
		}
	}
}

// deedFetchLimit caps how many pending deeds one poll cycle pulls from the
// intake; the rest wait for the next tick.
const deedFetchLimit = 100

// processBatch fetches pending deeds from the intake, starts a worker pool
// to process them, and waits for all workers to finish.
func (ps *PlottingService) processBatch(ctx context.Context) {
	deeds, err := ps.intake.FetchPendingDeeds(ctx, deedFetchLimit)
	if err != nil {
		ps.log.ErrorContext(ctx, "Failed to fetch pending deeds", "error", err)
		return
	}
	if len(deeds) == 0 {
		ps.log.InfoContext(ctx, "No pending deeds to process.")
		return
	}

	batchID := uuid.NewString()
	ps.log.InfoContext(
		ctx,
		"Found pending deeds. Starting worker pool.",
		"batch", batchID,
		"jobs", len(deeds),
		"num_workers", ps.numWorkers,
	)

	jobs := make(chan models.Deed, len(deeds))
	var wgr sync.WaitGroup

	for i := 1; i <= ps.numWorkers; i++ {
		wgr.Add(1)
		go ps.worker(ctx, i, &wgr, jobs)
	}

	for _, deed := range deeds {
		jobs <- deed
	}
	close(jobs)

	wgr.Wait()
	ps.log.InfoContext(ctx, "Processing batch finished", "batch", batchID)
}

// worker processes deeds from the jobs channel: plot, export every format,
// bundle, and record the outcome through the intake. Parse failures are
// reported back in full so the upstream extractor can fix every call at
// once; a failing export format is logged but does not discard its siblings.
func (ps *PlottingService) worker(ctx context.Context, idx int, wg *sync.WaitGroup, jobs <-chan models.Deed) {
	defer wg.Done()
	for deed := range jobs {
		ps.metrics.ActiveWorkers.Inc()
		ps.log.DebugContext(ctx, "Processing deed", "worker", idx, "deed", deed.ID)

		startTime := time.Now()
		result, err := ps.plotter.Plot(deed.Calls)
		ps.metrics.StageSeconds.WithLabelValues("plot").Observe(time.Since(startTime).Seconds())

		if err != nil {
			ps.log.ErrorContext(ctx, "Failed to plot deed", "worker", idx, "deed", deed.ID, "error", err)
			ps.metrics.DeedsProcessed.WithLabelValues("failure").Inc()

			var callErrs models.CallErrors
			if errors.As(err, &callErrs) {
				ps.metrics.ParseFailures.Inc()
			}
			if failErr := ps.intake.FailDeed(ctx, deed, err.Error()); failErr != nil {
				ps.log.ErrorContext(ctx, "Could not record deed failure",
					"worker", idx, "deed", deed.ID, "error", failErr)
			}
			ps.metrics.ActiveWorkers.Dec()
			continue
		}

		report := ps.plotter.Validate(result)
		for _, warning := range report.Warnings {
			ps.log.WarnContext(ctx, "Plot quality warning",
				"worker", idx, "deed", deed.ID, "type", warning.Type, "message", warning.Message)
		}

		if err = ps.finishDeed(ctx, deed, result); err != nil {
			ps.log.ErrorContext(ctx, "Failed to finish deed", "worker", idx, "deed", deed.ID, "error", err)
			ps.metrics.DeedsProcessed.WithLabelValues("failure").Inc()
		} else {
			ps.metrics.DeedsProcessed.WithLabelValues("success").Inc()
			ps.log.DebugContext(ctx, "Worker successfully processed the deed", "worker", idx, "deed", deed.ID)
		}

		ps.metrics.ActiveWorkers.Dec()
	}
}

// finishDeed serializes the analysis document and export bundle and hands
// them to the intake.
func (ps *PlottingService) finishDeed(ctx context.Context, deed models.Deed, result *models.PlotResult) error {
	analysis, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	startTime := time.Now()
	outputs, failures := export.All(result.Coordinates)
	for format, exportErr := range failures {
		ps.log.ErrorContext(ctx, "Export format failed",
			"deed", deed.ID, "format", string(format), "error", exportErr)
	}
	bundle, err := export.Bundle(outputs)
	ps.metrics.StageSeconds.WithLabelValues("export").Observe(time.Since(startTime).Seconds())
	if err != nil {
		return err
	}

	return ps.intake.CompleteDeed(ctx, deed, analysis, bundle)
}
