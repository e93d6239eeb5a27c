package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/ports"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// BatchProcessingJob polls the drop directory on a schedule and runs the
// batch pipeline whenever an input file is present.
type BatchProcessingJob struct {
	handler  commands.ProcessBatchCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewBatchProcessingJob creates a new job running the batch pipeline on the
// given cron schedule (with a seconds field, e.g. "0 * * * * *" for every
// minute).
func NewBatchProcessingJob(
	handler commands.ProcessBatchCommandHandler,
	schedule string,
	logger *slog.Logger,
) *BatchProcessingJob {
	return &BatchProcessingJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "batch_processing_job"),
	}
}

// Start begins polling on the configured schedule. An empty drop directory
// is the normal idle state and is not treated as a failure.
func (j *BatchProcessingJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		log := j.logger.With("invocation", uuid.NewString())
		cmd := commands.NewProcessBatchCommand()

		err := j.handler.Handle(ctx, cmd)
		if errors.Is(err, ports.ErrNoInputFound) {
			log.DebugContext(ctx, "No input file in drop directory")
			return
		}
		if err != nil {
			log.ErrorContext(ctx, "Batch processing failed", "error", err)
			return
		}
		log.InfoContext(ctx, "Batch processed")
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Batch processing job started", "schedule", j.schedule)
	return nil
}

// Stop stops the batch processing job.
func (j *BatchProcessingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Batch processing job stopped")
}
