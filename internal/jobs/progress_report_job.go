package jobs

import (
	"context"
	"errors"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"dispatchsim/internal/core/application/usecases/queries"
	"dispatchsim/internal/core/domain/model/stats"
)

// ProgressReportJob periodically logs a snapshot of the running simulation:
// the order backlog broken down by stage and the wait averages so far.
type ProgressReportJob struct {
	backlogHandler  queries.GetOrderBacklogQueryHandler
	averagesHandler queries.GetWaitAveragesQueryHandler
	cron            *cron.Cron
	logger          *zap.Logger
}

// NewProgressReportJob creates a new progress report job.
//
// Parameters:
//   - backlogHandler: Query handler for the order backlog snapshot
//   - averagesHandler: Query handler for the wait averages
//   - logger: Run logger
//
// Returns:
//   - *ProgressReportJob: A job ready to start
func NewProgressReportJob(
	backlogHandler queries.GetOrderBacklogQueryHandler,
	averagesHandler queries.GetWaitAveragesQueryHandler,
	logger *zap.Logger,
) *ProgressReportJob {
	return &ProgressReportJob{
		backlogHandler:  backlogHandler,
		averagesHandler: averagesHandler,
		cron:            cron.New(cron.WithSeconds()),
		logger:          logger.With(zap.String("component", "progress_report_job")),
	}
}

// Start schedules the job to run every second.
func (j *ProgressReportJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		j.report(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Progress report job started (running every second)")

	return nil
}

// Stop halts the periodic reporting.
func (j *ProgressReportJob) Stop() {
	j.cron.Stop()
	j.logger.Info("Progress report job stopped")
}

// report queries the current state and logs one progress line.
func (j *ProgressReportJob) report(ctx context.Context) {
	backlog, err := j.backlogHandler.Handle(ctx, queries.NewGetOrderBacklogQuery())
	if err != nil {
		j.logger.Error("Progress report failed", zap.Error(err))
		return
	}

	fields := []zap.Field{
		zap.Int("submitted", backlog.Submitted),
		zap.Int("preparing", backlog.Preparing),
		zap.Int("ready", backlog.Ready),
		zap.Int("claimed", backlog.Claimed),
	}

	averages, err := j.averagesHandler.Handle(ctx, queries.NewGetWaitAveragesQuery())
	switch {
	case err == nil:
		fields = append(fields,
			zap.Int("completions", averages.Completions),
			zap.Int64("avg_food_wait_ms", averages.OrderWait.Milliseconds()),
			zap.Int64("avg_courier_wait_ms", averages.CourierWait.Milliseconds()),
		)
	case errors.Is(err, stats.ErrNoCompletions):
		// Nothing picked up yet, the backlog alone is still worth reporting.
	default:
		j.logger.Error("Progress report failed", zap.Error(err))
		return
	}

	j.logger.Info("Progress", fields...)
}
