package jobs

import (
	"context"
	"fmt"

	"dispatchsim/internal/pkg/errs"
)

// JobManager coordinates the jobs of one simulation run.
// Provides a unified interface to run the submission driver together with
// the optional periodic progress reporting.
type JobManager struct {
	orderSubmissionJob *OrderSubmissionJob
	progressReportJob  *ProgressReportJob
}

// NewJobManager creates a new job manager for one run.
// A nil progress report job disables periodic reporting.
func NewJobManager(
	orderSubmissionJob *OrderSubmissionJob,
	progressReportJob *ProgressReportJob,
) (*JobManager, error) {
	if orderSubmissionJob == nil {
		return nil, errs.NewValueIsRequiredError("orderSubmissionJob")
	}

	return &JobManager{
		orderSubmissionJob: orderSubmissionJob,
		progressReportJob:  progressReportJob,
	}, nil
}

// Run executes the simulation to completion.
// Starts the progress report job when enabled, runs the submission job until
// every pairing has finished, then stops the reporting again.
func (jm *JobManager) Run(ctx context.Context) error {
	if jm.progressReportJob != nil {
		if err := jm.progressReportJob.Start(); err != nil {
			return fmt.Errorf("failed to start progress report job: %w", err)
		}
		defer jm.progressReportJob.Stop()
	}

	return jm.orderSubmissionJob.Run(ctx)
}
