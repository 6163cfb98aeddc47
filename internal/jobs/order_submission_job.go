package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"dispatchsim/internal/core/application/usecases/commands"
	"dispatchsim/internal/pkg/errs"
)

// OrderSubmissionJob drives a simulation run.
// Feeds the prepared submit commands to the handler in fixed-size batches,
// one batch per tick, then waits for every pairing the submissions spawned.
type OrderSubmissionJob struct {
	handler        commands.SubmitOrderCommandHandler
	submitCommands []commands.SubmitOrderCommand
	tickInterval   time.Duration
	batchSize      int
	wg             *sync.WaitGroup
	logger         *zap.Logger
}

// NewOrderSubmissionJob creates the submission driver for one run.
//
// Parameters:
//   - handler: Submission handler the commands are fed to
//   - submitCommands: All commands of the run in input order
//   - tickInterval: Real delay before each batch (must be positive)
//   - batchSize: Number of commands submitted per tick (must be positive)
//   - wg: Wait group shared with the handler; tracks spawned pairings
//   - logger: Run logger
//
// Returns:
//   - *OrderSubmissionJob: A driver ready to run
//   - error: Validation error if any parameter is invalid
func NewOrderSubmissionJob(
	handler commands.SubmitOrderCommandHandler,
	submitCommands []commands.SubmitOrderCommand,
	tickInterval time.Duration,
	batchSize int,
	wg *sync.WaitGroup,
	logger *zap.Logger,
) (*OrderSubmissionJob, error) {
	if tickInterval <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("tick interval is invalid",
			fmt.Errorf("%s is not greater than 0", tickInterval))
	}
	if batchSize <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("batch size is invalid",
			fmt.Errorf("%d is not greater than 0", batchSize))
	}
	if wg == nil {
		return nil, errs.NewValueIsRequiredError("wg")
	}

	return &OrderSubmissionJob{
		handler:        handler,
		submitCommands: submitCommands,
		tickInterval:   tickInterval,
		batchSize:      batchSize,
		wg:             wg,
		logger:         logger.With(zap.String("component", "order_submission_job")),
	}, nil
}

// Run submits every command and blocks until the run completes.
// Each tick sleeps first and then submits the next batch, so the first
// batch enters the system one tick after the run starts. After the last
// batch, Run waits for all spawned pairing goroutines.
//
// Returns the first submission error, the context error on cancellation,
// or nil once every pairing has finished.
func (j *OrderSubmissionJob) Run(ctx context.Context) error {
	for start := 0; start < len(j.submitCommands); start += j.batchSize {
		if err := j.sleepTick(ctx); err != nil {
			return err
		}

		j.logger.Info("Tick")

		end := min(start+j.batchSize, len(j.submitCommands))
		for _, cmd := range j.submitCommands[start:end] {
			if err := j.handler.Handle(ctx, cmd); err != nil {
				return fmt.Errorf("submitting order %s: %w", cmd.OrderID(), err)
			}
		}
	}

	return j.awaitPairings(ctx)
}

// sleepTick blocks for one tick interval or until the context is cancelled.
func (j *OrderSubmissionJob) sleepTick(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(j.tickInterval):
		return nil
	}
}

// awaitPairings blocks until every spawned pairing goroutine has finished.
func (j *OrderSubmissionJob) awaitPairings(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		j.wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		j.logger.Info("All pairings completed")
		return nil
	}
}
