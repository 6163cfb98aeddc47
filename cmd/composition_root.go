package cmd

import (
	"math/rand/v2"
	"sync"

	"go.uber.org/zap"

	"dispatchsim/internal/adapters/out/memory"
	"dispatchsim/internal/core/application/usecases/commands"
	"dispatchsim/internal/core/application/usecases/queries"
	"dispatchsim/internal/core/domain/model/kernel"
	"dispatchsim/internal/core/domain/model/stats"
	"dispatchsim/internal/core/domain/services"
	"dispatchsim/internal/jobs"
)

// CompositionRoot owns the shared state of one simulation run and wires
// the handlers and jobs over it.
type CompositionRoot struct {
	config   Config
	orders   *memory.OrderStore
	couriers *memory.CourierStore
	ledger   *stats.Ledger
	wg       *sync.WaitGroup
	rng      *rand.Rand
	logger   *zap.Logger
}

// NewCompositionRoot creates the shared state for one run.
// The seed fixes the travel draw sequence, so two runs with the same seed
// and input dispatch identical couriers.
func NewCompositionRoot(config Config, seed uint64, logger *zap.Logger) CompositionRoot {
	return CompositionRoot{
		config:   config,
		orders:   memory.NewOrderStore(),
		couriers: memory.NewCourierStore(),
		ledger:   stats.NewLedger(),
		wg:       &sync.WaitGroup{},
		rng:      rand.New(rand.NewPCG(seed, seed)),
		logger:   logger,
	}
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler(strategy services.Strategy) (commands.SubmitOrderCommandHandler, error) {
	travel, err := kernel.NewRange(c.config.TravelMin, c.config.TravelMax)
	if err != nil {
		return commands.SubmitOrderCommandHandler{}, err
	}

	policy, err := services.NewDispatchPolicy(strategy, c.couriers, travel, c.config.TimeUnit, c.rng)
	if err != nil {
		return commands.SubmitOrderCommandHandler{}, err
	}

	matcher, err := services.NewMatcher(c.orders, c.config.PollInterval)
	if err != nil {
		return commands.SubmitOrderCommandHandler{}, err
	}

	return commands.NewSubmitOrderCommandHandler(c.orders, policy, matcher, c.ledger, c.wg, c.logger), nil
}

func (c *CompositionRoot) CreateGetAllCouriersQueryHandler() queries.GetAllCouriersQueryHandler {
	return queries.NewGetAllCouriersQueryHandler(c.couriers)
}

func (c *CompositionRoot) CreateGetWaitAveragesQueryHandler() queries.GetWaitAveragesQueryHandler {
	return queries.NewGetWaitAveragesQueryHandler(c.ledger)
}

func (c *CompositionRoot) CreateGetOrderBacklogQueryHandler() queries.GetOrderBacklogQueryHandler {
	return queries.NewGetOrderBacklogQueryHandler(c.orders)
}

// CreateJobManager wires the full run: the submission driver over the given
// commands and, when enabled, the periodic progress report.
func (c *CompositionRoot) CreateJobManager(strategy services.Strategy, submitCommands []commands.SubmitOrderCommand) (*jobs.JobManager, error) {
	handler, err := c.CreateSubmitOrderCommandHandler(strategy)
	if err != nil {
		return nil, err
	}

	submissionJob, err := jobs.NewOrderSubmissionJob(handler, submitCommands,
		c.config.TickInterval, c.config.BatchSize, c.wg, c.logger)
	if err != nil {
		return nil, err
	}

	var progressJob *jobs.ProgressReportJob
	if c.config.ProgressReport {
		progressJob = jobs.NewProgressReportJob(
			c.CreateGetOrderBacklogQueryHandler(),
			c.CreateGetWaitAveragesQueryHandler(),
			c.logger,
		)
	}

	return jobs.NewJobManager(submissionJob, progressJob)
}
