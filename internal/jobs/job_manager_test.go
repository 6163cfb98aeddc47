package jobs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"dispatchsim/internal/core/application/usecases/queries"
	"dispatchsim/internal/core/domain/services"
	"dispatchsim/internal/jobs"
	"dispatchsim/internal/pkg/errs"
)

func TestNewJobManager(t *testing.T) {
	t.Run("should reject nil submission job", func(t *testing.T) {
		_, err := jobs.NewJobManager(nil, nil)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should allow disabled progress reporting", func(t *testing.T) {
		sim := newSimulation(t, services.StrategyMatched, testSeed, nil)

		manager, err := jobs.NewJobManager(sim.job, nil)
		require.NoError(t, err)
		assert.NotNil(t, manager)
	})
}

func TestJobManagerRun(t *testing.T) {
	specs := []orderSpec{
		{id: "order-1", name: "Banana Split", prepUnits: 4},
		{id: "order-2", name: "McFlury", prepUnits: 2},
	}
	sim := newSimulation(t, services.StrategyMatched, testSeed, specs)

	manager, err := jobs.NewJobManager(sim.job, nil)
	require.NoError(t, err)

	require.NoError(t, manager.Run(context.Background()))
	assert.Equal(t, 2, sim.ledger.Count())
}

func TestJobManagerRunWithProgressReport(t *testing.T) {
	specs := []orderSpec{
		{id: "order-1", name: "Banana Split", prepUnits: 4},
		{id: "order-2", name: "McFlury", prepUnits: 2},
	}
	sim := newSimulation(t, services.StrategyFifo, testSeed, specs)

	progressJob := jobs.NewProgressReportJob(
		queries.NewGetOrderBacklogQueryHandler(sim.orders),
		queries.NewGetWaitAveragesQueryHandler(sim.ledger),
		zap.NewNop(),
	)

	manager, err := jobs.NewJobManager(sim.job, progressJob)
	require.NoError(t, err)

	require.NoError(t, manager.Run(context.Background()))
	assert.Equal(t, 2, sim.ledger.Count())
}
