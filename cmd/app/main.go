package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/labstack/gommon/log"
	"go.uber.org/zap"

	"dispatchsim/cmd"
	"dispatchsim/internal/adapters/in/cli"
	"dispatchsim/internal/core/application/usecases/queries"
	"dispatchsim/internal/core/domain/model/kernel"
	"dispatchsim/internal/core/domain/services"
	"dispatchsim/internal/pkg/logger"
)

func main() {
	strategyFlag := flag.String("strategy", services.StrategyMatched.String(), "dispatch strategy: matched or fifo")
	seedFlag := flag.Uint64("seed", 777, "seed for the travel time draws")
	inputFlag := flag.String("input", cli.StdinPath, "path to the JSON order list, - reads stdin")
	flag.Parse()

	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	strategy, err := services.ParseStrategy(*strategyFlag)
	if err != nil {
		log.Fatalf("Invalid strategy %q: use matched or fifo", *strategyFlag)
	}

	descriptors, err := cli.LoadOrders(*inputFlag)
	if err != nil {
		log.Fatalf("Loading orders failed: %v", err)
	}

	submitCommands, err := cli.ToCommands(descriptors, config.TimeUnit)
	if err != nil {
		log.Fatalf("Loading orders failed: %v", err)
	}

	zapLogger, err := logger.New(config.Env, config.LogLevel)
	if err != nil {
		log.Fatalf("Building logger failed: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	zapLogger.Info("Simulation starting",
		zap.String("run_id", kernel.NewUUID().String()),
		zap.String("strategy", strategy.String()),
		zap.Uint64("seed", *seedFlag),
		zap.Int("orders", len(submitCommands)),
		zap.Int("travel_min", config.TravelMin),
		zap.Int("travel_max", config.TravelMax),
	)

	root := cmd.NewCompositionRoot(config, *seedFlag, zapLogger)

	manager, err := root.CreateJobManager(strategy, submitCommands)
	if err != nil {
		zapLogger.Fatal("Wiring simulation failed", zap.Error(err))
	}

	started := time.Now()
	if err = manager.Run(context.Background()); err != nil {
		zapLogger.Fatal("Run failed", zap.Error(err))
	}

	couriersHandler := root.CreateGetAllCouriersQueryHandler()
	couriers, err := couriersHandler.Handle(context.Background(), queries.NewGetAllCouriersQuery())
	if err == nil {
		for _, row := range couriers {
			zapLogger.Debug("Courier summary",
				zap.Int("courier_id", row.ID),
				zap.Duration("travel_time", row.TravelTime),
				zap.Stringer("status", row.Status),
				zap.String("picked_up", row.PickedUpOrderID),
			)
		}
	}

	averagesHandler := root.CreateGetWaitAveragesQueryHandler()
	averages, err := averagesHandler.Handle(context.Background(), queries.NewGetWaitAveragesQuery())
	if err != nil {
		zapLogger.Error("Run finished without completions", zap.Error(err))
		_ = zapLogger.Sync()
		os.Exit(1)
	}

	zapLogger.Info("Average food wait time", zap.Int64("milliseconds", averages.OrderWait.Milliseconds()))
	zapLogger.Info("Average courier wait time", zap.Int64("milliseconds", averages.CourierWait.Milliseconds()))
	zapLogger.Info("Simulation finished",
		zap.Int("completions", averages.Completions),
		zap.Duration("elapsed", time.Since(started)),
	)
}
