package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"dispatchsim/internal/core/domain/model/kernel"
	"dispatchsim/internal/pkg/errs"
)

// Config carries the environment-driven simulation parameters.
// The per-run selectors (strategy, seed, input path) are command line flags
// and live outside this struct.
type Config struct {
	Env            string
	LogLevel       string
	TimeUnit       time.Duration
	TickInterval   time.Duration
	PollInterval   time.Duration
	BatchSize      int
	TravelMin      int
	TravelMax      int
	ProgressReport bool
}

// LoadConfig reads the configuration from the environment.
// A .env file is loaded first when present, then viper resolves each SIM_*
// key against the environment with the documented defaults.
func LoadConfig() (Config, error) {
	// The .env file is optional, the environment alone is enough.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SIM_ENV", "development")
	v.SetDefault("SIM_LOG_LEVEL", "info")
	v.SetDefault("SIM_TIME_UNIT", "1s")
	v.SetDefault("SIM_TICK_INTERVAL", "1s")
	v.SetDefault("SIM_POLL_INTERVAL", "100ms")
	v.SetDefault("SIM_BATCH_SIZE", 2)
	v.SetDefault("SIM_TRAVEL_MIN", 3)
	v.SetDefault("SIM_TRAVEL_MAX", 15)
	v.SetDefault("SIM_PROGRESS_REPORT", true)

	config := Config{
		Env:            v.GetString("SIM_ENV"),
		LogLevel:       v.GetString("SIM_LOG_LEVEL"),
		TimeUnit:       v.GetDuration("SIM_TIME_UNIT"),
		TickInterval:   v.GetDuration("SIM_TICK_INTERVAL"),
		PollInterval:   v.GetDuration("SIM_POLL_INTERVAL"),
		BatchSize:      v.GetInt("SIM_BATCH_SIZE"),
		TravelMin:      v.GetInt("SIM_TRAVEL_MIN"),
		TravelMax:      v.GetInt("SIM_TRAVEL_MAX"),
		ProgressReport: v.GetBool("SIM_PROGRESS_REPORT"),
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Validate checks the simulation parameters.
// Durations must be positive, at least one order must be submitted per
// batch, and the travel bounds must form a valid draw range.
func (c Config) Validate() error {
	return errors.Join(
		validateDuration("SIM_TIME_UNIT", c.TimeUnit),
		validateDuration("SIM_TICK_INTERVAL", c.TickInterval),
		validateDuration("SIM_POLL_INTERVAL", c.PollInterval),
		validateBatchSize(c.BatchSize),
		validateTravelBounds(c.TravelMin, c.TravelMax),
	)
}

func validateDuration(key string, d time.Duration) error {
	if d <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(key+" is invalid",
			fmt.Errorf("%s is not greater than 0", d))
	}

	return nil
}

func validateBatchSize(size int) error {
	if size < 1 {
		return errs.NewValueIsInvalidErrorWithCause("SIM_BATCH_SIZE is invalid",
			fmt.Errorf("%d is not greater than 0", size))
	}

	return nil
}

func validateTravelBounds(min int, max int) error {
	if _, err := kernel.NewRange(min, max); err != nil {
		return fmt.Errorf("travel bounds are invalid: %w", err)
	}

	return nil
}
