// Package jobs provides the driving tasks of a simulation run.
//
// # Available Jobs
//
// 1. OrderSubmissionJob - Feeds the prepared submit commands to the handler in batches, one batch per tick, then waits for all spawned pairings
// 2. ProgressReportJob - Runs every second (github.com/robfig/cron/v3) to log the order backlog and the wait averages so far
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with prebuilt jobs, nil disables reporting
//	jobManager, err := jobs.NewJobManager(submissionJob, progressJob)
//	if err != nil {
//		log.Fatal("Failed to create job manager:", err)
//	}
//
//	// Run the simulation to completion
//	if err := jobManager.Run(ctx); err != nil {
//		log.Fatal("Run failed:", err)
//	}
//
// # Scheduling
//
// The submission job sleeps one tick interval before each batch, so the first
// orders enter the system one tick after the run starts. The progress report
// job uses the cron expression "* * * * * *" which means it runs every second.
//
// # Error Handling
//
// - Submission job returns the first submission or context error and nil once every pairing has finished
// - Progress report job ignores the expected no-completions state before the first pickup and logs all other errors
package jobs
