package jobs

import (
	"context"
	"log/slog"
	"time"

	"picking/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleListCancellationJob periodically cancels picking lists that stayed in
// Created status longer than the configured age. Runs every minute.
type StaleListCancellationJob struct {
	handler  commands.CancelStaleListsCommandHandler
	staleAge time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStaleListCancellationJob creates a job sweeping lists older than staleAge.
func NewStaleListCancellationJob(
	handler commands.CancelStaleListsCommandHandler,
	staleAge time.Duration,
	logger *slog.Logger,
) *StaleListCancellationJob {
	return &StaleListCancellationJob{
		handler:  handler,
		staleAge: staleAge,
		cron:     cron.New(),
		logger:   logger.With("component", "stale_list_cancellation_job"),
	}
}

// Start begins the stale-list sweep, running every minute.
func (j *StaleListCancellationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewCancelStaleListsCommand(j.staleAge)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Stale list sweep misconfigured", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Stale list sweep failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Stale list cancellation job started (running every minute)", "staleAge", j.staleAge)
	return nil
}

// Stop stops the stale-list sweep.
func (j *StaleListCancellationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale list cancellation job stopped")
}
