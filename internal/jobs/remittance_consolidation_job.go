package jobs

import (
	"context"
	"log/slog"

	"deliverypay/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// consolidationSchedule runs the settlement cycle at 21:00 every day, after
// the delivery day is over.
const consolidationSchedule = "0 21 * * *"

// RemittanceConsolidationJob runs the nightly settlement cycle: every shop
// with a positive daily balance gets a pending remittance upserted, net of
// its outstanding debts. The underlying command is idempotent, so a missed
// or repeated run is harmless.
type RemittanceConsolidationJob struct {
	handler commands.ConsolidateRemittancesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewRemittanceConsolidationJob creates the nightly consolidation job.
func NewRemittanceConsolidationJob(
	handler commands.ConsolidateRemittancesCommandHandler,
	logger *slog.Logger,
) *RemittanceConsolidationJob {
	return &RemittanceConsolidationJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "remittance_consolidation_job"),
	}
}

// Start schedules the consolidation run.
func (j *RemittanceConsolidationJob) Start() error {
	_, err := j.cron.AddFunc(consolidationSchedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Remittance consolidation job started", "schedule", consolidationSchedule)
	return nil
}

// Stop stops the consolidation job.
func (j *RemittanceConsolidationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Remittance consolidation job stopped")
}

func (j *RemittanceConsolidationJob) run() {
	ctx := context.Background()

	cmd, err := commands.NewConsolidateRemittancesCommand()
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to build consolidation command", "error", err)
		return
	}

	if err := j.handler.Handle(ctx, cmd); err != nil {
		j.logger.ErrorContext(ctx, "Remittance consolidation run failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Remittance consolidation run completed")
}
