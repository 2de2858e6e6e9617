package job

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"consensus-api/internal/dto"
)

const repairTimeout = 30 * time.Second

// RoundRepairer closes stray active rounds
type RoundRepairer interface {
	RepairActiveRounds(ctx context.Context) (*dto.RepairResult, error)
}

// RoundRepairJob periodically enforces one active round per form
type RoundRepairJob struct {
	repairer RoundRepairer
	logger   *zap.Logger
	cron     *cron.Cron
}

// NewRoundRepairJob creates a new RoundRepairJob instance
func NewRoundRepairJob(repairer RoundRepairer, logger *zap.Logger) *RoundRepairJob {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RoundRepairJob{
		repairer: repairer,
		logger:   logger,
	}
}

// Start schedules Run on the given cron spec ("@every 1m", "*/5 * * * *", ...)
func (j *RoundRepairJob) Start(schedule string) error {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := c.AddJob(schedule, j); err != nil {
		return err
	}
	j.cron = c
	c.Start()

	j.logger.Info("Round repair job scheduled", zap.String("schedule", schedule))
	return nil
}

// Stop halts the scheduler and waits for a running repair to finish
func (j *RoundRepairJob) Stop() {
	if j.cron == nil {
		return
	}
	<-j.cron.Stop().Done()
	j.logger.Info("Round repair job stopped")
}

// Run executes one repair pass
func (j *RoundRepairJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), repairTimeout)
	defer cancel()

	j.RunOnce(ctx)
}

// RunOnce executes one repair pass bound to ctx
func (j *RoundRepairJob) RunOnce(ctx context.Context) *dto.RepairResult {
	j.logger.Debug("Starting round repair job")

	result, err := j.repairer.RepairActiveRounds(ctx)
	if err != nil {
		j.logger.Error("Failed to repair active rounds", zap.Error(err))
		return nil
	}

	if result.RoundsRepaired == 0 {
		j.logger.Debug("No stray active rounds found")
		return result
	}

	j.logger.Warn("Closed stray active rounds",
		zap.Int("forms", result.FormsRepaired),
		zap.Int64("rounds", result.RoundsRepaired),
	)
	return result
}
