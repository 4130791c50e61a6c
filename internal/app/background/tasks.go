package background

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-pawn-service/internal/usecase/contract"
	"github.com/robfig/cron/v3"
)

type BackgroundTasks struct {
	ContractUsecase contract.ContractUsecase
	cron            *cron.Cron
}

// NewBackgroundTasks evaluates cron schedules in loc so that a daily sweep
// runs just after the store's midnight.
func NewBackgroundTasks(contractUC contract.ContractUsecase, loc *time.Location) *BackgroundTasks {
	return &BackgroundTasks{
		ContractUsecase: contractUC,
		cron:            cron.New(cron.WithLocation(loc)),
	}
}

// StartAll registers the overdue sweep on sweepSchedule and runs one sweep
// right away to catch contracts that fell due while the service was down.
func (bt *BackgroundTasks) StartAll(ctx context.Context, sweepSchedule string) error {
	if _, err := bt.cron.AddFunc(sweepSchedule, func() { bt.sweepOverdue(ctx) }); err != nil {
		return fmt.Errorf("schedule overdue sweep %q: %w", sweepSchedule, err)
	}
	go bt.sweepOverdue(ctx)
	bt.cron.Start()
	return nil
}

// Stop prevents new runs. The returned context is done once running jobs finish.
func (bt *BackgroundTasks) Stop() context.Context {
	return bt.cron.Stop()
}

func (bt *BackgroundTasks) sweepOverdue(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if _, err := bt.ContractUsecase.SweepOverdue(ctx); err != nil {
		slog.Error("overdue sweep error", "error", err.Error())
	}
}
