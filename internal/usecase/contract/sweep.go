package contract

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// SweepOverdue marks every active contract whose due date has passed,
// paging through candidates SweepBatch at a time. Failures on single
// contracts do not stop the sweep and are returned joined at the end.
// Contracts that failed or were left unchanged are not listed again in
// the same run.
func (uc *DefaultContractUsecase) SweepOverdue(ctx context.Context) (int, error) {
	started := time.Now()
	today := uc.Clock.Today()

	var (
		marked     int
		candidates int
		skipped    []string
		errs       []error
	)
	for {
		ids, err := uc.ContractRepo.FindOverdueCandidates(ctx, today, skipped, uc.Config.SweepBatch)
		if err != nil {
			errs = append(errs, err)
			break
		}
		candidates += len(ids)

		for _, id := range ids {
			if ctx.Err() != nil {
				break
			}
			ok, err := uc.MarkOverdue(ctx, id)
			if err != nil {
				slog.Error("failed to mark contract overdue", "contract_id", id, "error", err.Error())
				errs = append(errs, err)
				skipped = append(skipped, id)
				continue
			}
			if !ok {
				skipped = append(skipped, id)
				continue
			}
			marked++
		}

		if ctx.Err() != nil || len(ids) == 0 || len(ids) < uc.Config.SweepBatch {
			break
		}
	}
	if err := ctx.Err(); err != nil {
		errs = append(errs, err)
	}

	uc.recordSweepMetrics(marked, started)
	slog.Info("overdue sweep finished", "candidates", candidates, "marked", marked, "skipped", len(skipped))
	return marked, errors.Join(errs...)
}
