package cron

import (
	"context"
	"time"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/finance"
)

// FinanceJobs contains finance-related cron jobs
type FinanceJobs struct {
	financeService  finance.FinanceService
	overdueInterval time.Duration
}

func NewFinanceJobs(financeService finance.FinanceService, overdueInterval time.Duration) *FinanceJobs {
	return &FinanceJobs{
		financeService:  financeService,
		overdueInterval: overdueInterval,
	}
}

// RegisterJobs registers all finance-related cron jobs
func (j *FinanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_overdue_payables", j.overdueInterval, j.MarkOverduePayables)
}

// MarkOverduePayables flips pending payables past their due date to overdue
func (j *FinanceJobs) MarkOverduePayables(ctx context.Context) error {
	_, err := j.financeService.MarkOverduePayables(ctx)
	return err
}
