package cron_test

import (
	"context"
	"testing"
	"time"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/audit"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/finance"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/cron"
	"github.com/gestao-rh/gestao-backend-go/internal/repository/memory"
	auditService "github.com/gestao-rh/gestao-backend-go/internal/service/audit"
	financeService "github.com/gestao-rh/gestao-backend-go/internal/service/finance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinanceJobs_MarkOverduePayables(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	payables := memory.NewAccountPayableRepository(store)
	auditRepo := memory.NewAuditRepository(store)

	svc := financeService.NewFinanceService(
		memory.NewTransactor(store),
		memory.NewTransactionRepository(store),
		payables,
		auditService.NewAuditService(auditRepo, auditService.NewCodec()),
	)

	late, err := payables.Create(ctx, finance.AccountPayable{
		Supplier:  "Aluguel",
		Amount:    decimal.NewFromInt(1200),
		DueDate:   time.Date(2020, 1, 5, 0, 0, 0, 0, time.UTC),
		Status:    finance.PayableStatusPending,
		CreatedBy: "system",
	})
	require.NoError(t, err)
	future, err := payables.Create(ctx, finance.AccountPayable{
		Supplier:  "Internet",
		Amount:    decimal.NewFromInt(100),
		DueDate:   time.Now().UTC().AddDate(1, 0, 0),
		Status:    finance.PayableStatusPending,
		CreatedBy: "system",
	})
	require.NoError(t, err)

	scheduler := cron.NewScheduler(nil)
	cron.NewFinanceJobs(svc, time.Hour).RegisterJobs(scheduler)
	require.NoError(t, scheduler.RunOnce(ctx))

	got, err := payables.GetByID(ctx, late.ID)
	require.NoError(t, err)
	assert.Equal(t, finance.PayableStatusOverdue, got.Status)

	got, err = payables.GetByID(ctx, future.ID)
	require.NoError(t, err)
	assert.Equal(t, finance.PayableStatusPending, got.Status)

	// scheduler runs have no acting user and leave no audit trail
	logs, err := auditRepo.List(ctx, audit.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, logs)
}
