package postgresql_test

import (
	"context"
	"sync"
	"testing"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/audit"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/finance"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/rh"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/actor"
	"github.com/gestao-rh/gestao-backend-go/internal/repository/postgresql"
	auditService "github.com/gestao-rh/gestao-backend-go/internal/service/audit"
	financeService "github.com/gestao-rh/gestao-backend-go/internal/service/finance"
	rhService "github.com/gestao-rh/gestao-backend-go/internal/service/rh"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func newRecorder(setup *TestDatabaseSetup) audit.AuditService {
	return auditService.NewAuditService(postgresql.NewAuditRepository(setup.DB), auditService.NewCodec())
}

func TestApplyTimeBank_ConcurrentFirstEntries(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := actor.WithUserID(context.Background(), uuid.NewString())
	emp := createTestEmployee(t, ctx, setup, 300000)

	svc := rhService.NewRHService(
		postgresql.NewTransactor(setup.DB),
		postgresql.NewRHRepository(setup.DB),
		postgresql.NewEmployeeRepository(setup.DB),
		postgresql.NewAdvanceRepository(setup.DB),
		newRecorder(setup),
	)

	credit := decimal.NewFromInt(10)
	debit := decimal.NewFromInt(4)
	requests := []rh.TimeBankRequest{
		{EmployeeID: emp.ID, HorasCredito: &credit},
		{EmployeeID: emp.ID, HorasDebito: &debit},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, req := range requests {
		g.Go(func() error {
			_, err := svc.ApplyTimeBank(gctx, req)
			return err
		})
	}
	require.NoError(t, g.Wait())

	tb, err := svc.GetTimeBank(ctx, emp.ID)
	require.NoError(t, err)
	assert.True(t, tb.SaldoHoras.Equal(decimal.NewFromInt(6)), "saldo %s", tb.SaldoHoras)
	assert.True(t, tb.TotalCredito.Equal(credit), "credito %s", tb.TotalCredito)
	assert.True(t, tb.TotalDebito.Equal(debit), "debito %s", tb.TotalDebito)

	entity := string(audit.EntityTimeBank)
	logs, err := postgresql.NewAuditRepository(setup.DB).List(ctx, audit.ListFilter{Entity: &entity})
	require.NoError(t, err)
	assert.Len(t, logs, 2)
}

func TestPayPayable_ConcurrentPaysCreateOneExpense(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := actor.WithUserID(context.Background(), uuid.NewString())

	txRepo := postgresql.NewTransactionRepository(setup.DB)
	svc := financeService.NewFinanceService(
		postgresql.NewTransactor(setup.DB),
		txRepo,
		postgresql.NewAccountPayableRepository(setup.DB),
		newRecorder(setup),
	)

	payable, err := svc.CreatePayable(ctx, finance.CreatePayableRequest{
		Supplier: "Energia",
		Amount:   decimal.RequireFromString("120.50"),
		DueDate:  "2024-03-10",
	})
	require.NoError(t, err)

	const callers = 4
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = svc.PayPayable(ctx, finance.PayPayableRequest{ID: payable.ID})
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, finance.ErrAccountPayableClosed)
	}
	assert.Equal(t, 1, succeeded)

	expense := finance.TransactionTypeExpense
	txs, err := txRepo.List(ctx, finance.TransactionFilter{Type: &expense, Limit: 50})
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, finance.CategoryAccountPayable, txs[0].Category)
}
