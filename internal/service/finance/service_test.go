package finance

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/audit"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/finance"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/actor"
	"github.com/gestao-rh/gestao-backend-go/internal/repository/memory"
	auditsvc "github.com/gestao-rh/gestao-backend-go/internal/service/audit"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc      *FinanceServiceImpl
	txRepo   finance.TransactionRepository
	payables finance.AccountPayableRepository
	audits   audit.AuditRepository
}

func newFixture(now time.Time) fixture {
	store := memory.NewStore()
	f := fixture{
		txRepo:   memory.NewTransactionRepository(store),
		payables: memory.NewAccountPayableRepository(store),
		audits:   memory.NewAuditRepository(store),
	}
	recorder := auditsvc.NewAuditService(f.audits, auditsvc.NewCodec())
	f.svc = NewFinanceService(memory.NewTransactor(store), f.txRepo, f.payables, recorder).(*FinanceServiceImpl)
	f.svc.now = func() time.Time { return now }
	return f
}

func authed() context.Context {
	return actor.WithUserID(context.Background(), "0190a1b2-0000-7000-8000-000000000001")
}

func TestPayPayable(t *testing.T) {
	f := newFixture(time.Date(2024, 9, 15, 10, 0, 0, 0, time.UTC))
	ctx := authed()

	payable, err := f.svc.CreatePayable(ctx, finance.CreatePayableRequest{
		Supplier: "Energia SA", Amount: decimal.RequireFromString("480.90"), DueDate: "2024-09-20",
	})
	require.NoError(t, err)

	paid, err := f.svc.PayPayable(ctx, finance.PayPayableRequest{ID: payable.ID})
	require.NoError(t, err)
	assert.Equal(t, finance.PayableStatusPaid, paid.Payable.Status)
	require.NotNil(t, paid.Payable.PaidAt)
	assert.Equal(t, "2024-09-15", paid.Payable.PaidAt.Format("2006-01-02"))
	require.NotNil(t, paid.Payable.TransactionID)
	assert.Equal(t, paid.Transaction.ID, *paid.Payable.TransactionID)
	assert.Equal(t, finance.TransactionTypeExpense, paid.Transaction.Type)
	assert.Equal(t, finance.CategoryAccountPayable, paid.Transaction.Category)
	assert.True(t, paid.Transaction.Amount.Equal(payable.Amount))

	_, err = f.svc.PayPayable(ctx, finance.PayPayableRequest{ID: payable.ID})
	assert.ErrorIs(t, err, finance.ErrAccountPayableClosed)

	txs, err := f.svc.ListTransactions(ctx, finance.TransactionFilter{})
	require.NoError(t, err)
	assert.Len(t, txs, 1)

	// linked transactions are removed through their owner only
	err = f.svc.DeleteTransaction(ctx, paid.Transaction.ID)
	assert.ErrorIs(t, err, finance.ErrTransactionLinked)

	err = f.svc.DeletePayable(ctx, payable.ID)
	assert.ErrorIs(t, err, finance.ErrAccountPayableClosed)
}

func TestPayPayable_Concurrent(t *testing.T) {
	f := newFixture(time.Date(2024, 9, 15, 10, 0, 0, 0, time.UTC))
	ctx := authed()

	payable, err := f.svc.CreatePayable(ctx, finance.CreatePayableRequest{
		Supplier: "Agua", Amount: decimal.RequireFromString("75.00"), DueDate: "2024-09-30",
	})
	require.NoError(t, err)

	errs := make([]error, 8)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = f.svc.PayPayable(ctx, finance.PayPayableRequest{ID: payable.ID})
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

	txs, err := f.svc.ListTransactions(ctx, finance.TransactionFilter{})
	require.NoError(t, err)
	assert.Len(t, txs, 1)
}

func TestMarkOverduePayables(t *testing.T) {
	f := newFixture(time.Date(2024, 9, 15, 10, 0, 0, 0, time.UTC))
	ctx := authed()

	past, err := f.svc.CreatePayable(ctx, finance.CreatePayableRequest{Supplier: "A", Amount: decimal.NewFromInt(10), DueDate: "2024-09-14"})
	require.NoError(t, err)
	today, err := f.svc.CreatePayable(ctx, finance.CreatePayableRequest{Supplier: "B", Amount: decimal.NewFromInt(10), DueDate: "2024-09-15"})
	require.NoError(t, err)

	n, err := f.svc.MarkOverduePayables(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := f.payables.GetByID(ctx, past.ID)
	require.NoError(t, err)
	assert.Equal(t, finance.PayableStatusOverdue, got.Status)
	got, err = f.payables.GetByID(ctx, today.ID)
	require.NoError(t, err)
	assert.Equal(t, finance.PayableStatusPending, got.Status)

	// overdue payables can still be paid
	_, err = f.svc.PayPayable(ctx, finance.PayPayableRequest{ID: past.ID})
	assert.NoError(t, err)
}

func TestTransactions(t *testing.T) {
	f := newFixture(time.Now())
	ctx := authed()

	for _, date := range []string{"2024-01-10", "2024-02-10", "2024-03-10"} {
		_, err := f.svc.CreateTransaction(ctx, finance.CreateTransactionRequest{
			Type: "income", Category: "vendas", Description: "venda", Amount: decimal.NewFromInt(100), Date: date,
		})
		require.NoError(t, err)
	}

	from := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	list, err := f.svc.ListTransactions(ctx, finance.TransactionFilter{From: &from})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2024-03-10", list[0].Date.Format("2006-01-02"))
	assert.Equal(t, finance.TransactionStatusPending, list[0].Status)

	to := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err = f.svc.ListTransactions(ctx, finance.TransactionFilter{From: &from, To: &to})
	assert.Error(t, err)

	require.NoError(t, f.svc.DeleteTransaction(ctx, list[0].ID))
	_, err = f.txRepo.GetByID(ctx, list[0].ID)
	assert.ErrorIs(t, err, finance.ErrTransactionNotFound)

	_, err = f.svc.CreateTransaction(ctx, finance.CreateTransactionRequest{
		Type: "transfer", Category: "x", Description: "x", Amount: decimal.NewFromInt(-1), Date: "2024-01-01",
	})
	assert.Error(t, err)
}
