package advance

import (
	"context"
	"errors"
	"testing"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/advance"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/audit"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/employee"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/finance"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/actor"
	"github.com/gestao-rh/gestao-backend-go/internal/repository/memory"
	auditsvc "github.com/gestao-rh/gestao-backend-go/internal/service/audit"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInsert = errors.New("insert failed")

type failingTransactionRepo struct {
	finance.TransactionRepository
}

func (failingTransactionRepo) Create(context.Context, finance.Transaction) (finance.Transaction, error) {
	return finance.Transaction{}, errInsert
}

type failingAdvanceRepo struct {
	advance.AdvanceRepository
}

func (failingAdvanceRepo) Create(context.Context, advance.Advance) (advance.Advance, error) {
	return advance.Advance{}, errInsert
}

type fixture struct {
	store        *memory.Store
	advances     advance.AdvanceRepository
	transactions finance.TransactionRepository
	employees    employee.EmployeeRepository
	audits       audit.AuditRepository
}

func newFixture() fixture {
	store := memory.NewStore()
	return fixture{
		store:        store,
		advances:     memory.NewAdvanceRepository(store),
		transactions: memory.NewTransactionRepository(store),
		employees:    memory.NewEmployeeRepository(store),
		audits:       memory.NewAuditRepository(store),
	}
}

func (f fixture) service(advances advance.AdvanceRepository, transactions finance.TransactionRepository) advance.AdvanceService {
	recorder := auditsvc.NewAuditService(f.audits, auditsvc.NewCodec())
	return NewAdvanceService(memory.NewTransactor(f.store), advances, transactions, f.employees, recorder)
}

func (f fixture) employee(t *testing.T) employee.Employee {
	t.Helper()
	emp, err := f.employees.Create(context.Background(), employee.Employee{Name: "Joana", SalaryCents: 250000, Active: true})
	require.NoError(t, err)
	return emp
}

func authed() context.Context {
	return actor.WithUserID(context.Background(), "0190a1b2-0000-7000-8000-000000000001")
}

func (f fixture) assertEmpty(t *testing.T, employeeID string) {
	t.Helper()
	advs, err := f.advances.ListByEmployee(context.Background(), employeeID)
	require.NoError(t, err)
	assert.Empty(t, advs)

	txs, err := f.transactions.List(context.Background(), finance.TransactionFilter{})
	require.NoError(t, err)
	assert.Empty(t, txs)

	logs, err := f.audits.List(context.Background(), audit.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestCreateAdvance(t *testing.T) {
	f := newFixture()
	emp := f.employee(t)
	svc := f.service(f.advances, f.transactions)
	ref := "2024-07"

	got, err := svc.CreateAdvance(authed(), advance.CreateAdvanceRequest{
		EmployeeID:       emp.ID,
		Amount:           decimal.NewFromInt(200),
		Date:             "2024-07-10",
		PayrollReference: &ref,
	})
	require.NoError(t, err)
	require.NotNil(t, got.TransactionID)

	tx, err := f.transactions.GetByID(context.Background(), *got.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, finance.TransactionTypeExpense, tx.Type)
	assert.Equal(t, finance.CategoryAdvance, tx.Category)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(200)))
	require.NotNil(t, tx.EmployeeID)
	assert.Equal(t, emp.ID, *tx.EmployeeID)

	logs, err := f.audits.List(context.Background(), audit.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, logs, 2)
}

func TestCreateAdvance_Atomicity(t *testing.T) {
	t.Run("transaction insert fails", func(t *testing.T) {
		f := newFixture()
		emp := f.employee(t)
		svc := f.service(f.advances, failingTransactionRepo{f.transactions})

		_, err := svc.CreateAdvance(authed(), advance.CreateAdvanceRequest{
			EmployeeID: emp.ID, Amount: decimal.NewFromInt(200), Date: "2024-07-10",
		})
		assert.ErrorIs(t, err, errInsert)
		f.assertEmpty(t, emp.ID)
	})

	t.Run("advance insert fails after transaction", func(t *testing.T) {
		f := newFixture()
		emp := f.employee(t)
		svc := f.service(failingAdvanceRepo{f.advances}, f.transactions)

		_, err := svc.CreateAdvance(authed(), advance.CreateAdvanceRequest{
			EmployeeID: emp.ID, Amount: decimal.NewFromInt(200), Date: "2024-07-10",
		})
		assert.ErrorIs(t, err, errInsert)
		f.assertEmpty(t, emp.ID)
	})
}

func TestCreateAdvance_Rejects(t *testing.T) {
	f := newFixture()
	emp := f.employee(t)
	svc := f.service(f.advances, f.transactions)

	_, err := svc.CreateAdvance(context.Background(), advance.CreateAdvanceRequest{
		EmployeeID: emp.ID, Amount: decimal.NewFromInt(200), Date: "2024-07-10",
	})
	assert.ErrorIs(t, err, actor.ErrNoActor)

	_, err = svc.CreateAdvance(authed(), advance.CreateAdvanceRequest{
		EmployeeID: emp.ID, Amount: decimal.Zero, Date: "2024-07-10",
	})
	assert.Error(t, err)

	_, err = svc.CreateAdvance(authed(), advance.CreateAdvanceRequest{
		EmployeeID: "0190a1b2-0000-7000-8000-0000000000ff", Amount: decimal.NewFromInt(1), Date: "2024-07-10",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	f.assertEmpty(t, emp.ID)
}

func TestDeleteAdvance_RemovesTransaction(t *testing.T) {
	f := newFixture()
	emp := f.employee(t)
	svc := f.service(f.advances, f.transactions)

	created, err := svc.CreateAdvance(authed(), advance.CreateAdvanceRequest{
		EmployeeID: emp.ID, Amount: decimal.NewFromInt(150), Date: "2024-08-01",
	})
	require.NoError(t, err)

	err = svc.DeleteAdvance(authed(), "0190a1b2-0000-7000-8000-0000000000ff", created.ID)
	assert.ErrorIs(t, err, advance.ErrAdvanceNotFound)

	require.NoError(t, svc.DeleteAdvance(authed(), emp.ID, created.ID))

	_, err = f.advances.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, advance.ErrAdvanceNotFound)
	_, err = f.transactions.GetByID(context.Background(), *created.TransactionID)
	assert.ErrorIs(t, err, finance.ErrTransactionNotFound)

	action := string(audit.ActionDelete)
	logs, err := f.audits.List(context.Background(), audit.ListFilter{Action: &action})
	require.NoError(t, err)
	assert.Len(t, logs, 2)
}
