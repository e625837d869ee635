package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/audit"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/employee"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/employment"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/finance"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/rh"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/user"
	"github.com/gestao-rh/gestao-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func createTestEmployee(t *testing.T, ctx context.Context, setup *TestDatabaseSetup, salaryCents int64) employee.Employee {
	t.Helper()
	emp, err := postgresql.NewEmployeeRepository(setup.DB).Create(ctx, employee.Employee{
		Name:        "Test Employee",
		SalaryCents: salaryCents,
		Active:      true,
	})
	require.NoError(t, err)
	return emp
}

func date(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

// ===== USER REPOSITORY TESTS =====

func TestUserRepository_GetByEmail(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	var id string
	err := setup.DB.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash) VALUES ('Admin', 'admin@example.com', $1) RETURNING id
	`, string(hashed)).Scan(&id)
	require.NoError(t, err)

	repo := postgresql.NewUserRepository(setup.DB)

	got, err := repo.GetByEmail(ctx, "ADMIN@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	require.NotNil(t, got.PasswordHash)

	_, err = repo.GetByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

// ===== EMPLOYEE REPOSITORY TESTS =====

func TestEmployeeRepository_CreateUpdate(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(setup.DB)

	email := "ana@example.com"
	created, err := repo.Create(ctx, employee.Employee{Name: "Ana", Email: &email, SalaryCents: 250000, Active: true})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	dup := "ANA@example.com"
	_, err = repo.Create(ctx, employee.Employee{Name: "Other", Email: &dup, Active: true})
	assert.ErrorIs(t, err, employee.ErrEmailExists)

	created.Active = false
	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	assert.False(t, updated.Active)

	_, err = repo.GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

// ===== TRANSACTOR TESTS =====

func TestTransactor_RollsBackOnError(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	transactor := postgresql.NewTransactor(setup.DB)
	repo := postgresql.NewEmployeeRepository(setup.DB)

	errBoom := errors.New("boom")
	err := transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := repo.Create(ctx, employee.Employee{Name: "Ghost", Active: true}); err != nil {
			return err
		}
		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	list, err := repo.List(ctx, employee.EmployeeFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

// ===== FINANCE REPOSITORY TESTS =====

func TestAccountPayableRepository_MarkOverdue(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewAccountPayableRepository(setup.DB)
	createdBy := uuid.NewString()

	for _, due := range []string{"2024-01-10", "2024-03-10"} {
		_, err := repo.Create(ctx, finance.AccountPayable{
			Supplier:  "Energia",
			Amount:    decimal.RequireFromString("120.50"),
			DueDate:   date(due),
			Status:    finance.PayableStatusPending,
			CreatedBy: createdBy,
		})
		require.NoError(t, err)
	}

	n, err := repo.MarkOverdue(ctx, date("2024-02-01"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	overdue := finance.PayableStatusOverdue
	list, err := repo.List(ctx, finance.PayableFilter{Status: &overdue})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Amount.Equal(decimal.RequireFromString("120.50")))
}

// ===== EMPLOYMENT REPOSITORY TESTS =====

func TestContractRepository_VersionConflict(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	emp := createTestEmployee(t, ctx, setup, 300000)
	repo := postgresql.NewContractRepository(setup.DB)

	c, err := repo.Create(ctx, employment.Contract{
		EmployeeID:   emp.ID,
		ContractType: employment.ContractTypeCLT,
		StartDate:    date("2024-01-01"),
		SalaryCents:  300000,
		Status:       employment.StatusActive,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, c.Version)

	c.Version = 2
	updated, err := repo.Update(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Version)

	// a second writer still holding version 1
	_, err = repo.Update(ctx, c)
	assert.ErrorIs(t, err, employment.ErrVersionConflict)
}

// ===== RH REPOSITORY TESTS =====

func TestRHRepository_ThirteenthUnique(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	emp := createTestEmployee(t, ctx, setup, 360000)
	repo := postgresql.NewRHRepository(setup.DB)

	entry := rh.ThirteenthSalary{
		EmployeeID:       emp.ID,
		AnoReferencia:    2024,
		MesesTrabalhados: 5,
		ValorTotal:       decimal.NewFromInt(1500),
	}
	_, err := repo.CreateThirteenth(ctx, entry)
	require.NoError(t, err)

	_, err = repo.CreateThirteenth(ctx, entry)
	assert.ErrorIs(t, err, rh.ErrThirteenthAlreadyExists)
}

func TestRHRepository_TimeBankUpsert(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	emp := createTestEmployee(t, ctx, setup, 300000)
	repo := postgresql.NewRHRepository(setup.DB)

	_, err := repo.GetTimeBank(ctx, emp.ID)
	assert.ErrorIs(t, err, rh.ErrTimeBankNotFound)

	first, err := repo.UpsertTimeBank(ctx, rh.TimeBank{
		EmployeeID: emp.ID, SaldoHoras: decimal.NewFromInt(10), TotalCredito: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	second, err := repo.UpsertTimeBank(ctx, rh.TimeBank{
		EmployeeID: emp.ID, SaldoHoras: decimal.NewFromInt(6), TotalCredito: decimal.NewFromInt(10), TotalDebito: decimal.NewFromInt(4),
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.SaldoHoras.Equal(decimal.NewFromInt(6)))
}

// ===== AUDIT REPOSITORY TESTS =====

func TestAuditRepository_CreateList(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewAuditRepository(setup.DB)
	userID := uuid.NewString()

	_, err := repo.Create(ctx, audit.StoredLog{
		Action: audit.ActionCreate, Entity: audit.EntityEmployee, EntityID: "e1",
		NewData: []byte(`{"name":"Ana"}`), UserID: userID,
	})
	require.NoError(t, err)
	_, err = repo.Create(ctx, audit.StoredLog{
		Action: audit.ActionDelete, Entity: audit.EntityEmployee, EntityID: "e1",
		OldData: []byte(`{"name":"Ana"}`), UserID: userID,
	})
	require.NoError(t, err)

	logs, err := repo.List(ctx, audit.ListFilter{Limit: 10})
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, audit.ActionDelete, logs[0].Action)
	assert.Nil(t, logs[0].NewData)
	assert.JSONEq(t, `{"name":"Ana"}`, string(logs[0].OldData))

	action := string(audit.ActionCreate)
	logs, err = repo.List(ctx, audit.ListFilter{Action: &action})
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}
