package rh

import (
	"context"
	"errors"
	"testing"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/advance"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/audit"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/employee"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/rh"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/actor"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/validator"
	"github.com/gestao-rh/gestao-backend-go/internal/repository/memory"
	auditsvc "github.com/gestao-rh/gestao-backend-go/internal/service/audit"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = "0190a1b2-0000-7000-8000-000000000001"

type fixture struct {
	svc       rh.RHService
	rhRepo    rh.RHRepository
	employees employee.EmployeeRepository
	advances  advance.AdvanceRepository
	audits    audit.AuditRepository
}

func newFixture(t *testing.T, recorder func(audit.Recorder) audit.Recorder) fixture {
	t.Helper()
	store := memory.NewStore()
	f := fixture{
		rhRepo:    memory.NewRHRepository(store),
		employees: memory.NewEmployeeRepository(store),
		advances:  memory.NewAdvanceRepository(store),
		audits:    memory.NewAuditRepository(store),
	}
	var rec audit.Recorder = auditsvc.NewAuditService(f.audits, auditsvc.NewCodec())
	if recorder != nil {
		rec = recorder(rec)
	}
	f.svc = NewRHService(memory.NewTransactor(store), f.rhRepo, f.employees, f.advances, rec)
	return f
}

func (f fixture) employee(t *testing.T, salaryCents int64) employee.Employee {
	t.Helper()
	emp, err := f.employees.Create(context.Background(), employee.Employee{Name: "Maria", SalaryCents: salaryCents, Active: true})
	require.NoError(t, err)
	return emp
}

func (f fixture) auditCount(t *testing.T) int {
	t.Helper()
	logs, err := f.audits.List(context.Background(), audit.ListFilter{})
	require.NoError(t, err)
	return len(logs)
}

type failingRecorder struct{}

func (failingRecorder) Record(context.Context, audit.Entry) (audit.AuditLog, error) {
	return audit.AuditLog{}, errors.New("audit store unavailable")
}

func authed() context.Context {
	return actor.WithUserID(context.Background(), testUserID)
}

func TestCreateThirteenth(t *testing.T) {
	t.Run("unauthenticated creates nothing", func(t *testing.T) {
		f := newFixture(t, nil)
		emp := f.employee(t, 300000)

		_, err := f.svc.CreateThirteenth(context.Background(), rh.CreateThirteenthRequest{
			EmployeeID: emp.ID, AnoReferencia: 2024, MesesTrabalhados: 6,
		})
		assert.ErrorIs(t, err, actor.ErrNoActor)

		list, err := f.rhRepo.ListThirteenth(context.Background(), rh.ThirteenthFilter{})
		require.NoError(t, err)
		assert.Empty(t, list)
		assert.Zero(t, f.auditCount(t))
	})

	t.Run("computes value and audits", func(t *testing.T) {
		f := newFixture(t, nil)
		emp := f.employee(t, 360000)

		got, err := f.svc.CreateThirteenth(authed(), rh.CreateThirteenthRequest{
			EmployeeID: emp.ID, AnoReferencia: 2024, MesesTrabalhados: 5,
		})
		require.NoError(t, err)
		assert.True(t, got.ValorTotal.Equal(decimal.NewFromInt(1500)), got.ValorTotal.String())

		logs, err := f.audits.List(context.Background(), audit.ListFilter{})
		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.Equal(t, audit.ActionCreate, logs[0].Action)
		assert.Equal(t, audit.EntityThirteenthSalary, logs[0].Entity)
		assert.Equal(t, got.ID, logs[0].EntityID)
		assert.Equal(t, testUserID, logs[0].UserID)
	})

	t.Run("months above twelve rejected", func(t *testing.T) {
		f := newFixture(t, nil)
		emp := f.employee(t, 360000)

		_, err := f.svc.CreateThirteenth(authed(), rh.CreateThirteenthRequest{
			EmployeeID: emp.ID, AnoReferencia: 2024, MesesTrabalhados: 13,
		})
		var verr validator.ValidationErrors
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.ToMap(), "mesesTrabalhados")
		assert.Zero(t, f.auditCount(t))
	})

	t.Run("employee missing", func(t *testing.T) {
		f := newFixture(t, nil)
		_, err := f.svc.CreateThirteenth(authed(), rh.CreateThirteenthRequest{
			EmployeeID: "0190a1b2-0000-7000-8000-0000000000ff", AnoReferencia: 2024, MesesTrabalhados: 1,
		})
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})

	t.Run("duplicate year", func(t *testing.T) {
		f := newFixture(t, nil)
		emp := f.employee(t, 100000)
		req := rh.CreateThirteenthRequest{EmployeeID: emp.ID, AnoReferencia: 2023, MesesTrabalhados: 12}

		_, err := f.svc.CreateThirteenth(authed(), req)
		require.NoError(t, err)
		_, err = f.svc.CreateThirteenth(authed(), req)
		assert.ErrorIs(t, err, rh.ErrThirteenthAlreadyExists)
		assert.Equal(t, 1, f.auditCount(t))
	})

	t.Run("audit failure rolls back", func(t *testing.T) {
		f := newFixture(t, func(audit.Recorder) audit.Recorder { return failingRecorder{} })
		emp := f.employee(t, 100000)

		_, err := f.svc.CreateThirteenth(authed(), rh.CreateThirteenthRequest{
			EmployeeID: emp.ID, AnoReferencia: 2024, MesesTrabalhados: 3,
		})
		require.Error(t, err)

		list, err := f.rhRepo.ListThirteenth(context.Background(), rh.ThirteenthFilter{})
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestApplyTimeBank(t *testing.T) {
	f := newFixture(t, nil)
	emp := f.employee(t, 100000)
	ten, four := decimal.NewFromInt(10), decimal.NewFromInt(4)

	_, err := f.svc.ApplyTimeBank(authed(), rh.TimeBankRequest{EmployeeID: emp.ID, HorasCredito: &ten})
	require.NoError(t, err)
	got, err := f.svc.ApplyTimeBank(authed(), rh.TimeBankRequest{EmployeeID: emp.ID, HorasDebito: &four})
	require.NoError(t, err)

	assert.True(t, got.SaldoHoras.Equal(decimal.NewFromInt(6)))
	assert.True(t, got.TotalCredito.Equal(decimal.NewFromInt(10)))
	assert.True(t, got.TotalDebito.Equal(decimal.NewFromInt(4)))

	stored, err := f.svc.GetTimeBank(authed(), emp.ID)
	require.NoError(t, err)
	assert.Equal(t, got.ID, stored.ID)

	logs, err := f.audits.List(context.Background(), audit.ListFilter{})
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, audit.ActionUpdate, logs[0].Action)
	assert.NotEmpty(t, logs[0].OldData)
	assert.Equal(t, audit.ActionCreate, logs[1].Action)
	assert.Empty(t, logs[1].OldData)
}

func TestCreatePayment_Defaults(t *testing.T) {
	f := newFixture(t, nil)
	emp := f.employee(t, 300000)
	ref := "2024-05"
	other := "2024-06"

	for _, a := range []struct {
		amount int64
		ref    *string
	}{{200, &ref}, {100, &ref}, {50, &other}, {70, nil}} {
		_, err := f.advances.Create(context.Background(), advance.Advance{
			EmployeeID: emp.ID, Amount: decimal.NewFromInt(a.amount), PayrollReference: a.ref,
		})
		require.NoError(t, err)
	}

	got, err := f.svc.CreatePayment(authed(), rh.CreatePaymentRequest{
		EmployeeID:       emp.ID,
		Competencia:      ref,
		Adicionais:       decimal.NewFromInt(100),
		HorasExtras:      decimal.NewFromInt(5),
		ValorHorasExtras: decimal.NewFromInt(150),
		Descontos:        decimal.NewFromInt(250),
	})
	require.NoError(t, err)

	assert.True(t, got.SalarioBase.Equal(decimal.NewFromInt(3000)))
	assert.True(t, got.ValorAdiantamentos.Equal(decimal.NewFromInt(300)))
	assert.True(t, got.TotalBruto.Equal(decimal.NewFromInt(3250)))
	assert.True(t, got.TotalLiquido.Equal(decimal.NewFromInt(2700)))
	assert.Equal(t, rh.PaymentStatusPendente, got.Status)

	_, err = f.svc.CreatePayment(authed(), rh.CreatePaymentRequest{EmployeeID: emp.ID, Competencia: ref})
	assert.ErrorIs(t, err, rh.ErrPaymentAlreadyExists)
}

func TestCreateSalaryHistory(t *testing.T) {
	f := newFixture(t, nil)
	emp := f.employee(t, 100000)

	got, err := f.svc.CreateSalaryHistory(authed(), rh.CreateSalaryHistoryRequest{
		EmployeeID:      emp.ID,
		SalarioAnterior: decimal.NewFromInt(1000),
		NovoSalario:     decimal.NewFromInt(1100),
		DataVigencia:    "2024-03-01",
	})
	require.NoError(t, err)
	assert.True(t, got.PercentualAumento.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, "2024-03-01", got.DataVigencia.Format("2006-01-02"))

	got, err = f.svc.CreateSalaryHistory(authed(), rh.CreateSalaryHistoryRequest{
		EmployeeID:      emp.ID,
		SalarioAnterior: decimal.Zero,
		NovoSalario:     decimal.NewFromInt(500),
		DataVigencia:    "2024-04-01",
	})
	require.NoError(t, err)
	assert.True(t, got.PercentualAumento.IsZero())

	id := emp.ID
	list, err := f.svc.ListSalaryHistory(authed(), &id)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestCreateVacation(t *testing.T) {
	f := newFixture(t, nil)
	emp := f.employee(t, 100000)
	value := decimal.NewFromInt(900)

	got, err := f.svc.CreateVacation(authed(), rh.CreateVacationRequest{
		EmployeeID:              emp.ID,
		PeriodoAquisitivoInicio: "2023-01-01",
		PeriodoAquisitivoFim:    "2023-12-31",
		DiasDireito:             30,
		ValorFerias:             &value,
	})
	require.NoError(t, err)
	require.NotNil(t, got.AdicionalUmTerco)
	assert.True(t, got.AdicionalUmTerco.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, rh.VacationStatusProgramada, got.Status)

	got, err = f.svc.CreateVacation(authed(), rh.CreateVacationRequest{
		EmployeeID:              emp.ID,
		PeriodoAquisitivoInicio: "2024-01-01",
		PeriodoAquisitivoFim:    "2024-12-31",
		DiasDireito:             30,
	})
	require.NoError(t, err)
	assert.Nil(t, got.ValorFerias)
	assert.Nil(t, got.AdicionalUmTerco)

	_, err = f.svc.CreateVacation(authed(), rh.CreateVacationRequest{
		EmployeeID:              emp.ID,
		PeriodoAquisitivoInicio: "2024-01-01",
		PeriodoAquisitivoFim:    "2024-12-31",
		DiasDireito:             10,
		DiasUtilizados:          11,
	})
	var verr validator.ValidationErrors
	assert.ErrorAs(t, err, &verr)
}
