package employment

import (
	"context"
	"testing"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/audit"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/employee"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/employment"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/actor"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/validator"
	"github.com/gestao-rh/gestao-backend-go/internal/repository/memory"
	auditsvc "github.com/gestao-rh/gestao-backend-go/internal/service/audit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (employment.EmploymentService, employee.Employee, audit.AuditRepository) {
	t.Helper()
	store := memory.NewStore()
	employees := memory.NewEmployeeRepository(store)
	audits := memory.NewAuditRepository(store)
	svc := NewEmploymentService(
		memory.NewTransactor(store),
		memory.NewRecordRepository(store),
		memory.NewContractRepository(store),
		employees,
		auditsvc.NewAuditService(audits, auditsvc.NewCodec()),
	)
	emp, err := employees.Create(context.Background(), employee.Employee{Name: "Carlos", Active: true})
	require.NoError(t, err)
	return svc, emp, audits
}

func authed() context.Context {
	return actor.WithUserID(context.Background(), "0190a1b2-0000-7000-8000-000000000001")
}

func strPtr(s string) *string { return &s }

func TestContractLifecycle(t *testing.T) {
	svc, emp, audits := setup(t)
	ctx := authed()

	c, err := svc.CreateContract(ctx, employment.CreateContractRequest{
		EmployeeID: emp.ID, ContractType: "clt", StartDate: "2024-01-01", SalaryCents: 350000,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, c.Version)
	assert.Equal(t, employment.StatusActive, c.Status)

	salary := int64(380000)
	updated, err := svc.UpdateContract(ctx, employment.UpdateContractRequest{
		ID: c.ID, EmployeeID: emp.ID, SalaryCents: &salary,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Version)
	assert.Equal(t, salary, updated.SalaryCents)

	require.NoError(t, svc.CancelContract(ctx, emp.ID, c.ID))

	list, err := svc.ListContracts(ctx, emp.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, employment.StatusCancelled, list[0].Status)
	assert.Equal(t, 3, list[0].Version)

	err = svc.CancelContract(ctx, emp.ID, c.ID)
	assert.ErrorIs(t, err, employment.ErrAlreadyCancelled)

	entity := string(audit.EntityEmployeeContract)
	logs, err := audits.List(context.Background(), audit.ListFilter{Entity: &entity})
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, audit.ActionDelete, logs[0].Action)
	assert.Equal(t, audit.ActionUpdate, logs[1].Action)
	assert.Equal(t, audit.ActionCreate, logs[2].Action)
}

func TestRecordLifecycle(t *testing.T) {
	svc, emp, _ := setup(t)
	ctx := authed()

	rec, err := svc.CreateRecord(ctx, employment.CreateRecordRequest{
		EmployeeID: emp.ID, Position: "Analista", StartDate: "2023-02-01",
	})
	require.NoError(t, err)
	assert.Equal(t, employment.StatusActive, rec.Status)

	_, err = svc.UpdateRecord(ctx, employment.UpdateRecordRequest{
		ID: rec.ID, EmployeeID: emp.ID, EndDate: strPtr("2023-01-01"),
	})
	var verr validator.ValidationErrors
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.ToMap(), "endDate")

	updated, err := svc.UpdateRecord(ctx, employment.UpdateRecordRequest{
		ID: rec.ID, EmployeeID: emp.ID, Position: strPtr("Coordenador"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Coordenador", updated.Position)

	err = svc.CancelRecord(ctx, "0190a1b2-0000-7000-8000-0000000000ff", rec.ID)
	assert.ErrorIs(t, err, employment.ErrRecordNotFound)

	require.NoError(t, svc.CancelRecord(ctx, emp.ID, rec.ID))
	list, err := svc.ListRecords(ctx, emp.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, employment.StatusCancelled, list[0].Status)

	_, err = svc.CreateRecord(ctx, employment.CreateRecordRequest{
		EmployeeID: emp.ID, Position: "X", StartDate: "2024-05-01", EndDate: strPtr("2024-04-01"),
	})
	assert.ErrorAs(t, err, &verr)
}
