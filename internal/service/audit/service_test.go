package audit

import (
	"context"
	"testing"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/audit"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/employee"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/rh"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/actor"
	"github.com/gestao-rh/gestao-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userID = "0190a1b2-0000-7000-8000-000000000001"

func newService() audit.AuditService {
	return NewAuditService(memory.NewAuditRepository(memory.NewStore()), NewCodec())
}

func TestRecord_Validation(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	emp := employee.Employee{ID: "e1", Name: "Ana"}

	tests := []struct {
		name  string
		entry audit.Entry
		want  error
	}{
		{"invalid action", audit.Entry{Action: "PATCH", EntityID: "e1", New: emp, UserID: userID}, audit.ErrInvalidAction},
		{"missing actor", audit.Entry{Action: audit.ActionCreate, EntityID: "e1", New: emp}, audit.ErrMissingActor},
		{"missing entity id", audit.Entry{Action: audit.ActionCreate, New: emp, UserID: userID}, audit.ErrMissingEntityID},
		{"no snapshots", audit.Entry{Action: audit.ActionDelete, EntityID: "e1", UserID: userID}, audit.ErrMissingSnapshot},
		{"mixed entities", audit.Entry{Action: audit.ActionUpdate, EntityID: "e1", Old: emp, New: rh.TimeBank{}, UserID: userID}, audit.ErrEntityMismatch},
		{"unknown entity", audit.Entry{Action: audit.ActionCreate, EntityID: "e1", New: audit.RawSnapshot{Entity: "vehicle"}, UserID: userID}, audit.ErrUnknownEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Record(ctx, tt.entry)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRecordAndList_TypedSnapshots(t *testing.T) {
	svc := newService()
	ctx := actor.WithUserID(context.Background(), userID)

	old := employee.Employee{ID: "e1", Name: "Ana", SalaryCents: 100000, Active: true}
	next := old
	next.SalaryCents = 120000

	_, err := svc.Record(ctx, audit.Entry{Action: audit.ActionUpdate, EntityID: "e1", Old: old, New: next, UserID: userID})
	require.NoError(t, err)
	_, err = svc.Record(ctx, audit.Entry{
		Action:   audit.ActionCreate,
		EntityID: "tb1",
		New:      rh.TimeBank{ID: "tb1", EmployeeID: "e1", SaldoHoras: decimal.NewFromInt(6)},
		UserID:   userID,
	})
	require.NoError(t, err)

	logs, err := svc.List(ctx, audit.ListFilter{})
	require.NoError(t, err)
	require.Len(t, logs, 2)

	tb, ok := logs[0].NewData.(rh.TimeBank)
	require.True(t, ok, "got %T", logs[0].NewData)
	assert.True(t, tb.SaldoHoras.Equal(decimal.NewFromInt(6)))
	assert.Nil(t, logs[0].OldData)

	gotOld, ok := logs[1].OldData.(employee.Employee)
	require.True(t, ok)
	assert.Equal(t, int64(100000), gotOld.SalaryCents)
	gotNew, ok := logs[1].NewData.(employee.Employee)
	require.True(t, ok)
	assert.Equal(t, int64(120000), gotNew.SalaryCents)
}

func TestList_Filters(t *testing.T) {
	svc := newService()

	_, err := svc.List(context.Background(), audit.ListFilter{})
	assert.ErrorIs(t, err, actor.ErrNoActor)

	ctx := actor.WithUserID(context.Background(), userID)
	bad := "PATCH"
	_, err = svc.List(ctx, audit.ListFilter{Action: &bad})
	assert.Error(t, err)

	for i := 0; i < 3; i++ {
		_, err := svc.Record(ctx, audit.Entry{Action: audit.ActionCreate, EntityID: "e1", New: employee.Employee{ID: "e1"}, UserID: userID})
		require.NoError(t, err)
	}
	logs, err := svc.List(ctx, audit.ListFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, logs, 2)
}
