package memory

import (
	"context"
	"time"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/advance"
	"github.com/shopspring/decimal"
)

type advanceRepository struct {
	store *Store
}

func NewAdvanceRepository(store *Store) advance.AdvanceRepository {
	return &advanceRepository{store: store}
}

func (r *advanceRepository) Create(ctx context.Context, adv advance.Advance) (advance.Advance, error) {
	err := r.store.do(ctx, func(st *state) error {
		adv.ID = r.store.newID()
		adv.CreatedAt = r.store.now()
		st.advances[adv.ID] = adv
		return nil
	})
	if err != nil {
		return advance.Advance{}, err
	}
	return adv, nil
}

func (r *advanceRepository) GetByID(ctx context.Context, id string) (advance.Advance, error) {
	var adv advance.Advance
	err := r.store.do(ctx, func(st *state) error {
		found, ok := st.advances[id]
		if !ok {
			return advance.ErrAdvanceNotFound
		}
		adv = found
		return nil
	})
	return adv, err
}

func (r *advanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]advance.Advance, error) {
	result := []advance.Advance{}
	err := r.store.do(ctx, func(st *state) error {
		for _, a := range st.advances {
			if a.EmployeeID == employeeID {
				result = append(result, a)
			}
		}
		return nil
	})
	sortNewestFirst(result,
		func(a advance.Advance) time.Time { return a.Date },
		func(a advance.Advance) string { return a.ID })
	return result, err
}

func (r *advanceRepository) SumByPayrollReference(ctx context.Context, employeeID string, competencia string) (decimal.Decimal, error) {
	total := decimal.Zero
	err := r.store.do(ctx, func(st *state) error {
		for _, a := range st.advances {
			if a.EmployeeID == employeeID && a.PayrollReference != nil && *a.PayrollReference == competencia {
				total = total.Add(a.Amount)
			}
		}
		return nil
	})
	return total, err
}

func (r *advanceRepository) Delete(ctx context.Context, id string) error {
	return r.store.do(ctx, func(st *state) error {
		if _, ok := st.advances[id]; !ok {
			return advance.ErrAdvanceNotFound
		}
		delete(st.advances, id)
		return nil
	})
}
