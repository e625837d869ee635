package memory

import (
	"context"
	"time"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/rh"
)

type rhRepository struct {
	store *Store
}

func NewRHRepository(store *Store) rh.RHRepository {
	return &rhRepository{store: store}
}

// ========== PAYMENTS ==========

func (r *rhRepository) CreatePayment(ctx context.Context, p rh.Payment) (rh.Payment, error) {
	err := r.store.do(ctx, func(st *state) error {
		for _, existing := range st.payments {
			if existing.EmployeeID == p.EmployeeID && existing.Competencia == p.Competencia {
				return rh.ErrPaymentAlreadyExists
			}
		}
		p.ID = r.store.newID()
		p.CreatedAt = r.store.now()
		st.payments[p.ID] = p
		return nil
	})
	if err != nil {
		return rh.Payment{}, err
	}
	return p, nil
}

func (r *rhRepository) ListPayments(ctx context.Context, filter rh.PaymentFilter) ([]rh.Payment, error) {
	result := []rh.Payment{}
	err := r.store.do(ctx, func(st *state) error {
		for _, p := range st.payments {
			if filter.EmployeeID != nil && p.EmployeeID != *filter.EmployeeID {
				continue
			}
			if filter.Competencia != nil && p.Competencia != *filter.Competencia {
				continue
			}
			result = append(result, p)
		}
		return nil
	})
	sortNewestFirst(result,
		func(p rh.Payment) time.Time { return p.CreatedAt },
		func(p rh.Payment) string { return p.ID })
	return result, err
}

// ========== THIRTEENTH SALARY ==========

func (r *rhRepository) CreateThirteenth(ctx context.Context, t rh.ThirteenthSalary) (rh.ThirteenthSalary, error) {
	err := r.store.do(ctx, func(st *state) error {
		for _, existing := range st.thirteenth {
			if existing.EmployeeID == t.EmployeeID && existing.AnoReferencia == t.AnoReferencia {
				return rh.ErrThirteenthAlreadyExists
			}
		}
		t.ID = r.store.newID()
		t.CreatedAt = r.store.now()
		st.thirteenth[t.ID] = t
		return nil
	})
	if err != nil {
		return rh.ThirteenthSalary{}, err
	}
	return t, nil
}

func (r *rhRepository) ListThirteenth(ctx context.Context, filter rh.ThirteenthFilter) ([]rh.ThirteenthSalary, error) {
	result := []rh.ThirteenthSalary{}
	err := r.store.do(ctx, func(st *state) error {
		for _, t := range st.thirteenth {
			if filter.EmployeeID != nil && t.EmployeeID != *filter.EmployeeID {
				continue
			}
			if filter.AnoReferencia != nil && t.AnoReferencia != *filter.AnoReferencia {
				continue
			}
			result = append(result, t)
		}
		return nil
	})
	sortNewestFirst(result,
		func(t rh.ThirteenthSalary) time.Time { return t.CreatedAt },
		func(t rh.ThirteenthSalary) string { return t.ID })
	return result, err
}

// ========== TIME BANK ==========

// GetTimeBankForUpdate needs no extra locking here: transactions already
// hold the store lock.
func (r *rhRepository) GetTimeBankForUpdate(ctx context.Context, employeeID string) (rh.TimeBank, error) {
	return r.GetTimeBank(ctx, employeeID)
}

func (r *rhRepository) GetTimeBank(ctx context.Context, employeeID string) (rh.TimeBank, error) {
	var tb rh.TimeBank
	err := r.store.do(ctx, func(st *state) error {
		found, ok := st.timeBanks[employeeID]
		if !ok {
			return rh.ErrTimeBankNotFound
		}
		tb = found
		return nil
	})
	return tb, err
}

func (r *rhRepository) UpsertTimeBank(ctx context.Context, tb rh.TimeBank) (rh.TimeBank, error) {
	err := r.store.do(ctx, func(st *state) error {
		now := r.store.now()
		if existing, ok := st.timeBanks[tb.EmployeeID]; ok {
			tb.ID = existing.ID
			tb.CreatedAt = existing.CreatedAt
		} else {
			tb.ID = r.store.newID()
			tb.CreatedAt = now
		}
		tb.UpdatedAt = now
		st.timeBanks[tb.EmployeeID] = tb
		return nil
	})
	if err != nil {
		return rh.TimeBank{}, err
	}
	return tb, nil
}

// ========== SALARY HISTORY ==========

func (r *rhRepository) CreateSalaryHistory(ctx context.Context, h rh.SalaryHistory) (rh.SalaryHistory, error) {
	err := r.store.do(ctx, func(st *state) error {
		h.ID = r.store.newID()
		h.CreatedAt = r.store.now()
		st.salaryHistory[h.ID] = h
		return nil
	})
	if err != nil {
		return rh.SalaryHistory{}, err
	}
	return h, nil
}

func (r *rhRepository) ListSalaryHistory(ctx context.Context, employeeID *string) ([]rh.SalaryHistory, error) {
	result := []rh.SalaryHistory{}
	err := r.store.do(ctx, func(st *state) error {
		for _, h := range st.salaryHistory {
			if employeeID != nil && h.EmployeeID != *employeeID {
				continue
			}
			result = append(result, h)
		}
		return nil
	})
	sortNewestFirst(result,
		func(h rh.SalaryHistory) time.Time { return h.DataVigencia },
		func(h rh.SalaryHistory) string { return h.ID })
	return result, err
}

// ========== VACATIONS ==========

func (r *rhRepository) CreateVacation(ctx context.Context, v rh.Vacation) (rh.Vacation, error) {
	err := r.store.do(ctx, func(st *state) error {
		v.ID = r.store.newID()
		v.CreatedAt = r.store.now()
		st.vacations[v.ID] = v
		return nil
	})
	if err != nil {
		return rh.Vacation{}, err
	}
	return v, nil
}

func (r *rhRepository) ListVacations(ctx context.Context, employeeID *string) ([]rh.Vacation, error) {
	result := []rh.Vacation{}
	err := r.store.do(ctx, func(st *state) error {
		for _, v := range st.vacations {
			if employeeID != nil && v.EmployeeID != *employeeID {
				continue
			}
			result = append(result, v)
		}
		return nil
	})
	sortNewestFirst(result,
		func(v rh.Vacation) time.Time { return v.PeriodoAquisitivoInicio },
		func(v rh.Vacation) string { return v.ID })
	return result, err
}
