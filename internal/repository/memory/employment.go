package memory

import (
	"context"
	"time"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/employment"
)

type recordRepository struct {
	store *Store
}

func NewRecordRepository(store *Store) employment.RecordRepository {
	return &recordRepository{store: store}
}

func (r *recordRepository) Create(ctx context.Context, rec employment.Record) (employment.Record, error) {
	err := r.store.do(ctx, func(st *state) error {
		now := r.store.now()
		rec.ID = r.store.newID()
		rec.CreatedAt = now
		rec.UpdatedAt = now
		st.records[rec.ID] = rec
		return nil
	})
	if err != nil {
		return employment.Record{}, err
	}
	return rec, nil
}

func (r *recordRepository) GetByID(ctx context.Context, id string) (employment.Record, error) {
	var rec employment.Record
	err := r.store.do(ctx, func(st *state) error {
		found, ok := st.records[id]
		if !ok {
			return employment.ErrRecordNotFound
		}
		rec = found
		return nil
	})
	return rec, err
}

func (r *recordRepository) ListByEmployee(ctx context.Context, employeeID string) ([]employment.Record, error) {
	result := []employment.Record{}
	err := r.store.do(ctx, func(st *state) error {
		for _, rec := range st.records {
			if rec.EmployeeID == employeeID {
				result = append(result, rec)
			}
		}
		return nil
	})
	sortNewestFirst(result,
		func(rec employment.Record) time.Time { return rec.StartDate },
		func(rec employment.Record) string { return rec.ID })
	return result, err
}

func (r *recordRepository) Update(ctx context.Context, rec employment.Record) (employment.Record, error) {
	err := r.store.do(ctx, func(st *state) error {
		old, ok := st.records[rec.ID]
		if !ok {
			return employment.ErrRecordNotFound
		}
		rec.CreatedAt = old.CreatedAt
		rec.UpdatedAt = r.store.now()
		st.records[rec.ID] = rec
		return nil
	})
	if err != nil {
		return employment.Record{}, err
	}
	return rec, nil
}

type contractRepository struct {
	store *Store
}

func NewContractRepository(store *Store) employment.ContractRepository {
	return &contractRepository{store: store}
}

func (r *contractRepository) Create(ctx context.Context, c employment.Contract) (employment.Contract, error) {
	err := r.store.do(ctx, func(st *state) error {
		now := r.store.now()
		c.ID = r.store.newID()
		if c.Version == 0 {
			c.Version = 1
		}
		c.CreatedAt = now
		c.UpdatedAt = now
		st.contracts[c.ID] = c
		return nil
	})
	if err != nil {
		return employment.Contract{}, err
	}
	return c, nil
}

func (r *contractRepository) GetByID(ctx context.Context, id string) (employment.Contract, error) {
	var c employment.Contract
	err := r.store.do(ctx, func(st *state) error {
		found, ok := st.contracts[id]
		if !ok {
			return employment.ErrContractNotFound
		}
		c = found
		return nil
	})
	return c, err
}

func (r *contractRepository) ListByEmployee(ctx context.Context, employeeID string) ([]employment.Contract, error) {
	result := []employment.Contract{}
	err := r.store.do(ctx, func(st *state) error {
		for _, c := range st.contracts {
			if c.EmployeeID == employeeID {
				result = append(result, c)
			}
		}
		return nil
	})
	sortNewestFirst(result,
		func(c employment.Contract) time.Time { return c.StartDate },
		func(c employment.Contract) string { return c.ID })
	return result, err
}

func (r *contractRepository) Update(ctx context.Context, c employment.Contract) (employment.Contract, error) {
	err := r.store.do(ctx, func(st *state) error {
		old, ok := st.contracts[c.ID]
		if !ok {
			return employment.ErrContractNotFound
		}
		if old.Version != c.Version-1 {
			return employment.ErrVersionConflict
		}
		c.CreatedAt = old.CreatedAt
		c.UpdatedAt = r.store.now()
		st.contracts[c.ID] = c
		return nil
	})
	if err != nil {
		return employment.Contract{}, err
	}
	return c, nil
}
