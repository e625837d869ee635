package memory

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/finance"
)

type transactionRepository struct {
	store *Store
}

func NewTransactionRepository(store *Store) finance.TransactionRepository {
	return &transactionRepository{store: store}
}

func (r *transactionRepository) Create(ctx context.Context, tx finance.Transaction) (finance.Transaction, error) {
	err := r.store.do(ctx, func(st *state) error {
		now := r.store.now()
		tx.ID = r.store.newID()
		tx.CreatedAt = now
		tx.UpdatedAt = now
		st.transactions[tx.ID] = tx
		return nil
	})
	if err != nil {
		return finance.Transaction{}, err
	}
	return tx, nil
}

func (r *transactionRepository) GetByID(ctx context.Context, id string) (finance.Transaction, error) {
	var tx finance.Transaction
	err := r.store.do(ctx, func(st *state) error {
		found, ok := st.transactions[id]
		if !ok {
			return finance.ErrTransactionNotFound
		}
		tx = found
		return nil
	})
	return tx, err
}

func (r *transactionRepository) List(ctx context.Context, filter finance.TransactionFilter) ([]finance.Transaction, error) {
	result := []finance.Transaction{}
	err := r.store.do(ctx, func(st *state) error {
		for _, tx := range st.transactions {
			if filter.Type != nil && tx.Type != *filter.Type {
				continue
			}
			if filter.Status != nil && tx.Status != *filter.Status {
				continue
			}
			if filter.From != nil && tx.Date.Before(*filter.From) {
				continue
			}
			if filter.To != nil && tx.Date.After(*filter.To) {
				continue
			}
			result = append(result, tx)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortNewestFirst(result,
		func(tx finance.Transaction) time.Time { return tx.Date },
		func(tx finance.Transaction) string { return tx.ID })
	if filter.Limit > 0 && len(result) > filter.Limit {
		result = result[:filter.Limit]
	}
	return result, nil
}

func (r *transactionRepository) Delete(ctx context.Context, id string) error {
	return r.store.do(ctx, func(st *state) error {
		if _, ok := st.transactions[id]; !ok {
			return finance.ErrTransactionNotFound
		}
		delete(st.transactions, id)
		return nil
	})
}

type accountPayableRepository struct {
	store *Store
}

func NewAccountPayableRepository(store *Store) finance.AccountPayableRepository {
	return &accountPayableRepository{store: store}
}

func (r *accountPayableRepository) Create(ctx context.Context, payable finance.AccountPayable) (finance.AccountPayable, error) {
	err := r.store.do(ctx, func(st *state) error {
		now := r.store.now()
		payable.ID = r.store.newID()
		payable.CreatedAt = now
		payable.UpdatedAt = now
		st.payables[payable.ID] = payable
		return nil
	})
	if err != nil {
		return finance.AccountPayable{}, err
	}
	return payable, nil
}

func (r *accountPayableRepository) GetByID(ctx context.Context, id string) (finance.AccountPayable, error) {
	var payable finance.AccountPayable
	err := r.store.do(ctx, func(st *state) error {
		found, ok := st.payables[id]
		if !ok {
			return finance.ErrAccountPayableNotFound
		}
		payable = found
		return nil
	})
	return payable, err
}

func (r *accountPayableRepository) GetByIDForUpdate(ctx context.Context, id string) (finance.AccountPayable, error) {
	return r.GetByID(ctx, id)
}

func (r *accountPayableRepository) List(ctx context.Context, filter finance.PayableFilter) ([]finance.AccountPayable, error) {
	result := []finance.AccountPayable{}
	err := r.store.do(ctx, func(st *state) error {
		for _, p := range st.payables {
			if filter.Status != nil && p.Status != *filter.Status {
				continue
			}
			result = append(result, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(result, func(a, b finance.AccountPayable) int {
		if c := a.DueDate.Compare(b.DueDate); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return result, nil
}

func (r *accountPayableRepository) Update(ctx context.Context, payable finance.AccountPayable) (finance.AccountPayable, error) {
	err := r.store.do(ctx, func(st *state) error {
		old, ok := st.payables[payable.ID]
		if !ok {
			return finance.ErrAccountPayableNotFound
		}
		payable.CreatedAt = old.CreatedAt
		payable.UpdatedAt = r.store.now()
		st.payables[payable.ID] = payable
		return nil
	})
	if err != nil {
		return finance.AccountPayable{}, err
	}
	return payable, nil
}

func (r *accountPayableRepository) Delete(ctx context.Context, id string) error {
	return r.store.do(ctx, func(st *state) error {
		if _, ok := st.payables[id]; !ok {
			return finance.ErrAccountPayableNotFound
		}
		delete(st.payables, id)
		return nil
	})
}

func (r *accountPayableRepository) MarkOverdue(ctx context.Context, before time.Time) (int64, error) {
	var n int64
	err := r.store.do(ctx, func(st *state) error {
		now := r.store.now()
		for id, p := range st.payables {
			if p.Status == finance.PayableStatusPending && p.DueDate.Before(before) {
				p.Status = finance.PayableStatusOverdue
				p.UpdatedAt = now
				st.payables[id] = p
				n++
			}
		}
		return nil
	})
	return n, err
}
