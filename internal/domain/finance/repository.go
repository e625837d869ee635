package finance

import (
	"context"
	"time"
)

type TransactionRepository interface {
	Create(ctx context.Context, tx Transaction) (Transaction, error)
	GetByID(ctx context.Context, id string) (Transaction, error)
	List(ctx context.Context, filter TransactionFilter) ([]Transaction, error)
	Delete(ctx context.Context, id string) error
}

type AccountPayableRepository interface {
	Create(ctx context.Context, payable AccountPayable) (AccountPayable, error)
	GetByID(ctx context.Context, id string) (AccountPayable, error)
	GetByIDForUpdate(ctx context.Context, id string) (AccountPayable, error)
	List(ctx context.Context, filter PayableFilter) ([]AccountPayable, error)
	Update(ctx context.Context, payable AccountPayable) (AccountPayable, error)
	Delete(ctx context.Context, id string) error
	// MarkOverdue flips pending payables due before the given day to overdue
	MarkOverdue(ctx context.Context, before time.Time) (int64, error)
}
