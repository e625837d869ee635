package employment

import "context"

type RecordRepository interface {
	Create(ctx context.Context, rec Record) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Record, error)
	Update(ctx context.Context, rec Record) (Record, error)
}

type ContractRepository interface {
	Create(ctx context.Context, c Contract) (Contract, error)
	GetByID(ctx context.Context, id string) (Contract, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Contract, error)
	// Update persists c only if the stored version still equals c.Version-1
	Update(ctx context.Context, c Contract) (Contract, error)
}
