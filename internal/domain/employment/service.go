package employment

import "context"

type EmploymentService interface {
	CreateRecord(ctx context.Context, req CreateRecordRequest) (Record, error)
	ListRecords(ctx context.Context, employeeID string) ([]Record, error)
	UpdateRecord(ctx context.Context, req UpdateRecordRequest) (Record, error)
	CancelRecord(ctx context.Context, employeeID, id string) error

	CreateContract(ctx context.Context, req CreateContractRequest) (Contract, error)
	ListContracts(ctx context.Context, employeeID string) ([]Contract, error)
	UpdateContract(ctx context.Context, req UpdateContractRequest) (Contract, error)
	CancelContract(ctx context.Context, employeeID, id string) error
}
