package finance

import "context"

type FinanceService interface {
	CreateTransaction(ctx context.Context, req CreateTransactionRequest) (Transaction, error)
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error

	CreatePayable(ctx context.Context, req CreatePayableRequest) (AccountPayable, error)
	ListPayables(ctx context.Context, filter PayableFilter) ([]AccountPayable, error)
	UpdatePayable(ctx context.Context, req UpdatePayableRequest) (AccountPayable, error)
	PayPayable(ctx context.Context, req PayPayableRequest) (PayPayableResponse, error)
	DeletePayable(ctx context.Context, id string) error

	MarkOverduePayables(ctx context.Context) (int64, error)
}
