package rh

import "context"

type RHService interface {
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (Payment, error)
	ListPayments(ctx context.Context, filter PaymentFilter) ([]Payment, error)

	CreateThirteenth(ctx context.Context, req CreateThirteenthRequest) (ThirteenthSalary, error)
	ListThirteenth(ctx context.Context, filter ThirteenthFilter) ([]ThirteenthSalary, error)

	// ApplyTimeBank creates or updates the employee's balance with the given deltas
	ApplyTimeBank(ctx context.Context, req TimeBankRequest) (TimeBank, error)
	GetTimeBank(ctx context.Context, employeeID string) (TimeBank, error)

	CreateSalaryHistory(ctx context.Context, req CreateSalaryHistoryRequest) (SalaryHistory, error)
	ListSalaryHistory(ctx context.Context, employeeID *string) ([]SalaryHistory, error)

	CreateVacation(ctx context.Context, req CreateVacationRequest) (Vacation, error)
	ListVacations(ctx context.Context, employeeID *string) ([]Vacation, error)
}
