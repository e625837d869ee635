package rh

import "context"

// RHRepository defines data access for payroll entries.
type RHRepository interface {
	// Payments
	CreatePayment(ctx context.Context, p Payment) (Payment, error)
	ListPayments(ctx context.Context, filter PaymentFilter) ([]Payment, error)

	// Thirteenth salary
	CreateThirteenth(ctx context.Context, t ThirteenthSalary) (ThirteenthSalary, error)
	ListThirteenth(ctx context.Context, filter ThirteenthFilter) ([]ThirteenthSalary, error)

	// Time bank. GetTimeBankForUpdate locks the row until the surrounding transaction ends.
	GetTimeBankForUpdate(ctx context.Context, employeeID string) (TimeBank, error)
	GetTimeBank(ctx context.Context, employeeID string) (TimeBank, error)
	UpsertTimeBank(ctx context.Context, tb TimeBank) (TimeBank, error)

	// Salary history
	CreateSalaryHistory(ctx context.Context, h SalaryHistory) (SalaryHistory, error)
	ListSalaryHistory(ctx context.Context, employeeID *string) ([]SalaryHistory, error)

	// Vacations
	CreateVacation(ctx context.Context, v Vacation) (Vacation, error)
	ListVacations(ctx context.Context, employeeID *string) ([]Vacation, error)
}
