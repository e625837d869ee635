package advance

import (
	"context"

	"github.com/shopspring/decimal"
)

type AdvanceRepository interface {
	Create(ctx context.Context, adv Advance) (Advance, error)
	GetByID(ctx context.Context, id string) (Advance, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Advance, error)
	// SumByPayrollReference totals the advances of an employee tied to a pay period
	SumByPayrollReference(ctx context.Context, employeeID string, competencia string) (decimal.Decimal, error)
	Delete(ctx context.Context, id string) error
}
