package advance

import (
	"time"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/audit"
	"github.com/shopspring/decimal"
)

// Advance is a salary advance paid to an employee. It always has a paired
// expense transaction created in the same database transaction.
type Advance struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employeeId"`
	Amount           decimal.Decimal `json:"amount"`
	Date             time.Time       `json:"date"`
	Note             *string         `json:"note,omitempty"`
	PayrollReference *string         `json:"payrollReference,omitempty"`
	PaymentMethod    *string         `json:"paymentMethod,omitempty"`
	TransactionID    *string         `json:"transactionId,omitempty"`
	CreatedBy        string          `json:"createdBy"`
	CreatedAt        time.Time       `json:"createdAt"`
}

func (Advance) AuditEntity() audit.Entity { return audit.EntityEmployeeAdvance }
