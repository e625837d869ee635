package finance

import (
	"time"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/audit"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusPaid      TransactionStatus = "paid"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

// Categories set by the system when a transaction is created on behalf of another entity
const (
	CategoryAdvance        = "adiantamento"
	CategoryAccountPayable = "contas_a_pagar"
)

// Transaction is a financial movement (income or expense).
type Transaction struct {
	ID               string            `json:"id"`
	Type             TransactionType   `json:"type"`
	Category         string            `json:"category"`
	Description      string            `json:"description"`
	Amount           decimal.Decimal   `json:"amount"`
	Date             time.Time         `json:"date"`
	Status           TransactionStatus `json:"status"`
	PaymentMethod    *string           `json:"paymentMethod,omitempty"`
	EmployeeID       *string           `json:"employeeId,omitempty"`
	AccountPayableID *string           `json:"accountPayableId,omitempty"`
	CreatedBy        string            `json:"createdBy"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

func (Transaction) AuditEntity() audit.Entity { return audit.EntityFinancialTransaction }

type PayableStatus string

const (
	PayableStatusPending   PayableStatus = "pending"
	PayableStatusPaid      PayableStatus = "paid"
	PayableStatusOverdue   PayableStatus = "overdue"
	PayableStatusCancelled PayableStatus = "cancelled"
)

// AccountPayable is an outstanding obligation to a supplier.
type AccountPayable struct {
	ID            string          `json:"id"`
	Supplier      string          `json:"supplier"`
	Description   *string         `json:"description,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       time.Time       `json:"dueDate"`
	Status        PayableStatus   `json:"status"`
	PaidAt        *time.Time      `json:"paidAt,omitempty"`
	TransactionID *string         `json:"transactionId,omitempty"`
	CreatedBy     string          `json:"createdBy"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func (AccountPayable) AuditEntity() audit.Entity { return audit.EntityAccountPayable }

// IsOpen reports whether the payable can still be paid or edited.
func (p AccountPayable) IsOpen() bool {
	return p.Status == PayableStatusPending || p.Status == PayableStatusOverdue
}
