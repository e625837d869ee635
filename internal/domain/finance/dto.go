package finance

import (
	"time"

	"github.com/gestao-rh/gestao-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

// ========== TRANSACTION DTOs ==========

type CreateTransactionRequest struct {
	Type          string          `json:"type" validate:"required,oneof=income expense"`
	Category      string          `json:"category" validate:"required,max=80"`
	Description   string          `json:"description" validate:"required,max=255"`
	Amount        decimal.Decimal `json:"amount"`
	Date          string          `json:"date" validate:"required,date"`
	Status        *string         `json:"status,omitempty" validate:"omitempty,oneof=pending paid cancelled"`
	PaymentMethod *string         `json:"paymentMethod,omitempty" validate:"omitempty,max=40"`
	EmployeeID    *string         `json:"employeeId,omitempty" validate:"omitempty,uuid"`
}

func (r *CreateTransactionRequest) Validate() error {
	errs := validator.Struct(r)
	if !r.Amount.IsPositive() {
		errs.Add("amount", "must be greater than 0")
	}
	return errs.Err()
}

type TransactionFilter struct {
	Type   *TransactionType
	Status *TransactionStatus
	From   *time.Time
	To     *time.Time
	Limit  int
}

// Normalize applies the default and maximum page size.
func (f *TransactionFilter) Normalize() {
	if f.Limit <= 0 {
		f.Limit = DefaultListLimit
	}
	if f.Limit > MaxListLimit {
		f.Limit = MaxListLimit
	}
}

// ========== ACCOUNT PAYABLE DTOs ==========

type CreatePayableRequest struct {
	Supplier    string          `json:"supplier" validate:"required,max=200"`
	Description *string         `json:"description,omitempty" validate:"omitempty,max=255"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     string          `json:"dueDate" validate:"required,date"`
}

func (r *CreatePayableRequest) Validate() error {
	errs := validator.Struct(r)
	if !r.Amount.IsPositive() {
		errs.Add("amount", "must be greater than 0")
	}
	return errs.Err()
}

type UpdatePayableRequest struct {
	ID          string           `json:"-"`
	Supplier    *string          `json:"supplier,omitempty" validate:"omitempty,max=200"`
	Description *string          `json:"description,omitempty" validate:"omitempty,max=255"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	DueDate     *string          `json:"dueDate,omitempty" validate:"omitempty,date"`
	Status      *string          `json:"status,omitempty" validate:"omitempty,oneof=pending cancelled"`
}

func (r *UpdatePayableRequest) Validate() error {
	errs := validator.Struct(r)
	if r.Supplier != nil && validator.IsEmpty(*r.Supplier) {
		errs.Add("supplier", "must not be blank")
	}
	if r.Amount != nil && !r.Amount.IsPositive() {
		errs.Add("amount", "must be greater than 0")
	}
	return errs.Err()
}

type PayPayableRequest struct {
	ID            string  `json:"-"`
	PaidAt        *string `json:"paidAt,omitempty" validate:"omitempty,date"`
	PaymentMethod *string `json:"paymentMethod,omitempty" validate:"omitempty,max=40"`
}

func (r *PayPayableRequest) Validate() error {
	return validator.Struct(r).Err()
}

type PayPayableResponse struct {
	Payable     AccountPayable `json:"payable"`
	Transaction Transaction    `json:"transaction"`
}

type PayableFilter struct {
	Status *PayableStatus
}
