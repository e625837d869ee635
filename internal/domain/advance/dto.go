package advance

import (
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateAdvanceRequest struct {
	EmployeeID       string          `json:"-"`
	Amount           decimal.Decimal `json:"amount"`
	Date             string          `json:"date" validate:"required,date"`
	Note             *string         `json:"note,omitempty" validate:"omitempty,max=255"`
	PayrollReference *string         `json:"payrollReference,omitempty" validate:"omitempty,competencia"`
	PaymentMethod    *string         `json:"paymentMethod,omitempty" validate:"omitempty,max=40"`
}

func (r *CreateAdvanceRequest) Validate() error {
	errs := validator.Struct(r)
	if !r.Amount.IsPositive() {
		errs.Add("amount", "must be greater than 0")
	}
	return errs.Err()
}
