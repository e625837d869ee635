package employee

import (
	"strings"
	"time"

	"github.com/gestao-rh/gestao-backend-go/internal/pkg/money"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Position    *string `json:"position,omitempty" validate:"omitempty,max=120"`
	SalaryCents int64   `json:"salary" validate:"gte=0"`
	HireDate    *string `json:"hireDate,omitempty" validate:"omitempty,date"`
}

func (r *CreateEmployeeRequest) Validate() error {
	errs := validator.Struct(r)
	if validator.IsEmpty(r.Name) {
		errs.Add("name", "is required")
	}
	return errs.Err()
}

type UpdateEmployeeRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Position    *string `json:"position,omitempty" validate:"omitempty,max=120"`
	SalaryCents *int64  `json:"salary,omitempty" validate:"omitempty,gte=0"`
	Active      *bool   `json:"active,omitempty"`
	HireDate    *string `json:"hireDate,omitempty" validate:"omitempty,date"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	errs := validator.Struct(r)
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs.Add("name", "must not be blank")
	}
	return errs.Err()
}

// Apply copies the set fields onto emp.
func (r *UpdateEmployeeRequest) Apply(emp *Employee) {
	if r.Name != nil {
		emp.Name = strings.TrimSpace(*r.Name)
	}
	if r.Email != nil {
		emp.Email = r.Email
	}
	if r.Position != nil {
		emp.Position = r.Position
	}
	if r.SalaryCents != nil {
		emp.SalaryCents = *r.SalaryCents
	}
	if r.Active != nil {
		emp.Active = *r.Active
	}
	if r.HireDate != nil {
		if d, ok := validator.IsValidDate(*r.HireDate); ok {
			emp.HireDate = &d
		}
	}
}

type EmployeeFilter struct {
	Active *bool
}

type EmployeeResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Email        *string         `json:"email,omitempty"`
	Position     *string         `json:"position,omitempty"`
	SalaryCents  int64           `json:"salary"`
	SalaryAmount decimal.Decimal `json:"salaryAmount"`
	Active       bool            `json:"active"`
	HireDate     *string         `json:"hireDate,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func ToResponse(e Employee) EmployeeResponse {
	var hireDate *string
	if e.HireDate != nil {
		s := e.HireDate.Format("2006-01-02")
		hireDate = &s
	}
	return EmployeeResponse{
		ID:           e.ID,
		Name:         e.Name,
		Email:        e.Email,
		Position:     e.Position,
		SalaryCents:  e.SalaryCents,
		SalaryAmount: money.FromCents(e.SalaryCents),
		Active:       e.Active,
		HireDate:     hireDate,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
