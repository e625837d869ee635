package employment

import (
	"time"

	"github.com/gestao-rh/gestao-backend-go/internal/pkg/validator"
)

// ========== RECORD DTOs ==========

type CreateRecordRequest struct {
	EmployeeID string  `json:"-"`
	Position   string  `json:"position" validate:"required,max=120"`
	Department *string `json:"department,omitempty" validate:"omitempty,max=120"`
	StartDate  string  `json:"startDate" validate:"required,date"`
	EndDate    *string `json:"endDate,omitempty" validate:"omitempty,date"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *CreateRecordRequest) Validate() error {
	errs := validator.Struct(r)
	if r.EndDate != nil && !dateRangeOK(r.StartDate, *r.EndDate) {
		errs.Add("endDate", ErrInvalidDateRange.Error())
	}
	return errs.Err()
}

type UpdateRecordRequest struct {
	ID         string  `json:"-"`
	EmployeeID string  `json:"-"`
	Position   *string `json:"position,omitempty" validate:"omitempty,max=120"`
	Department *string `json:"department,omitempty" validate:"omitempty,max=120"`
	StartDate  *string `json:"startDate,omitempty" validate:"omitempty,date"`
	EndDate    *string `json:"endDate,omitempty" validate:"omitempty,date"`
	Status     *string `json:"status,omitempty" validate:"omitempty,oneof=active ended"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *UpdateRecordRequest) Validate() error {
	errs := validator.Struct(r)
	if r.Position != nil && validator.IsEmpty(*r.Position) {
		errs.Add("position", "must not be blank")
	}
	return errs.Err()
}

// Apply copies the set fields onto rec and re-checks the date range.
func (r *UpdateRecordRequest) Apply(rec *Record) error {
	if r.Position != nil {
		rec.Position = *r.Position
	}
	if r.Department != nil {
		rec.Department = r.Department
	}
	if r.StartDate != nil {
		rec.StartDate, _ = validator.IsValidDate(*r.StartDate)
	}
	if r.EndDate != nil {
		d, _ := validator.IsValidDate(*r.EndDate)
		rec.EndDate = &d
	}
	if r.Status != nil {
		rec.Status = Status(*r.Status)
	}
	if r.Notes != nil {
		rec.Notes = r.Notes
	}
	if rec.EndDate != nil && rec.EndDate.Before(rec.StartDate) {
		return validator.ValidationErrors{{Field: "endDate", Message: ErrInvalidDateRange.Error()}}
	}
	return nil
}

// ========== CONTRACT DTOs ==========

type CreateContractRequest struct {
	EmployeeID   string  `json:"-"`
	ContractType string  `json:"contractType" validate:"required,oneof=clt pj estagio temporario"`
	StartDate    string  `json:"startDate" validate:"required,date"`
	EndDate      *string `json:"endDate,omitempty" validate:"omitempty,date"`
	SalaryCents  int64   `json:"salary" validate:"gte=0"`
	WeeklyHours  *int    `json:"weeklyHours,omitempty" validate:"omitempty,gt=0,lte=60"`
	Notes        *string `json:"notes,omitempty"`
}

func (r *CreateContractRequest) Validate() error {
	errs := validator.Struct(r)
	if r.EndDate != nil && !dateRangeOK(r.StartDate, *r.EndDate) {
		errs.Add("endDate", ErrInvalidDateRange.Error())
	}
	return errs.Err()
}

type UpdateContractRequest struct {
	ID           string  `json:"-"`
	EmployeeID   string  `json:"-"`
	ContractType *string `json:"contractType,omitempty" validate:"omitempty,oneof=clt pj estagio temporario"`
	StartDate    *string `json:"startDate,omitempty" validate:"omitempty,date"`
	EndDate      *string `json:"endDate,omitempty" validate:"omitempty,date"`
	SalaryCents  *int64  `json:"salary,omitempty" validate:"omitempty,gte=0"`
	WeeklyHours  *int    `json:"weeklyHours,omitempty" validate:"omitempty,gt=0,lte=60"`
	Status       *string `json:"status,omitempty" validate:"omitempty,oneof=active ended"`
	Notes        *string `json:"notes,omitempty"`
}

func (r *UpdateContractRequest) Validate() error {
	return validator.Struct(r).Err()
}

// Apply copies the set fields onto c and re-checks the date range.
func (r *UpdateContractRequest) Apply(c *Contract) error {
	if r.ContractType != nil {
		c.ContractType = ContractType(*r.ContractType)
	}
	if r.StartDate != nil {
		c.StartDate, _ = validator.IsValidDate(*r.StartDate)
	}
	if r.EndDate != nil {
		d, _ := validator.IsValidDate(*r.EndDate)
		c.EndDate = &d
	}
	if r.SalaryCents != nil {
		c.SalaryCents = *r.SalaryCents
	}
	if r.WeeklyHours != nil {
		c.WeeklyHours = r.WeeklyHours
	}
	if r.Status != nil {
		c.Status = Status(*r.Status)
	}
	if r.Notes != nil {
		c.Notes = r.Notes
	}
	if c.EndDate != nil && c.EndDate.Before(c.StartDate) {
		return validator.ValidationErrors{{Field: "endDate", Message: ErrInvalidDateRange.Error()}}
	}
	return nil
}

func dateRangeOK(start, end string) bool {
	s, okStart := validator.IsValidDate(start)
	e, okEnd := validator.IsValidDate(end)
	if !okStart || !okEnd {
		// format errors are reported by the struct tags
		return true
	}
	return !e.Before(s)
}

// ParseDate parses a date already checked by Validate.
func ParseDate(s string) time.Time {
	d, _ := validator.IsValidDate(s)
	return d
}
