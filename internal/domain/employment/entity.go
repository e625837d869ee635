package employment

import (
	"time"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/audit"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusEnded     Status = "ended"
	StatusCancelled Status = "cancelled"
)

// Record is one entry of an employee's work history.
type Record struct {
	ID         string     `json:"id"`
	EmployeeID string     `json:"employeeId"`
	Position   string     `json:"position"`
	Department *string    `json:"department,omitempty"`
	StartDate  time.Time  `json:"startDate"`
	EndDate    *time.Time `json:"endDate,omitempty"`
	Status     Status     `json:"status"`
	Notes      *string    `json:"notes,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

func (Record) AuditEntity() audit.Entity { return audit.EntityEmploymentRecord }

type ContractType string

const (
	ContractTypeCLT        ContractType = "clt"
	ContractTypePJ         ContractType = "pj"
	ContractTypeEstagio    ContractType = "estagio"
	ContractTypeTemporario ContractType = "temporario"
)

// Contract is versioned: every update bumps Version.
type Contract struct {
	ID           string       `json:"id"`
	EmployeeID   string       `json:"employeeId"`
	ContractType ContractType `json:"contractType"`
	StartDate    time.Time    `json:"startDate"`
	EndDate      *time.Time   `json:"endDate,omitempty"`
	SalaryCents  int64        `json:"salary"`
	WeeklyHours  *int         `json:"weeklyHours,omitempty"`
	Version      int          `json:"version"`
	Status       Status       `json:"status"`
	Notes        *string      `json:"notes,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

func (Contract) AuditEntity() audit.Entity { return audit.EntityEmployeeContract }
