package employee

import (
	"time"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/audit"
)

type Employee struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       *string    `json:"email,omitempty"`
	Position    *string    `json:"position,omitempty"`
	SalaryCents int64      `json:"salary"`
	Active      bool       `json:"active"`
	HireDate    *time.Time `json:"hireDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (Employee) AuditEntity() audit.Entity { return audit.EntityEmployee }
