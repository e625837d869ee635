package user

import (
	"time"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/audit"
)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash *string   `json:"-"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (User) AuditEntity() audit.Entity { return audit.EntityUser }

// LoginEvent is the audit snapshot written on a successful login.
type LoginEvent struct {
	Email     string `json:"email"`
	IP        string `json:"ip,omitempty"`
	UserAgent string `json:"userAgent,omitempty"`
}

func (LoginEvent) AuditEntity() audit.Entity { return audit.EntityUser }
