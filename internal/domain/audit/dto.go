package audit

import (
	"time"

	"github.com/gestao-rh/gestao-backend-go/internal/pkg/validator"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

type ListFilter struct {
	Entity   *string
	Action   *string
	EntityID *string
	UserID   *string
	Limit    int
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Entity != nil && !Entity(*f.Entity).IsKnown() {
		errs.Add("entity", "unknown entity")
	}
	if f.Action != nil && !Action(*f.Action).IsValid() {
		errs.Add("action", "must be one of: CREATE UPDATE DELETE LOGIN")
	}
	if f.Limit < 0 {
		errs.Add("limit", "must be greater than or equal to 0")
	}

	return errs.Err()
}

// Normalize applies the default and maximum page size.
func (f *ListFilter) Normalize() {
	if f.Limit == 0 {
		f.Limit = DefaultListLimit
	}
	if f.Limit > MaxListLimit {
		f.Limit = MaxListLimit
	}
}

type AuditLogResponse struct {
	ID        string    `json:"id"`
	Action    Action    `json:"action"`
	Entity    Entity    `json:"entity"`
	EntityID  string    `json:"entityId"`
	OldData   Snapshot  `json:"oldData"`
	NewData   Snapshot  `json:"newData"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToResponse(l AuditLog) AuditLogResponse {
	return AuditLogResponse{
		ID:        l.ID,
		Action:    l.Action,
		Entity:    l.Entity,
		EntityID:  l.EntityID,
		OldData:   l.OldData,
		NewData:   l.NewData,
		UserID:    l.UserID,
		CreatedAt: l.CreatedAt,
	}
}
