package audit

import "context"

// AuditRepository only inserts and reads. There is no update or delete.
type AuditRepository interface {
	Create(ctx context.Context, log StoredLog) (StoredLog, error)
	List(ctx context.Context, filter ListFilter) ([]StoredLog, error)
}
