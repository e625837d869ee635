package audit

import "context"

// Recorder persists audit entries. Callers run it inside the transaction of
// the mutation being recorded so both commit or neither does.
type Recorder interface {
	Record(ctx context.Context, entry Entry) (AuditLog, error)
}

type AuditService interface {
	Recorder
	List(ctx context.Context, filter ListFilter) ([]AuditLogResponse, error)
}
