package memory

import (
	"context"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/audit"
)

type auditRepository struct {
	store *Store
}

func NewAuditRepository(store *Store) audit.AuditRepository {
	return &auditRepository{store: store}
}

// Create appends to the log. Existing entries are never touched.
func (r *auditRepository) Create(ctx context.Context, log audit.StoredLog) (audit.StoredLog, error) {
	err := r.store.do(ctx, func(st *state) error {
		log.ID = r.store.newID()
		log.CreatedAt = r.store.now()
		st.auditLogs = append(st.auditLogs, log)
		return nil
	})
	if err != nil {
		return audit.StoredLog{}, err
	}
	return log, nil
}

// List walks the log backwards so results are newest first.
func (r *auditRepository) List(ctx context.Context, filter audit.ListFilter) ([]audit.StoredLog, error) {
	result := []audit.StoredLog{}
	err := r.store.do(ctx, func(st *state) error {
		for i := len(st.auditLogs) - 1; i >= 0; i-- {
			l := st.auditLogs[i]
			if filter.Entity != nil && string(l.Entity) != *filter.Entity {
				continue
			}
			if filter.Action != nil && string(l.Action) != *filter.Action {
				continue
			}
			if filter.EntityID != nil && l.EntityID != *filter.EntityID {
				continue
			}
			if filter.UserID != nil && l.UserID != *filter.UserID {
				continue
			}
			result = append(result, l)
			if filter.Limit > 0 && len(result) >= filter.Limit {
				break
			}
		}
		return nil
	})
	return result, err
}
