package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/audit"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/database"
)

type auditRepositoryImpl struct {
	db *database.DB
}

func NewAuditRepository(db *database.DB) audit.AuditRepository {
	return &auditRepositoryImpl{db: db}
}

// Create implements audit.AuditRepository.
func (r *auditRepositoryImpl) Create(ctx context.Context, log audit.StoredLog) (audit.StoredLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO audit_logs (action, entity, entity_id, old_data, new_data, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		log.Action, log.Entity, log.EntityID, nullableJSON(log.OldData), nullableJSON(log.NewData), log.UserID,
	).Scan(&log.ID, &log.CreatedAt)
	if err != nil {
		return audit.StoredLog{}, fmt.Errorf("failed to insert audit log: %w", err)
	}
	return log, nil
}

// List implements audit.AuditRepository.
func (r *auditRepositoryImpl) List(ctx context.Context, filter audit.ListFilter) ([]audit.StoredLog, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{}
	args := []interface{}{}
	argIndex := 1

	add := func(column string, value *string) {
		if value == nil {
			return
		}
		conditions = append(conditions, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, *value)
		argIndex++
	}
	add("entity", filter.Entity)
	add("action", filter.Action)
	add("entity_id", filter.EntityID)
	add("user_id", filter.UserID)

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	limitClause := ""
	if filter.Limit > 0 {
		limitClause = fmt.Sprintf("LIMIT $%d", argIndex)
		args = append(args, filter.Limit)
	}

	query := fmt.Sprintf(`
		SELECT id, action, entity, entity_id, old_data, new_data, user_id, created_at
		FROM audit_logs
		%s
		ORDER BY created_at DESC, id DESC
		%s
	`, whereClause, limitClause)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	defer rows.Close()

	logs := []audit.StoredLog{}
	for rows.Next() {
		var l audit.StoredLog
		if err := rows.Scan(
			&l.ID, &l.Action, &l.Entity, &l.EntityID, &l.OldData, &l.NewData, &l.UserID, &l.CreatedAt,
		); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return logs, nil
}

// nullableJSON stores an absent snapshot as SQL NULL rather than JSON null.
func nullableJSON(data []byte) interface{} {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	return string(data)
}
