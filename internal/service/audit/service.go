package audit

import (
	"context"
	"fmt"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/audit"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/actor"
)

type AuditServiceImpl struct {
	auditRepo audit.AuditRepository
	codec     *audit.Codec
}

func NewAuditService(auditRepo audit.AuditRepository, codec *audit.Codec) audit.AuditService {
	return &AuditServiceImpl{
		auditRepo: auditRepo,
		codec:     codec,
	}
}

// Record implements audit.Recorder.
// It writes through the querier bound to ctx, so inside a transaction the
// audit row commits or rolls back with the mutation.
func (s *AuditServiceImpl) Record(ctx context.Context, entry audit.Entry) (audit.AuditLog, error) {
	entity, err := validateEntry(entry)
	if err != nil {
		return audit.AuditLog{}, err
	}

	oldData, err := s.codec.Encode(entry.Old)
	if err != nil {
		return audit.AuditLog{}, err
	}
	newData, err := s.codec.Encode(entry.New)
	if err != nil {
		return audit.AuditLog{}, err
	}

	stored, err := s.auditRepo.Create(ctx, audit.StoredLog{
		Action:   entry.Action,
		Entity:   entity,
		EntityID: entry.EntityID,
		OldData:  oldData,
		NewData:  newData,
		UserID:   entry.UserID,
	})
	if err != nil {
		return audit.AuditLog{}, fmt.Errorf("failed to record audit log: %w", err)
	}

	return audit.AuditLog{
		ID:        stored.ID,
		Action:    stored.Action,
		Entity:    stored.Entity,
		EntityID:  stored.EntityID,
		OldData:   entry.Old,
		NewData:   entry.New,
		UserID:    stored.UserID,
		CreatedAt: stored.CreatedAt,
	}, nil
}

func (s *AuditServiceImpl) List(ctx context.Context, filter audit.ListFilter) ([]audit.AuditLogResponse, error) {
	if _, err := actor.Require(ctx); err != nil {
		return nil, err
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	filter.Normalize()

	stored, err := s.auditRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]audit.AuditLogResponse, 0, len(stored))
	for _, l := range stored {
		decoded, err := s.decode(l)
		if err != nil {
			return nil, err
		}
		result = append(result, audit.ToResponse(decoded))
	}
	return result, nil
}

func (s *AuditServiceImpl) decode(l audit.StoredLog) (audit.AuditLog, error) {
	oldData, err := s.codec.Decode(l.Entity, l.OldData)
	if err != nil {
		return audit.AuditLog{}, err
	}
	newData, err := s.codec.Decode(l.Entity, l.NewData)
	if err != nil {
		return audit.AuditLog{}, err
	}
	return audit.AuditLog{
		ID:        l.ID,
		Action:    l.Action,
		Entity:    l.Entity,
		EntityID:  l.EntityID,
		OldData:   oldData,
		NewData:   newData,
		UserID:    l.UserID,
		CreatedAt: l.CreatedAt,
	}, nil
}

func validateEntry(entry audit.Entry) (audit.Entity, error) {
	if !entry.Action.IsValid() {
		return "", audit.ErrInvalidAction
	}
	if entry.UserID == "" {
		return "", audit.ErrMissingActor
	}
	if entry.EntityID == "" {
		return "", audit.ErrMissingEntityID
	}

	switch {
	case entry.Old == nil && entry.New == nil:
		return "", audit.ErrMissingSnapshot
	case entry.Old != nil && entry.New != nil && entry.Old.AuditEntity() != entry.New.AuditEntity():
		return "", audit.ErrEntityMismatch
	}

	entity := snapshotEntity(entry)
	if !entity.IsKnown() {
		return "", audit.ErrUnknownEntity
	}
	return entity, nil
}

func snapshotEntity(entry audit.Entry) audit.Entity {
	if entry.New != nil {
		return entry.New.AuditEntity()
	}
	return entry.Old.AuditEntity()
}
