package audit

import "errors"

var (
	ErrMissingActor    = errors.New("audit entry has no acting user")
	ErrMissingEntityID = errors.New("audit entry has no entity id")
	ErrMissingSnapshot = errors.New("audit entry has no snapshot")
	ErrEntityMismatch  = errors.New("old and new snapshots describe different entities")
	ErrInvalidAction   = errors.New("invalid audit action")
	ErrUnknownEntity   = errors.New("unknown audit entity")
)
