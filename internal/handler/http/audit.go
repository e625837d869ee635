package http

import (
	"net/http"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/audit"
	"github.com/gestao-rh/gestao-backend-go/internal/handler/http/response"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/validator"
)

type AuditHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type auditHandlerImpl struct {
	auditService audit.AuditService
}

func NewAuditHandler(auditService audit.AuditService) AuditHandler {
	return &auditHandlerImpl{auditService: auditService}
}

// List implements AuditHandler: GET /audit?entity=&action=&entityId=&userId=&limit=
func (h *auditHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var errs validator.ValidationErrors
	filter := audit.ListFilter{
		Entity:   queryString(r, "entity"),
		Action:   queryString(r, "action"),
		EntityID: queryString(r, "entityId"),
		UserID:   queryUUID(r, "userId", &errs),
	}
	if limit := queryInt(r, "limit", &errs); limit != nil {
		filter.Limit = *limit
	}
	if err := errs.Err(); err != nil {
		response.HandleError(w, r, err)
		return
	}

	logs, err := h.auditService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	limit := filter.Limit
	if limit == 0 {
		limit = audit.DefaultListLimit
	}
	response.SuccessWithMeta(w, logs, &response.Meta{Limit: min(limit, audit.MaxListLimit), Count: len(logs)})
}
