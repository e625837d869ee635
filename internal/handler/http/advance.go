package http

import (
	"net/http"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/advance"
	"github.com/gestao-rh/gestao-backend-go/internal/handler/http/response"
)

type AdvanceHandler interface {
	ListAdvances(w http.ResponseWriter, r *http.Request)
	CreateAdvance(w http.ResponseWriter, r *http.Request)
	DeleteAdvance(w http.ResponseWriter, r *http.Request)
}

type advanceHandlerImpl struct {
	advanceService advance.AdvanceService
}

func NewAdvanceHandler(advanceService advance.AdvanceService) AdvanceHandler {
	return &advanceHandlerImpl{advanceService: advanceService}
}

func (h *advanceHandlerImpl) ListAdvances(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	advances, err := h.advanceService.ListAdvances(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Success(w, advances)
}

// CreateAdvance implements AdvanceHandler.
func (h *advanceHandlerImpl) CreateAdvance(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req advance.CreateAdvanceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.EmployeeID = employeeID

	created, err := h.advanceService.CreateAdvance(r.Context(), req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Created(w, "Advance created successfully", created)
}

func (h *advanceHandlerImpl) DeleteAdvance(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	advanceID, ok := pathID(w, r, "advanceId")
	if !ok {
		return
	}

	if err := h.advanceService.DeleteAdvance(r.Context(), employeeID, advanceID); err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.SuccessWithMessage(w, "Advance deleted successfully", nil)
}
