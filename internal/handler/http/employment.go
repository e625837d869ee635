package http

import (
	"net/http"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/employment"
	"github.com/gestao-rh/gestao-backend-go/internal/handler/http/response"
)

type EmploymentHandler interface {
	ListRecords(w http.ResponseWriter, r *http.Request)
	CreateRecord(w http.ResponseWriter, r *http.Request)
	UpdateRecord(w http.ResponseWriter, r *http.Request)
	DeleteRecord(w http.ResponseWriter, r *http.Request)

	ListContracts(w http.ResponseWriter, r *http.Request)
	CreateContract(w http.ResponseWriter, r *http.Request)
	UpdateContract(w http.ResponseWriter, r *http.Request)
	DeleteContract(w http.ResponseWriter, r *http.Request)
}

type employmentHandlerImpl struct {
	employmentService employment.EmploymentService
}

func NewEmploymentHandler(employmentService employment.EmploymentService) EmploymentHandler {
	return &employmentHandlerImpl{employmentService: employmentService}
}

// ========== RECORDS ==========

func (h *employmentHandlerImpl) ListRecords(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	records, err := h.employmentService.ListRecords(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Success(w, records)
}

func (h *employmentHandlerImpl) CreateRecord(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req employment.CreateRecordRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.EmployeeID = employeeID

	rec, err := h.employmentService.CreateRecord(r.Context(), req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Created(w, "Employment record created successfully", rec)
}

func (h *employmentHandlerImpl) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	recordID, ok := pathID(w, r, "recordId")
	if !ok {
		return
	}
	var req employment.UpdateRecordRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = recordID
	req.EmployeeID = employeeID

	rec, err := h.employmentService.UpdateRecord(r.Context(), req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.SuccessWithMessage(w, "Employment record updated successfully", rec)
}

func (h *employmentHandlerImpl) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	recordID, ok := pathID(w, r, "recordId")
	if !ok {
		return
	}

	if err := h.employmentService.CancelRecord(r.Context(), employeeID, recordID); err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.SuccessWithMessage(w, "Employment record cancelled successfully", nil)
}

// ========== CONTRACTS ==========

func (h *employmentHandlerImpl) ListContracts(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	contracts, err := h.employmentService.ListContracts(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Success(w, contracts)
}

func (h *employmentHandlerImpl) CreateContract(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req employment.CreateContractRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.EmployeeID = employeeID

	c, err := h.employmentService.CreateContract(r.Context(), req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Created(w, "Contract created successfully", c)
}

func (h *employmentHandlerImpl) UpdateContract(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	contractID, ok := pathID(w, r, "contractId")
	if !ok {
		return
	}
	var req employment.UpdateContractRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = contractID
	req.EmployeeID = employeeID

	c, err := h.employmentService.UpdateContract(r.Context(), req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.SuccessWithMessage(w, "Contract updated successfully", c)
}

func (h *employmentHandlerImpl) DeleteContract(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	contractID, ok := pathID(w, r, "contractId")
	if !ok {
		return
	}

	if err := h.employmentService.CancelContract(r.Context(), employeeID, contractID); err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.SuccessWithMessage(w, "Contract cancelled successfully", nil)
}
