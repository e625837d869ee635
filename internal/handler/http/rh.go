package http

import (
	"net/http"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/rh"
	"github.com/gestao-rh/gestao-backend-go/internal/handler/http/response"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/validator"
)

type RHHandler interface {
	CreatePayment(w http.ResponseWriter, r *http.Request)
	ListPayments(w http.ResponseWriter, r *http.Request)
	CreateThirteenth(w http.ResponseWriter, r *http.Request)
	ListThirteenth(w http.ResponseWriter, r *http.Request)
	ApplyTimeBank(w http.ResponseWriter, r *http.Request)
	GetTimeBank(w http.ResponseWriter, r *http.Request)
	CreateSalaryHistory(w http.ResponseWriter, r *http.Request)
	ListSalaryHistory(w http.ResponseWriter, r *http.Request)
	CreateVacation(w http.ResponseWriter, r *http.Request)
	ListVacations(w http.ResponseWriter, r *http.Request)
}

type rhHandlerImpl struct {
	rhService rh.RHService
}

func NewRHHandler(rhService rh.RHService) RHHandler {
	return &rhHandlerImpl{rhService: rhService}
}

// ========== PAYMENTS ==========

func (h *rhHandlerImpl) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req rh.CreatePaymentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	payment, err := h.rhService.CreatePayment(r.Context(), req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Created(w, "Payment created successfully", payment)
}

// ListPayments supports ?employeeId= and ?competencia=.
func (h *rhHandlerImpl) ListPayments(w http.ResponseWriter, r *http.Request) {
	var errs validator.ValidationErrors
	filter := rh.PaymentFilter{
		EmployeeID:  queryUUID(r, "employeeId", &errs),
		Competencia: queryString(r, "competencia"),
	}
	if err := errs.Err(); err != nil {
		response.HandleError(w, r, err)
		return
	}

	payments, err := h.rhService.ListPayments(r.Context(), filter)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Success(w, payments)
}

// ========== THIRTEENTH SALARY ==========

func (h *rhHandlerImpl) CreateThirteenth(w http.ResponseWriter, r *http.Request) {
	var req rh.CreateThirteenthRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	created, err := h.rhService.CreateThirteenth(r.Context(), req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Created(w, "Thirteenth salary created successfully", created)
}

func (h *rhHandlerImpl) ListThirteenth(w http.ResponseWriter, r *http.Request) {
	var errs validator.ValidationErrors
	filter := rh.ThirteenthFilter{
		EmployeeID:    queryUUID(r, "employeeId", &errs),
		AnoReferencia: queryInt(r, "anoReferencia", &errs),
	}
	if err := errs.Err(); err != nil {
		response.HandleError(w, r, err)
		return
	}

	list, err := h.rhService.ListThirteenth(r.Context(), filter)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Success(w, list)
}

// ========== TIME BANK ==========

// ApplyTimeBank answers 200 for both the first entry and later updates.
func (h *rhHandlerImpl) ApplyTimeBank(w http.ResponseWriter, r *http.Request) {
	var req rh.TimeBankRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	tb, err := h.rhService.ApplyTimeBank(r.Context(), req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.SuccessWithMessage(w, "Time bank updated successfully", tb)
}

func (h *rhHandlerImpl) GetTimeBank(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := pathID(w, r, "employeeId")
	if !ok {
		return
	}
	tb, err := h.rhService.GetTimeBank(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Success(w, tb)
}

// ========== SALARY HISTORY ==========

func (h *rhHandlerImpl) CreateSalaryHistory(w http.ResponseWriter, r *http.Request) {
	var req rh.CreateSalaryHistoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	created, err := h.rhService.CreateSalaryHistory(r.Context(), req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Created(w, "Salary history created successfully", created)
}

func (h *rhHandlerImpl) ListSalaryHistory(w http.ResponseWriter, r *http.Request) {
	var errs validator.ValidationErrors
	employeeID := queryUUID(r, "employeeId", &errs)
	if err := errs.Err(); err != nil {
		response.HandleError(w, r, err)
		return
	}

	list, err := h.rhService.ListSalaryHistory(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Success(w, list)
}

// ========== VACATIONS ==========

func (h *rhHandlerImpl) CreateVacation(w http.ResponseWriter, r *http.Request) {
	var req rh.CreateVacationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	created, err := h.rhService.CreateVacation(r.Context(), req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Created(w, "Vacation created successfully", created)
}

func (h *rhHandlerImpl) ListVacations(w http.ResponseWriter, r *http.Request) {
	var errs validator.ValidationErrors
	employeeID := queryUUID(r, "employeeId", &errs)
	if err := errs.Err(); err != nil {
		response.HandleError(w, r, err)
		return
	}

	list, err := h.rhService.ListVacations(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Success(w, list)
}
