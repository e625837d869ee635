package http

import (
	"net/http"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/finance"
	"github.com/gestao-rh/gestao-backend-go/internal/handler/http/response"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/validator"
)

type FinanceHandler interface {
	CreateTransaction(w http.ResponseWriter, r *http.Request)
	ListTransactions(w http.ResponseWriter, r *http.Request)
	DeleteTransaction(w http.ResponseWriter, r *http.Request)

	CreatePayable(w http.ResponseWriter, r *http.Request)
	ListPayables(w http.ResponseWriter, r *http.Request)
	UpdatePayable(w http.ResponseWriter, r *http.Request)
	PayPayable(w http.ResponseWriter, r *http.Request)
	DeletePayable(w http.ResponseWriter, r *http.Request)
}

type financeHandlerImpl struct {
	financeService finance.FinanceService
}

func NewFinanceHandler(financeService finance.FinanceService) FinanceHandler {
	return &financeHandlerImpl{financeService: financeService}
}

// ========== TRANSACTIONS ==========

func (h *financeHandlerImpl) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req finance.CreateTransactionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	tx, err := h.financeService.CreateTransaction(r.Context(), req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Created(w, "Transaction created successfully", tx)
}

// ListTransactions supports ?type=&status=&from=&to=&limit=.
func (h *financeHandlerImpl) ListTransactions(w http.ResponseWriter, r *http.Request) {
	var errs validator.ValidationErrors
	filter := finance.TransactionFilter{
		From: queryDate(r, "from", &errs),
		To:   queryDate(r, "to", &errs),
	}
	if t := queryString(r, "type"); t != nil {
		txType := finance.TransactionType(*t)
		if txType != finance.TransactionTypeIncome && txType != finance.TransactionTypeExpense {
			errs.Add("type", "must be one of: income expense")
		}
		filter.Type = &txType
	}
	if s := queryString(r, "status"); s != nil {
		status := finance.TransactionStatus(*s)
		switch status {
		case finance.TransactionStatusPending, finance.TransactionStatusPaid, finance.TransactionStatusCancelled:
		default:
			errs.Add("status", "must be one of: pending paid cancelled")
		}
		filter.Status = &status
	}
	if limit := queryInt(r, "limit", &errs); limit != nil {
		if *limit < 0 {
			errs.Add("limit", "must be greater than or equal to 0")
		}
		filter.Limit = *limit
	}
	if err := errs.Err(); err != nil {
		response.HandleError(w, r, err)
		return
	}

	txs, err := h.financeService.ListTransactions(r.Context(), filter)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Success(w, txs)
}

func (h *financeHandlerImpl) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.financeService.DeleteTransaction(r.Context(), id); err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.SuccessWithMessage(w, "Transaction deleted successfully", nil)
}

// ========== ACCOUNTS PAYABLE ==========

func (h *financeHandlerImpl) CreatePayable(w http.ResponseWriter, r *http.Request) {
	var req finance.CreatePayableRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	payable, err := h.financeService.CreatePayable(r.Context(), req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Created(w, "Account payable created successfully", payable)
}

func (h *financeHandlerImpl) ListPayables(w http.ResponseWriter, r *http.Request) {
	var filter finance.PayableFilter
	if s := queryString(r, "status"); s != nil {
		status := finance.PayableStatus(*s)
		switch status {
		case finance.PayableStatusPending, finance.PayableStatusPaid, finance.PayableStatusOverdue, finance.PayableStatusCancelled:
		default:
			response.HandleError(w, r, validator.ValidationErrors{{Field: "status", Message: "must be one of: pending paid overdue cancelled"}})
			return
		}
		filter.Status = &status
	}

	payables, err := h.financeService.ListPayables(r.Context(), filter)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.Success(w, payables)
}

func (h *financeHandlerImpl) UpdatePayable(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req finance.UpdatePayableRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = id

	payable, err := h.financeService.UpdatePayable(r.Context(), req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.SuccessWithMessage(w, "Account payable updated successfully", payable)
}

// PayPayable accepts an empty body; paidAt then defaults to today.
func (h *financeHandlerImpl) PayPayable(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req finance.PayPayableRequest
	if r.ContentLength != 0 {
		if !decodeJSON(w, r, &req) {
			return
		}
	}
	req.ID = id

	result, err := h.financeService.PayPayable(r.Context(), req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.SuccessWithMessage(w, "Account payable paid successfully", result)
}

func (h *financeHandlerImpl) DeletePayable(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.financeService.DeletePayable(r.Context(), id); err != nil {
		response.HandleError(w, r, err)
		return
	}
	response.SuccessWithMessage(w, "Account payable deleted successfully", nil)
}
