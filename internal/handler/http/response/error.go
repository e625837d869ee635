package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gestao-rh/gestao-backend-go/internal/domain/advance"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/auth"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/employee"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/employment"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/finance"
	"github.com/gestao-rh/gestao-backend-go/internal/domain/rh"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses.
// Anything unmapped is logged and answered with a generic 500.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrUnauthenticated):
		Unauthorized(w, "Authentication required")
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())

	// Employee
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrEmployeeAlreadyInactive):
		Conflict(w, "Employee is already inactive")

	// Advance
	case errors.Is(err, advance.ErrAdvanceNotFound):
		NotFound(w, "Advance not found")

	// Employment
	case errors.Is(err, employment.ErrRecordNotFound):
		NotFound(w, "Employment record not found")
	case errors.Is(err, employment.ErrContractNotFound):
		NotFound(w, "Contract not found")
	case errors.Is(err, employment.ErrAlreadyCancelled):
		Conflict(w, err.Error())
	case errors.Is(err, employment.ErrVersionConflict):
		Conflict(w, err.Error())

	// Finance
	case errors.Is(err, finance.ErrTransactionNotFound):
		NotFound(w, "Transaction not found")
	case errors.Is(err, finance.ErrAccountPayableNotFound):
		NotFound(w, "Account payable not found")
	case errors.Is(err, finance.ErrTransactionLinked):
		Conflict(w, err.Error())
	case errors.Is(err, finance.ErrAccountPayableClosed):
		Conflict(w, err.Error())

	// RH
	case errors.Is(err, rh.ErrPaymentAlreadyExists):
		Conflict(w, err.Error())
	case errors.Is(err, rh.ErrThirteenthAlreadyExists):
		Conflict(w, err.Error())
	case errors.Is(err, rh.ErrTimeBankNotFound):
		NotFound(w, "Time bank not found")

	default:
		slog.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
