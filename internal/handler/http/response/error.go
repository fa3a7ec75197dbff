package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/absenta-hr/leave-backend-go/internal/domain/balance"
	"github.com/absenta-hr/leave-backend-go/internal/domain/calendar"
	"github.com/absenta-hr/leave-backend-go/internal/domain/employee"
	"github.com/absenta-hr/leave-backend-go/internal/domain/request"
	"github.com/absenta-hr/leave-backend-go/internal/domain/sellback"
	"github.com/absenta-hr/leave-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee is inactive")
	case errors.Is(err, employee.ErrApproverRoleRequired):
		Forbidden(w, "Approver role required")
	case errors.Is(err, employee.ErrAdminRoleRequired):
		Forbidden(w, "Admin role required")
	case errors.Is(err, employee.ErrUnauthorizedViewScope):
		Forbidden(w, "Not allowed to view this scope")

	// Balance domain errors
	case errors.Is(err, balance.ErrBalanceNotFound):
		NotFound(w, "Leave balance not found")
	case errors.Is(err, balance.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, balance.ErrNegativeAmount):
		BadRequest(w, "Amount must not be negative", nil)

	// Leave request domain errors
	case errors.Is(err, request.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, request.ErrInvalidStateTransition):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, request.ErrLeaveAlreadyStarted):
		Conflict(w, "Leave has already started")
	case errors.Is(err, request.ErrNotInProgress):
		Conflict(w, "Leave is not in progress")
	case errors.Is(err, request.ErrNotRequestOwner):
		Forbidden(w, "Not the owner of this request")

	// Sell-back domain errors
	case errors.Is(err, sellback.ErrSellBackNotFound):
		NotFound(w, "Sell-back request not found")
	case errors.Is(err, sellback.ErrAlreadyProcessed):
		Conflict(w, "Sell-back request already processed")
	case errors.Is(err, sellback.ErrDaysOutOfRange):
		BadRequest(w, "Days to sell out of allowed range", nil)
	case errors.Is(err, sellback.ErrExceedsAvailableDays):
		BadRequest(w, "Days to sell exceed available balance", nil)

	// Calendar domain errors
	case errors.Is(err, calendar.ErrEventNotFound):
		NotFound(w, "Calendar event not found")

	// Default
	default:
		slog.Error("Unhandled error in HTTP handler", slog.Any("error", err))
		InternalServerError(w, "An unexpected error occurred")
	}
}
