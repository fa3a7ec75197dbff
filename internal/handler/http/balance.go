package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/absenta-hr/leave-backend-go/internal/domain/balance"
	"github.com/absenta-hr/leave-backend-go/internal/handler/http/response"
	balanceService "github.com/absenta-hr/leave-backend-go/internal/service/balance"
	"github.com/go-chi/chi/v5"
)

type BalanceHandler interface {
	GetMyBalance(w http.ResponseWriter, r *http.Request)
	GetEmployeeBalance(w http.ResponseWriter, r *http.Request)
}

type BalanceHandlerImpl struct {
	ledger *balanceService.Ledger
}

func NewBalanceHandler(ledger *balanceService.Ledger) BalanceHandler {
	return &BalanceHandlerImpl{ledger: ledger}
}

// yearParam reads the optional ?year= query, defaulting to the current year.
func yearParam(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return time.Now().UTC().Year(), true
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return year, true
}

// GetMyBalance implements BalanceHandler.
func (h *BalanceHandlerImpl) GetMyBalance(w http.ResponseWriter, r *http.Request) {
	id, ok := identityFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid access token")
		return
	}

	year, ok := yearParam(r)
	if !ok {
		response.BadRequest(w, "year must be a number", nil)
		return
	}

	b, err := h.ledger.EnsureBalance(r.Context(), id.EmployeeID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balance.ToResponse(b))
}

// GetEmployeeBalance implements BalanceHandler.
func (h *BalanceHandlerImpl) GetEmployeeBalance(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	year, ok := yearParam(r)
	if !ok {
		response.BadRequest(w, "year must be a number", nil)
		return
	}

	b, err := h.ledger.EnsureBalance(r.Context(), employeeID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balance.ToResponse(b))
}
