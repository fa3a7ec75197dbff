package http

import (
	"encoding/json"
	"net/http"

	"github.com/absenta-hr/leave-backend-go/internal/domain/sellback"
	"github.com/absenta-hr/leave-backend-go/internal/handler/http/response"
	sellbackService "github.com/absenta-hr/leave-backend-go/internal/service/sellback"
	"github.com/go-chi/chi/v5"
)

type SellBackHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetMyRequests(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type SellBackHandlerImpl struct {
	sellBackService *sellbackService.Service
}

func NewSellBackHandler(svc *sellbackService.Service) SellBackHandler {
	return &SellBackHandlerImpl{sellBackService: svc}
}

// Create implements SellBackHandler.
func (h *SellBackHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := identityFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid access token")
		return
	}

	var req sellback.CreateSellBackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = id.EmployeeID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.sellBackService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Sell-back request submitted", sellback.ToResponse(created))
}

// GetMyRequests implements SellBackHandler.
func (h *SellBackHandlerImpl) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	id, ok := identityFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid access token")
		return
	}

	requests, err := h.sellBackService.ListByEmployee(r.Context(), id.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, sellback.ToResponses(requests))
}

// List implements SellBackHandler. Approver-scoped listing by employee.
func (h *SellBackHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		response.BadRequest(w, "employee_id query parameter is required", nil)
		return
	}

	requests, err := h.sellBackService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, sellback.ToResponses(requests))
}

// Approve implements SellBackHandler.
func (h *SellBackHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	sellBackID := chi.URLParam(r, "id")
	if sellBackID == "" {
		response.BadRequest(w, "Sell-back ID is required", nil)
		return
	}

	approved, err := h.sellBackService.Approve(r.Context(), sellBackID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Sell-back request approved", sellback.ToResponse(approved))
}

// Reject implements SellBackHandler.
func (h *SellBackHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	sellBackID := chi.URLParam(r, "id")
	if sellBackID == "" {
		response.BadRequest(w, "Sell-back ID is required", nil)
		return
	}

	rejected, err := h.sellBackService.Reject(r.Context(), sellBackID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Sell-back request rejected", sellback.ToResponse(rejected))
}
