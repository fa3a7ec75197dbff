package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/absenta-hr/leave-backend-go/internal/domain/request"
	"github.com/absenta-hr/leave-backend-go/internal/handler/http/response"
	"github.com/absenta-hr/leave-backend-go/internal/pkg/validator"
	requestService "github.com/absenta-hr/leave-backend-go/internal/service/request"
	"github.com/go-chi/chi/v5"
)

type LeaveRequestHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetMyRequests(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Interrupt(w http.ResponseWriter, r *http.Request)
}

type LeaveRequestHandlerImpl struct {
	requestService *requestService.Service
}

func NewLeaveRequestHandler(svc *requestService.Service) LeaveRequestHandler {
	return &LeaveRequestHandlerImpl{requestService: svc}
}

// Create implements LeaveRequestHandler.
func (h *LeaveRequestHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := identityFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid access token")
		return
	}

	var req request.CreateLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = id.EmployeeID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.requestService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", request.ToResponse(created))
}

// GetMyRequests implements LeaveRequestHandler.
func (h *LeaveRequestHandlerImpl) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	id, ok := identityFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid access token")
		return
	}

	filter, err := filterFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	filter.EmployeeID = &id.EmployeeID

	requests, err := h.requestService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, request.ToResponses(requests))
}

// List implements LeaveRequestHandler. Approver-scoped listing across
// employees.
func (h *LeaveRequestHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}

	requests, err := h.requestService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, request.ToResponses(requests))
}

// Get implements LeaveRequestHandler.
func (h *LeaveRequestHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	lr, err := h.requestService.Get(r.Context(), requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, request.ToResponse(lr))
}

// Approve implements LeaveRequestHandler.
func (h *LeaveRequestHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id, ok := identityFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid access token")
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	approved, err := h.requestService.Approve(r.Context(), requestID, id.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved", request.ToResponse(approved))
}

// Reject implements LeaveRequestHandler.
func (h *LeaveRequestHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	id, ok := identityFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid access token")
		return
	}

	var req request.RejectRequestRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}
	req.RequestID = chi.URLParam(r, "id")
	req.ApproverID = id.EmployeeID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	rejected, err := h.requestService.Reject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected", request.ToResponse(rejected))
}

// Cancel implements LeaveRequestHandler.
func (h *LeaveRequestHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := identityFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid access token")
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	canceled, err := h.requestService.Cancel(r.Context(), requestID, id.EmployeeID, id.Role)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request canceled", request.ToResponse(canceled))
}

// Interrupt implements LeaveRequestHandler.
func (h *LeaveRequestHandlerImpl) Interrupt(w http.ResponseWriter, r *http.Request) {
	id, ok := identityFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid access token")
		return
	}

	var req request.InterruptRequestRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}
	req.RequestID = chi.URLParam(r, "id")
	req.ApproverID = id.EmployeeID

	result, err := h.requestService.Interrupt(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave interrupted", result)
}

func filterFromQuery(r *http.Request) (request.RequestFilter, error) {
	var filter request.RequestFilter

	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}
	if leaveType := r.URL.Query().Get("type"); leaveType != "" {
		filter.Type = &leaveType
	}
	if rawYear := r.URL.Query().Get("year"); rawYear != "" {
		year, err := strconv.Atoi(rawYear)
		if err != nil {
			return request.RequestFilter{}, validator.ValidationErrors{{
				Field:   "year",
				Message: "year must be a number",
			}}
		}
		filter.Year = &year
	}

	if err := filter.Validate(); err != nil {
		return request.RequestFilter{}, err
	}

	return filter, nil
}
