package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/absenta-hr/leave-backend-go/internal/domain/calendar"
	"github.com/absenta-hr/leave-backend-go/internal/handler/http/response"
	"github.com/absenta-hr/leave-backend-go/internal/pkg/validator"
	calendarService "github.com/absenta-hr/leave-backend-go/internal/service/calendar"
	"github.com/go-chi/chi/v5"
)

type CalendarHandler interface {
	MonthView(w http.ResponseWriter, r *http.Request)
	TeamVacations(w http.ResponseWriter, r *http.Request)
	ListEvents(w http.ResponseWriter, r *http.Request)
	CreateEvent(w http.ResponseWriter, r *http.Request)
	DeleteEvent(w http.ResponseWriter, r *http.Request)
}

type CalendarHandlerImpl struct {
	calendarService *calendarService.Service
}

func NewCalendarHandler(svc *calendarService.Service) CalendarHandler {
	return &CalendarHandlerImpl{calendarService: svc}
}

// monthYearParams reads ?month= and ?year=, defaulting to the current month.
func monthYearParams(r *http.Request) (int, time.Month, error) {
	now := time.Now().UTC()
	year := now.Year()
	month := now.Month()

	var errs validator.ValidationErrors

	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || !validator.IsValidYear(parsed) {
			errs = append(errs, validator.ValidationError{
				Field:   "year",
				Message: "year must be a valid number",
			})
		} else {
			year = parsed
		}
	}

	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || !validator.IsValidMonth(parsed) {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be between 1 and 12",
			})
		} else {
			month = time.Month(parsed)
		}
	}

	if len(errs) > 0 {
		return 0, 0, errs
	}

	return year, month, nil
}

// MonthView implements CalendarHandler.
func (h *CalendarHandlerImpl) MonthView(w http.ResponseWriter, r *http.Request) {
	id, ok := identityFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid access token")
		return
	}

	year, month, err := monthYearParams(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	scope, err := h.calendarService.ResolveViewerScope(r.Context(), id.EmployeeID, id.Role)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	grid, err := h.calendarService.MonthView(r.Context(), year, month, scope)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, grid)
}

// TeamVacations implements CalendarHandler.
func (h *CalendarHandlerImpl) TeamVacations(w http.ResponseWriter, r *http.Request) {
	id, ok := identityFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid access token")
		return
	}

	year, month, err := monthYearParams(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	scope, err := h.calendarService.ResolveViewerScope(r.Context(), id.EmployeeID, id.Role)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	vacations, err := h.calendarService.TeamVacations(r.Context(), year, month, scope)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, vacations)
}

// ListEvents implements CalendarHandler.
func (h *CalendarHandlerImpl) ListEvents(w http.ResponseWriter, r *http.Request) {
	year, month, err := monthYearParams(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	events, err := h.calendarService.MonthEvents(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, calendar.ToEventResponses(events))
}

// CreateEvent implements CalendarHandler.
func (h *CalendarHandlerImpl) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req calendar.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.calendarService.CreateEvent(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Calendar event created", calendar.ToEventResponse(created))
}

// DeleteEvent implements CalendarHandler.
func (h *CalendarHandlerImpl) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")
	if eventID == "" {
		response.BadRequest(w, "Event ID is required", nil)
		return
	}

	if err := h.calendarService.DeleteEvent(r.Context(), eventID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Calendar event deleted", nil)
}
