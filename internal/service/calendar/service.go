package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/absenta-hr/leave-backend-go/internal/domain/calendar"
	"github.com/absenta-hr/leave-backend-go/internal/domain/employee"
	"github.com/absenta-hr/leave-backend-go/internal/domain/request"
	"github.com/absenta-hr/leave-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
)

// DaySlotView is one grid cell with the absences and events that touch it.
type DaySlotView struct {
	Date          string                         `json:"date"`
	InTargetMonth bool                           `json:"in_target_month"`
	Requests      []request.LeaveRequestResponse `json:"requests"`
	Events        []calendar.EventResponse       `json:"events"`
}

// MonthGrid is the aggregated 42-slot view of a month.
type MonthGrid struct {
	Year  int           `json:"year"`
	Month int           `json:"month"`
	Days  []DaySlotView `json:"days"`
}

type Service struct {
	requestRepo  request.LeaveRequestRepository
	eventRepo    calendar.CalendarEventRepository
	employeeRepo employee.EmployeeRepository
}

func NewService(requestRepo request.LeaveRequestRepository, eventRepo calendar.CalendarEventRepository, employeeRepo employee.EmployeeRepository) *Service {
	return &Service{
		requestRepo:  requestRepo,
		eventRepo:    eventRepo,
		employeeRepo: employeeRepo,
	}
}

// ResolveViewerScope maps the caller identity to the set of employees whose
// absences they may see: approvers and admins see the whole active roster,
// everyone else sees their own department.
func (s *Service) ResolveViewerScope(ctx context.Context, viewerID string, role employee.Role) ([]employee.Employee, error) {
	if role.CanApprove() {
		return s.employeeRepo.GetActive(ctx)
	}

	viewer, err := s.employeeRepo.GetByID(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get viewer: %w", err)
	}

	return s.employeeRepo.GetActiveByDepartment(ctx, viewer.Department)
}

// MonthView composes the grid builder and the overlap index: builds the
// 42-slot grid, then attaches to every slot the approved leave requests of
// in-scope employees and the organizational events that overlap that day.
// Pure projection; a naive per-slot scan is fine at per-month volumes.
func (s *Service) MonthView(ctx context.Context, year int, month time.Month, scope []employee.Employee) (MonthGrid, error) {
	grid := BuildMonthGrid(year, month)
	rangeStart := grid[0].Date
	rangeEnd := grid[len(grid)-1].Date

	scopeIDs := make([]string, 0, len(scope))
	names := make(map[string]string, len(scope))
	for _, emp := range scope {
		scopeIDs = append(scopeIDs, emp.ID)
		names[emp.ID] = emp.FullName
	}

	requests, err := s.requestRepo.ListApprovedInRange(ctx, scopeIDs, rangeStart, rangeEnd)
	if err != nil {
		return MonthGrid{}, fmt.Errorf("failed to list approved requests: %w", err)
	}

	events, err := s.eventRepo.ListInRange(ctx, rangeStart, rangeEnd)
	if err != nil {
		return MonthGrid{}, fmt.Errorf("failed to list calendar events: %w", err)
	}

	days := make([]DaySlotView, 0, len(grid))
	for _, slot := range grid {
		view := DaySlotView{
			Date:          slot.Date.Format(validator.DateLayout),
			InTargetMonth: slot.InTargetMonth,
			Requests:      make([]request.LeaveRequestResponse, 0),
			Events:        make([]calendar.EventResponse, 0),
		}

		for _, req := range requests {
			if Overlaps(slot.Date, req.StartDate, req.EndDate) {
				if req.EmployeeName == nil {
					if name, ok := names[req.EmployeeID]; ok {
						req.EmployeeName = &name
					}
				}
				view.Requests = append(view.Requests, request.ToResponse(req))
			}
		}

		for _, ev := range events {
			if Overlaps(slot.Date, ev.StartDate, ev.EndDate) {
				view.Events = append(view.Events, calendar.ToEventResponse(ev))
			}
		}

		days = append(days, view)
	}

	return MonthGrid{Year: year, Month: int(month), Days: days}, nil
}

// TeamVacations is the flat month projection: every approved absence of an
// in-scope employee that touches the month, one row per request.
func (s *Service) TeamVacations(ctx context.Context, year int, month time.Month, scope []employee.Employee) ([]calendar.TeamVacationView, error) {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	scopeIDs := make([]string, 0, len(scope))
	names := make(map[string]string, len(scope))
	for _, emp := range scope {
		scopeIDs = append(scopeIDs, emp.ID)
		names[emp.ID] = emp.FullName
	}

	requests, err := s.requestRepo.ListApprovedInRange(ctx, scopeIDs, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved requests: %w", err)
	}

	views := make([]calendar.TeamVacationView, 0, len(requests))
	for _, req := range requests {
		name := ""
		if req.EmployeeName != nil {
			name = *req.EmployeeName
		} else if n, ok := names[req.EmployeeID]; ok {
			name = n
		}

		views = append(views, calendar.TeamVacationView{
			EmployeeName: name,
			Type:         string(req.Type),
			StartDate:    req.StartDate.Format(validator.DateLayout),
			EndDate:      req.EndDate.Format(validator.DateLayout),
			Status:       string(req.Status),
		})
	}

	return views, nil
}

// MonthEvents lists the organizational events that touch the given month.
func (s *Service) MonthEvents(ctx context.Context, year int, month time.Month) ([]calendar.CalendarEvent, error) {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	events, err := s.eventRepo.ListInRange(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}
	return events, nil
}

// CreateEvent registers an organizational event. Admin-only at the handler.
func (s *Service) CreateEvent(ctx context.Context, req calendar.CreateEventRequest) (calendar.CalendarEvent, error) {
	event := calendar.CalendarEvent{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Type:        calendar.EventType(req.Type),
		StartDate:   req.ParsedStart,
		EndDate:     req.ParsedEnd,
		Color:       req.Color,
	}

	created, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		return calendar.CalendarEvent{}, fmt.Errorf("failed to create calendar event: %w", err)
	}

	slog.Info("Calendar event created",
		"event_id", created.ID,
		"type", created.Type,
		"start_date", created.StartDate.Format(validator.DateLayout),
		"end_date", created.EndDate.Format(validator.DateLayout),
	)

	return created, nil
}

// DeleteEvent removes an organizational event.
func (s *Service) DeleteEvent(ctx context.Context, id string) error {
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("Calendar event deleted", "event_id", id)
	return nil
}
