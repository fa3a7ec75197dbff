package request

import (
	"time"

	"github.com/absenta-hr/leave-backend-go/internal/pkg/validator"
)

type CreateLeaveRequestRequest struct {
	EmployeeID string  `json:"-"`
	Type       string  `json:"type"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Reason     *string `json:"reason,omitempty"`

	// Populated by Validate.
	ParsedStart time.Time `json:"-"`
	ParsedEnd   time.Time `json:"-"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if !LeaveType(r.Type).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of standard_leave, compensation_grant, unpaid_leave, medical_leave, day_off, remote_work",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid YYYY-MM-DD date",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid YYYY-MM-DD date",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	r.ParsedStart = start
	r.ParsedEnd = end
	return nil
}

type RejectRequestRequest struct {
	RequestID    string  `json:"-"`
	ApproverID   string  `json:"-"`
	RejectReason *string `json:"reject_reason,omitempty"`
}

func (r *RejectRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_id",
			Message: "request_id is required",
		})
	}

	if r.RejectReason != nil && len(*r.RejectReason) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "reject_reason",
			Message: "reject_reason must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type InterruptRequestRequest struct {
	RequestID  string  `json:"-"`
	ApproverID string  `json:"-"`
	Reason     *string `json:"reason,omitempty"`
}

// InterruptionResult reports the day split produced by an interruption.
type InterruptionResult struct {
	ActualDays   int `json:"actual_days"`
	DaysReturned int `json:"days_returned"`
}

// RequestFilter narrows list queries. Zero values mean "no filter".
type RequestFilter struct {
	EmployeeID *string
	Status     *string
	Type       *string
	Year       *int
}

func (f *RequestFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && !Status(*f.Status).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of pending, approved, rejected, canceled, interrupted",
		})
	}

	if f.Type != nil && !LeaveType(*f.Type).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "unknown leave type",
		})
	}

	if f.Year != nil && !validator.IsValidYear(*f.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveRequestResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Type         string  `json:"type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	TotalDays    int     `json:"total_days"`
	ActualDays   *int    `json:"actual_days,omitempty"`
	Status       string  `json:"status"`
	Reason       *string `json:"reason,omitempty"`
	RejectReason *string `json:"reject_reason,omitempty"`
	ApproverID   *string `json:"approver_id,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

func ToResponse(r LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		Type:         string(r.Type),
		StartDate:    r.StartDate.Format(validator.DateLayout),
		EndDate:      r.EndDate.Format(validator.DateLayout),
		TotalDays:    r.TotalDays,
		ActualDays:   r.ActualDays,
		Status:       string(r.Status),
		Reason:       r.Reason,
		RejectReason: r.RejectReason,
		ApproverID:   r.ApproverID,
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    r.UpdatedAt.Format(time.RFC3339),
	}
}

func ToResponses(rs []LeaveRequest) []LeaveRequestResponse {
	out := make([]LeaveRequestResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, ToResponse(r))
	}
	return out
}
