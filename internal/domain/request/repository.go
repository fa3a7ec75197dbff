package request

import (
	"context"
	"time"
)

// LeaveRequestRepository - interface for leave_requests table.
// UpdateStatus must apply the change only when the row is still in
// fromStatus and report ErrInvalidStateTransition otherwise, so racing
// transitions cannot both win.
type LeaveRequestRepository interface {
	Create(ctx context.Context, r LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, filter RequestFilter) ([]LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, from, to Status, upd StatusUpdate) error
	ListApprovedInRange(ctx context.Context, employeeIDs []string, rangeStart, rangeEnd time.Time) ([]LeaveRequest, error)
}

// StatusUpdate carries the optional columns written together with a status
// flip.
type StatusUpdate struct {
	ApproverID   *string
	RejectReason *string
	ActualDays   *int
}
