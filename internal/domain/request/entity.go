package request

import "time"

type LeaveType string

const (
	TypeStandardLeave     LeaveType = "standard_leave"
	TypeCompensationGrant LeaveType = "compensation_grant"
	TypeUnpaidLeave       LeaveType = "unpaid_leave"
	TypeMedicalLeave      LeaveType = "medical_leave"
	TypeDayOff            LeaveType = "day_off"
	TypeRemoteWork        LeaveType = "remote_work"
)

// IsValid reports whether t is one of the closed set of leave types.
func (t LeaveType) IsValid() bool {
	switch t {
	case TypeStandardLeave, TypeCompensationGrant, TypeUnpaidLeave,
		TypeMedicalLeave, TypeDayOff, TypeRemoteWork:
		return true
	}
	return false
}

// DeductsBalance reports whether approving a request of this type debits the
// leave balance. Unpaid leave and remote work do not consume paid entitlement.
func (t LeaveType) DeductsBalance() bool {
	return t != TypeUnpaidLeave && t != TypeRemoteWork
}

type Status string

const (
	StatusPending     Status = "pending"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"
	StatusCanceled    Status = "canceled"
	StatusInterrupted Status = "interrupted"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCanceled, StatusInterrupted:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are allowed from s.
func (s Status) Terminal() bool {
	return s == StatusRejected || s == StatusCanceled || s == StatusInterrupted
}

// LeaveRequest is an employee's claim on a contiguous, inclusive date range.
// TotalDays is fixed at creation; ActualDays is set exactly once, by
// interruption. Requests are never deleted: rejection, cancellation and
// interruption are terminal statuses so the audit history survives.
type LeaveRequest struct {
	ID           string
	EmployeeID   string
	Type         LeaveType
	StartDate    time.Time
	EndDate      time.Time
	TotalDays    int
	ActualDays   *int
	Status       Status
	Reason       *string
	RejectReason *string
	ApproverID   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined for responses only.
	EmployeeName *string
}

// DayCount returns the inclusive day span of [start, end]. Both bounds are
// expected to be midnight-normalized dates.
func DayCount(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

// CanApprove and friends are the only legal transition sources; any call
// against another status is an invalid transition.
func (r *LeaveRequest) CanApprove() bool {
	return r.Status == StatusPending
}

func (r *LeaveRequest) CanReject() bool {
	return r.Status == StatusPending
}

// CanCancel allows the requester to withdraw a pending request at any time,
// and an approved one only while its start date is still in the future.
func (r *LeaveRequest) CanCancel(today time.Time) bool {
	switch r.Status {
	case StatusPending:
		return true
	case StatusApproved:
		return r.StartDate.After(today)
	}
	return false
}

// CanInterrupt allows administrative early termination only while the
// approved leave is in progress: start <= today <= end.
func (r *LeaveRequest) CanInterrupt(today time.Time) bool {
	if r.Status != StatusApproved {
		return false
	}
	return !today.Before(r.StartDate) && !today.After(r.EndDate)
}

// InterruptionDays computes the consumed and refunded day counts when an
// in-progress leave is interrupted on the given day. At least one day is
// always considered consumed, and consumption never exceeds the original
// request span.
func (r *LeaveRequest) InterruptionDays(today time.Time) (actualDays, daysReturned int) {
	actualDays = DayCount(r.StartDate, today)
	if actualDays < 1 {
		actualDays = 1
	}
	if actualDays > r.TotalDays {
		actualDays = r.TotalDays
	}
	return actualDays, r.TotalDays - actualDays
}
