package request

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDayCount(t *testing.T) {
	assert.Equal(t, 1, DayCount(date(2024, 6, 1), date(2024, 6, 1)))
	assert.Equal(t, 5, DayCount(date(2024, 6, 1), date(2024, 6, 5)))
	assert.Equal(t, 10, DayCount(date(2024, 6, 1), date(2024, 6, 10)))
	// Spans a month boundary.
	assert.Equal(t, 3, DayCount(date(2024, 5, 31), date(2024, 6, 2)))
}

func TestLeaveType_DeductsBalance(t *testing.T) {
	assert.True(t, TypeStandardLeave.DeductsBalance())
	assert.True(t, TypeCompensationGrant.DeductsBalance())
	assert.True(t, TypeMedicalLeave.DeductsBalance())
	assert.True(t, TypeDayOff.DeductsBalance())
	assert.False(t, TypeUnpaidLeave.DeductsBalance())
	assert.False(t, TypeRemoteWork.DeductsBalance())
}

func TestStatus_Terminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusApproved.Terminal())
	assert.True(t, StatusRejected.Terminal())
	assert.True(t, StatusCanceled.Terminal())
	assert.True(t, StatusInterrupted.Terminal())
}

func TestLeaveRequest_CanCancel(t *testing.T) {
	today := date(2024, 6, 10)

	pending := LeaveRequest{Status: StatusPending, StartDate: date(2024, 6, 1)}
	assert.True(t, pending.CanCancel(today), "pending cancels regardless of dates")

	future := LeaveRequest{Status: StatusApproved, StartDate: date(2024, 6, 11)}
	assert.True(t, future.CanCancel(today))

	startsToday := LeaveRequest{Status: StatusApproved, StartDate: date(2024, 6, 10)}
	assert.False(t, startsToday.CanCancel(today), "start day counts as started")

	started := LeaveRequest{Status: StatusApproved, StartDate: date(2024, 6, 5)}
	assert.False(t, started.CanCancel(today))

	rejected := LeaveRequest{Status: StatusRejected, StartDate: date(2024, 6, 20)}
	assert.False(t, rejected.CanCancel(today))
}

func TestLeaveRequest_CanInterrupt(t *testing.T) {
	req := LeaveRequest{
		Status:    StatusApproved,
		StartDate: date(2024, 6, 1),
		EndDate:   date(2024, 6, 10),
	}

	assert.False(t, req.CanInterrupt(date(2024, 5, 31)), "not yet started")
	assert.True(t, req.CanInterrupt(date(2024, 6, 1)), "first day")
	assert.True(t, req.CanInterrupt(date(2024, 6, 5)))
	assert.True(t, req.CanInterrupt(date(2024, 6, 10)), "last day")
	assert.False(t, req.CanInterrupt(date(2024, 6, 11)), "already over")

	pending := req
	pending.Status = StatusPending
	assert.False(t, pending.CanInterrupt(date(2024, 6, 5)))
}

func TestLeaveRequest_InterruptionDays(t *testing.T) {
	req := LeaveRequest{
		Status:    StatusApproved,
		StartDate: date(2024, 6, 1),
		EndDate:   date(2024, 6, 10),
		TotalDays: 10,
	}

	actual, returned := req.InterruptionDays(date(2024, 6, 4))
	assert.Equal(t, 4, actual)
	assert.Equal(t, 6, returned)

	// Interrupting on the first day still consumes one day.
	actual, returned = req.InterruptionDays(date(2024, 6, 1))
	assert.Equal(t, 1, actual)
	assert.Equal(t, 9, returned)

	// Interrupting on the last day consumes everything.
	actual, returned = req.InterruptionDays(date(2024, 6, 10))
	assert.Equal(t, 10, actual)
	assert.Equal(t, 0, returned)
}
