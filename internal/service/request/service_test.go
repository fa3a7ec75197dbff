package request

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/absenta-hr/leave-backend-go/internal/domain/balance"
	"github.com/absenta-hr/leave-backend-go/internal/domain/employee"
	"github.com/absenta-hr/leave-backend-go/internal/domain/request"
	balanceService "github.com/absenta-hr/leave-backend-go/internal/service/balance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// passTx runs the function directly; transition guards are exercised by the
// in-memory repositories below.
type passTx struct{}

func (passTx) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeBalanceRepo struct {
	balances map[string]*balance.LeaveBalance
}

func newFakeBalanceRepo() *fakeBalanceRepo {
	return &fakeBalanceRepo{balances: make(map[string]*balance.LeaveBalance)}
}

func balanceKey(employeeID string, year int) string {
	return employeeID + "|" + strconv.Itoa(year)
}

func (r *fakeBalanceRepo) Create(_ context.Context, b balance.LeaveBalance) (balance.LeaveBalance, error) {
	stored := b
	r.balances[balanceKey(b.EmployeeID, b.Year)] = &stored
	return stored, nil
}

func (r *fakeBalanceRepo) GetByEmployeeYear(_ context.Context, employeeID string, year int) (balance.LeaveBalance, error) {
	b, ok := r.balances[balanceKey(employeeID, year)]
	if !ok {
		return balance.LeaveBalance{}, balance.ErrBalanceNotFound
	}
	return *b, nil
}

func (r *fakeBalanceRepo) GetForUpdate(ctx context.Context, employeeID string, year int) (balance.LeaveBalance, error) {
	return r.GetByEmployeeYear(ctx, employeeID, year)
}

func (r *fakeBalanceRepo) SetUsedDays(_ context.Context, id string, usedDays int) error {
	for _, b := range r.balances {
		if b.ID == id {
			if usedDays < 0 || usedDays > b.TotalDays {
				return balance.ErrInsufficientBalance
			}
			b.UsedDays = usedDays
			return nil
		}
	}
	return balance.ErrBalanceNotFound
}

func (r *fakeBalanceRepo) ListEmployeeIDsWithBalance(_ context.Context, year int) ([]string, error) {
	var ids []string
	for _, b := range r.balances {
		if b.Year == year {
			ids = append(ids, b.EmployeeID)
		}
	}
	return ids, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(emps ...employee.Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, e := range emps {
		r.employees[e.ID] = e
	}
	return r
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *fakeEmployeeRepo) GetActive(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range r.employees {
		if e.Active {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) GetActiveByDepartment(_ context.Context, department string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range r.employees {
		if e.Active && e.Department == department {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeRequestRepo struct {
	requests map[string]*request.LeaveRequest
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[string]*request.LeaveRequest)}
}

func (r *fakeRequestRepo) Create(_ context.Context, lr request.LeaveRequest) (request.LeaveRequest, error) {
	stored := lr
	r.requests[lr.ID] = &stored
	return stored, nil
}

func (r *fakeRequestRepo) GetByID(_ context.Context, id string) (request.LeaveRequest, error) {
	lr, ok := r.requests[id]
	if !ok {
		return request.LeaveRequest{}, request.ErrRequestNotFound
	}
	return *lr, nil
}

func (r *fakeRequestRepo) List(_ context.Context, filter request.RequestFilter) ([]request.LeaveRequest, error) {
	var out []request.LeaveRequest
	for _, lr := range r.requests {
		if filter.EmployeeID != nil && lr.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && string(lr.Status) != *filter.Status {
			continue
		}
		out = append(out, *lr)
	}
	return out, nil
}

// UpdateStatus mirrors the guarded SQL flip: the transition only happens
// when the row is still in the expected source status.
func (r *fakeRequestRepo) UpdateStatus(_ context.Context, id string, from, to request.Status, upd request.StatusUpdate) error {
	lr, ok := r.requests[id]
	if !ok {
		return request.ErrRequestNotFound
	}
	if lr.Status != from {
		return request.ErrInvalidStateTransition
	}
	lr.Status = to
	if upd.ApproverID != nil {
		lr.ApproverID = upd.ApproverID
	}
	if upd.RejectReason != nil {
		lr.RejectReason = upd.RejectReason
	}
	if upd.ActualDays != nil {
		lr.ActualDays = upd.ActualDays
	}
	return nil
}

func (r *fakeRequestRepo) ListApprovedInRange(_ context.Context, employeeIDs []string, rangeStart, rangeEnd time.Time) ([]request.LeaveRequest, error) {
	var out []request.LeaveRequest
	for _, lr := range r.requests {
		if lr.Status != request.StatusApproved {
			continue
		}
		if lr.StartDate.After(rangeEnd) || lr.EndDate.Before(rangeStart) {
			continue
		}
		for _, id := range employeeIDs {
			if lr.EmployeeID == id {
				out = append(out, *lr)
				break
			}
		}
	}
	return out, nil
}

type fixture struct {
	svc         *Service
	requestRepo *fakeRequestRepo
	balanceRepo *fakeBalanceRepo
}

func newFixture(t *testing.T, today time.Time) *fixture {
	t.Helper()

	emp := employee.Employee{
		ID:         "emp-1",
		FullName:   "Dana Silva",
		Department: "engineering",
		Role:       employee.RoleEmployee,
		Active:     true,
	}
	approver := employee.Employee{
		ID:         "apr-1",
		FullName:   "Iris Moreno",
		Department: "engineering",
		Role:       employee.RoleApprover,
		Active:     true,
	}

	balanceRepo := newFakeBalanceRepo()
	requestRepo := newFakeRequestRepo()
	ledger := balanceService.NewLedger(passTx{}, balanceRepo, 30)

	svc := NewService(passTx{}, requestRepo, newFakeEmployeeRepo(emp, approver), ledger)
	svc.now = func() time.Time { return today }

	return &fixture{svc: svc, requestRepo: requestRepo, balanceRepo: balanceRepo}
}

func createRequest(t *testing.T, f *fixture, leaveType string, start, end string) request.LeaveRequest {
	t.Helper()

	req := request.CreateLeaveRequestRequest{
		EmployeeID: "emp-1",
		Type:       leaveType,
		StartDate:  start,
		EndDate:    end,
	}
	require.NoError(t, req.Validate())

	created, err := f.svc.Create(context.Background(), req)
	require.NoError(t, err)
	return created
}

func availableDays(t *testing.T, f *fixture, year int) int {
	t.Helper()
	b, err := f.balanceRepo.GetByEmployeeYear(context.Background(), "emp-1", year)
	require.NoError(t, err)
	return b.AvailableDays()
}

func TestCreate_PendingWithoutDebit(t *testing.T) {
	f := newFixture(t, time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))

	created := createRequest(t, f, "standard_leave", "2024-06-01", "2024-06-10")

	assert.Equal(t, request.StatusPending, created.Status)
	assert.Equal(t, 10, created.TotalDays)
	assert.Equal(t, 30, availableDays(t, f, 2024), "creation must not debit")
}

func TestCreate_InsufficientBalance(t *testing.T) {
	f := newFixture(t, time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))

	req := request.CreateLeaveRequestRequest{
		EmployeeID: "emp-1",
		Type:       "standard_leave",
		StartDate:  "2024-06-01",
		EndDate:    "2024-07-05", // 35 days > 30 available
	}
	require.NoError(t, req.Validate())

	_, err := f.svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, balance.ErrInsufficientBalance)
}

func TestCreate_UnpaidLeaveSkipsBalanceGuard(t *testing.T) {
	f := newFixture(t, time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))

	// 61 days, far beyond the entitlement, but unpaid leave never consumes it.
	created := createRequest(t, f, "unpaid_leave", "2024-06-01", "2024-07-31")
	assert.Equal(t, request.StatusPending, created.Status)
	assert.Equal(t, 61, created.TotalDays)
}

func TestApprove_DebitsOnce(t *testing.T) {
	f := newFixture(t, time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))
	created := createRequest(t, f, "standard_leave", "2024-06-01", "2024-06-10")

	approved, err := f.svc.Approve(context.Background(), created.ID, "apr-1")
	require.NoError(t, err)
	assert.Equal(t, request.StatusApproved, approved.Status)
	assert.Equal(t, 20, availableDays(t, f, 2024))

	// A second approval must fail and must not debit again.
	_, err = f.svc.Approve(context.Background(), created.ID, "apr-1")
	assert.ErrorIs(t, err, request.ErrInvalidStateTransition)
	assert.Equal(t, 20, availableDays(t, f, 2024))
}

func TestApprove_RechecksBalance(t *testing.T) {
	f := newFixture(t, time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))

	first := createRequest(t, f, "standard_leave", "2024-06-01", "2024-06-25")  // 25 days
	second := createRequest(t, f, "standard_leave", "2024-07-01", "2024-07-10") // 10 days

	_, err := f.svc.Approve(context.Background(), first.ID, "apr-1")
	require.NoError(t, err)

	// Only 5 days remain; the guard at approval must catch it.
	_, err = f.svc.Approve(context.Background(), second.ID, "apr-1")
	assert.ErrorIs(t, err, balance.ErrInsufficientBalance)
}

func TestReject_NoLedgerEffect(t *testing.T) {
	f := newFixture(t, time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))
	created := createRequest(t, f, "standard_leave", "2024-06-01", "2024-06-10")

	reason := "critical release window"
	rejected, err := f.svc.Reject(context.Background(), request.RejectRequestRequest{
		RequestID:    created.ID,
		ApproverID:   "apr-1",
		RejectReason: &reason,
	})
	require.NoError(t, err)
	assert.Equal(t, request.StatusRejected, rejected.Status)
	assert.Equal(t, 30, availableDays(t, f, 2024))
}

func TestCancel_PendingByOwner(t *testing.T) {
	f := newFixture(t, time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))
	created := createRequest(t, f, "standard_leave", "2024-06-01", "2024-06-10")

	canceled, err := f.svc.Cancel(context.Background(), created.ID, "emp-1", employee.RoleEmployee)
	require.NoError(t, err)
	assert.Equal(t, request.StatusCanceled, canceled.Status)
	assert.Equal(t, 30, availableDays(t, f, 2024))
}

func TestCancel_ApprovedBeforeStartRefunds(t *testing.T) {
	f := newFixture(t, time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))
	created := createRequest(t, f, "standard_leave", "2024-06-01", "2024-06-10")

	_, err := f.svc.Approve(context.Background(), created.ID, "apr-1")
	require.NoError(t, err)
	require.Equal(t, 20, availableDays(t, f, 2024))

	canceled, err := f.svc.Cancel(context.Background(), created.ID, "emp-1", employee.RoleEmployee)
	require.NoError(t, err)
	assert.Equal(t, request.StatusCanceled, canceled.Status)
	assert.Equal(t, 30, availableDays(t, f, 2024), "full refund on pre-start cancel")
}

func TestCancel_ApprovedAfterStartFails(t *testing.T) {
	f := newFixture(t, time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))
	created := createRequest(t, f, "standard_leave", "2024-06-01", "2024-06-10")

	_, err := f.svc.Approve(context.Background(), created.ID, "apr-1")
	require.NoError(t, err)

	// Move the clock onto the first day of leave.
	f.svc.now = func() time.Time { return time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC) }

	_, err = f.svc.Cancel(context.Background(), created.ID, "emp-1", employee.RoleEmployee)
	assert.ErrorIs(t, err, request.ErrLeaveAlreadyStarted)
	assert.Equal(t, 20, availableDays(t, f, 2024), "failed cancel must not refund")
}

func TestCancel_NotOwner(t *testing.T) {
	f := newFixture(t, time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))
	created := createRequest(t, f, "standard_leave", "2024-06-01", "2024-06-10")

	_, err := f.svc.Cancel(context.Background(), created.ID, "emp-2", employee.RoleEmployee)
	assert.ErrorIs(t, err, request.ErrNotRequestOwner)
}

func TestInterrupt_MidLeave(t *testing.T) {
	f := newFixture(t, time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))
	created := createRequest(t, f, "standard_leave", "2024-06-01", "2024-06-10")

	_, err := f.svc.Approve(context.Background(), created.ID, "apr-1")
	require.NoError(t, err)
	require.Equal(t, 20, availableDays(t, f, 2024))

	// Interrupted on day four of ten.
	f.svc.now = func() time.Time { return time.Date(2024, 6, 4, 15, 0, 0, 0, time.UTC) }

	result, err := f.svc.Interrupt(context.Background(), request.InterruptRequestRequest{
		RequestID:  created.ID,
		ApproverID: "apr-1",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, result.ActualDays)
	assert.Equal(t, 6, result.DaysReturned)
	assert.Equal(t, 26, availableDays(t, f, 2024))

	stored, err := f.svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, request.StatusInterrupted, stored.Status)
	require.NotNil(t, stored.ActualDays)
	assert.Equal(t, 4, *stored.ActualDays)
}

func TestInterrupt_BeforeStartFails(t *testing.T) {
	f := newFixture(t, time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))
	created := createRequest(t, f, "standard_leave", "2024-06-01", "2024-06-10")

	_, err := f.svc.Approve(context.Background(), created.ID, "apr-1")
	require.NoError(t, err)

	_, err = f.svc.Interrupt(context.Background(), request.InterruptRequestRequest{
		RequestID:  created.ID,
		ApproverID: "apr-1",
	})
	assert.ErrorIs(t, err, request.ErrNotInProgress)
}

func TestInterrupt_PendingFails(t *testing.T) {
	f := newFixture(t, time.Date(2024, 6, 5, 9, 0, 0, 0, time.UTC))
	created := createRequest(t, f, "unpaid_leave", "2024-06-01", "2024-06-10")

	_, err := f.svc.Interrupt(context.Background(), request.InterruptRequestRequest{
		RequestID:  created.ID,
		ApproverID: "apr-1",
	})
	assert.ErrorIs(t, err, request.ErrInvalidStateTransition)
}
