package request

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/absenta-hr/leave-backend-go/internal/domain/balance"
	"github.com/absenta-hr/leave-backend-go/internal/domain/employee"
	"github.com/absenta-hr/leave-backend-go/internal/domain/request"
	"github.com/absenta-hr/leave-backend-go/internal/pkg/database"
	balanceService "github.com/absenta-hr/leave-backend-go/internal/service/balance"
	"github.com/google/uuid"
)

// Service drives the leave request lifecycle. Every transition is guarded
// against the request's current status and, where days are at stake, against
// the balance ledger; a failed guard leaves both untouched.
type Service struct {
	tx           database.TxRunner
	requestRepo  request.LeaveRequestRepository
	employeeRepo employee.EmployeeRepository
	ledger       *balanceService.Ledger

	now func() time.Time
}

func NewService(tx database.TxRunner, requestRepo request.LeaveRequestRepository, employeeRepo employee.EmployeeRepository, ledger *balanceService.Ledger) *Service {
	return &Service{
		tx:           tx,
		requestRepo:  requestRepo,
		employeeRepo: employeeRepo,
		ledger:       ledger,
		now:          time.Now,
	}
}

// today is the server's calendar day in UTC; all lifecycle guards compare
// against dates, never wall-clock times.
func (s *Service) today() time.Time {
	n := s.now().UTC()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}

// Create validates and records a new request in pending status. The balance
// is checked but NOT debited: balance must not be locked by speculative
// requests that may be rejected, so the debit happens at approval, where the
// guard is re-checked.
func (s *Service) Create(ctx context.Context, req request.CreateLeaveRequestRequest) (request.LeaveRequest, error) {
	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return request.LeaveRequest{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if !emp.Active {
		return request.LeaveRequest{}, employee.ErrEmployeeInactive
	}

	leaveType := request.LeaveType(req.Type)
	totalDays := request.DayCount(req.ParsedStart, req.ParsedEnd)

	if leaveType.DeductsBalance() {
		available, err := s.ledger.Available(ctx, emp.ID, req.ParsedStart.Year())
		if err != nil {
			return request.LeaveRequest{}, err
		}
		if totalDays > available {
			return request.LeaveRequest{}, balance.ErrInsufficientBalance
		}
	}

	created, err := s.requestRepo.Create(ctx, request.LeaveRequest{
		ID:         uuid.NewString(),
		EmployeeID: emp.ID,
		Type:       leaveType,
		StartDate:  req.ParsedStart,
		EndDate:    req.ParsedEnd,
		TotalDays:  totalDays,
		Status:     request.StatusPending,
		Reason:     req.Reason,
	})
	if err != nil {
		return request.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	slog.Info("Leave request created",
		"request_id", created.ID,
		"employee_id", created.EmployeeID,
		"type", created.Type,
		"total_days", created.TotalDays,
	)

	return created, nil
}

// Approve flips pending -> approved and debits the ledger in the same
// transaction. The status flip is conditional on the row still being
// pending, so a racing second approve fails instead of double-debiting.
func (s *Service) Approve(ctx context.Context, requestID, approverID string) (request.LeaveRequest, error) {
	var req request.LeaveRequest

	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		var err error
		req, err = s.requestRepo.GetByID(ctx, requestID)
		if err != nil {
			return err
		}

		if !req.CanApprove() {
			return request.ErrInvalidStateTransition
		}

		if err := s.requestRepo.UpdateStatus(ctx, req.ID, request.StatusPending, request.StatusApproved, request.StatusUpdate{
			ApproverID: &approverID,
		}); err != nil {
			return err
		}

		if req.Type.DeductsBalance() {
			if _, err := s.ledger.Debit(ctx, req.EmployeeID, req.StartDate.Year(), req.TotalDays); err != nil {
				return err
			}
		}

		req.Status = request.StatusApproved
		req.ApproverID = &approverID
		return nil
	})
	if err != nil {
		return request.LeaveRequest{}, err
	}

	slog.Info("Leave request approved",
		"request_id", req.ID,
		"employee_id", req.EmployeeID,
		"approver_id", approverID,
		"total_days", req.TotalDays,
	)

	return req, nil
}

// Reject flips pending -> rejected. No ledger effect: nothing was debited
// at creation.
func (s *Service) Reject(ctx context.Context, in request.RejectRequestRequest) (request.LeaveRequest, error) {
	req, err := s.requestRepo.GetByID(ctx, in.RequestID)
	if err != nil {
		return request.LeaveRequest{}, err
	}

	if !req.CanReject() {
		return request.LeaveRequest{}, request.ErrInvalidStateTransition
	}

	if err := s.requestRepo.UpdateStatus(ctx, req.ID, request.StatusPending, request.StatusRejected, request.StatusUpdate{
		ApproverID:   &in.ApproverID,
		RejectReason: in.RejectReason,
	}); err != nil {
		return request.LeaveRequest{}, err
	}

	req.Status = request.StatusRejected
	req.ApproverID = &in.ApproverID
	req.RejectReason = in.RejectReason

	slog.Info("Leave request rejected",
		"request_id", req.ID,
		"employee_id", req.EmployeeID,
		"approver_id", in.ApproverID,
	)

	return req, nil
}

// Cancel withdraws a request. A pending request cancels freely; an approved
// one only while its start date is still in the future, refunding the full
// debit. Approved leave that has begun can only be interrupted, not
// canceled.
func (s *Service) Cancel(ctx context.Context, requestID, callerID string, callerRole employee.Role) (request.LeaveRequest, error) {
	var req request.LeaveRequest

	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		var err error
		req, err = s.requestRepo.GetByID(ctx, requestID)
		if err != nil {
			return err
		}

		if req.EmployeeID != callerID && !callerRole.CanApprove() {
			return request.ErrNotRequestOwner
		}

		today := s.today()
		if !req.CanCancel(today) {
			if req.Status == request.StatusApproved {
				return request.ErrLeaveAlreadyStarted
			}
			return request.ErrInvalidStateTransition
		}

		fromStatus := req.Status
		if err := s.requestRepo.UpdateStatus(ctx, req.ID, fromStatus, request.StatusCanceled, request.StatusUpdate{}); err != nil {
			return err
		}

		// Only an approved request ever debited the ledger.
		if fromStatus == request.StatusApproved && req.Type.DeductsBalance() {
			if _, err := s.ledger.Credit(ctx, req.EmployeeID, req.StartDate.Year(), req.TotalDays); err != nil {
				return err
			}
		}

		req.Status = request.StatusCanceled
		return nil
	})
	if err != nil {
		return request.LeaveRequest{}, err
	}

	slog.Info("Leave request canceled",
		"request_id", req.ID,
		"employee_id", req.EmployeeID,
		"canceled_by", callerID,
	)

	return req, nil
}

// Interrupt terminates an in-progress approved leave early. The inclusive
// span from the start date through today counts as consumed (never less
// than one day, never more than the request), and the remainder is credited
// back.
func (s *Service) Interrupt(ctx context.Context, in request.InterruptRequestRequest) (request.InterruptionResult, error) {
	var result request.InterruptionResult

	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		req, err := s.requestRepo.GetByID(ctx, in.RequestID)
		if err != nil {
			return err
		}

		today := s.today()
		if !req.CanInterrupt(today) {
			if req.Status != request.StatusApproved {
				return request.ErrInvalidStateTransition
			}
			return request.ErrNotInProgress
		}

		actualDays, daysReturned := req.InterruptionDays(today)

		if err := s.requestRepo.UpdateStatus(ctx, req.ID, request.StatusApproved, request.StatusInterrupted, request.StatusUpdate{
			ApproverID: &in.ApproverID,
			ActualDays: &actualDays,
		}); err != nil {
			return err
		}

		if req.Type.DeductsBalance() && daysReturned > 0 {
			if _, err := s.ledger.Credit(ctx, req.EmployeeID, req.StartDate.Year(), daysReturned); err != nil {
				return err
			}
		}

		result = request.InterruptionResult{
			ActualDays:   actualDays,
			DaysReturned: daysReturned,
		}

		slog.Info("Leave request interrupted",
			"request_id", req.ID,
			"employee_id", req.EmployeeID,
			"approver_id", in.ApproverID,
			"actual_days", actualDays,
			"days_returned", daysReturned,
		)

		return nil
	})
	if err != nil {
		return request.InterruptionResult{}, err
	}

	return result, nil
}

// Get returns a single request by id.
func (s *Service) Get(ctx context.Context, requestID string) (request.LeaveRequest, error) {
	return s.requestRepo.GetByID(ctx, requestID)
}

// List returns requests matching the filter.
func (s *Service) List(ctx context.Context, filter request.RequestFilter) ([]request.LeaveRequest, error) {
	return s.requestRepo.List(ctx, filter)
}
