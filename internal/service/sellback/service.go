package sellback

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/absenta-hr/leave-backend-go/internal/domain/employee"
	"github.com/absenta-hr/leave-backend-go/internal/domain/sellback"
	"github.com/absenta-hr/leave-backend-go/internal/pkg/database"
	balanceService "github.com/absenta-hr/leave-backend-go/internal/service/balance"
	"github.com/google/uuid"
)

// Service handles sell-back (abono) claims: converting unused leave days
// into a payout claim. The ledger is never mutated here; the engine only
// guarantees a claim can never exceed the balance available at the time of
// the check. The payout itself is another system's problem.
type Service struct {
	tx           database.TxRunner
	sellBackRepo sellback.SellBackRepository
	employeeRepo employee.EmployeeRepository
	ledger       *balanceService.Ledger
	maxDays      int

	now func() time.Time
}

func NewService(tx database.TxRunner, sellBackRepo sellback.SellBackRepository, employeeRepo employee.EmployeeRepository, ledger *balanceService.Ledger, maxDays int) *Service {
	return &Service{
		tx:           tx,
		sellBackRepo: sellBackRepo,
		employeeRepo: employeeRepo,
		ledger:       ledger,
		maxDays:      maxDays,
		now:          time.Now,
	}
}

// Create submits a claim. Guards: 1 <= days <= 30 and days <= available at
// submission time. Multiple pending claims may coexist; the balance check
// runs again at approval since availability may have shrunk in between.
func (s *Service) Create(ctx context.Context, req sellback.CreateSellBackRequest) (sellback.SellBackRequest, error) {
	if req.DaysToSell < 1 || req.DaysToSell > s.maxDays {
		return sellback.SellBackRequest{}, sellback.ErrDaysOutOfRange
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return sellback.SellBackRequest{}, fmt.Errorf("failed to get employee: %w", err)
	}

	available, err := s.ledger.Available(ctx, emp.ID, s.now().UTC().Year())
	if err != nil {
		return sellback.SellBackRequest{}, err
	}
	if req.DaysToSell > available {
		return sellback.SellBackRequest{}, sellback.ErrExceedsAvailableDays
	}

	created, err := s.sellBackRepo.Create(ctx, sellback.SellBackRequest{
		ID:              uuid.NewString(),
		EmployeeID:      emp.ID,
		DaysToSell:      req.DaysToSell,
		Reason:          req.Reason,
		Status:          sellback.StatusPending,
		EstimatedAmount: sellback.EstimatePayout(emp.MonthlySalary, req.DaysToSell),
	})
	if err != nil {
		return sellback.SellBackRequest{}, fmt.Errorf("failed to create sell-back request: %w", err)
	}

	slog.Info("Sell-back request created",
		"sell_back_id", created.ID,
		"employee_id", created.EmployeeID,
		"days_to_sell", created.DaysToSell,
		"estimated_amount", created.EstimatedAmount.StringFixed(2),
	)

	return created, nil
}

// Approve re-validates the claim against the current balance before flipping
// pending -> approved. The payout ledger effect is out of scope here.
func (s *Service) Approve(ctx context.Context, sellBackID string) (sellback.SellBackRequest, error) {
	var req sellback.SellBackRequest

	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		var err error
		req, err = s.sellBackRepo.GetByID(ctx, sellBackID)
		if err != nil {
			return err
		}

		if req.Status != sellback.StatusPending {
			return sellback.ErrAlreadyProcessed
		}

		available, err := s.ledger.Available(ctx, req.EmployeeID, s.now().UTC().Year())
		if err != nil {
			return err
		}
		if req.DaysToSell > available {
			return sellback.ErrExceedsAvailableDays
		}

		if err := s.sellBackRepo.UpdateStatus(ctx, req.ID, sellback.StatusPending, sellback.StatusApproved); err != nil {
			return err
		}

		req.Status = sellback.StatusApproved
		return nil
	})
	if err != nil {
		return sellback.SellBackRequest{}, err
	}

	slog.Info("Sell-back request approved",
		"sell_back_id", req.ID,
		"employee_id", req.EmployeeID,
		"days_to_sell", req.DaysToSell,
	)

	return req, nil
}

// Reject flips pending -> rejected.
func (s *Service) Reject(ctx context.Context, sellBackID string) (sellback.SellBackRequest, error) {
	req, err := s.sellBackRepo.GetByID(ctx, sellBackID)
	if err != nil {
		return sellback.SellBackRequest{}, err
	}

	if req.Status != sellback.StatusPending {
		return sellback.SellBackRequest{}, sellback.ErrAlreadyProcessed
	}

	if err := s.sellBackRepo.UpdateStatus(ctx, req.ID, sellback.StatusPending, sellback.StatusRejected); err != nil {
		return sellback.SellBackRequest{}, err
	}

	req.Status = sellback.StatusRejected

	slog.Info("Sell-back request rejected",
		"sell_back_id", req.ID,
		"employee_id", req.EmployeeID,
	)

	return req, nil
}

// ListByEmployee returns all claims of one employee, newest first.
func (s *Service) ListByEmployee(ctx context.Context, employeeID string) ([]sellback.SellBackRequest, error) {
	return s.sellBackRepo.GetByEmployeeID(ctx, employeeID)
}
