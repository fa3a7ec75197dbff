package balance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/absenta-hr/leave-backend-go/internal/domain/balance"
	"github.com/absenta-hr/leave-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

// Ledger owns every mutation of leave balances. Call sites never touch
// used/available fields directly; they debit and credit through here, and
// each mutation runs under a row lock so concurrent approve, cancel and
// interrupt operations on the same employee serialize.
type Ledger struct {
	tx                database.TxRunner
	balanceRepo       balance.LeaveBalanceRepository
	defaultAnnualDays int
}

func NewLedger(tx database.TxRunner, balanceRepo balance.LeaveBalanceRepository, defaultAnnualDays int) *Ledger {
	return &Ledger{
		tx:                tx,
		balanceRepo:       balanceRepo,
		defaultAnnualDays: defaultAnnualDays,
	}
}

// EnsureBalance returns the employee's balance for the accrual period,
// opening the period with the default annual entitlement on first touch.
func (l *Ledger) EnsureBalance(ctx context.Context, employeeID string, year int) (balance.LeaveBalance, error) {
	b, err := l.balanceRepo.GetByEmployeeYear(ctx, employeeID, year)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, balance.ErrBalanceNotFound) {
		return balance.LeaveBalance{}, fmt.Errorf("failed to get leave balance: %w", err)
	}

	created, err := l.balanceRepo.Create(ctx, balance.LeaveBalance{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Year:       year,
		TotalDays:  l.defaultAnnualDays,
		UsedDays:   0,
	})
	if err != nil {
		return balance.LeaveBalance{}, fmt.Errorf("failed to open accrual period: %w", err)
	}

	slog.Info("Accrual period opened",
		"employee_id", employeeID,
		"year", year,
		"total_days", l.defaultAnnualDays,
	)

	return created, nil
}

// Available is the read-only projection total - used.
func (l *Ledger) Available(ctx context.Context, employeeID string, year int) (int, error) {
	b, err := l.EnsureBalance(ctx, employeeID, year)
	if err != nil {
		return 0, err
	}
	return b.AvailableDays(), nil
}

// Debit consumes days from the balance, failing with ErrInsufficientBalance
// when the amount exceeds what is available. The balance is unchanged on
// failure.
func (l *Ledger) Debit(ctx context.Context, employeeID string, year, days int) (balance.LeaveBalance, error) {
	var out balance.LeaveBalance

	err := l.tx.InTx(ctx, func(ctx context.Context) error {
		if _, err := l.EnsureBalance(ctx, employeeID, year); err != nil {
			return err
		}

		b, err := l.balanceRepo.GetForUpdate(ctx, employeeID, year)
		if err != nil {
			return fmt.Errorf("failed to lock leave balance: %w", err)
		}

		if err := b.Debit(days); err != nil {
			return err
		}

		if err := l.balanceRepo.SetUsedDays(ctx, b.ID, b.UsedDays); err != nil {
			return fmt.Errorf("failed to persist debit: %w", err)
		}

		out = b
		return nil
	})
	if err != nil {
		return balance.LeaveBalance{}, err
	}

	slog.Info("Balance debited",
		"employee_id", employeeID,
		"year", year,
		"days", days,
		"used_days", out.UsedDays,
		"available_days", out.AvailableDays(),
	)

	return out, nil
}

// Credit returns days to the balance, flooring used days at zero. A clamp
// means a refund exceeded what was ever consumed, so it is logged loudly
// instead of failing.
func (l *Ledger) Credit(ctx context.Context, employeeID string, year, days int) (balance.LeaveBalance, error) {
	var out balance.LeaveBalance
	var clamped bool

	err := l.tx.InTx(ctx, func(ctx context.Context) error {
		if _, err := l.EnsureBalance(ctx, employeeID, year); err != nil {
			return err
		}

		b, err := l.balanceRepo.GetForUpdate(ctx, employeeID, year)
		if err != nil {
			return fmt.Errorf("failed to lock leave balance: %w", err)
		}

		clamped, err = b.Credit(days)
		if err != nil {
			return err
		}

		if err := l.balanceRepo.SetUsedDays(ctx, b.ID, b.UsedDays); err != nil {
			return fmt.Errorf("failed to persist credit: %w", err)
		}

		out = b
		return nil
	})
	if err != nil {
		return balance.LeaveBalance{}, err
	}

	if clamped {
		slog.Warn("Balance credit clamped at zero used days",
			"employee_id", employeeID,
			"year", year,
			"credited_days", days,
		)
	}

	slog.Info("Balance credited",
		"employee_id", employeeID,
		"year", year,
		"days", days,
		"used_days", out.UsedDays,
		"available_days", out.AvailableDays(),
	)

	return out, nil
}
