package balance

import "context"

// LeaveBalanceRepository - interface for leave_balances table.
// GetForUpdate must lock the row for the lifetime of the ambient
// transaction so concurrent debit/credit on the same employee serialize.
type LeaveBalanceRepository interface {
	Create(ctx context.Context, b LeaveBalance) (LeaveBalance, error)
	GetByEmployeeYear(ctx context.Context, employeeID string, year int) (LeaveBalance, error)
	GetForUpdate(ctx context.Context, employeeID string, year int) (LeaveBalance, error)
	SetUsedDays(ctx context.Context, id string, usedDays int) error
	ListEmployeeIDsWithBalance(ctx context.Context, year int) ([]string, error)
}
