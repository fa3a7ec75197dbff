package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/absenta-hr/leave-backend-go/internal/domain/balance"
	"github.com/absenta-hr/leave-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) balance.LeaveBalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

// Create implements balance.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) Create(ctx context.Context, b balance.LeaveBalance) (balance.LeaveBalance, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_balances (
			id, employee_id, year, total_days, used_days, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		b.ID, b.EmployeeID, b.Year, b.TotalDays, b.UsedDays,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return balance.LeaveBalance{}, err
	}

	return b, nil
}

// GetByEmployeeYear implements balance.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) GetByEmployeeYear(ctx context.Context, employeeID string, year int) (balance.LeaveBalance, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, year, total_days, used_days, created_at, updated_at
		FROM leave_balances
		WHERE employee_id = $1 AND year = $2
	`

	var b balance.LeaveBalance
	err := q.QueryRow(ctx, query, employeeID, year).Scan(
		&b.ID, &b.EmployeeID, &b.Year, &b.TotalDays, &b.UsedDays,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return balance.LeaveBalance{}, balance.ErrBalanceNotFound
		}
		return balance.LeaveBalance{}, err
	}

	return b, nil
}

// GetForUpdate locks the balance row for the rest of the ambient
// transaction, serializing concurrent debit/credit on the same employee.
func (r *leaveBalanceRepositoryImpl) GetForUpdate(ctx context.Context, employeeID string, year int) (balance.LeaveBalance, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, year, total_days, used_days, created_at, updated_at
		FROM leave_balances
		WHERE employee_id = $1 AND year = $2
		FOR UPDATE
	`

	var b balance.LeaveBalance
	err := q.QueryRow(ctx, query, employeeID, year).Scan(
		&b.ID, &b.EmployeeID, &b.Year, &b.TotalDays, &b.UsedDays,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return balance.LeaveBalance{}, balance.ErrBalanceNotFound
		}
		return balance.LeaveBalance{}, err
	}

	return b, nil
}

// SetUsedDays implements balance.LeaveBalanceRepository. The CHECK-style
// guard in the WHERE clause is a second line of defense behind the entity
// arithmetic: a write that would break 0 <= used <= total affects no rows.
func (r *leaveBalanceRepositoryImpl) SetUsedDays(ctx context.Context, id string, usedDays int) error {
	q := database.GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balances
		SET used_days = $1, updated_at = $2
		WHERE id = $3
		AND $1 >= 0 AND $1 <= total_days
	`

	result, err := q.Exec(ctx, query, usedDays, time.Now(), id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return balance.ErrInsufficientBalance
	}

	return nil
}

// ListEmployeeIDsWithBalance implements balance.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) ListEmployeeIDsWithBalance(ctx context.Context, year int) ([]string, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id
		FROM leave_balances
		WHERE year = $1
		ORDER BY employee_id
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
