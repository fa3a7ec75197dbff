package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/absenta-hr/leave-backend-go/internal/domain/sellback"
	"github.com/absenta-hr/leave-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type sellBackRepositoryImpl struct {
	db *database.DB
}

func NewSellBackRepository(db *database.DB) sellback.SellBackRepository {
	return &sellBackRepositoryImpl{db: db}
}

// Create implements sellback.SellBackRepository.
func (r *sellBackRepositoryImpl) Create(ctx context.Context, sb sellback.SellBackRequest) (sellback.SellBackRequest, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		INSERT INTO sell_back_requests (
			id, employee_id, days_to_sell, reason, status, estimated_amount,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		sb.ID, sb.EmployeeID, sb.DaysToSell, sb.Reason, sb.Status, sb.EstimatedAmount,
	).Scan(&sb.CreatedAt, &sb.UpdatedAt)
	if err != nil {
		return sellback.SellBackRequest{}, err
	}

	return sb, nil
}

// GetByID implements sellback.SellBackRepository.
func (r *sellBackRepositoryImpl) GetByID(ctx context.Context, id string) (sellback.SellBackRequest, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT sb.id, sb.employee_id, sb.days_to_sell, sb.reason, sb.status,
			sb.estimated_amount, sb.created_at, sb.updated_at, e.full_name
		FROM sell_back_requests sb
		JOIN employees e ON e.id = sb.employee_id
		WHERE sb.id = $1
	`

	var sb sellback.SellBackRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&sb.ID, &sb.EmployeeID, &sb.DaysToSell, &sb.Reason, &sb.Status,
		&sb.EstimatedAmount, &sb.CreatedAt, &sb.UpdatedAt, &sb.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return sellback.SellBackRequest{}, sellback.ErrSellBackNotFound
		}
		return sellback.SellBackRequest{}, err
	}

	return sb, nil
}

// GetByEmployeeID implements sellback.SellBackRepository.
func (r *sellBackRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]sellback.SellBackRequest, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT sb.id, sb.employee_id, sb.days_to_sell, sb.reason, sb.status,
			sb.estimated_amount, sb.created_at, sb.updated_at, e.full_name
		FROM sell_back_requests sb
		JOIN employees e ON e.id = sb.employee_id
		WHERE sb.employee_id = $1
		ORDER BY sb.created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]sellback.SellBackRequest, 0)
	for rows.Next() {
		var sb sellback.SellBackRequest
		err := rows.Scan(
			&sb.ID, &sb.EmployeeID, &sb.DaysToSell, &sb.Reason, &sb.Status,
			&sb.EstimatedAmount, &sb.CreatedAt, &sb.UpdatedAt, &sb.EmployeeName,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, sb)
	}

	return requests, rows.Err()
}

// UpdateStatus implements sellback.SellBackRepository. Guarded flip, same
// contract as the leave request transition.
func (r *sellBackRepositoryImpl) UpdateStatus(ctx context.Context, id string, from, to sellback.Status) error {
	q := database.GetQuerier(ctx, r.db)

	query := `
		UPDATE sell_back_requests
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
	`

	result, err := q.Exec(ctx, query, to, time.Now(), id, from)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM sell_back_requests WHERE id = $1)`, id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return sellback.ErrSellBackNotFound
		}
		return sellback.ErrAlreadyProcessed
	}

	return nil
}
