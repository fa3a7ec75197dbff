package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/absenta-hr/leave-backend-go/internal/domain/request"
	"github.com/absenta-hr/leave-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) request.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

// Create implements request.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, lr request.LeaveRequest) (request.LeaveRequest, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type, start_date, end_date, total_days,
			reason, status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		lr.ID, lr.EmployeeID, lr.Type, lr.StartDate, lr.EndDate,
		lr.TotalDays, lr.Reason, lr.Status,
	).Scan(&lr.CreatedAt, &lr.UpdatedAt)
	if err != nil {
		return request.LeaveRequest{}, err
	}

	return lr, nil
}

// GetByID implements request.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (request.LeaveRequest, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, leave_type, start_date, end_date, total_days,
			actual_days, reason, status, approver_id, reject_reason,
			created_at, updated_at
		FROM leave_requests
		WHERE id = $1
	`

	var lr request.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&lr.ID, &lr.EmployeeID, &lr.Type, &lr.StartDate, &lr.EndDate,
		&lr.TotalDays, &lr.ActualDays, &lr.Reason, &lr.Status,
		&lr.ApproverID, &lr.RejectReason, &lr.CreatedAt, &lr.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return request.LeaveRequest{}, request.ErrRequestNotFound
		}
		return request.LeaveRequest{}, err
	}

	return lr, nil
}

// List implements request.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter request.RequestFilter) ([]request.LeaveRequest, error) {
	q := database.GetQuerier(ctx, r.db)

	var conditions []string
	var args []any
	argPos := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", argPos))
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.Type != nil {
		conditions = append(conditions, fmt.Sprintf("leave_type = $%d", argPos))
		args = append(args, *filter.Type)
		argPos++
	}
	if filter.Year != nil {
		conditions = append(conditions, fmt.Sprintf("EXTRACT(YEAR FROM start_date) = $%d", argPos))
		args = append(args, *filter.Year)
		argPos++
	}

	query := `
		SELECT id, employee_id, leave_type, start_date, end_date, total_days,
			actual_days, reason, status, approver_id, reject_reason,
			created_at, updated_at
		FROM leave_requests
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY start_date DESC, created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLeaveRequests(rows)
}

// UpdateStatus flips a request from one status to another in a single
// guarded statement. Zero rows affected means the request was not in the
// expected source status, so a concurrent actor won the transition.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, from, to request.Status, upd request.StatusUpdate) error {
	q := database.GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1,
			approver_id = COALESCE($2, approver_id),
			reject_reason = COALESCE($3, reject_reason),
			actual_days = COALESCE($4, actual_days),
			updated_at = $5
		WHERE id = $6 AND status = $7
	`

	result, err := q.Exec(ctx, query,
		to, upd.ApproverID, upd.RejectReason, upd.ActualDays,
		time.Now(), id, from,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		// Distinguish a missing row from a lost transition.
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM leave_requests WHERE id = $1)`, id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return request.ErrRequestNotFound
		}
		return request.ErrInvalidStateTransition
	}

	return nil
}

// ListApprovedInRange returns approved requests for the given employees
// whose inclusive date span touches [rangeStart, rangeEnd].
func (r *leaveRequestRepositoryImpl) ListApprovedInRange(ctx context.Context, employeeIDs []string, rangeStart, rangeEnd time.Time) ([]request.LeaveRequest, error) {
	if len(employeeIDs) == 0 {
		return []request.LeaveRequest{}, nil
	}

	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, leave_type, start_date, end_date, total_days,
			actual_days, reason, status, approver_id, reject_reason,
			created_at, updated_at
		FROM leave_requests
		WHERE employee_id = ANY($1)
		AND status = $2
		AND start_date <= $3
		AND end_date >= $4
		ORDER BY start_date ASC
	`

	rows, err := q.Query(ctx, query, employeeIDs, request.StatusApproved, rangeEnd, rangeStart)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLeaveRequests(rows)
}

func scanLeaveRequests(rows pgx.Rows) ([]request.LeaveRequest, error) {
	requests := make([]request.LeaveRequest, 0)
	for rows.Next() {
		var lr request.LeaveRequest
		err := rows.Scan(
			&lr.ID, &lr.EmployeeID, &lr.Type, &lr.StartDate, &lr.EndDate,
			&lr.TotalDays, &lr.ActualDays, &lr.Reason, &lr.Status,
			&lr.ApproverID, &lr.RejectReason, &lr.CreatedAt, &lr.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}
