package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/absenta-hr/leave-backend-go/internal/domain/calendar"
	"github.com/absenta-hr/leave-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type calendarEventRepositoryImpl struct {
	db *database.DB
}

func NewCalendarEventRepository(db *database.DB) calendar.CalendarEventRepository {
	return &calendarEventRepositoryImpl{db: db}
}

// Create implements calendar.CalendarEventRepository.
func (r *calendarEventRepositoryImpl) Create(ctx context.Context, e calendar.CalendarEvent) (calendar.CalendarEvent, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		INSERT INTO calendar_events (
			id, title, description, event_type, start_date, end_date, color,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		e.ID, e.Title, e.Description, e.Type, e.StartDate, e.EndDate, e.Color,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return calendar.CalendarEvent{}, err
	}

	return e, nil
}

// GetByID implements calendar.CalendarEventRepository.
func (r *calendarEventRepositoryImpl) GetByID(ctx context.Context, id string) (calendar.CalendarEvent, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT id, title, description, event_type, start_date, end_date, color,
			created_at, updated_at
		FROM calendar_events
		WHERE id = $1
	`

	var e calendar.CalendarEvent
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Title, &e.Description, &e.Type, &e.StartDate, &e.EndDate,
		&e.Color, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return calendar.CalendarEvent{}, calendar.ErrEventNotFound
		}
		return calendar.CalendarEvent{}, err
	}

	return e, nil
}

// ListInRange implements calendar.CalendarEventRepository.
func (r *calendarEventRepositoryImpl) ListInRange(ctx context.Context, rangeStart, rangeEnd time.Time) ([]calendar.CalendarEvent, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT id, title, description, event_type, start_date, end_date, color,
			created_at, updated_at
		FROM calendar_events
		WHERE start_date <= $1 AND end_date >= $2
		ORDER BY start_date ASC
	`

	rows, err := q.Query(ctx, query, rangeEnd, rangeStart)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]calendar.CalendarEvent, 0)
	for rows.Next() {
		var e calendar.CalendarEvent
		err := rows.Scan(
			&e.ID, &e.Title, &e.Description, &e.Type, &e.StartDate, &e.EndDate,
			&e.Color, &e.CreatedAt, &e.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

// Delete implements calendar.CalendarEventRepository.
func (r *calendarEventRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := database.GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `DELETE FROM calendar_events WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return calendar.ErrEventNotFound
	}

	return nil
}
