package calendar

import (
	"context"
	"time"
)

// CalendarEventRepository - interface for calendar_events table
type CalendarEventRepository interface {
	Create(ctx context.Context, e CalendarEvent) (CalendarEvent, error)
	GetByID(ctx context.Context, id string) (CalendarEvent, error)
	ListInRange(ctx context.Context, rangeStart, rangeEnd time.Time) ([]CalendarEvent, error)
	Delete(ctx context.Context, id string) error
}
