package calendar

import "time"

type EventType string

const (
	EventTypeGoal     EventType = "goal"
	EventTypeHoliday  EventType = "holiday"
	EventTypeEvent    EventType = "event"
	EventTypeTraining EventType = "training"
)

func (t EventType) IsValid() bool {
	switch t {
	case EventTypeGoal, EventTypeHoliday, EventTypeEvent, EventTypeTraining:
		return true
	}
	return false
}

// CalendarEvent is an organizational entry with no balance effect. Purely
// informational for month aggregation.
type CalendarEvent struct {
	ID          string
	Title       string
	Description *string
	Type        EventType
	StartDate   time.Time
	EndDate     time.Time
	Color       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
