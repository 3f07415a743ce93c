package calendar

import (
	"context"
	"errors"
	"strings"
	"time"
)

// SlotDuration is the fixed length of a reserved delivery slot.
const SlotDuration = 30 * time.Minute

// Time preferences accepted on orders. Anything else falls back to morning.
const (
	PreferenceMorning   = "morning"
	PreferenceAfternoon = "afternoon"
	PreferenceEvening   = "evening"
)

// ErrEventNotFound reports an unknown event identifier on update.
var ErrEventNotFound = errors.New("calendar event not found")

// Event is a reserved delivery slot on the business calendar.
type Event struct {
	ID          string    `json:"id"`
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Status      string    `json:"status"`
}

// Availability reports whether an exact time interval is free and which
// events overlap it.
type Availability struct {
	Available bool    `json:"available"`
	Conflicts []Event `json:"conflicts"`
}

// CreateEventRequest carries everything needed to reserve a delivery slot.
// CustomerName comes from the run's working record and ends up in the
// event description.
type CreateEventRequest struct {
	Date           string `json:"date"`
	OrderNumber    string `json:"order_number"`
	Location       string `json:"location"`
	TimePreference string `json:"time_preference"`
	CustomerName   string `json:"customer_name"`
}

// EventUpdate holds optional field overwrites for an existing event.
// The update capability exists on the backend but the fulfillment
// sequence never uses it.
type EventUpdate struct {
	Summary     *string `json:"summary,omitempty"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
}

// Calendar is the scheduling backend for the business calendar.
type Calendar interface {
	// ListEvents returns all events whose start falls within [from, to),
	// ordered by start time.
	ListEvents(ctx context.Context, from, to time.Time) ([]Event, error)

	// CreateEvent reserves the slot implied by the request's date and time
	// preference. No collision check is performed: callers decide what
	// counts as a conflict before creating.
	CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error)

	// CheckAvailability reports whether the exact interval is free of
	// overlapping events.
	CheckAvailability(ctx context.Context, start, end time.Time) (*Availability, error)

	// UpdateEvent overwrites fields on an existing event.
	UpdateEvent(ctx context.Context, eventID string, update EventUpdate) (*Event, error)
}

// SlotWindow maps a coarse time preference to the fixed wall-clock delivery
// slot on the given day: morning 09:00, afternoon 14:00, evening 18:00,
// each SlotDuration long in the day's location. Unrecognized preferences
// fall back to morning.
func SlotWindow(day time.Time, preference string) (time.Time, time.Time) {
	hour := 9
	switch strings.ToLower(strings.TrimSpace(preference)) {
	case PreferenceAfternoon:
		hour = 14
	case PreferenceEvening:
		hour = 18
	}
	start := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
	return start, start.Add(SlotDuration)
}
