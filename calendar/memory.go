package calendar

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"cookie-delivery-system/models"
)

// MemoryCalendar is the in-memory reference implementation of Calendar.
// Like the real backend it enforces nothing at creation time: two events
// can share a slot, and availability is the caller's problem.
type MemoryCalendar struct {
	mu     sync.Mutex
	loc    *time.Location
	events []Event
}

// NewMemoryCalendar creates an empty calendar whose slots live in loc.
func NewMemoryCalendar(loc *time.Location) *MemoryCalendar {
	if loc == nil {
		loc = time.UTC
	}
	return &MemoryCalendar{loc: loc}
}

// Location returns the calendar's local zone.
func (c *MemoryCalendar) Location() *time.Location {
	return c.loc
}

func (c *MemoryCalendar) ListEvents(ctx context.Context, from, to time.Time) ([]Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []Event
	for _, ev := range c.events {
		if !ev.Start.Before(from) && ev.Start.Before(to) {
			out = append(out, ev)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

func (c *MemoryCalendar) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	day, err := models.ParseDeliveryDate(req.Date, c.loc)
	if err != nil {
		return nil, err
	}

	start, end := SlotWindow(day, req.TimePreference)
	ev := Event{
		ID:          uuid.NewString(),
		Summary:     fmt.Sprintf("Delivery for %s", req.OrderNumber),
		Description: fmt.Sprintf("Cookie delivery for %s", req.CustomerName),
		Location:    req.Location,
		Start:       start,
		End:         end,
		Status:      "confirmed",
	}

	c.mu.Lock()
	c.events = append(c.events, ev)
	c.mu.Unlock()

	return &ev, nil
}

func (c *MemoryCalendar) CheckAvailability(ctx context.Context, start, end time.Time) (*Availability, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var conflicts []Event
	for _, ev := range c.events {
		if ev.Start.Before(end) && ev.End.After(start) {
			conflicts = append(conflicts, ev)
		}
	}
	sort.Slice(conflicts, func(i, j int) bool { return conflicts[i].Start.Before(conflicts[j].Start) })

	return &Availability{
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
	}, nil
}

func (c *MemoryCalendar) UpdateEvent(ctx context.Context, eventID string, update EventUpdate) (*Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.events {
		if c.events[i].ID != eventID {
			continue
		}
		if update.Summary != nil {
			c.events[i].Summary = *update.Summary
		}
		if update.Description != nil {
			c.events[i].Description = *update.Description
		}
		if update.Location != nil {
			c.events[i].Location = *update.Location
		}
		cp := c.events[i]
		return &cp, nil
	}
	return nil, ErrEventNotFound
}
