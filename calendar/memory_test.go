package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotWindow(t *testing.T) {
	day := time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		preference string
		wantHour   int
	}{
		{name: "Morning", preference: "morning", wantHour: 9},
		{name: "Afternoon", preference: "afternoon", wantHour: 14},
		{name: "Evening", preference: "evening", wantHour: 18},
		{name: "Unrecognized Falls Back To Morning", preference: "midnight snack", wantHour: 9},
		{name: "Empty Falls Back To Morning", preference: "", wantHour: 9},
		{name: "Case And Whitespace Tolerant", preference: "  Evening ", wantHour: 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := SlotWindow(day, tt.preference)
			assert.Equal(t, tt.wantHour, start.Hour())
			assert.Equal(t, 0, start.Minute())
			assert.Equal(t, SlotDuration, end.Sub(start))
			assert.Equal(t, day.Location(), start.Location())
		})
	}
}

func TestCreateEvent(t *testing.T) {
	c := NewMemoryCalendar(time.UTC)

	ev, err := c.CreateEvent(context.Background(), CreateEventRequest{
		Date:           "2025-09-10",
		OrderNumber:    "ORD12345",
		Location:       "123 Main St, Anytown, CA 12345, USA",
		TimePreference: "morning",
		CustomerName:   "John Doe",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, "Delivery for ORD12345", ev.Summary)
	assert.Contains(t, ev.Description, "John Doe")
	assert.Equal(t, "123 Main St, Anytown, CA 12345, USA", ev.Location)
	assert.Equal(t, "confirmed", ev.Status)
	assert.Equal(t, time.Date(2025, 9, 10, 9, 0, 0, 0, time.UTC), ev.Start)
	assert.Equal(t, time.Date(2025, 9, 10, 9, 30, 0, 0, time.UTC), ev.End)
	assert.True(t, ev.Start.Before(ev.End))
}

func TestCreateEventRejectsBadDate(t *testing.T) {
	c := NewMemoryCalendar(time.UTC)

	_, err := c.CreateEvent(context.Background(), CreateEventRequest{
		Date:        "2025/09/10",
		OrderNumber: "ORD12345",
	})
	assert.Error(t, err)
}

func TestCreateEventDoesNotEnforceCollisions(t *testing.T) {
	c := NewMemoryCalendar(time.UTC)
	req := CreateEventRequest{
		Date:           "2025-09-10",
		OrderNumber:    "ORD12345",
		TimePreference: "morning",
	}

	first, err := c.CreateEvent(context.Background(), req)
	require.NoError(t, err)
	second, err := c.CreateEvent(context.Background(), req)
	require.NoError(t, err)

	// Same slot, two events: reservation is not atomic by design of the
	// backend contract, so both land on the calendar.
	assert.Equal(t, first.Start, second.Start)
	assert.NotEqual(t, first.ID, second.ID)

	day := time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)
	events, err := c.ListEvents(context.Background(), day, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestListEvents(t *testing.T) {
	c := NewMemoryCalendar(time.UTC)

	for _, tc := range []struct{ date, order, pref string }{
		{"2025-09-10", "ORD-B", "evening"},
		{"2025-09-10", "ORD-A", "morning"},
		{"2025-09-11", "ORD-C", "morning"},
	} {
		_, err := c.CreateEvent(context.Background(), CreateEventRequest{
			Date:           tc.date,
			OrderNumber:    tc.order,
			TimePreference: tc.pref,
		})
		require.NoError(t, err)
	}

	day := time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)
	events, err := c.ListEvents(context.Background(), day, day.AddDate(0, 0, 1))
	require.NoError(t, err)

	// Half-open range: only the target day, ordered by start time.
	require.Len(t, events, 2)
	assert.Equal(t, "Delivery for ORD-A", events[0].Summary)
	assert.Equal(t, "Delivery for ORD-B", events[1].Summary)
}

func TestCheckAvailability(t *testing.T) {
	c := NewMemoryCalendar(time.UTC)

	_, err := c.CreateEvent(context.Background(), CreateEventRequest{
		Date:           "2025-09-10",
		OrderNumber:    "ORD-X",
		TimePreference: "morning",
	})
	require.NoError(t, err)

	t.Run("Overlapping Slot Is Busy", func(t *testing.T) {
		start := time.Date(2025, 9, 10, 9, 15, 0, 0, time.UTC)
		got, err := c.CheckAvailability(context.Background(), start, start.Add(SlotDuration))
		require.NoError(t, err)
		assert.False(t, got.Available)
		assert.Len(t, got.Conflicts, 1)
	})

	t.Run("Touching Slot Is Free", func(t *testing.T) {
		start := time.Date(2025, 9, 10, 9, 30, 0, 0, time.UTC)
		got, err := c.CheckAvailability(context.Background(), start, start.Add(SlotDuration))
		require.NoError(t, err)
		assert.True(t, got.Available)
		assert.Empty(t, got.Conflicts)
	})

	t.Run("Different Day Is Free", func(t *testing.T) {
		start := time.Date(2025, 9, 11, 9, 0, 0, 0, time.UTC)
		got, err := c.CheckAvailability(context.Background(), start, start.Add(SlotDuration))
		require.NoError(t, err)
		assert.True(t, got.Available)
	})
}

func TestUpdateEvent(t *testing.T) {
	c := NewMemoryCalendar(time.UTC)

	ev, err := c.CreateEvent(context.Background(), CreateEventRequest{
		Date:           "2025-09-10",
		OrderNumber:    "ORD-U",
		TimePreference: "morning",
		Location:       "old location",
	})
	require.NoError(t, err)

	newLoc := "new location"
	updated, err := c.UpdateEvent(context.Background(), ev.ID, EventUpdate{Location: &newLoc})
	require.NoError(t, err)
	assert.Equal(t, "new location", updated.Location)
	assert.Equal(t, ev.Summary, updated.Summary)

	_, err = c.UpdateEvent(context.Background(), "no-such-event", EventUpdate{})
	assert.ErrorIs(t, err, ErrEventNotFound)
}
