package activities

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.temporal.io/sdk/activity"

	"cookie-delivery-system/calendar"
	"cookie-delivery-system/haiku"
	"cookie-delivery-system/mailer"
	"cookie-delivery-system/models"
	"cookie-delivery-system/store"
)

// Activities contains all delivery fulfillment activities. Each activity
// wraps exactly one call against one of the injected backends.
type Activities struct {
	store    store.OrderStore
	calendar calendar.Calendar
	mailer   mailer.Mailer
	haiku    haiku.Generator
	loc      *time.Location
}

// New creates an Activities instance over the given backends. The location
// is the business's local zone, used to frame date-level calendar lookups.
func New(s store.OrderStore, c calendar.Calendar, m mailer.Mailer, g haiku.Generator, loc *time.Location) *Activities {
	if loc == nil {
		loc = time.UTC
	}
	return &Activities{
		store:    s,
		calendar: c,
		mailer:   m,
		haiku:    g,
		loc:      loc,
	}
}

// FetchResult reports the outcome of looking for a pending order. An empty
// order set is a normal result, not an error.
type FetchResult struct {
	Found bool          `json:"found"`
	Order *models.Order `json:"order,omitempty"`
}

// FetchPendingOrder returns the most recently placed order still awaiting
// fulfillment.
func (a *Activities) FetchPendingOrder(ctx context.Context) (*FetchResult, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Fetching pending order")

	order, err := a.store.FetchPendingOrder(ctx)
	if errors.Is(err, store.ErrNoPendingOrders) {
		logger.Info("No pending orders found")
		return &FetchResult{Found: false}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pending order: %w", err)
	}

	logger.Info("Found pending order", "order_number", order.OrderNumber)
	return &FetchResult{Found: true, Order: order}, nil
}

// GetDeliverySchedule lists every event already on the business calendar
// for the given date, using a half-open day range in the business zone.
func (a *Activities) GetDeliverySchedule(ctx context.Context, date string) ([]calendar.Event, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Fetching delivery schedule", "date", date)

	day, err := models.ParseDeliveryDate(date, a.loc)
	if err != nil {
		return nil, err
	}

	events, err := a.calendar.ListEvents(ctx, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	logger.Info("Delivery schedule fetched", "date", date, "events", len(events))
	return events, nil
}

// CheckSlotAvailability checks the exact half-hour slot implied by the date
// and time preference for overlapping events.
func (a *Activities) CheckSlotAvailability(ctx context.Context, date, timePreference string) (*calendar.Availability, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Checking slot availability", "date", date, "preference", timePreference)

	day, err := models.ParseDeliveryDate(date, a.loc)
	if err != nil {
		return nil, err
	}

	start, end := calendar.SlotWindow(day, timePreference)
	avail, err := a.calendar.CheckAvailability(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to check availability: %w", err)
	}

	logger.Info("Availability checked", "available", avail.Available, "conflicts", len(avail.Conflicts))
	return avail, nil
}

// ScheduleDeliveryRequest carries the scheduling inputs pulled from the
// run's working record.
type ScheduleDeliveryRequest struct {
	Date           string `json:"date"`
	OrderNumber    string `json:"order_number"`
	Location       string `json:"location"`
	TimePreference string `json:"time_preference"`
	CustomerName   string `json:"customer_name"`
}

// ScheduleDelivery reserves the delivery slot on the business calendar.
func (a *Activities) ScheduleDelivery(ctx context.Context, req ScheduleDeliveryRequest) (*calendar.Event, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Scheduling delivery", "order_number", req.OrderNumber, "date", req.Date)

	activity.RecordHeartbeat(ctx, "creating calendar event")

	event, err := a.calendar.CreateEvent(ctx, calendar.CreateEventRequest{
		Date:           req.Date,
		OrderNumber:    req.OrderNumber,
		Location:       req.Location,
		TimePreference: req.TimePreference,
		CustomerName:   req.CustomerName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	logger.Info("Delivery scheduled", "order_number", req.OrderNumber, "event_id", event.ID, "start", event.Start)
	return event, nil
}

// WriteConfirmationHaiku produces the confirmation poem for the email body.
func (a *Activities) WriteConfirmationHaiku(ctx context.Context, month string, items []string) (string, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Writing confirmation haiku", "month", month, "items", len(items))

	text, err := a.haiku.ConfirmationText(ctx, month, items)
	if err != nil {
		return "", fmt.Errorf("failed to generate confirmation text: %w", err)
	}
	return text, nil
}

// SendEmailRequest is a fully rendered outbound message.
type SendEmailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// SendConfirmationEmail delivers the confirmation message to the customer.
func (a *Activities) SendConfirmationEmail(ctx context.Context, req SendEmailRequest) (*mailer.Receipt, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Sending confirmation email", "to", req.To)

	activity.RecordHeartbeat(ctx, "sending email")

	receipt, err := a.mailer.Send(ctx, req.To, req.Subject, req.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to send email: %w", err)
	}

	logger.Info("Confirmation email sent", "to", req.To, "message_id", receipt.MessageID)
	return receipt, nil
}

// StatusUpdate reports the outcome of a status write. Delayed means the
// store buffered the write and will apply it later; the run still counts
// as successful.
type StatusUpdate struct {
	OrderNumber string             `json:"order_number"`
	NewStatus   models.OrderStatus `json:"new_status"`
	Delayed     bool               `json:"delayed"`
}

// UpdateOrderStatus writes a new status onto the named order. A streaming
// buffer conflict is reported as a delayed success, not an error.
func (a *Activities) UpdateOrderStatus(ctx context.Context, orderNumber string, status models.OrderStatus) (*StatusUpdate, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Updating order status", "order_number", orderNumber, "status", status)

	err := a.store.SetStatus(ctx, orderNumber, status)
	if errors.Is(err, store.ErrStreamingBuffer) {
		logger.Warn("Status update buffered by the store, will apply later", "order_number", orderNumber)
		return &StatusUpdate{OrderNumber: orderNumber, NewStatus: status, Delayed: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update order %s: %w", orderNumber, err)
	}

	logger.Info("Order status updated", "order_number", orderNumber, "status", status)
	return &StatusUpdate{OrderNumber: orderNumber, NewStatus: status}, nil
}
