package workflows

import (
	"fmt"
	"strings"
	"time"

	"cookie-delivery-system/activities"
	"cookie-delivery-system/calendar"
	"cookie-delivery-system/mailer"
	"cookie-delivery-system/models"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

const (
	QueryState = "state"

	// EmailSubject is the fixed subject line on confirmation emails.
	EmailSubject = "Your Cookie Delivery is Scheduled!"
)

// Workflow outcomes. NothingToDo means the run found no pending order,
// which is a normal completion rather than a failure.
const (
	OutcomeCompleted   = "completed"
	OutcomeNothingToDo = "nothing-to-do"
)

// DeliveryInput configures one fulfillment run.
type DeliveryInput struct {
	// CheckExactSlot narrows the availability check from the whole
	// delivery date down to the order's own 30-minute slot.
	CheckExactSlot bool `json:"check_exact_slot"`
}

// DeliveryResult summarizes what a fulfillment run did.
type DeliveryResult struct {
	Outcome       string `json:"outcome"`
	OrderNumber   string `json:"order_number,omitempty"`
	EventID       string `json:"event_id,omitempty"`
	MessageID     string `json:"message_id,omitempty"`
	DeliveryMonth string `json:"delivery_month,omitempty"`
	ConflictCount int    `json:"conflict_count"`
	StatusDelayed bool   `json:"status_delayed"`
}

// DeliveryWorkflow runs one pass of cookie order fulfillment: pick up the
// most recent pending order, reserve a calendar slot for its requested date,
// compose a confirmation haiku, email the customer, and mark the order
// scheduled. Every step feeds the next, so activities run sequentially with
// a single attempt each; a failed step fails the run and already completed
// side effects are left in place.
func DeliveryWorkflow(ctx workflow.Context, input DeliveryInput) (*DeliveryResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("DeliveryWorkflow started", "check_exact_slot", input.CheckExactSlot)

	state := models.WorkflowState{
		Stage:       "intake",
		LastUpdated: workflow.Now(ctx),
	}

	err := workflow.SetQueryHandler(ctx, QueryState, func() (models.WorkflowState, error) {
		return state, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set query handler: %w", err)
	}

	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		HeartbeatTimeout:    10 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	var act *activities.Activities

	// Step 1: Fetch the pending order
	var fetch activities.FetchResult
	err = workflow.ExecuteActivity(ctx, act.FetchPendingOrder).Get(ctx, &fetch)
	if err != nil {
		logger.Error("Failed to fetch pending order", "error", err)
		return nil, fmt.Errorf("fetch pending order: %w", err)
	}
	if !fetch.Found {
		logger.Info("No pending orders, nothing to do")
		state.Stage = "completed"
		state.LastUpdated = workflow.Now(ctx)
		return &DeliveryResult{Outcome: OutcomeNothingToDo}, nil
	}

	order := fetch.Order
	state.OrderNumber = order.OrderNumber
	state.Order = order
	state.Stage = "derive-month"
	state.LastUpdated = workflow.Now(ctx)
	logger.Info("Picked up pending order", "order_number", order.OrderNumber, "delivery_date", order.DeliveryRequestDate)

	// Step 2: Derive the delivery month from the requested date. A date the
	// order intake let through malformed is a terminal input problem, not
	// something a retry can fix.
	month, err := models.DeliveryMonth(order.DeliveryRequestDate)
	if err != nil {
		logger.Error("Invalid delivery date on order", "order_number", order.OrderNumber, "delivery_date", order.DeliveryRequestDate, "error", err)
		return nil, temporal.NewNonRetryableApplicationError(
			fmt.Sprintf("invalid delivery date %q on order %s", order.DeliveryRequestDate, order.OrderNumber),
			"ValidationError", err)
	}
	state.DeliveryMonth = month
	state.Stage = "availability"
	state.LastUpdated = workflow.Now(ctx)

	// Step 3: Look at the calendar for the requested date. Conflicts are
	// logged and counted but never block scheduling: the business stacks
	// deliveries and resolves overlaps by hand.
	if input.CheckExactSlot {
		var avail calendar.Availability
		err = workflow.ExecuteActivity(ctx, act.CheckSlotAvailability, order.DeliveryRequestDate, order.TimePreference).Get(ctx, &avail)
		if err != nil {
			logger.Error("Slot availability check failed", "order_number", order.OrderNumber, "error", err)
			return nil, fmt.Errorf("check slot availability: %w", err)
		}
		state.ConflictCount = len(avail.Conflicts)
	} else {
		var existing []calendar.Event
		err = workflow.ExecuteActivity(ctx, act.GetDeliverySchedule, order.DeliveryRequestDate).Get(ctx, &existing)
		if err != nil {
			logger.Error("Failed to read delivery schedule", "order_number", order.OrderNumber, "error", err)
			return nil, fmt.Errorf("get delivery schedule: %w", err)
		}
		state.ConflictCount = len(existing)
	}
	if state.ConflictCount > 0 {
		logger.Warn("Calendar conflicts on requested date, scheduling anyway",
			"order_number", order.OrderNumber, "conflicts", state.ConflictCount)
	}
	state.Stage = "schedule"
	state.LastUpdated = workflow.Now(ctx)

	// Step 4: Reserve the delivery slot
	var event calendar.Event
	err = workflow.ExecuteActivity(ctx, act.ScheduleDelivery, activities.ScheduleDeliveryRequest{
		Date:           order.DeliveryRequestDate,
		OrderNumber:    order.OrderNumber,
		Location:       order.DeliveryLocation,
		TimePreference: order.TimePreference,
		CustomerName:   order.CustomerName,
	}).Get(ctx, &event)
	if err != nil {
		logger.Error("Failed to schedule delivery", "order_number", order.OrderNumber, "error", err)
		return nil, fmt.Errorf("schedule delivery: %w", err)
	}
	state.EventID = event.ID
	state.Stage = "haiku"
	state.LastUpdated = workflow.Now(ctx)
	logger.Info("Delivery slot reserved", "order_number", order.OrderNumber, "event_id", event.ID, "start", event.Start)

	// Step 5: Compose the confirmation haiku
	err = workflow.ExecuteActivity(ctx, act.WriteConfirmationHaiku, month, order.ItemNames()).Get(ctx, &state.HaikuText)
	if err != nil {
		logger.Error("Failed to compose haiku", "order_number", order.OrderNumber, "error", err)
		return nil, fmt.Errorf("write confirmation haiku: %w", err)
	}
	state.Stage = "notify"
	state.LastUpdated = workflow.Now(ctx)

	// Step 6: Email the customer
	var receipt mailer.Receipt
	err = workflow.ExecuteActivity(ctx, act.SendConfirmationEmail, activities.SendEmailRequest{
		To:      order.CustomerEmail,
		Subject: EmailSubject,
		Body:    confirmationBody(order, &event, state.HaikuText),
	}).Get(ctx, &receipt)
	if err != nil {
		logger.Error("Failed to send confirmation email", "order_number", order.OrderNumber, "error", err)
		return nil, fmt.Errorf("send confirmation email: %w", err)
	}
	state.MessageID = receipt.MessageID
	state.Stage = "finalize"
	state.LastUpdated = workflow.Now(ctx)
	logger.Info("Confirmation email sent", "order_number", order.OrderNumber, "message_id", receipt.MessageID)

	// Step 7: Mark the order scheduled. A streaming-buffer conflict on the
	// order backend still counts as success, the write lands once the
	// buffer settles.
	var update activities.StatusUpdate
	err = workflow.ExecuteActivity(ctx, act.UpdateOrderStatus, order.OrderNumber, models.StatusScheduled).Get(ctx, &update)
	if err != nil {
		logger.Error("Failed to update order status", "order_number", order.OrderNumber, "error", err)
		return nil, fmt.Errorf("update order status: %w", err)
	}
	state.StatusDelayed = update.Delayed
	if update.Delayed {
		logger.Warn("Order status write buffered, will apply after the buffer settles", "order_number", order.OrderNumber)
	}

	state.Stage = "completed"
	state.LastUpdated = workflow.Now(ctx)
	logger.Info("DeliveryWorkflow completed", "order_number", order.OrderNumber, "event_id", state.EventID, "status_delayed", state.StatusDelayed)

	return &DeliveryResult{
		Outcome:       OutcomeCompleted,
		OrderNumber:   order.OrderNumber,
		EventID:       state.EventID,
		MessageID:     state.MessageID,
		DeliveryMonth: state.DeliveryMonth,
		ConflictCount: state.ConflictCount,
		StatusDelayed: state.StatusDelayed,
	}, nil
}

// confirmationBody renders the plain-text confirmation email. It is pure so
// the email content stays deterministic for a given order and slot.
func confirmationBody(order *models.Order, event *calendar.Event, haikuText string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Dear %s,\n\n", order.CustomerName)
	b.WriteString("Great news! Your cookie delivery has been scheduled.\n\n")
	fmt.Fprintf(&b, "Order: %s\n", order.OrderNumber)
	fmt.Fprintf(&b, "Delivery date: %s\n", event.Start.Format("Monday, January 2, 2006"))
	fmt.Fprintf(&b, "Delivery window: %s to %s\n\n", event.Start.Format("3:04 PM"), event.End.Format("3:04 PM"))

	b.WriteString("Your order:\n")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "  - %d x %s\n", item.Quantity, item.Name)
	}
	b.WriteString("\n")

	if order.DeliveryLocation != "" {
		fmt.Fprintf(&b, "Delivering to: %s\n\n", order.DeliveryLocation)
	}
	if order.SpecialInstructions != "" {
		fmt.Fprintf(&b, "Special instructions: %s\n\n", order.SpecialInstructions)
	}

	b.WriteString("A little something while you wait:\n\n")
	b.WriteString(haikuText)
	b.WriteString("\n\nWarm regards,\nThe Cookie Business\n")

	return b.String()
}
