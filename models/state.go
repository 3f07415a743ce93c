package models

import "time"

// WorkflowState is the working record for one fulfillment run. It carries
// intermediate results between steps and is exposed through the workflow's
// state query. It is owned by a single run and discarded when the run ends.
type WorkflowState struct {
	OrderNumber   string    `json:"order_number"`
	Stage         string    `json:"stage"`
	Order         *Order    `json:"order,omitempty"`
	DeliveryMonth string    `json:"delivery_month,omitempty"`
	HaikuText     string    `json:"haiku_text,omitempty"`
	EventID       string    `json:"event_id,omitempty"`
	MessageID     string    `json:"message_id,omitempty"`
	ConflictCount int       `json:"conflict_count"`
	StatusDelayed bool      `json:"status_delayed"`
	LastUpdated   time.Time `json:"last_updated"`
}
