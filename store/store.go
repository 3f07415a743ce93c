package store

import (
	"context"
	"errors"

	"cookie-delivery-system/models"
)

var (
	// ErrNoPendingOrders means no order is waiting in order_placed status.
	// It is a normal empty-result condition, not a failure.
	ErrNoPendingOrders = errors.New("no pending orders")

	// ErrOrderNotFound means no order exists with the given order number.
	ErrOrderNotFound = errors.New("order not found")

	// ErrStreamingBuffer means the store accepted a status write but cannot
	// apply it yet because the row sits in an ingestion buffer. Callers must
	// treat this as "accepted, will apply later", not as failure.
	ErrStreamingBuffer = errors.New("row is in the streaming buffer, update will apply later")
)

// OrderStore is the order persistence backend. Implementations are selected
// by configuration; the in-memory one is the reference used in tests and
// demo runs.
type OrderStore interface {
	// FetchPendingOrder returns the most recently created order with status
	// order_placed, or ErrNoPendingOrders when none exists.
	FetchPendingOrder(ctx context.Context) (*models.Order, error)

	// SetStatus overwrites the status and update timestamp of the named
	// order. Returns ErrOrderNotFound for unknown order numbers and
	// ErrStreamingBuffer when the write is accepted but deferred.
	SetStatus(ctx context.Context, orderNumber string, status models.OrderStatus) error
}
