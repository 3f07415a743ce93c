package store

import (
	"context"
	"sync"
	"time"

	"cookie-delivery-system/models"
)

// MemoryOrderStore is the in-memory reference implementation of OrderStore.
// It models the backing warehouse's streaming buffer: rows inserted less
// than bufferWindow ago cannot be updated in place. A buffered status write
// is remembered and applied by ApplyBuffered, the way the real buffer
// drains after a delay.
type MemoryOrderStore struct {
	mu           sync.Mutex
	orders       map[string]*models.Order
	insertedAt   map[string]time.Time
	buffered     map[string]models.OrderStatus
	bufferWindow time.Duration
	now          func() time.Time
}

// NewMemoryOrderStore creates an empty store. A zero bufferWindow disables
// streaming-buffer conflicts entirely.
func NewMemoryOrderStore(bufferWindow time.Duration) *MemoryOrderStore {
	return &MemoryOrderStore{
		orders:       make(map[string]*models.Order),
		insertedAt:   make(map[string]time.Time),
		buffered:     make(map[string]models.OrderStatus),
		bufferWindow: bufferWindow,
		now:          time.Now,
	}
}

// Insert adds an order to the store. The insertion time starts the
// streaming-buffer window for that row.
func (s *MemoryOrderStore) Insert(order models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := order
	s.orders[o.OrderNumber] = &o
	s.insertedAt[o.OrderNumber] = s.now()
}

// FetchPendingOrder returns a copy of the most recently created order with
// status order_placed.
func (s *MemoryOrderStore) FetchPendingOrder(ctx context.Context) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var latest *models.Order
	for _, o := range s.orders {
		if o.Status != models.StatusOrderPlaced {
			continue
		}
		if latest == nil || o.CreatedAt.After(latest.CreatedAt) {
			latest = o
		}
	}
	if latest == nil {
		return nil, ErrNoPendingOrders
	}

	cp := *latest
	return &cp, nil
}

// SetStatus applies a status write, or buffers it with ErrStreamingBuffer
// when the row is still inside the ingestion window.
func (s *MemoryOrderStore) SetStatus(ctx context.Context, orderNumber string, status models.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderNumber]
	if !ok {
		return ErrOrderNotFound
	}

	if s.bufferWindow > 0 && s.now().Sub(s.insertedAt[orderNumber]) < s.bufferWindow {
		s.buffered[orderNumber] = status
		return ErrStreamingBuffer
	}

	o.Status = status
	o.UpdatedAt = s.now().UTC()
	return nil
}

// ApplyBuffered applies every buffered status write, simulating the
// streaming buffer draining. Returns the number of writes applied.
func (s *MemoryOrderStore) ApplyBuffered() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	applied := 0
	for orderNumber, status := range s.buffered {
		if o, ok := s.orders[orderNumber]; ok {
			o.Status = status
			o.UpdatedAt = s.now().UTC()
			applied++
		}
		delete(s.buffered, orderNumber)
	}
	return applied
}

// Get returns a copy of the named order, for inspection in tests and demos.
func (s *MemoryOrderStore) Get(orderNumber string) (*models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderNumber]
	if !ok {
		return nil, false
	}
	cp := *o
	return &cp, true
}
