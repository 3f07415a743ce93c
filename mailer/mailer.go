package mailer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Receipt is the delivery receipt returned for every sent message.
type Receipt struct {
	MessageID string    `json:"message_id"`
	Recipient string    `json:"recipient"`
	SentAt    time.Time `json:"sent_at"`
}

// Mailer is the email backend for customer communication.
type Mailer interface {
	// Send delivers a fully rendered message and returns a receipt with a
	// message identifier unique per call.
	Send(ctx context.Context, to, subject, body string) (*Receipt, error)
}

// SentMessage records one delivered message, for inspection.
type SentMessage struct {
	To      string
	Subject string
	Body    string
	Receipt Receipt
}

// MemoryMailer is the in-memory reference implementation of Mailer. It
// records every message instead of delivering it.
type MemoryMailer struct {
	mu   sync.Mutex
	from string
	sent []SentMessage
}

// NewMemoryMailer creates a mailer sending on behalf of the given business
// address.
func NewMemoryMailer(from string) *MemoryMailer {
	return &MemoryMailer{from: from}
}

func (m *MemoryMailer) Send(ctx context.Context, to, subject, body string) (*Receipt, error) {
	if to == "" {
		return nil, fmt.Errorf("recipient address is empty")
	}
	if subject == "" {
		return nil, fmt.Errorf("subject is empty")
	}

	receipt := Receipt{
		MessageID: uuid.NewString(),
		Recipient: to,
		SentAt:    time.Now().UTC(),
	}

	m.mu.Lock()
	m.sent = append(m.sent, SentMessage{To: to, Subject: subject, Body: body, Receipt: receipt})
	m.mu.Unlock()

	return &receipt, nil
}

// From returns the configured sender address.
func (m *MemoryMailer) From() string {
	return m.from
}

// Sent returns a copy of every recorded message in send order.
func (m *MemoryMailer) Sent() []SentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentMessage, len(m.sent))
	copy(out, m.sent)
	return out
}
