package mailer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend(t *testing.T) {
	m := NewMemoryMailer("deliveries@cookiebusiness.com")

	receipt, err := m.Send(context.Background(), "john.doe@example.com", "Hello", "body text")
	require.NoError(t, err)

	assert.NotEmpty(t, receipt.MessageID)
	assert.Equal(t, "john.doe@example.com", receipt.Recipient)
	assert.False(t, receipt.SentAt.IsZero())

	sent := m.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "Hello", sent[0].Subject)
	assert.Equal(t, "body text", sent[0].Body)
}

func TestSendGeneratesUniqueMessageIDs(t *testing.T) {
	m := NewMemoryMailer("deliveries@cookiebusiness.com")

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		receipt, err := m.Send(context.Background(), "a@example.com", "s", "b")
		require.NoError(t, err)
		assert.False(t, seen[receipt.MessageID], "message id reused")
		seen[receipt.MessageID] = true
	}
}

func TestSendValidation(t *testing.T) {
	m := NewMemoryMailer("deliveries@cookiebusiness.com")

	_, err := m.Send(context.Background(), "", "subject", "body")
	assert.Error(t, err)

	_, err = m.Send(context.Background(), "a@example.com", "", "body")
	assert.Error(t, err)

	assert.Empty(t, m.Sent())
}
