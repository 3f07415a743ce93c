package codec_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/converter"

	"cookie-delivery-system/codec"
	"cookie-delivery-system/models"
)

func TestNewEncryptionDataConverter_KeyLength(t *testing.T) {
	for _, size := range []int{16, 24, 32} {
		_, err := codec.NewEncryptionDataConverter(make([]byte, size))
		assert.NoError(t, err, "key size %d", size)
	}
	for _, size := range []int{0, 8, 31, 33} {
		_, err := codec.NewEncryptionDataConverter(make([]byte, size))
		assert.Error(t, err, "key size %d", size)
	}
}

func TestRoundTrip(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, 32)
	dc, err := codec.NewEncryptionDataConverter(key)
	require.NoError(t, err)

	order := models.Order{
		OrderNumber:         "ORD12345",
		CustomerEmail:       "john.doe@example.com",
		CustomerName:        "John Doe",
		DeliveryRequestDate: "2025-09-10",
		Status:              models.StatusOrderPlaced,
	}

	payload, err := dc.ToPayload(order)
	require.NoError(t, err)

	// The stored payload carries the encrypted marker and no readable data.
	assert.Equal(t, codec.MetadataEncodingEncrypted, string(payload.Metadata[converter.MetadataEncoding]))
	assert.NotContains(t, string(payload.Data), "john.doe@example.com")

	var decoded models.Order
	require.NoError(t, dc.FromPayload(payload, &decoded))
	assert.Equal(t, order, decoded)
}

func TestDecodePassesThroughUnencrypted(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, 32)
	dc, err := codec.NewEncryptionDataConverter(key)
	require.NoError(t, err)

	plain := converter.GetDefaultDataConverter()
	payload, err := plain.ToPayload("hello")
	require.NoError(t, err)

	var out string
	require.NoError(t, dc.FromPayload(payload, &out))
	assert.Equal(t, "hello", out)
}

func TestDecryptWithWrongKeyFails(t *testing.T) {
	dc1, err := codec.NewEncryptionDataConverter(bytes.Repeat([]byte{0x01}, 32))
	require.NoError(t, err)
	dc2, err := codec.NewEncryptionDataConverter(bytes.Repeat([]byte{0x02}, 32))
	require.NoError(t, err)

	payload, err := dc1.ToPayload("secret")
	require.NoError(t, err)

	var out string
	assert.Error(t, dc2.FromPayload(payload, &out))
}
