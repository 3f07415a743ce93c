package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryMonth(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		want    string
		wantErr bool
	}{
		{
			name: "Success - September",
			date: "2025-09-10",
			want: "September",
		},
		{
			name: "Success - January",
			date: "2026-01-02",
			want: "January",
		},
		{
			name: "Success - December",
			date: "2025-12-31",
			want: "December",
		},
		{
			name:    "Failure - Slash Separators",
			date:    "2025/09/10",
			wantErr: true,
		},
		{
			name:    "Failure - Day First",
			date:    "10-09-2025",
			wantErr: true,
		},
		{
			name:    "Failure - Missing Padding",
			date:    "2025-9-1",
			wantErr: true,
		},
		{
			name:    "Failure - Empty",
			date:    "",
			wantErr: true,
		},
		{
			name:    "Failure - Free Text",
			date:    "next Tuesday",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DeliveryMonth(tt.date)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDeliveryDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeliveryMonthIsPure(t *testing.T) {
	first, err := DeliveryMonth("2025-09-10")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := DeliveryMonth("2025-09-10")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestItemNames(t *testing.T) {
	order := Order{
		Items: []OrderItem{
			{Name: "Chocolate Chip", Quantity: 12, UnitPrice: 2.50},
			{Name: "Oatmeal Raisin", Quantity: 6, UnitPrice: 2.75},
		},
	}

	assert.Equal(t, []string{"Chocolate Chip", "Oatmeal Raisin"}, order.ItemNames())
}
