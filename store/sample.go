package store

import (
	"time"

	"cookie-delivery-system/models"
)

// SampleOrders returns the demo order set used to seed the in-memory store.
// Two orders wait in order_placed, one is already confirmed; the John Doe
// order is the newest placed one and is what a demo run picks up.
func SampleOrders(now time.Time) []models.Order {
	return []models.Order{
		{
			OrderID:       "ORD12345",
			OrderNumber:   "ORD12345",
			CustomerEmail: "john.doe@example.com",
			CustomerName:  "John Doe",
			CustomerPhone: "+1-555-0123",
			Items: []models.OrderItem{
				{Name: "Chocolate Chip", Quantity: 12, UnitPrice: 2.50},
				{Name: "Oatmeal Raisin", Quantity: 6, UnitPrice: 2.75},
				{Name: "Snickerdoodle", Quantity: 12, UnitPrice: 2.60},
			},
			DeliveryAddress: models.Address{
				Street:  "123 Main St",
				City:    "Anytown",
				State:   "CA",
				ZipCode: "12345",
				Country: "USA",
			},
			DeliveryLocation:    "123 Main St, Anytown, CA 12345, USA",
			DeliveryRequestDate: "2025-09-10",
			TimePreference:      "morning",
			Status:              models.StatusOrderPlaced,
			TotalAmount:         63.50,
			SpecialInstructions: "Please ring doorbell twice",
			CreatedAt:           now,
			UpdatedAt:           now,
		},
		{
			OrderID:       "ORD12346",
			OrderNumber:   "ORD12346",
			CustomerEmail: "jane.smith@example.com",
			CustomerName:  "Jane Smith",
			CustomerPhone: "+1-555-0124",
			Items: []models.OrderItem{
				{Name: "Double Chocolate", Quantity: 24, UnitPrice: 3.00},
				{Name: "Sugar Cookie", Quantity: 12, UnitPrice: 2.25},
			},
			DeliveryAddress: models.Address{
				Street:  "456 Oak Ave",
				City:    "Springfield",
				State:   "CA",
				ZipCode: "67890",
				Country: "USA",
			},
			DeliveryLocation:    "456 Oak Ave, Springfield, CA 67890, USA",
			DeliveryRequestDate: "2025-09-11",
			TimePreference:      "afternoon",
			Status:              models.StatusOrderPlaced,
			TotalAmount:         99.00,
			SpecialInstructions: "Leave at front door",
			CreatedAt:           now.Add(-time.Hour),
			UpdatedAt:           now.Add(-time.Hour),
		},
		{
			OrderID:       "ORD12347",
			OrderNumber:   "ORD12347",
			CustomerEmail: "bob.wilson@example.com",
			CustomerName:  "Bob Wilson",
			CustomerPhone: "+1-555-0125",
			Items: []models.OrderItem{
				{Name: "Peanut Butter", Quantity: 18, UnitPrice: 2.80},
			},
			DeliveryAddress: models.Address{
				Street:  "789 Pine Ln",
				City:    "Riverside",
				State:   "CA",
				ZipCode: "54321",
				Country: "USA",
			},
			DeliveryLocation:    "789 Pine Ln, Riverside, CA 54321, USA",
			DeliveryRequestDate: "2025-09-12",
			TimePreference:      "evening",
			Status:              models.StatusConfirmed,
			TotalAmount:         50.40,
			SpecialInstructions: "Call upon arrival",
			CreatedAt:           now.Add(-2 * time.Hour),
			UpdatedAt:           now.Add(-2 * time.Hour),
		},
	}
}
