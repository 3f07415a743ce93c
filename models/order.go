package models

import "time"

// Order represents one customer cookie purchase.
type Order struct {
	OrderID             string      `json:"order_id"`
	OrderNumber         string      `json:"order_number"`
	CustomerEmail       string      `json:"customer_email"`
	CustomerName        string      `json:"customer_name"`
	CustomerPhone       string      `json:"customer_phone,omitempty"`
	Items               []OrderItem `json:"order_items"`
	DeliveryAddress     Address     `json:"delivery_address"`
	DeliveryLocation    string      `json:"delivery_location"`
	DeliveryRequestDate string      `json:"delivery_request_date"`
	TimePreference      string      `json:"delivery_time_preference"`
	Status              OrderStatus `json:"order_status"`
	TotalAmount         float64     `json:"total_amount"`
	SpecialInstructions string      `json:"special_instructions,omitempty"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

// OrderItem represents a single line item in an order
type OrderItem struct {
	Name      string  `json:"item_name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Address is a structured delivery address
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

// OrderStatus represents the current status of an order
type OrderStatus string

const (
	StatusOrderPlaced OrderStatus = "order_placed"
	StatusConfirmed   OrderStatus = "confirmed"
	StatusScheduled   OrderStatus = "scheduled"
	StatusDelivered   OrderStatus = "delivered"
	StatusCancelled   OrderStatus = "cancelled"
)

// ItemNames returns the item names in order, for the confirmation text step.
func (o *Order) ItemNames() []string {
	names := make([]string, len(o.Items))
	for i, item := range o.Items {
		names[i] = item.Name
	}
	return names
}
