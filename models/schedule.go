package models

import (
	"errors"
	"fmt"
	"time"
)

// DeliveryDateLayout is the only accepted shape for requested delivery dates.
const DeliveryDateLayout = "2006-01-02"

// ErrInvalidDeliveryDate reports a requested delivery date that does not
// match DeliveryDateLayout.
var ErrInvalidDeliveryDate = errors.New("invalid delivery date, expected YYYY-MM-DD")

// DeliveryMonth extracts the full month name from a YYYY-MM-DD date string.
// It is a pure function: the same input always yields the same month name.
func DeliveryMonth(dateStr string) (string, error) {
	d, err := time.Parse(DeliveryDateLayout, dateStr)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDeliveryDate, dateStr)
	}
	return d.Month().String(), nil
}

// ParseDeliveryDate parses a requested delivery date at midnight in the
// given location.
func ParseDeliveryDate(dateStr string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(DeliveryDateLayout, dateStr, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDeliveryDate, dateStr)
	}
	return d, nil
}
