package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order is a food order placed by a registered user. OrderDate is assigned
// by the server at insert time; the record is immutable afterwards.
type Order struct {
	ID            uuid.UUID
	UserID        uuid.UUID // Must reference an existing User at creation time.
	ItemName      string
	Price         float64 // Always positive.
	Address       string  // Delivery address for this order.
	PaymentMethod string
	OrderDate     time.Time
}
