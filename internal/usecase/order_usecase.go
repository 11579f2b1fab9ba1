package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PlaceOrderInput defines the data required to place a food order.
type PlaceOrderInput struct {
	UserID        uuid.UUID
	ItemName      string
	Price         float64
	Address       string
	PaymentMethod string
}

// PlaceOrderOutput acknowledges a stored order.
type PlaceOrderOutput struct {
	OrderID   uuid.UUID
	OrderDate time.Time
}

// OrderUsecase defines the interface for order-related business operations.
type OrderUsecase interface {
	// PlaceOrder validates the payload, confirms the user exists and stores
	// the order with a server-assigned order date.
	PlaceOrder(ctx context.Context, input *PlaceOrderInput) (*PlaceOrderOutput, error)
}
