package repository

import (
	"context"

	"restro/internal/domain/entity"
)

// BookingRepository defines the operations for booking persistence.
// Bookings are insert-only; there are no update or delete operations.
type BookingRepository interface {
	// Create persists a new booking request.
	Create(ctx context.Context, booking *entity.Booking) error
}
