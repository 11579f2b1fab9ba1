package usecase

import (
	"context"

	"github.com/google/uuid"
)

// CreateBookingInput defines the data required to submit a booking request.
// BookingTime is the raw ISO-8601 string from the client; the usecase owns
// parsing so a malformed value is a validation failure, not a bind failure.
type CreateBookingInput struct {
	UserID             uuid.UUID
	PeopleCount        int
	SpecialRequirement string
	BookingTime        string
}

// CreateBookingOutput acknowledges a stored booking request.
type CreateBookingOutput struct {
	BookingID uuid.UUID
}

// BookingUsecase defines the interface for booking-related business operations.
type BookingUsecase interface {
	// CreateBooking validates the payload, confirms the user exists and
	// stores the booking request.
	CreateBooking(ctx context.Context, input *CreateBookingInput) (*CreateBookingOutput, error)
}
