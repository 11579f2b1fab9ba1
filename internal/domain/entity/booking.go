package entity

import (
	"time"

	"github.com/google/uuid"
)

// Booking is a table-booking request submitted by a registered user.
// It is immutable once created.
type Booking struct {
	ID                 uuid.UUID
	UserID             uuid.UUID // Must reference an existing User at creation time.
	PeopleCount        int       // Number of guests, always positive.
	SpecialRequirement string    // Free-form text, required at submission.
	BookingTime        time.Time // The requested table time, parsed from ISO-8601 input.
	CreatedAt          time.Time
}
