// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the central identity record of the system. It is created once by
// registration and never mutated or deleted afterwards; bookings and orders
// reference it by ID.
type User struct {
	ID           uuid.UUID // The unique identifier for the user, generated by the store.
	Username     string    // The globally unique login name.
	PasswordHash string    // The salted bcrypt digest of the password. Never the raw password.
	FirstName    string
	LastName     string
	Address      string
	PhoneNumber  string
	CreatedAt    time.Time // Timestamp of when this account was created.
}
