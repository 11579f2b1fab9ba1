// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"restro/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	FirstName   string
	LastName    string
	Address     string
	PhoneNumber string
	Username    string
	Password    string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's identifier.
type RegisterOutput struct {
	UserID uuid.UUID
}

// LoginOutput returns the authenticated user and a session token.
type LoginOutput struct {
	UserID      uuid.UUID
	AccessToken string
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// Register creates a new account with a salted password hash.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and returns the user ID with an access token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// GetProfile loads the stored identity fields for a registered user.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
