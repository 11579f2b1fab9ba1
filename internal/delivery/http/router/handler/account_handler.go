// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"restro/internal/delivery/http/response"
	domainerrors "restro/internal/domain/errors"
	"restro/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// createAccountRequest carries the registration payload. Field names follow
// the public wire contract.
type createAccountRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Address   string `json:"address" validate:"required"`
	PhoneNo   string `json:"phoneNo" validate:"required"`
	Username  string `json:"uname" validate:"required"`
	Password  string `json:"psw" validate:"required"`
}

type loginRequest struct {
	Username string `json:"uname" validate:"required"`
	Password string `json:"psw" validate:"required"`
}

// CreateAccount handles POST /createacc.
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	var req createAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "registration payload incomplete")
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Address:     req.Address,
		PhoneNumber: req.PhoneNo,
		Username:    req.Username,
		Password:    req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{
		"userid": output.UserID.String(),
	}, "Account created successfully!")
}

// Login handles POST /login.
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "login payload incomplete")
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"userid": output.UserID.String(),
		"token":  output.AccessToken,
	}, "Login successful")
}

// GetProfile handles GET /profile for the authenticated user.
func (h *AccountHandler) GetProfile(c echo.Context) error {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user ID in token")
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	// The password hash never leaves the service.
	return response.Success(c, http.StatusOK, map[string]string{
		"userid":    user.ID.String(),
		"uname":     user.Username,
		"firstName": user.FirstName,
		"lastName":  user.LastName,
		"address":   user.Address,
		"phoneNo":   user.PhoneNumber,
	}, "Profile retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
