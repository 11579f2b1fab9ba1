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

// BookingHandler holds dependencies for booking-related handlers.
type BookingHandler struct {
	uc     usecase.BookingUsecase
	logger *slog.Logger
}

// NewBookingHandler is the constructor for BookingHandler, injected by Fx.
func NewBookingHandler(uc usecase.BookingUsecase, logger *slog.Logger) *BookingHandler {
	return &BookingHandler{
		uc:     uc,
		logger: logger,
	}
}

type contactRequest struct {
	UserID             string `json:"userid" validate:"required"`
	PeopleCount        int    `json:"people_count" validate:"required,gt=0"`
	SpecialRequirement string `json:"special_requirement" validate:"required"`
	BookingTime        string `json:"booking_time" validate:"required"`
}

// CreateBooking handles POST /contact.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid booking input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "booking payload incomplete")
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return errors.Wrap(domainerrors.ErrUserNotFound, "booking userid is not a valid id")
	}

	output, err := h.uc.CreateBooking(c.Request().Context(), &usecase.CreateBookingInput{
		UserID:             userID,
		PeopleCount:        req.PeopleCount,
		SpecialRequirement: req.SpecialRequirement,
		BookingTime:        req.BookingTime,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{
		"booking_id": output.BookingID.String(),
	}, "Booking request submitted successfully")
}
