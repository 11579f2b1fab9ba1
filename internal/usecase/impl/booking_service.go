package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "restro/internal/delivery/context"
	"restro/internal/domain/entity"
	domainerrors "restro/internal/domain/errors"
	"restro/internal/domain/repository"
	"restro/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// bookingTimeLayouts are the accepted ISO-8601 shapes for booking_time:
// with a zone offset (RFC 3339) or as a local wall-clock time without one.
var bookingTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// bookingService implements the BookingUsecase interface.
type bookingService struct {
	userRepo    repository.UserRepository
	bookingRepo repository.BookingRepository
	logger      *slog.Logger
}

// BookingServiceParams holds dependencies for bookingService, injected by Fx.
type BookingServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	BookingRepo repository.BookingRepository
	Logger      *slog.Logger
}

// NewBookingService is the constructor for bookingService.
func NewBookingService(params BookingServiceParams) usecase.BookingUsecase {
	return &bookingService{
		userRepo:    params.UserRepo,
		bookingRepo: params.BookingRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *bookingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateBooking validates the payload, confirms the requesting user exists
// and stores the booking request. The existence check and the insert are not
// one atomic unit; a user deleted in between is caught by the store's
// foreign-key constraint instead.
func (srv *bookingService) CreateBooking(ctx context.Context, input *usecase.CreateBookingInput) (*usecase.CreateBookingOutput, error) {
	if err := validateCreateBookingInput(input); err != nil {
		return nil, err
	}

	bookingTime, err := parseBookingTime(input.BookingTime)
	if err != nil {
		srv.log(ctx).Warn("Rejected booking with malformed time", slog.String("bookingTime", input.BookingTime))

		return nil, errors.Wrap(domainerrors.ErrInvalidBookingTime, "booking time must be ISO-8601")
	}

	exists, err := srv.userRepo.Exists(ctx, input.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check user existence")
	}
	if !exists {
		srv.log(ctx).Warn("Rejected booking for unknown user", slog.Any("userID", input.UserID))

		return nil, errors.Wrap(domainerrors.ErrUserNotFound, "booking references unknown user")
	}

	booking := &entity.Booking{
		UserID:             input.UserID,
		PeopleCount:        input.PeopleCount,
		SpecialRequirement: input.SpecialRequirement,
		BookingTime:        bookingTime,
	}

	if err := srv.bookingRepo.Create(ctx, booking); err != nil {
		srv.log(ctx).Error("Failed to store booking", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create booking")
	}

	srv.log(ctx).Info("Booking request stored",
		slog.Any("bookingID", booking.ID),
		slog.Any("userID", booking.UserID),
		slog.Time("bookingTime", booking.BookingTime),
	)

	return &usecase.CreateBookingOutput{BookingID: booking.ID}, nil
}

func validateCreateBookingInput(input *usecase.CreateBookingInput) error {
	if input.UserID == uuid.Nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "booking requires a userid")
	}
	if input.PeopleCount <= 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "booking requires a positive people count")
	}
	if strings.TrimSpace(input.SpecialRequirement) == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "booking requires a special requirement")
	}
	if strings.TrimSpace(input.BookingTime) == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "booking requires a booking time")
	}

	return nil
}

func parseBookingTime(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range bookingTimeLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}

	return time.Time{}, lastErr
}
