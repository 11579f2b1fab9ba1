package postgres

import (
	"context"

	"restro/internal/domain/entity"
	domainerrors "restro/internal/domain/errors"
	"restro/internal/domain/repository"
	"restro/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// bookingRepository implements the domain.BookingRepository interface using GORM.
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository is the constructor for bookingRepository.
func NewBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

// Create persists a new booking request. A foreign-key violation means the
// referenced user disappeared between the service's existence check and this
// insert; it maps to the same domain error as a failed pre-check.
func (repo *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	bookingM := fromBookingDomain(booking)

	if err := repo.db.WithContext(ctx).Create(bookingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("booking references unknown user")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required booking information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create booking")
	}

	booking.ID = bookingM.ID
	booking.CreatedAt = bookingM.CreatedAt

	return nil
}

// fromBookingDomain converts a domain Booking entity to a GORM BookingModel.
func fromBookingDomain(data *entity.Booking) *model.BookingModel {
	if data == nil {
		return nil
	}

	return &model.BookingModel{
		ID:                 data.ID,
		UserID:             data.UserID,
		PeopleCount:        data.PeopleCount,
		SpecialRequirement: data.SpecialRequirement,
		BookingTime:        data.BookingTime,
	}
}
