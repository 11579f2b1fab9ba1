package model

import (
	"time"

	"github.com/google/uuid"
)

// BookingModel mirrors the 'bookings' table. UserID references users.id.
type BookingModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;index"`
	PeopleCount        int       `gorm:"not null"`
	SpecialRequirement string    `gorm:"type:text"`
	BookingTime        time.Time `gorm:"not null"`
	CreatedAt          time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (BookingModel) TableName() string {
	return "bookings"
}
