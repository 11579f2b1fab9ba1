package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. UserID references users.id.
// OrderDate is assigned server-side at insert time.
type OrderModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemName      string    `gorm:"type:varchar(255);not null"`
	Price         float64   `gorm:"not null"`
	Address       string    `gorm:"type:text;not null"`
	PaymentMethod string    `gorm:"type:varchar(50);not null"`
	OrderDate     time.Time `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
