package repository

import (
	"context"

	"restro/internal/domain/entity"
)

// OrderRepository defines the operations for order persistence.
// Orders are insert-only; there are no update or delete operations.
type OrderRepository interface {
	// Create persists a new order. The repository assigns OrderDate if unset.
	Create(ctx context.Context, order *entity.Order) error
}
