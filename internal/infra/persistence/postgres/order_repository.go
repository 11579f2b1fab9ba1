package postgres

import (
	"context"
	"time"

	"restro/internal/domain/entity"
	domainerrors "restro/internal/domain/errors"
	"restro/internal/domain/repository"
	"restro/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists a new order with a server-assigned order date.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.OrderDate.IsZero() {
		order.OrderDate = time.Now()
	}

	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("order references unknown user")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID

	return nil
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:            data.ID,
		UserID:        data.UserID,
		ItemName:      data.ItemName,
		Price:         data.Price,
		Address:       data.Address,
		PaymentMethod: data.PaymentMethod,
		OrderDate:     data.OrderDate,
	}
}
