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

// orderService implements the OrderUsecase interface.
type orderService struct {
	userRepo  repository.UserRepository
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		userRepo:  params.UserRepo,
		orderRepo: params.OrderRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder validates the payload, confirms the requesting user exists and
// stores the order. OrderDate is assigned here, at insert time.
func (srv *orderService) PlaceOrder(ctx context.Context, input *usecase.PlaceOrderInput) (*usecase.PlaceOrderOutput, error) {
	if err := validatePlaceOrderInput(input); err != nil {
		return nil, err
	}

	exists, err := srv.userRepo.Exists(ctx, input.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check user existence")
	}
	if !exists {
		srv.log(ctx).Warn("Rejected order for unknown user", slog.Any("userID", input.UserID))

		return nil, errors.Wrap(domainerrors.ErrUserNotFound, "order references unknown user")
	}

	order := &entity.Order{
		UserID:        input.UserID,
		ItemName:      input.ItemName,
		Price:         input.Price,
		Address:       input.Address,
		PaymentMethod: input.PaymentMethod,
		OrderDate:     time.Now(),
	}

	if err := srv.orderRepo.Create(ctx, order); err != nil {
		srv.log(ctx).Error("Failed to store order", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create order")
	}

	srv.log(ctx).Info("Order placed",
		slog.Any("orderID", order.ID),
		slog.Any("userID", order.UserID),
		slog.String("itemName", order.ItemName),
	)

	return &usecase.PlaceOrderOutput{
		OrderID:   order.ID,
		OrderDate: order.OrderDate,
	}, nil
}

func validatePlaceOrderInput(input *usecase.PlaceOrderInput) error {
	if input.UserID == uuid.Nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "order requires a userid")
	}
	if strings.TrimSpace(input.ItemName) == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "order requires an item name")
	}
	if input.Price <= 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "order requires a positive price")
	}
	if strings.TrimSpace(input.Address) == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "order requires an address")
	}
	if strings.TrimSpace(input.PaymentMethod) == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "order requires a payment method")
	}

	return nil
}
