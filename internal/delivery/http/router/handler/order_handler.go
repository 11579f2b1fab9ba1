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

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

type placeOrderRequest struct {
	UserID        string  `json:"userid" validate:"required"`
	ItemName      string  `json:"item_name" validate:"required"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	Address       string  `json:"address" validate:"required"`
	PaymentMethod string  `json:"payment_method" validate:"required"`
}

// PlaceOrder handles POST /place_order.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "order payload incomplete")
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return errors.Wrap(domainerrors.ErrUserNotFound, "order userid is not a valid id")
	}

	output, err := h.uc.PlaceOrder(c.Request().Context(), &usecase.PlaceOrderInput{
		UserID:        userID,
		ItemName:      req.ItemName,
		Price:         req.Price,
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{
		"order_id": output.OrderID.String(),
	}, "Order placed successfully")
}
