package handler

import (
	"log/slog"
	"net/http"

	"crave/internal/delivery/api/middleware"
	"crave/internal/delivery/api/response"
	domainerrors "crave/internal/domain/errors"
	"crave/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for checkout and order history handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// Checkout places an order from the current cart
func (h *OrderHandler) Checkout(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.CheckoutInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	result, err := h.orderUC.PlaceOrder(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}

// ListOrders returns the caller's orders, newest first
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, orderID, err := orderParams(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	detail, err := h.orderUC.GetOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail)
}

// InitiatePayment asks the gateway for a fresh payment link
func (h *OrderHandler) InitiatePayment(c echo.Context) error {
	userID, orderID, err := orderParams(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	link, err := h.orderUC.InitiatePayment(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, link)
}

// OrderQRCode streams the receipt QR code as a PNG
func (h *OrderHandler) OrderQRCode(c echo.Context) error {
	userID, orderID, err := orderParams(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.orderUC.OrderQRCode(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// orderParams reads the caller and the :id path parameter.
func orderParams(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, domainerrors.ErrSessionInvalid
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid order ID")
	}

	return userID, orderID, nil
}
