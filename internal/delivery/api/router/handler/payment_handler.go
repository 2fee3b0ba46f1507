package handler

import (
	"io"
	"log/slog"
	"net/http"

	"crave/internal/delivery/api/response"
	"crave/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// headerVerifHash carries the shared secret on gateway webhooks.
const headerVerifHash = "verif-hash"

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// PaymentHandler receives the payment gateway's callbacks
type PaymentHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// Webhook applies a server-to-server payment notification
func (h *PaymentHandler) Webhook(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Unreadable webhook body")
	}

	result, err := h.orderUC.HandleGatewayWebhook(c.Request().Context(), c.Request().Header.Get(headerVerifHash), body)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// Callback applies the result carried on the shopper's browser redirect
func (h *PaymentHandler) Callback(c echo.Context) error {
	var redirect usecase.PaymentRedirect
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &redirect); err != nil {
		return response.BindingError(c, "INVALID_QUERY", "Invalid payment callback")
	}

	result, err := h.orderUC.HandleGatewayRedirect(c.Request().Context(), redirect)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
