package handler

import (
	"log/slog"
	"net/http"

	"crave/internal/delivery/api/middleware"
	"crave/internal/delivery/api/response"
	"crave/internal/domain/entity"
	"crave/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler holds dependencies for cart-related handlers
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddItemRequest represents the request body for adding a product to the cart
type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

// SetQuantityRequest represents the request body for changing a cart line
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse is the cart screen: lines newest first, priced at current catalog prices
type CartResponse struct {
	Lines     []entity.CartLine `json:"lines"`
	ItemCount int               `json:"item_count"`
	Total     decimal.Decimal   `json:"total"`
}

// GetCart returns the cart as currently stored
func (h *CartHandler) GetCart(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	snapshot, err := h.cartUC.Snapshot(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CartResponse{
		Lines:     snapshot.Lines,
		ItemCount: snapshot.ItemCount(),
		Total:     snapshot.Total(),
	})
}

// AddItem handles adding a product to the cart
func (h *CartHandler) AddItem(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	item, err := h.cartUC.AddItem(c.Request().Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}

// SetQuantity replaces the quantity of one cart line
func (h *CartHandler) SetQuantity(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cart item ID")
	}

	var req SetQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	// Range checks happen in the usecase against live stock
	item, err := h.cartUC.SetQuantity(c.Request().Context(), userID, itemID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cart item ID")
	}

	if err := h.cartUC.RemoveItem(c.Request().Context(), userID, itemID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Clear empties the cart
func (h *CartHandler) Clear(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	removed, err := h.cartUC.Clear(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"removed": removed})
}
