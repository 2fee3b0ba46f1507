package handler

import (
	"net/http"
	"testing"

	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	mocks "crave/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCartHandler_AddItem(t *testing.T) {
	cartUC := mocks.NewMockCartUsecase(t)
	h := NewCartHandler(CartHandlerParams{CartUC: cartUC, Logger: newDiscardLogger()})

	identity := customer()
	productID := uuid.New()
	item := &entity.CartItem{ID: uuid.New(), UserID: identity.UserID, ProductID: productID, Quantity: 2}
	cartUC.EXPECT().AddItem(mock.Anything, identity.UserID, productID, 2).Return(item, nil)

	c, rec := newTestContext(http.MethodPost, "/api/v1/cart/items",
		`{"product_id":"`+productID.String()+`","quantity":2}`, identity)

	require.NoError(t, h.AddItem(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), item.ID.String())
}

func TestCartHandler_AddItem_ZeroQuantity(t *testing.T) {
	h := NewCartHandler(CartHandlerParams{CartUC: mocks.NewMockCartUsecase(t), Logger: newDiscardLogger()})

	c, rec := newTestContext(http.MethodPost, "/api/v1/cart/items",
		`{"product_id":"`+uuid.NewString()+`","quantity":0}`, customer())

	require.NoError(t, h.AddItem(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeError(t, rec).Error.Code)
}

func TestCartHandler_AddItem_Unauthenticated(t *testing.T) {
	h := NewCartHandler(CartHandlerParams{CartUC: mocks.NewMockCartUsecase(t), Logger: newDiscardLogger()})

	c, rec := newTestContext(http.MethodPost, "/api/v1/cart/items", `{}`, nil)

	require.NoError(t, h.AddItem(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCartHandler_SetQuantity_AboveStock(t *testing.T) {
	cartUC := mocks.NewMockCartUsecase(t)
	h := NewCartHandler(CartHandlerParams{CartUC: cartUC, Logger: newDiscardLogger()})

	identity := customer()
	itemID := uuid.New()
	cartUC.EXPECT().
		SetQuantity(mock.Anything, identity.UserID, itemID, 9).
		Return(nil, domainerrors.ErrInvalidQuantity.WithDetails("only 3 in stock"))

	c, rec := newTestContext(http.MethodPut, "/api/v1/cart/items/"+itemID.String(), `{"quantity":9}`, identity)
	c.SetParamNames("id")
	c.SetParamValues(itemID.String())

	require.NoError(t, h.SetQuantity(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "INVALID_QUANTITY", body.Error.Code)
	assert.Equal(t, "only 3 in stock", body.Error.Details)
}

func TestCartHandler_RemoveItem_BadID(t *testing.T) {
	h := NewCartHandler(CartHandlerParams{CartUC: mocks.NewMockCartUsecase(t), Logger: newDiscardLogger()})

	c, rec := newTestContext(http.MethodDelete, "/api/v1/cart/items/nope", "", customer())
	c.SetParamNames("id")
	c.SetParamValues("nope")

	require.NoError(t, h.RemoveItem(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartHandler_GetCart_StoreFailure(t *testing.T) {
	cartUC := mocks.NewMockCartUsecase(t)
	h := NewCartHandler(CartHandlerParams{CartUC: cartUC, Logger: newDiscardLogger()})

	identity := customer()
	cartUC.EXPECT().Snapshot(mock.Anything, identity.UserID).Return(nil, assert.AnError)

	c, _ := newTestContext(http.MethodGet, "/api/v1/cart", "", identity)

	err := h.GetCart(c)

	assert.ErrorIs(t, err, assert.AnError)
}

func TestCartHandler_GetCart_Totals(t *testing.T) {
	cartUC := mocks.NewMockCartUsecase(t)
	h := NewCartHandler(CartHandlerParams{CartUC: cartUC, Logger: newDiscardLogger()})

	identity := customer()
	pen := &entity.Product{ID: uuid.New(), Name: "Pen", Price: decimal.RequireFromString("2.50"), StockQuantity: 10, IsActive: true}
	snapshot := &entity.CartSnapshot{UserID: identity.UserID, Lines: []entity.CartLine{
		{CartItem: entity.CartItem{ID: uuid.New(), ProductID: pen.ID, Quantity: 3}, Product: pen},
	}}
	cartUC.EXPECT().Snapshot(mock.Anything, identity.UserID).Return(snapshot, nil)

	c, rec := newTestContext(http.MethodGet, "/api/v1/cart", "", identity)

	require.NoError(t, h.GetCart(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"item_count":3`)
	assert.Contains(t, rec.Body.String(), `"total":"7.5"`)
}
