package handler

import (
	"net/http"
	"testing"

	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	"crave/internal/domain/service"
	mocks "crave/internal/mocks/usecase"
	"crave/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderHandler_Checkout(t *testing.T) {
	orderUC := mocks.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC, Logger: newDiscardLogger()})

	identity := customer()
	result := &usecase.CheckoutResult{
		Order:   &entity.Order{ID: uuid.New(), OrderNumber: "ORD-1"},
		Payment: &service.PaymentLink{TxRef: "ORD-1", URL: "https://pay.test/ORD-1"},
	}
	orderUC.EXPECT().
		PlaceOrder(mock.Anything, identity.UserID, mock.MatchedBy(func(in *usecase.CheckoutInput) bool {
			return in.ShippingAddress.City == "Lagos"
		})).
		Return(result, nil)

	c, rec := newTestContext(http.MethodPost, "/api/v1/checkout", `{"shipping_address":{"city":"Lagos"}}`, identity)

	require.NoError(t, h.Checkout(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "https://pay.test/ORD-1")
}

func TestOrderHandler_Checkout_PaymentHandOffFailed(t *testing.T) {
	orderUC := mocks.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC, Logger: newDiscardLogger()})

	identity := customer()
	orderUC.EXPECT().
		PlaceOrder(mock.Anything, identity.UserID, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrPaymentInitiationFailed.WithDetails("ORD-7"), "gateway timeout"))

	c, rec := newTestContext(http.MethodPost, "/api/v1/checkout", `{}`, identity)

	require.NoError(t, h.Checkout(c))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "PAYMENT_INITIATION_FAILED", body.Error.Code)
	assert.Equal(t, "ORD-7", body.Error.Details)
}

func TestOrderHandler_OrderQRCode(t *testing.T) {
	orderUC := mocks.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC, Logger: newDiscardLogger()})

	identity := customer()
	orderID := uuid.New()
	orderUC.EXPECT().OrderQRCode(mock.Anything, identity.UserID, orderID).Return([]byte("\x89PNG"), nil)

	c, rec := newTestContext(http.MethodGet, "/api/v1/orders/"+orderID.String()+"/qr", "", identity)
	c.SetParamNames("id")
	c.SetParamValues(orderID.String())

	require.NoError(t, h.OrderQRCode(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
}

func TestOrderHandler_GetOrder_ForeignOrder(t *testing.T) {
	orderUC := mocks.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC, Logger: newDiscardLogger()})

	identity := customer()
	orderID := uuid.New()
	orderUC.EXPECT().GetOrder(mock.Anything, identity.UserID, orderID).Return(nil, domainerrors.ErrOrderNotFound)

	c, rec := newTestContext(http.MethodGet, "/api/v1/orders/"+orderID.String(), "", identity)
	c.SetParamNames("id")
	c.SetParamValues(orderID.String())

	require.NoError(t, h.GetOrder(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrderHandler_InitiatePayment_BadID(t *testing.T) {
	h := NewOrderHandler(OrderHandlerParams{OrderUC: mocks.NewMockOrderUsecase(t), Logger: newDiscardLogger()})

	c, rec := newTestContext(http.MethodPost, "/api/v1/orders/x/payment", "", customer())
	c.SetParamNames("id")
	c.SetParamValues("x")

	require.NoError(t, h.InitiatePayment(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Error.Code)
}

func TestPaymentHandler_Webhook(t *testing.T) {
	orderUC := mocks.NewMockOrderUsecase(t)
	h := NewPaymentHandler(PaymentHandlerParams{OrderUC: orderUC, Logger: newDiscardLogger()})

	body := `{"event":"charge.completed","data":{"id":42,"tx_ref":"ORD-1","status":"successful"}}`
	orderUC.EXPECT().
		HandleGatewayWebhook(mock.Anything, "s3cret", []byte(body)).
		Return(&usecase.PaymentResult{OrderNumber: "ORD-1", Status: entity.OrderStatusProcessing}, nil)

	c, rec := newTestContext(http.MethodPost, "/payments/webhook", body, nil)
	c.Request().Header.Set(headerVerifHash, "s3cret")

	require.NoError(t, h.Webhook(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPaymentHandler_Webhook_BadSignature(t *testing.T) {
	orderUC := mocks.NewMockOrderUsecase(t)
	h := NewPaymentHandler(PaymentHandlerParams{OrderUC: orderUC, Logger: newDiscardLogger()})

	orderUC.EXPECT().HandleGatewayWebhook(mock.Anything, "", mock.Anything).Return(nil, domainerrors.ErrWebhookUnauthorized)

	c, rec := newTestContext(http.MethodPost, "/payments/webhook", `{}`, nil)

	require.NoError(t, h.Webhook(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPaymentHandler_Callback(t *testing.T) {
	orderUC := mocks.NewMockOrderUsecase(t)
	h := NewPaymentHandler(PaymentHandlerParams{OrderUC: orderUC, Logger: newDiscardLogger()})

	orderUC.EXPECT().
		HandleGatewayRedirect(mock.Anything, usecase.PaymentRedirect{Status: "successful", TxRef: "ORD-1", TransactionID: "42"}).
		Return(&usecase.PaymentResult{OrderNumber: "ORD-1"}, nil)

	c, rec := newTestContext(http.MethodGet, "/payments/callback?status=successful&tx_ref=ORD-1&transaction_id=42", "", nil)

	require.NoError(t, h.Callback(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
