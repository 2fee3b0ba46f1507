package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"crave/internal/delivery/api/validator"
	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	mocks "crave/internal/mocks/usecase"
	"crave/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAdminHandler(t *testing.T) (*AdminHandler, *mocks.MockAdminContentUsecase, *mocks.MockOrderAdminUsecase) {
	contentUC := mocks.NewMockAdminContentUsecase(t)
	orderUC := mocks.NewMockOrderAdminUsecase(t)

	h := NewAdminHandler(AdminHandlerParams{
		ContentUC: contentUC,
		OrderUC:   orderUC,
		Logger:    newDiscardLogger(),
	})

	return h, contentUC, orderUC
}

func TestAdminHandler_UploadImage(t *testing.T) {
	h, contentUC, _ := createTestAdminHandler(t)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("kind", "product"))
	part, err := writer.CreateFormFile("file", "pen.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG\r\n\x1a\n"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	contentUC.EXPECT().
		UploadImage(mock.Anything, mock.MatchedBy(func(u *usecase.ImageUpload) bool {
			return u.Kind == usecase.ImageKindProduct && u.Filename == "pen.png" && len(u.Data) == 8
		})).
		Return("https://cdn.test/product-images/1-pen.png", nil)

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/uploads", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.UploadImage(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "https://cdn.test/product-images/1-pen.png")
}

func TestAdminHandler_UploadImage_MissingFile(t *testing.T) {
	h, _, _ := createTestAdminHandler(t)

	c, rec := newTestContext(http.MethodPost, "/admin/uploads", `{}`, nil)

	require.NoError(t, h.UploadImage(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminHandler_CreateProduct_Validation(t *testing.T) {
	h, _, _ := createTestAdminHandler(t)

	c, rec := newTestContext(http.MethodPost, "/admin/products", `{"price":"5.00","images":["not a url"]}`, nil)

	require.NoError(t, h.CreateProduct(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Error.Message, "name is required")
}

func TestAdminHandler_DeleteCategory_InUse(t *testing.T) {
	h, contentUC, _ := createTestAdminHandler(t)

	categoryID := uuid.New()
	contentUC.EXPECT().
		DeleteCategory(mock.Anything, categoryID).
		Return(domainerrors.ErrCategoryInUse.WithDetails("2 active products"))

	c, rec := newTestContext(http.MethodDelete, "/admin/categories/"+categoryID.String(), "", nil)
	c.SetParamNames("id")
	c.SetParamValues(categoryID.String())

	require.NoError(t, h.DeleteCategory(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "2 active products", decodeError(t, rec).Error.Details)
}

func TestAdminHandler_ListOrders_StatusFilter(t *testing.T) {
	h, _, orderUC := createTestAdminHandler(t)

	orderUC.EXPECT().
		ListAllOrders(mock.Anything, mock.MatchedBy(func(q usecase.OrderListQuery) bool {
			return q.Status != nil && *q.Status == entity.OrderStatusShipped && q.Limit == 10
		})).
		Return([]*entity.Order{}, nil)

	c, rec := newTestContext(http.MethodGet, "/admin/orders?status=shipped&limit=10", "", nil)

	require.NoError(t, h.ListOrders(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminHandler_UpdateOrderStatus(t *testing.T) {
	h, _, orderUC := createTestAdminHandler(t)

	orderID := uuid.New()
	orderUC.EXPECT().
		UpdateOrderStatus(mock.Anything, orderID, entity.OrderStatusShipped).
		Return(nil, domainerrors.ErrInvalidOrderTransition)

	c, rec := newTestContext(http.MethodPut, "/admin/orders/"+orderID.String()+"/status", `{"status":"shipped"}`, nil)
	c.SetParamNames("id")
	c.SetParamValues(orderID.String())

	require.NoError(t, h.UpdateOrderStatus(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "INVALID_ORDER_TRANSITION", decodeError(t, rec).Error.Code)
}

func TestAdminHandler_ScanReceipt(t *testing.T) {
	h, _, orderUC := createTestAdminHandler(t)

	detail := &entity.OrderDetail{Order: entity.Order{ID: uuid.New(), OrderNumber: "ORD-01J9Z3"}}
	orderUC.EXPECT().ScanReceipt(mock.Anything, `{"orderNumber":"ORD-01J9Z3"}`).Return(detail, nil)

	c, rec := newTestContext(http.MethodPost, "/admin/orders/scan", `{"data":"{\"orderNumber\":\"ORD-01J9Z3\"}"}`, nil)

	require.NoError(t, h.ScanReceipt(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ORD-01J9Z3")
}

func TestAdminHandler_ScanReceipt_MissingData(t *testing.T) {
	h, _, _ := createTestAdminHandler(t)

	c, rec := newTestContext(http.MethodPost, "/admin/orders/scan", `{}`, nil)

	require.NoError(t, h.ScanReceipt(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
