package handler

import (
	"io"
	"log/slog"
	"net/http"

	"crave/internal/delivery/api/response"
	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	"crave/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	ContentUC usecase.AdminContentUsecase
	OrderUC   usecase.OrderAdminUsecase
	Logger    *slog.Logger
}

// AdminHandler serves the admin console. Every route sits behind the admin gate.
type AdminHandler struct {
	contentUC usecase.AdminContentUsecase
	orderUC   usecase.OrderAdminUsecase
	logger    *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		contentUC: params.ContentUC,
		orderUC:   params.OrderUC,
		logger:    params.Logger,
	}
}

// AdminProductQuery narrows the admin product table
type AdminProductQuery struct {
	CategoryID *uuid.UUID `query:"category_id"`
	Search     string     `query:"q"`
	Limit      int        `query:"limit"`
	Offset     int        `query:"offset"`
}

// AdminOrderQuery pages the admin order table
type AdminOrderQuery struct {
	Status string `query:"status"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}

// UpdateOrderStatusRequest represents the request body for a fulfilment step
type UpdateOrderStatusRequest struct {
	Status entity.OrderStatus `json:"status" validate:"required"`
}

// ListProducts lists products including inactive ones
func (h *AdminHandler) ListProducts(c echo.Context) error {
	var query AdminProductQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return response.BindingError(c, "INVALID_QUERY", "Invalid product query")
	}

	products, err := h.contentUC.ListProducts(c.Request().Context(), entity.ProductFilter{
		CategoryID: query.CategoryID,
		Search:     query.Search,
		Limit:      query.Limit,
		Offset:     query.Offset,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

func (h *AdminHandler) CreateProduct(c echo.Context) error {
	var req usecase.ProductInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.contentUC.CreateProduct(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// UpdateProduct replaces a product record
func (h *AdminHandler) UpdateProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req usecase.ProductInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.contentUC.UpdateProduct(c.Request().Context(), productID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	if err := h.contentUC.DeleteProduct(c.Request().Context(), productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) ListCategories(c echo.Context) error {
	categories, err := h.contentUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories)
}

func (h *AdminHandler) CreateCategory(c echo.Context) error {
	var req usecase.CategoryInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	category, err := h.contentUC.CreateCategory(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, category)
}

func (h *AdminHandler) UpdateCategory(c echo.Context) error {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid category ID")
	}

	var req usecase.CategoryInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	category, err := h.contentUC.UpdateCategory(c.Request().Context(), categoryID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, category)
}

// DeleteCategory deletes a category no active product uses
func (h *AdminHandler) DeleteCategory(c echo.Context) error {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid category ID")
	}

	if err := h.contentUC.DeleteCategory(c.Request().Context(), categoryID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UploadImage stores a multipart "file" in the bucket named by the "kind" form field
func (h *AdminHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unreadable file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unreadable file")
	}

	url, err := h.contentUC.UploadImage(c.Request().Context(), &usecase.ImageUpload{
		Kind:        usecase.ImageKind(c.FormValue("kind")),
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Data:        data,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": url})
}

// ListOrders lists every order, optionally filtered by status
func (h *AdminHandler) ListOrders(c echo.Context) error {
	var query AdminOrderQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return response.BindingError(c, "INVALID_QUERY", "Invalid order query")
	}

	listQuery := usecase.OrderListQuery{Limit: query.Limit, Offset: query.Offset}
	if query.Status != "" {
		status := entity.OrderStatus(query.Status)
		listQuery.Status = &status
	}

	orders, err := h.orderUC.ListAllOrders(c.Request().Context(), listQuery)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

func (h *AdminHandler) GetOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("invalid order ID"))
	}

	detail, err := h.orderUC.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail)
}

// ScanReceiptRequest carries the raw text read from a receipt QR code
type ScanReceiptRequest struct {
	Data string `json:"data" validate:"required"`
}

// ScanReceipt resolves a scanned receipt to its order
func (h *AdminHandler) ScanReceipt(c echo.Context) error {
	var req ScanReceiptRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid receipt input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	detail, err := h.orderUC.ScanReceipt(c.Request().Context(), req.Data)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail)
}

// UpdateOrderStatus moves an order to the next fulfilment status
func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("invalid order ID"))
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	order, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), orderID, req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}
