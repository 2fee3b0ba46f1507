package errors

import "net/http"

// Input
var (
	ErrValidationFailed = define(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed")
	ErrInvalidAddress   = define(http.StatusBadRequest, "INVALID_ADDRESS", "Shipping address is incomplete")
	ErrInvalidQuantity  = define(http.StatusBadRequest, "INVALID_QUANTITY", "Quantity must be at least 1 and no more than the available stock")
	ErrEmptyCart        = define(http.StatusBadRequest, "EMPTY_CART", "Your cart is empty")
)

// Catalog and cart
var (
	ErrProductNotFound    = define(http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found")
	ErrCategoryNotFound   = define(http.StatusNotFound, "CATEGORY_NOT_FOUND", "Category not found")
	ErrOutOfStock         = define(http.StatusConflict, "OUT_OF_STOCK", "Product is out of stock")
	ErrProductUnavailable = define(http.StatusConflict, "PRODUCT_UNAVAILABLE", "Product is no longer available")
	ErrCategoryInUse      = define(http.StatusConflict, "CATEGORY_IN_USE", "Category is still referenced by active products")
	ErrCartItemNotFound   = define(http.StatusNotFound, "CART_ITEM_NOT_FOUND", "Cart item not found")
)

// Orders and payments
var (
	ErrOrderNotFound             = define(http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found")
	ErrPartialOrderWrite         = define(http.StatusInternalServerError, "PARTIAL_ORDER_WRITE", "The order was created but its items could not be saved")
	ErrInvalidOrderTransition    = define(http.StatusConflict, "INVALID_ORDER_TRANSITION", "The order cannot move to the requested status")
	ErrOrderNotPayable           = define(http.StatusConflict, "ORDER_NOT_PAYABLE", "The order is not awaiting payment")
	ErrPaymentReferenceConflict  = define(http.StatusConflict, "PAYMENT_REFERENCE_CONFLICT", "The order was already paid under a different reference")
	ErrPaymentInitiationFailed   = define(http.StatusBadGateway, "PAYMENT_INITIATION_FAILED", "Could not start the payment, please retry from your orders")
	ErrPaymentVerificationFailed = define(http.StatusBadRequest, "PAYMENT_VERIFICATION_FAILED", "The payment could not be verified")
	ErrWebhookUnauthorized       = define(http.StatusUnauthorized, "WEBHOOK_UNAUTHORIZED", "Webhook signature is invalid")
)

// Accounts
var (
	ErrUserNotFound        = define(http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	ErrUserAlreadyExists   = define(http.StatusConflict, "USER_ALREADY_EXISTS", "This email is already registered")
	ErrInvalidCredentials  = define(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
	ErrSessionInvalid      = define(http.StatusUnauthorized, "SESSION_INVALID", "Session is invalid or has expired")
	ErrRefreshTokenInvalid = define(http.StatusUnauthorized, "REFRESH_TOKEN_INVALID", "Invalid or expired refresh token")
	ErrAdminAccessDenied   = define(http.StatusForbidden, "ADMIN_ACCESS_DENIED", "Access denied")
	ErrPasswordHashFailed  = define(http.StatusInternalServerError, "PASSWORD_HASH_FAILED", "Password processing failed")
	ErrDeviceNotFound      = define(http.StatusNotFound, "DEVICE_NOT_FOUND", "Device not found")
)

var ErrUploadFailed = define(http.StatusBadGateway, "UPLOAD_FAILED", "Image upload failed")
