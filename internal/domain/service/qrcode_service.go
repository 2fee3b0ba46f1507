package service

// QRCodeService defines the interface for order receipt QR codes
type QRCodeService interface {
	// GenerateOrderQR renders a PNG that encodes the order number
	GenerateOrderQR(orderNumber string) ([]byte, error)

	// ParseOrderQR reads the payload scanned from a receipt and returns the order number
	ParseOrderQR(qrData string) (string, error)
}
