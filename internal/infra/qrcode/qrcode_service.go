package qrcode

import (
	"encoding/json"
	"strings"

	"crave/config"
	"crave/internal/domain/constants"
	"crave/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256
	payloadType = "order_receipt"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// ReceiptPayload is the JSON encoded in an order receipt QR code.
type ReceiptPayload struct {
	OrderNumber string `json:"order_number"`
	Type        string `json:"type"`
}

// New builds the service from the qrcode config section.
func New(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateOrderQR renders a PNG the shop can scan at pickup.
func (s *qrcodeService) GenerateOrderQR(orderNumber string) ([]byte, error) {
	if !strings.HasPrefix(orderNumber, constants.OrderNumberPrefix) {
		return nil, errors.Errorf("not an order number: %q", orderNumber)
	}

	jsonData, err := json.Marshal(ReceiptPayload{OrderNumber: orderNumber, Type: payloadType})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseOrderQR returns the order number encoded in a scanned receipt.
func (s *qrcodeService) ParseOrderQR(qrData string) (string, error) {
	var data ReceiptPayload
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != payloadType {
		return "", errors.Errorf("invalid QR code type: %s", data.Type)
	}
	if !strings.HasPrefix(data.OrderNumber, constants.OrderNumberPrefix) {
		return "", errors.Errorf("invalid order number: %q", data.OrderNumber)
	}

	return data.OrderNumber, nil
}
