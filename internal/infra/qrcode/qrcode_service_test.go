package qrcode

import (
	"encoding/json"
	"testing"

	"crave/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isPNG(b []byte) bool {
	return len(b) > 4 && b[0] == 0x89 && b[1] == 'P' && b[2] == 'N' && b[3] == 'G'
}

func TestNewQRCodeService_Levels(t *testing.T) {
	for _, level := range []string{"L", "m", "Q", "H", "invalid", ""} {
		t.Run(level, func(t *testing.T) {
			svc := NewQRCodeService(128, level)
			png, err := svc.GenerateOrderQR("ORD-01J0000000000000000000000")
			require.NoError(t, err)
			assert.True(t, isPNG(png))
		})
	}
}

func TestNew_DefaultsWithoutConfig(t *testing.T) {
	svc := New(&config.Config{}).(*qrcodeService)
	assert.Equal(t, defaultSize, svc.size)
}

func TestQRCodeService_GenerateOrderQR_RejectsForeignValues(t *testing.T) {
	svc := NewQRCodeService(128, "M")

	_, err := svc.GenerateOrderQR("not-an-order")
	assert.Error(t, err)
}

func TestQRCodeService_ParseOrderQR(t *testing.T) {
	svc := NewQRCodeService(128, "M")

	valid, _ := json.Marshal(ReceiptPayload{OrderNumber: "ORD-01ABC", Type: payloadType})
	wrongType, _ := json.Marshal(ReceiptPayload{OrderNumber: "ORD-01ABC", Type: "subscription"})
	wrongNumber, _ := json.Marshal(ReceiptPayload{OrderNumber: "12345", Type: payloadType})

	tests := []struct {
		name    string
		data    string
		want    string
		wantErr bool
	}{
		{name: "valid", data: string(valid), want: "ORD-01ABC"},
		{name: "wrong type", data: string(wrongType), wantErr: true},
		{name: "wrong number", data: string(wrongNumber), wantErr: true},
		{name: "not json", data: "ORD-01ABC", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ParseOrderQR(tt.data)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
