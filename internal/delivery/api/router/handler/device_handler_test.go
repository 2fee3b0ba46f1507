package handler

import (
	"net/http"
	"testing"

	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	mocks "crave/internal/mocks/usecase"
	"crave/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeviceHandler_RegisterDevice_HidesToken(t *testing.T) {
	deviceUC := mocks.NewMockDeviceUsecase(t)
	h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC, Logger: newDiscardLogger()})

	identity := customer()
	device := &entity.UserDevice{ID: uuid.New(), UserID: identity.UserID, DeviceID: "pixel-8", Platform: "android", FCMToken: "secret-token", IsActive: true}
	deviceUC.EXPECT().
		RegisterDevice(mock.Anything, identity.UserID, &usecase.DeviceRegistration{DeviceID: "pixel-8", Platform: "android", FCMToken: "secret-token"}).
		Return(device, nil)

	c, rec := newTestContext(http.MethodPost, "/api/v1/devices",
		`{"device_id":"pixel-8","platform":"android","fcm_token":"secret-token"}`, identity)

	require.NoError(t, h.RegisterDevice(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), device.ID.String())
	assert.NotContains(t, rec.Body.String(), "secret-token")
}

func TestDeviceHandler_RegisterDevice_UnknownPlatform(t *testing.T) {
	h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: mocks.NewMockDeviceUsecase(t), Logger: newDiscardLogger()})

	c, rec := newTestContext(http.MethodPost, "/api/v1/devices",
		`{"device_id":"pixel-8","platform":"symbian","fcm_token":"tok"}`, customer())

	require.NoError(t, h.RegisterDevice(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeError(t, rec).Error.Code)
}

func TestDeviceHandler_RefreshToken(t *testing.T) {
	deviceUC := mocks.NewMockDeviceUsecase(t)
	h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC, Logger: newDiscardLogger()})

	identity := customer()
	deviceID := uuid.New()
	deviceUC.EXPECT().RefreshToken(mock.Anything, identity.UserID, deviceID, "fresh").Return(nil)

	c, rec := newTestContext(http.MethodPut, "/api/v1/devices/"+deviceID.String()+"/token", `{"fcm_token":"fresh"}`, identity)
	c.SetParamNames("id")
	c.SetParamValues(deviceID.String())

	require.NoError(t, h.RefreshToken(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeviceHandler_DeactivateDevice(t *testing.T) {
	tests := []struct {
		name     string
		param    string
		ucErr    error
		wantCode int
	}{
		{name: "deactivated", param: uuid.NewString(), wantCode: http.StatusNoContent},
		{name: "not the caller's device", param: uuid.NewString(), ucErr: domainerrors.ErrDeviceNotFound, wantCode: http.StatusNotFound},
		{name: "malformed id", param: "pixel-8", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deviceUC := mocks.NewMockDeviceUsecase(t)
			h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC, Logger: newDiscardLogger()})

			identity := customer()
			if id, err := uuid.Parse(tt.param); err == nil {
				deviceUC.EXPECT().DeactivateDevice(mock.Anything, identity.UserID, id).Return(tt.ucErr)
			}

			c, rec := newTestContext(http.MethodDelete, "/api/v1/devices/"+tt.param, "", identity)
			c.SetParamNames("id")
			c.SetParamValues(tt.param)

			require.NoError(t, h.DeactivateDevice(c))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
