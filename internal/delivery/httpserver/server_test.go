package httpserver

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestServer_ServeReportsListenFailure(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	srv := New(lc, "api", -1, echo.New(), discardLogger())

	err := srv.Serve(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "api server")
}

func TestServer_Options(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	plain := New(lc, "worker", 8081, echo.New(), discardLogger())
	h2c := New(lc, "api", 8080, echo.New(), discardLogger(), WithH2C(0))

	assert.Nil(t, plain.h2c)
	assert.NotNil(t, h2c.h2c)
	assert.Equal(t, "0.0.0.0:8081", plain.addr)
}

func TestServer_StopBeforeStart(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	New(lc, "worker", 0, echo.New(), discardLogger())

	lc.RequireStart()
	lc.RequireStop()
}
