package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"crave/internal/delivery/api/response"
	"crave/internal/infra/storage"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ImageSource reads stored images back.
type ImageSource interface {
	Open(ctx context.Context, bucket, key string) (*storage.Object, error)
}

type MediaHandlerParams struct {
	fx.In

	Images ImageSource
	Logger *slog.Logger
}

// MediaHandler serves uploaded images when the buckets are local
type MediaHandler struct {
	images ImageSource
	logger *slog.Logger
}

func NewMediaHandler(params MediaHandlerParams) *MediaHandler {
	return &MediaHandler{
		images: params.Images,
		logger: params.Logger,
	}
}

// ServeImage streams /static/:bucket/<key>.
func (h *MediaHandler) ServeImage(c echo.Context) error {
	bucket := c.Param("bucket")
	key := c.Param("*")
	if key == "" || strings.Contains(key, "..") {
		return response.NotFound(c, "IMAGE_NOT_FOUND", "Image not found")
	}

	obj, err := h.images.Open(c.Request().Context(), bucket, key)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) || errors.Is(err, storage.ErrUnknownBucket) {
			return response.NotFound(c, "IMAGE_NOT_FOUND", "Image not found")
		}

		return errors.WithStack(err)
	}
	defer obj.Close()

	header := c.Response().Header()
	header.Set(echo.HeaderContentLength, strconv.FormatInt(obj.Size, 10))
	// Keys embed the upload time, so an object never changes.
	header.Set("Cache-Control", "public, max-age=31536000, immutable")

	return c.Stream(http.StatusOK, obj.ContentType, obj)
}
