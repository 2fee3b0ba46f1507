package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"crave/internal/infra/storage"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

type fakeImages map[string]string

func (f fakeImages) Open(_ context.Context, bucket, key string) (*storage.Object, error) {
	data, ok := f[bucket+"/"+key]
	if !ok {
		return nil, errors.Wrap(storage.ErrObjectNotFound, key)
	}

	return &storage.Object{
		ReadCloser:  io.NopCloser(strings.NewReader(data)),
		ContentType: "image/png",
		Size:        int64(len(data)),
	}, nil
}

func TestMediaHandler_ServeImage(t *testing.T) {
	tests := []struct {
		name       string
		bucket     string
		key        string
		wantStatus int
		wantBody   string
	}{
		{name: "found", bucket: "product-images", key: "1700-pen.png", wantStatus: http.StatusOK, wantBody: "png"},
		{name: "missing key", bucket: "product-images", key: "nope.png", wantStatus: http.StatusNotFound},
		{name: "traversal", bucket: "product-images", key: "../secrets", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewMediaHandler(MediaHandlerParams{
				Images: fakeImages{"product-images/1700-pen.png": "png"},
				Logger: newDiscardLogger(),
			})

			c, rec := newTestContext(http.MethodGet, "/static/"+tt.bucket+"/"+tt.key, "", nil)
			c.SetParamNames("bucket", "*")
			c.SetParamValues(tt.bucket, tt.key)

			require.NoError(t, h.ServeImage(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
				assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
				assert.Contains(t, rec.Header().Get("Cache-Control"), "immutable")
			}
		})
	}
}

func TestMediaHandler_ServeImage_UnknownBucket(t *testing.T) {
	store := storage.NewWithBuckets(map[string]*blob.Bucket{"product-images": memblob.OpenBucket(nil)}, "", slog.New(slog.DiscardHandler))
	t.Cleanup(func() { _ = store.Close() })

	h := NewMediaHandler(MediaHandlerParams{Images: store, Logger: newDiscardLogger()})

	c, rec := newTestContext(http.MethodGet, "/static/banners/a.png", "", nil)
	c.SetParamNames("bucket", "*")
	c.SetParamValues("banners", "a.png")

	require.NoError(t, h.ServeImage(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
