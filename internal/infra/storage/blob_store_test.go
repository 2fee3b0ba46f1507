package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"crave/internal/domain/constants"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

func newTestStore(t *testing.T) (*BlobStore, *blob.Bucket) {
	t.Helper()

	images := memblob.OpenBucket(nil)
	store := NewWithBuckets(map[string]*blob.Bucket{
		constants.BucketProductImages: images,
	}, "https://cdn.example.com/", slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(func() { _ = store.Close() })

	return store, images
}

func TestBlobStore_UploadReturnsPublicURL(t *testing.T) {
	store, images := newTestStore(t)
	ctx := context.Background()

	url, err := store.Upload(ctx, constants.BucketProductImages, "p1/front.png", []byte("png"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/product-images/p1/front.png", url)

	attrs, err := images.Attributes(ctx, "p1/front.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)
}

func TestBlobStore_UploadNeverOverwrites(t *testing.T) {
	store, images := newTestStore(t)
	ctx := context.Background()

	_, err := store.Upload(ctx, constants.BucketProductImages, "dup.png", []byte("first"), "image/png")
	require.NoError(t, err)

	_, err = store.Upload(ctx, constants.BucketProductImages, "dup.png", []byte("second"), "image/png")
	assert.True(t, errors.Is(err, ErrObjectExists))

	data, err := images.ReadAll(ctx, "dup.png")
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))
}

func TestBlobStore_DeleteMissingIsNotAnError(t *testing.T) {
	store, _ := newTestStore(t)

	assert.NoError(t, store.Delete(context.Background(), constants.BucketProductImages, "nope.png"))
}

func TestBlobStore_UnknownBucket(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Upload(context.Background(), "avatars", "a.png", []byte("x"), "image/png")
	assert.True(t, errors.Is(err, ErrUnknownBucket))
}

func TestBlobStore_Open(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.Upload(ctx, constants.BucketProductImages, "p1/side.png", []byte("png-bytes"), "image/png")
	require.NoError(t, err)

	obj, err := store.Open(ctx, constants.BucketProductImages, "p1/side.png")
	require.NoError(t, err)
	defer obj.Close()

	data, err := io.ReadAll(obj)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
	assert.Equal(t, "image/png", obj.ContentType)
	assert.Equal(t, int64(len("png-bytes")), obj.Size)

	_, err = store.Open(ctx, constants.BucketProductImages, "missing.png")
	assert.True(t, errors.Is(err, ErrObjectNotFound))
}
