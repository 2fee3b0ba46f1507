// Package storage keeps product and category images in gocloud blob buckets.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"crave/config"
	"crave/internal/domain/service"
	"crave/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

// ErrObjectExists is returned when an upload would overwrite an existing key.
var ErrObjectExists = errors.New("object already exists")

// ErrObjectNotFound is returned by Open for a missing key.
var ErrObjectNotFound = errors.New("object not found")

// ErrUnknownBucket is returned for a bucket name missing from storage.bucketUrls.
var ErrUnknownBucket = errors.New("unknown bucket")

// Params defines the dependencies for the blob store.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// BlobStore implements service.ObjectStore over one blob.Bucket per logical bucket.
type BlobStore struct {
	buckets       map[string]*blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

var _ service.ObjectStore = (*BlobStore)(nil)

// New opens every configured bucket and closes them on shutdown.
func New(params Params) (*BlobStore, error) {
	if params.Config.Storage == nil || len(params.Config.Storage.BucketURLs) == 0 {
		return nil, errors.New("storage.bucketUrls must be configured")
	}

	buckets := make(map[string]*blob.Bucket, len(params.Config.Storage.BucketURLs))
	for name, url := range params.Config.Storage.BucketURLs {
		bucket, err := blob.OpenBucket(context.Background(), url)
		if err != nil {
			closeAll(buckets)

			return nil, errors.Wrapf(err, "failed to open bucket %s", name)
		}
		buckets[name] = bucket
	}

	store := NewWithBuckets(buckets, params.Config.Storage.PublicBaseURL, params.Logger)

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

// NewWithBuckets wraps already opened buckets.
func NewWithBuckets(buckets map[string]*blob.Bucket, publicBaseURL string, logger *slog.Logger) *BlobStore {
	return &BlobStore{
		buckets:       buckets,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

// Upload writes the object and returns its public URL. The write is conditional
// on the key being absent.
func (s *BlobStore) Upload(ctx context.Context, bucketName, key string, data []byte, contentType string) (string, error) {
	bucket, err := s.bucket(bucketName)
	if err != nil {
		return "", err
	}

	err = bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
		ContentType: contentType,
		IfNotExist:  true,
	})
	if err != nil {
		if gcerrors.Code(err) == gcerrors.FailedPrecondition {
			return "", errors.Wrapf(ErrObjectExists, "%s/%s", bucketName, key)
		}

		return "", errors.Wrapf(err, "failed to upload %s/%s", bucketName, key)
	}

	s.logger.Debug("Object uploaded",
		slog.String("bucket", bucketName),
		slog.String("key", key),
		slog.Int("size", len(data)),
	)

	return s.PublicURL(bucketName, key), nil
}

// Delete removes the object; a missing key is not an error.
func (s *BlobStore) Delete(ctx context.Context, bucketName, key string) error {
	bucket, err := s.bucket(bucketName)
	if err != nil {
		return err
	}

	if err := bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete %s/%s", bucketName, key)
	}

	return nil
}

// Object is an open stored image. Callers must Close it.
type Object struct {
	io.ReadCloser

	ContentType string
	Size        int64
}

// Open streams an object back out. Only the local media route reads objects;
// production buckets are served by their own CDN.
func (s *BlobStore) Open(ctx context.Context, bucketName, key string) (*Object, error) {
	bucket, err := s.bucket(bucketName)
	if err != nil {
		return nil, err
	}

	reader, err := bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, errors.Wrapf(ErrObjectNotFound, "%s/%s", bucketName, key)
		}

		return nil, errors.Wrapf(err, "failed to open %s/%s", bucketName, key)
	}

	return &Object{ReadCloser: reader, ContentType: reader.ContentType(), Size: reader.Size()}, nil
}

// PublicURL is the address clients load the object from.
func (s *BlobStore) PublicURL(bucketName, key string) string {
	return s.publicBaseURL + "/" + bucketName + "/" + key
}

// Close closes every bucket.
func (s *BlobStore) Close() error {
	return closeAll(s.buckets)
}

func (s *BlobStore) bucket(name string) (*blob.Bucket, error) {
	bucket, ok := s.buckets[name]
	if !ok {
		return nil, errors.Wrap(ErrUnknownBucket, name)
	}

	return bucket, nil
}

func closeAll(buckets map[string]*blob.Bucket) error {
	var firstErr error
	for _, bucket := range buckets {
		if err := bucket.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
