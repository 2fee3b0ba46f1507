package service

import "context"

// ObjectStore holds uploaded images and serves them from public URLs.
type ObjectStore interface {
	// Upload writes data under key in bucket and returns its public URL.
	// An existing object with the same key is never overwritten.
	Upload(ctx context.Context, bucket, key string, data []byte, contentType string) (string, error)

	// Delete removes an object. Deleting a missing object is not an error.
	Delete(ctx context.Context, bucket, key string) error
}
