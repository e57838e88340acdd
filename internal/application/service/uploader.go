package service

import (
	"context"
	"io"
)

// Uploader relays binary blobs to the hosted media service and returns the
// public URL.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string, publicID string) (string, error)
	Delete(ctx context.Context, publicID string) error
}
