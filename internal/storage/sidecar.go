package storage

import (
	"context"
	"errors"
)

// Sidecar is the durable key-value mirror for session state. Values
// are opaque blobs written wholesale; there are no partial updates.
type Sidecar interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

var ErrNotFound = errors.New("no state stored for key")
