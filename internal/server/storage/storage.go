// Package storage moves encrypted material blobs in and out of S3-compatible
// object storage. Objects are written already sealed; this layer never sees
// plaintext.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type ObjectStore interface {
	// Put writes data under key.
	Put(ctx context.Context, key string, data []byte) error

	// Get reads the object stored under key.
	Get(ctx context.Context, key string) ([]byte, error)
}

// RandomStorageKey returns a date-prefixed object key, e.g.
// materials/2026/9/1/<uuid>.
func RandomStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("materials/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}
