package storage

import (
	"context"
	"errors"
)

// DefaultKey is the slot holding the serialized product list.
const DefaultKey = "allProducts"

// ErrSlotEmpty is returned by Load when nothing has been saved under the key.
var ErrSlotEmpty = errors.New("storage slot is empty")

// Slot is a named key-value cell that is always read and written whole.
type Slot interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}
