package store

import (
	"context"
	"sync"
)

// Gateway is the persistence boundary: one opaque blob per collection.
// Save must be atomic — a subsequent Load never observes a partial write.
// Load returns (nil, nil) for a collection that was never saved.
type Gateway interface {
	Load(ctx context.Context, collection string) ([]byte, error)
	Save(ctx context.Context, collection string, data []byte) error
}

// MemoryGateway keeps collections in process memory. Used by tests and as
// a scratch backend; data does not survive a restart.
type MemoryGateway struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{data: map[string][]byte{}}
}

func (g *MemoryGateway) Load(ctx context.Context, collection string) ([]byte, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	b, ok := g.data[collection]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

func (g *MemoryGateway) Save(ctx context.Context, collection string, data []byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	b := make([]byte, len(data))
	copy(b, data)
	g.data[collection] = b
	return nil
}
