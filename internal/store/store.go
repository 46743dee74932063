package store

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/fx"

	"giglane/pkg/errutil"
)

var Module = fx.Module("store",
	fx.Provide(
		Dialect,
		OpenDB,
		NewGormGateway,
		func(gw *GormGateway) Gateway { return gw },
		New,
	),
)

// Store guards each collection with its own mutex. Every mutation runs as
// lock, load, validate, mutate, save, unlock — a check-then-commit critical
// section with no suspension inside it.
type Store struct {
	gw Gateway

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(gw Gateway) *Store {
	return &Store{gw: gw, locks: map[string]*sync.Mutex{}}
}

func (s *Store) guard(collection string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[collection]
	if !ok {
		l = &sync.Mutex{}
		s.locks[collection] = l
	}
	return l
}

// Collection is a typed view over one named collection in the store.
type Collection[T any] struct {
	store *Store
	name  string
}

func NewCollection[T any](s *Store, name string) *Collection[T] {
	return &Collection[T]{store: s, name: name}
}

func (c *Collection[T]) Name() string { return c.name }

// All returns a decoded snapshot. The collection lock is held only for the
// duration of the byte copy; decoding happens outside it, so readers never
// block writers beyond the snapshot.
func (c *Collection[T]) All(ctx context.Context) ([]T, error) {
	lock := c.store.guard(c.name)
	lock.Lock()
	raw, err := c.store.gw.Load(ctx, c.name)
	lock.Unlock()
	if err != nil {
		return nil, err
	}
	return decode[T](c.name, raw)
}

// Mutate applies fn to the current items under the collection lock and
// persists the result. If fn returns an error nothing is saved; if Save
// fails the command is not-applied.
func (c *Collection[T]) Mutate(ctx context.Context, fn func(items []T) ([]T, error)) error {
	lock := c.store.guard(c.name)
	lock.Lock()
	defer lock.Unlock()

	raw, err := c.store.gw.Load(ctx, c.name)
	if err != nil {
		return err
	}
	items, err := decode[T](c.name, raw)
	if err != nil {
		return err
	}

	next, err := fn(items)
	if err != nil {
		return err
	}

	data, err := json.Marshal(next)
	if err != nil {
		return errutil.Persistence("failed to encode collection "+c.name, err)
	}
	return c.store.gw.Save(ctx, c.name, data)
}

func decode[T any](name string, raw []byte) ([]T, error) {
	if len(raw) == 0 {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, errutil.Persistence("failed to decode collection "+name, err)
	}
	return items, nil
}
