package store

import (
	"context"
	"time"

	"github.com/matzehuels/arbor/pkg/observability"
	"github.com/matzehuels/arbor/pkg/tree"
)

// hookedStore wraps a Store and reports each operation to the registered
// observability hooks.
type hookedStore struct {
	inner Store
}

// WithHooks returns a Store that emits observability events for every
// save, load, and delete against the wrapped backend.
func WithHooks(s Store) Store {
	return &hookedStore{inner: s}
}

func (h *hookedStore) Save(ctx context.Context, name string, root *tree.Node) (*Entry, error) {
	start := time.Now()
	entry, err := h.inner.Save(ctx, name, root)
	records := 0
	if entry != nil {
		records = len(entry.Records)
	}
	observability.Store().OnSave(ctx, name, records, time.Since(start), err)
	return entry, err
}

func (h *hookedStore) Load(ctx context.Context, name string) (*Entry, error) {
	start := time.Now()
	entry, err := h.inner.Load(ctx, name)
	observability.Store().OnLoad(ctx, name, time.Since(start), err)
	return entry, err
}

func (h *hookedStore) List(ctx context.Context) ([]Info, error) {
	return h.inner.List(ctx)
}

func (h *hookedStore) Delete(ctx context.Context, name string) error {
	start := time.Now()
	err := h.inner.Delete(ctx, name)
	observability.Store().OnDelete(ctx, name, time.Since(start), err)
	return err
}

func (h *hookedStore) Close() error { return h.inner.Close() }

// Ensure hookedStore implements Store.
var _ Store = (*hookedStore)(nil)
