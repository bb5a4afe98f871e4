// Package store persists named trees in their flat record form.
//
// A [Store] keeps whole trees under caller-chosen names, with a generated
// ID and timestamps per entry. Implementations exist for different
// deployment shapes:
//   - file: per-entry JSON files under a directory, for CLI usage
//   - memory: process-local map, for tests and ephemeral pipelines
//   - null: discards everything, for disabling persistence
//   - redis: Redis-backed storage for shared multi-process setups
//   - mongo: MongoDB-backed storage with one document per tree
//
// Trees are converted with [tree.Node.Flatten] on save and [tree.Build] on
// load, so stored trees must have tree-wide unique names; see the tree
// package for the format's rules.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/arbor/pkg/tree"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when no entry exists under the requested name.
	ErrNotFound = errors.New("not found")

	// ErrInvalidName is returned when an entry name is empty.
	ErrInvalidName = errors.New("entry name must not be empty")
)

// Entry is a stored tree plus its bookkeeping data.
type Entry struct {
	ID        string        `json:"id" bson:"id"`
	Name      string        `json:"name" bson:"name"`
	Records   []tree.Record `json:"records" bson:"records"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" bson:"updated_at"`
}

// Build reconstructs the entry's tree from its records.
func (e *Entry) Build() (*tree.Node, error) {
	return tree.Build(e.Records)
}

// Info is the listing view of an entry, without the records.
type Info struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Nodes     int       `json:"nodes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store is the interface for tree storage backends.
// Implementations must be safe for use from multiple goroutines.
type Store interface {
	// Save stores the subtree rooted at root under name, overwriting any
	// previous entry with that name while preserving its ID and creation
	// time.
	Save(ctx context.Context, name string, root *tree.Node) (*Entry, error)

	// Load retrieves the entry stored under name.
	// Returns ErrNotFound if no such entry exists.
	Load(ctx context.Context, name string) (*Entry, error)

	// List returns the stored entries, ordered by name.
	List(ctx context.Context) ([]Info, error)

	// Delete removes the entry stored under name.
	// Deleting a missing entry is not an error.
	Delete(ctx context.Context, name string) error

	// Close releases any resources held by the backend.
	Close() error
}

// newEntry assembles the entry to write for a Save, carrying over identity
// and creation time from prev when the name is being overwritten.
func newEntry(name string, root *tree.Node, prev *Entry) (*Entry, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	if root == nil {
		return nil, tree.ErrNilNode
	}
	records, err := root.Flatten()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	e := &Entry{
		ID:        uuid.NewString(),
		Name:      name,
		Records:   records,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if prev != nil {
		e.ID = prev.ID
		e.CreatedAt = prev.CreatedAt
	}
	return e, nil
}

func infoOf(e *Entry) Info {
	return Info{
		ID:        e.ID,
		Name:      e.Name,
		Nodes:     len(e.Records),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// RetryableError wraps an error to indicate it should trigger a retry.
type RetryableError struct{ Err error }

// Retryable wraps an error as a RetryableError.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

// Error returns the error message of the wrapped error.
func (e *RetryableError) Error() string { return e.Err.Error() }

// Unwrap returns the wrapped error.
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable checks if an error is wrapped with RetryableError.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// RetryWithBackoff retries fn up to 3 times with exponential backoff.
// Only errors wrapped with Retryable will trigger retries. This is meant
// for the network-backed stores, where transient failures are expected.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	const attempts = 3
	delay := time.Second
	var lastErr error

	for i := 0; i < attempts; i++ {
		if err := fn(); err == nil {
			return nil
		} else if lastErr = err; !IsRetryable(err) {
			return err
		}

		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return lastErr
}
