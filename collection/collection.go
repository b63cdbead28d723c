/*
Package collection provides the generic editable collection engine.

PURPOSE:
  This package contains domain-agnostic machinery for managing an ordered
  collection of uniquely-identified records. Whether the records are retail
  stores, SKUs, or sales facts, the same engine handles create/update/delete,
  optional reordering, validation, and persistence.

KEY CONCEPTS IN THIS FILE (collection.go):
  - Record: constraint for anything with an integer surrogate id
  - Collection: ordered, validated, repository-backed record set
  - Repository: opaque key-value persistence keyed by collection name

DESIGN PRINCIPLES:
  1. Identity: ids are assigned by the collection (max existing + 1), never
     by callers, and never change across Update.
  2. Explicit failure: validation failures are returned as errors, not
     swallowed. Callers decide how to surface them.
  3. Durability: every successful mutation is persisted immediately under
     the collection's logical name.

REORDER WARNING:
  Reorder renumbers identities. After a reorder, every record's id equals
  its new 1-based position, so external references by old id go stale.
  Callers that need stable joins must key on business fields, not ids.

USAGE:
  stores, err := collection.New(ctx, "stores", repo, seed,
      collection.WithValidator(validateStore),
      collection.WithReorder[Store]())
  created, err := stores.Create(ctx, draft)

SEE ALSO:
  - session.go: per-collection edit-mode state machine
  - errors.go: sentinel and structured errors
  - store/memory.go: in-memory Repository for tests
*/
package collection

import (
	"context"
	"encoding/json"
	"fmt"
)

// =============================================================================
// RECORD - Constraint for collection members
// =============================================================================

// Record is implemented by any type carrying an integer surrogate id.
// WithRecordID returns a copy with the id replaced; the collection uses it
// to assign ids on insert and to renumber on reorder.
type Record[T any] interface {
	RecordID() int
	WithRecordID(id int) T
}

// ValidateFunc checks a draft record before it is admitted by Create or
// Update. A nil return admits the record.
type ValidateFunc[T any] func(T) error

// =============================================================================
// REPOSITORY - Opaque persistence keyed by logical name
// =============================================================================

// Repository is the persistence boundary. Implementations only see opaque
// payloads keyed by the collection's logical name, so the engine can be
// backed by SQLite, a browser storage bridge, or an in-memory fake.
type Repository interface {
	// Load returns the payload stored under name. ok is false when nothing
	// has been stored yet (first run).
	Load(ctx context.Context, name string) (payload []byte, ok bool, err error)

	// Save overwrites the payload stored under name.
	Save(ctx context.Context, name string, payload []byte) error
}

// =============================================================================
// COLLECTION
// =============================================================================

// Collection is an ordered set of records sharing an integer id.
type Collection[T Record[T]] struct {
	name        string
	repo        Repository
	validate    ValidateFunc[T]
	reorderable bool
	items       []T
}

// Option configures a Collection at construction time.
type Option[T Record[T]] func(*Collection[T])

// WithValidator installs the validation predicate applied by Create and Update.
func WithValidator[T Record[T]](fn ValidateFunc[T]) Option[T] {
	return func(c *Collection[T]) { c.validate = fn }
}

// WithReorder enables Reorder for this collection.
func WithReorder[T Record[T]]() Option[T] {
	return func(c *Collection[T]) { c.reorderable = true }
}

// New builds a collection backed by repo. State is loaded once from the
// repository; when nothing is stored yet the seed is used and persisted.
func New[T Record[T]](ctx context.Context, name string, repo Repository, seed []T, opts ...Option[T]) (*Collection[T], error) {
	c := &Collection[T]{name: name, repo: repo}
	for _, opt := range opts {
		opt(c)
	}

	payload, ok, err := repo.Load(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load collection %q: %w", name, err)
	}
	if ok {
		if err := json.Unmarshal(payload, &c.items); err != nil {
			return nil, fmt.Errorf("decode collection %q: %w", name, err)
		}
		return c, nil
	}

	c.items = append([]T(nil), seed...)
	if err := c.persist(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// Name returns the collection's logical name (its persistence key).
func (c *Collection[T]) Name() string { return c.name }

// Len returns the number of records.
func (c *Collection[T]) Len() int { return len(c.items) }

// Reorderable reports whether Reorder is enabled.
func (c *Collection[T]) Reorderable() bool { return c.reorderable }

// List returns a copy of the current ordered records.
func (c *Collection[T]) List() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns the record with the given id.
func (c *Collection[T]) Get(id int) (T, bool) {
	for _, item := range c.items {
		if item.RecordID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Create validates the draft, assigns id = max(existing ids, 0) + 1, appends
// the record, and persists. The stored record is returned.
func (c *Collection[T]) Create(ctx context.Context, draft T) (T, error) {
	var zero T
	if err := c.check(draft); err != nil {
		return zero, err
	}

	item := draft.WithRecordID(c.maxID() + 1)
	c.items = append(c.items, item)
	if err := c.persist(ctx); err != nil {
		return zero, err
	}
	return item, nil
}

// Update validates the replacement record and swaps it in for the record
// with the given id. The id is immutable: whatever id the replacement
// carries is overwritten with the target id. Returns ErrNotFound when no
// record has that id.
func (c *Collection[T]) Update(ctx context.Context, id int, record T) (T, error) {
	var zero T
	if err := c.check(record); err != nil {
		return zero, err
	}

	for i, item := range c.items {
		if item.RecordID() != id {
			continue
		}
		updated := record.WithRecordID(id)
		c.items[i] = updated
		if err := c.persist(ctx); err != nil {
			return zero, err
		}
		return updated, nil
	}
	return zero, fmt.Errorf("update %q id %d: %w", c.name, id, ErrNotFound)
}

// Delete removes the record with the given id. Deleting an absent id is an
// idempotent no-op.
func (c *Collection[T]) Delete(ctx context.Context, id int) error {
	for i, item := range c.items {
		if item.RecordID() != id {
			continue
		}
		c.items = append(c.items[:i], c.items[i+1:]...)
		return c.persist(ctx)
	}
	return nil
}

// Reorder moves the record at from to position to, then renumbers EVERY
// record's id to its new 1-based position. See the package comment: this
// changes identity, not just order.
func (c *Collection[T]) Reorder(ctx context.Context, from, to int) error {
	if !c.reorderable {
		return fmt.Errorf("collection %q: %w", c.name, ErrReorderDisabled)
	}
	if from < 0 || from >= len(c.items) || to < 0 || to >= len(c.items) {
		return fmt.Errorf("reorder %q (%d -> %d of %d): %w", c.name, from, to, len(c.items), ErrIndexOutOfRange)
	}
	if from == to {
		return nil
	}

	moved := c.items[from]
	c.items = append(c.items[:from], c.items[from+1:]...)
	c.items = append(c.items[:to], append([]T{moved}, c.items[to:]...)...)

	for i, item := range c.items {
		c.items[i] = item.WithRecordID(i + 1)
	}
	return c.persist(ctx)
}

// Reset replaces the entire contents, bypassing per-record validation.
// Used by seed and scenario loaders, not by the normal edit surface.
func (c *Collection[T]) Reset(ctx context.Context, items []T) error {
	c.items = append([]T(nil), items...)
	return c.persist(ctx)
}

// =============================================================================
// INTERNALS
// =============================================================================

func (c *Collection[T]) check(record T) error {
	if c.validate == nil {
		return nil
	}
	if err := c.validate(record); err != nil {
		return &InvalidRecordError{Collection: c.name, Reason: err}
	}
	return nil
}

func (c *Collection[T]) maxID() int {
	max := 0
	for _, item := range c.items {
		if item.RecordID() > max {
			max = item.RecordID()
		}
	}
	return max
}

func (c *Collection[T]) persist(ctx context.Context) error {
	payload, err := json.Marshal(c.items)
	if err != nil {
		return fmt.Errorf("encode collection %q: %w", c.name, err)
	}
	if err := c.repo.Save(ctx, c.name, payload); err != nil {
		return fmt.Errorf("persist collection %q: %w", c.name, err)
	}
	return nil
}
