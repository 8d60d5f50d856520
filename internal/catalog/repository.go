// Package catalog defines the catalog entities and the storage-agnostic
// repository contract they are persisted through. Two adapters implement
// the contract: a Redis document store and a PostgreSQL relational store.
// Which one is active is decided once, at process composition time.
package catalog

import (
	"context"
	"errors"
	"time"
)

// ErrDuplicateID is returned when Add would overwrite an existing entity.
var ErrDuplicateID = errors.New("entity id already exists")

// Entity is the capability set a shape must satisfy to be stored through
// a Repository. Base provides the implementation.
type Entity interface {
	EntityID() string
	SetEntityID(id string)
	EntityType() string
	StampCreated(t time.Time)
	StampUpdated(t time.Time)
}

// Repository provides CRUD operations over one entity shape, identically
// for both storage backends.
//
// Known divergence: GetAll makes no ordering promise. The relational
// adapter returns newest-first by creation time, the document adapter
// returns storage order. Callers must not rely on ordering.
type Repository[T Entity] interface {
	// Add persists a new entity. A blank id is replaced with a generated
	// UUID and both timestamps are stamped. Returns the stored
	// representation. Adding an id that already exists fails with
	// ErrDuplicateID rather than overwriting.
	Add(ctx context.Context, entity T) (T, error)

	// Update persists an existing entity matched by id, stamping the
	// update timestamp. Updating an absent id is not an error.
	Update(ctx context.Context, entity T) error

	// Delete removes the entity with the given id. Deleting an absent id
	// is a no-op, so Delete is idempotent.
	Delete(ctx context.Context, id string) error

	// GetByID returns the entity with the given id, or the zero value and
	// a nil error when it does not exist. Absence is never an error.
	GetByID(ctx context.Context, id string) (T, error)

	// GetAll returns every entity of this shape.
	GetAll(ctx context.Context) ([]T, error)
}
