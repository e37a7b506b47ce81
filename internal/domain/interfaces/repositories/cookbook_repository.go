// Package repositories defines interfaces for data access layers.
package repositories

import (
	"github.com/mskold/kokbok/internal/domain/entities"
	"github.com/mskold/kokbok/internal/domain/events"
)

// CookbookRepository defines the interface for an owned recipe collection
// backed by a cookbook file.
//
// The repository is the sole owner of its collection: every read accessor
// returns deep copies, so callers can mutate what they receive without a
// lock. Operations are synchronous and single-threaded; no method takes a
// context because none defines cancellation semantics.
type CookbookRepository interface {
	// Load reads and parses the cookbook at path, replacing the owned
	// collection. On any failure the previously loaded collection and the
	// modification flag are left untouched.
	Load(path string) error

	// Save serializes the owned collection to path, overwriting the file
	Save(path string) error

	// GetAll returns a deep copy of every recipe in stored (sorted) order
	GetAll() []*entities.Recipe

	// GetAt returns a deep copy of the recipe at index
	GetAt(index int) (*entities.Recipe, error)

	// Delete removes the first owned recipe matching the argument, by
	// identity or by value equality
	Delete(recipe *entities.Recipe) error

	// DeleteAt removes the recipe at index
	DeleteAt(index int) error

	// Count returns the number of owned recipes
	Count() int

	// IsModified reports whether the collection has unsaved mutations
	IsModified() bool

	// Subscribe registers a callback fired once after every committed
	// mutation (Load, Delete)
	Subscribe(fn events.ChangeFunc) events.SubscriptionID

	// Unsubscribe removes a previously registered callback
	Unsubscribe(id events.SubscriptionID)
}
