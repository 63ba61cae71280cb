package types

import "errors"

// Store defines the interface for inventory storage access. Callers attach to
// a backend, operate on the collection, and detach when done.
type Store interface {
	// Attach connects the Store to the backend described by config.
	// Creates the DataDir if it does not exist and loads the persisted
	// collection. Returns ErrAlreadyAttached if called while attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, all other operations return ErrStoreDetached.
	Detach() error

	// Add inserts a new item with the given name, stock, and price.
	// Returns ErrDuplicateName if an item with that name (compared
	// case-insensitively) already exists.
	Add(name string, stock int64, price float64) (*Item, error)

	// Get returns the item whose name matches exactly, ignoring case.
	// Returns ErrNotFound if no such item exists.
	Get(name string) (*Item, error)

	// List returns every item in the collection, ordered by name.
	List() ([]*Item, error)

	// Update applies a partial update to the named item and returns the
	// updated record. Returns ErrNotFound if the item is absent, and
	// ErrDuplicateName if a rename collides with another item.
	Update(name string, upd ItemUpdate) (*Item, error)

	// AdjustStock sets the stock level of the named item.
	// Returns ErrNotFound if the item is absent.
	AdjustStock(name string, stock int64) (*Item, error)

	// Delete removes the named item.
	// Returns ErrNotFound if the item is absent.
	Delete(name string) error

	// Search returns every item whose name or ID contains the substring,
	// ignoring case, ordered by name. The result is finite and each call
	// re-runs the query against current state.
	Search(substr string) ([]*Item, error)

	// Report returns aggregate statistics over the collection.
	Report() (*Report, error)
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)

// Collection operation errors.
var (
	ErrNotFound      = errors.New("item not found")
	ErrDuplicateName = errors.New("item name already exists")
	ErrInvalidName   = errors.New("item name must not be empty")
	ErrInvalidStock  = errors.New("stock must not be negative")
	ErrInvalidPrice  = errors.New("price must not be negative")
)
