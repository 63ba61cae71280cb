package types

import (
	"strings"
	"time"
)

// Item is one inventory record. Names are unique within the collection,
// compared case-insensitively.
type Item struct {
	ID        string    `json:"id"`         // UUID v7, generated on creation.
	Name      string    `json:"name"`       // Required, non-empty.
	Stock     int64     `json:"stock"`      // Units on hand, never negative.
	Price     float64   `json:"price"`      // Unit price, never negative.
	CreatedAt time.Time `json:"created_at"` // Timestamp of creation.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of last modification.
}

// Value returns the total inventory value of this item (stock times unit price).
func (i *Item) Value() float64 {
	return float64(i.Stock) * i.Price
}

// Validate checks the item fields against the collection invariants.
// Returns a sentinel error from this package on the first violation.
func (i *Item) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return ErrInvalidName
	}
	if i.Stock < 0 {
		return ErrInvalidStock
	}
	if i.Price < 0 {
		return ErrInvalidPrice
	}
	return nil
}

// ItemUpdate describes a partial update to an existing item. Nil fields keep
// the current value.
type ItemUpdate struct {
	Name  *string  // Rename; subject to the same uniqueness rule as Add.
	Stock *int64
	Price *float64
}

// Empty reports whether the update would change nothing.
func (u ItemUpdate) Empty() bool {
	return u.Name == nil && u.Stock == nil && u.Price == nil
}
