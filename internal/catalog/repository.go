package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Repository is an in-memory collection keyed by identifier. Entries are
// only ever inserted; Save serializes the whole collection in one shot.
type Repository[T any] struct {
	data map[string]T
}

// NewRepository creates an empty repository.
func NewRepository[T any]() *Repository[T] {
	return &Repository[T]{data: make(map[string]T)}
}

// Add inserts or replaces a single entry.
func (r *Repository[T]) Add(id string, value T) {
	r.data[id] = value
}

// BulkAdd inserts every entry of the given collection.
func (r *Repository[T]) BulkAdd(values map[string]T) {
	for id, value := range values {
		r.data[id] = value
	}
}

// Len returns the number of stored entries.
func (r *Repository[T]) Len() int {
	return len(r.data)
}

// Save overwrites path with the collection as one pretty-printed JSON
// object keyed by identifier. Non-ASCII characters are written verbatim.
func (r *Repository[T]) Save(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r.data); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
