// Package repositories holds the lists the UI navigates: search results
// and subscription feed entries.
package repositories

import (
	"ytgrip/internal/domain"
)

// ResultStore is the ordered result list of the last successful search.
// It is only ever replaced as a whole.
type ResultStore struct {
	items []domain.ResultItem
}

// NewResultStore returns an empty store
func NewResultStore() *ResultStore {
	return &ResultStore{}
}

// Replace swaps in a new result list, keeping the caller's order
func (s *ResultStore) Replace(items []domain.ResultItem) {
	s.items = append([]domain.ResultItem(nil), items...)
}

// All returns the results in order. The slice must not be modified.
func (s *ResultStore) All() []domain.ResultItem {
	return s.items
}

func (s *ResultStore) Len() int {
	return len(s.items)
}

// At returns the item at i, or nil when out of range
func (s *ResultStore) At(i int) *domain.ResultItem {
	if i < 0 || i >= len(s.items) {
		return nil
	}
	return &s.items[i]
}
