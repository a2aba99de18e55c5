package search

import (
	"context"

	"ytgrip/internal/domain"
)

// Searcher runs one remote search
type Searcher interface {
	Search(ctx context.Context, query string) ([]domain.ResultItem, error)
}

// ResultMsg carries a finished search back into the update loop.
// Seq identifies the submission so superseded outcomes can be dropped.
type ResultMsg struct {
	Seq   uint64
	Query string
	Items []domain.ResultItem
	Err   error
}
