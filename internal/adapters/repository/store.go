// Package repository defines the catalog store interface and errors.
package repository

import (
	"context"

	"github.com/okian/collegerank/internal/domain/model"
	"github.com/okian/collegerank/internal/domain/types"
)

// Store provides read access to the college catalog. The catalog is loaded
// once and never changes afterwards.
type Store interface {
	// Get returns one college. Returns ErrNotFound if the id is unknown.
	Get(ctx context.Context, id int) (model.College, error)

	// All returns every college in catalog order. The slice is a copy.
	All(ctx context.Context) []model.College

	// TopN returns the n best colleges by overall score, ties by id asc.
	TopN(ctx context.Context, n int) ([]types.Entry, error)

	// Count returns the number of colleges in the catalog.
	Count(ctx context.Context) int
}
