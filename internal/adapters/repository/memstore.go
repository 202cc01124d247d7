package repository

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/okian/collegerank/internal/domain/model"
	"github.com/okian/collegerank/internal/domain/types"
	"github.com/okian/collegerank/pkg/metrics"
)

// MemStore is an immutable, in-memory Store.
//
// Ordering of the top board: overall score DESC, then id ASC (deterministic).
type MemStore struct {
	colleges []model.College // catalog order
	byID     map[int]int     // id -> index in colleges
	ranked   []types.Entry   // precomputed board over the whole catalog

	metricsEnabled bool
}

// NewMemStore validates colleges and builds the store. The whole catalog is
// rejected when any record is invalid or an id repeats.
func NewMemStore(_ context.Context, colleges []model.College, opts ...Option) (*MemStore, error) {
	s := &MemStore{
		colleges:       slices.Clone(colleges),
		byID:           make(map[int]int, len(colleges)),
		metricsEnabled: true,
	}
	for _, opt := range opts {
		opt(s)
	}

	for i, c := range s.colleges {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
		}
		if _, dup := s.byID[c.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, c.ID)
		}
		s.byID[c.ID] = i
	}
	s.ranked = buildBoard(s.colleges)

	if s.metricsEnabled {
		metrics.UpdateCatalogSize(len(s.colleges))
	}
	return s, nil
}

// less returns true if a should appear before b on the board.
func less(a, b model.College) bool {
	if a.OverallScore != b.OverallScore {
		return a.OverallScore > b.OverallScore
	}
	return a.ID < b.ID
}

func buildBoard(colleges []model.College) []types.Entry {
	sorted := slices.Clone(colleges)
	slices.SortFunc(sorted, func(a, b model.College) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		}
		return 0
	})
	board := make([]types.Entry, len(sorted))
	for i, c := range sorted {
		board[i] = types.Entry{
			Rank:   i + 1,
			ID:     c.ID,
			Name:   c.Name,
			City:   c.City,
			Region: c.Region,
			Score:  c.OverallScore,
		}
	}
	return board
}

// Get returns one college.
func (s *MemStore) Get(_ context.Context, id int) (model.College, error) {
	defer s.observe(time.Now())
	i, ok := s.byID[id]
	if !ok {
		return model.College{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return s.colleges[i], nil
}

// All returns a copy of the catalog in catalog order.
func (s *MemStore) All(_ context.Context) []model.College {
	return slices.Clone(s.colleges)
}

// TopN returns up to n board entries.
func (s *MemStore) TopN(_ context.Context, n int) ([]types.Entry, error) {
	defer s.observe(time.Now())
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, n)
	}
	n = min(n, len(s.ranked))
	return slices.Clone(s.ranked[:n]), nil
}

// Count returns the catalog size.
func (s *MemStore) Count(_ context.Context) int {
	return len(s.colleges)
}

func (s *MemStore) observe(start time.Time) {
	if !s.metricsEnabled {
		return
	}
	metrics.RecordCatalogQueryLatency(float64(time.Since(start).Microseconds()) / 1000)
}
