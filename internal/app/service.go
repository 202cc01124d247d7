// Package service provides the core business service that implements
// the dependencies required by the HTTP API and the CLI.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/okian/collegerank/internal/adapters/repository"
	"github.com/okian/collegerank/internal/adapters/seed"
	"github.com/okian/collegerank/internal/domain/model"
	"github.com/okian/collegerank/internal/domain/profile"
	"github.com/okian/collegerank/internal/domain/query"
	"github.com/okian/collegerank/internal/domain/session"
	"github.com/okian/collegerank/internal/domain/types"
	"github.com/okian/collegerank/pkg/logger"
	"github.com/okian/collegerank/pkg/metrics"
)

// SessionView is the state and current page of one listing session.
type SessionView struct {
	ID    string       `json:"id"`
	State *query.State `json:"state"`
	View  query.View   `json:"view"`
}

// Service serves the catalog, the top board and listing sessions.
type Service struct {
	mu sync.RWMutex

	// Core components
	store    repository.Store
	sessions session.Registry
	entities []model.College // catalog order, read-only after Start

	// Configuration
	catalog       []model.College
	catalogPath   string
	maxSessions   int
	sessionTTL    time.Duration
	sweepInterval time.Duration
	maxTopLimit   int
	now           func() time.Time

	// State
	started bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		maxSessions:   10_000,
		sessionTTL:    30 * time.Minute,
		sweepInterval: time.Minute,
		maxTopLimit:   50,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the catalog, opens the session registry and launches the sweeper.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting roster service...")

	colleges := s.catalog
	if colleges == nil {
		var err error
		if colleges, err = seed.Load(s.catalogPath); err != nil {
			return err
		}
	}
	store, err := repository.NewMemStore(ctx, colleges)
	if err != nil {
		return fmt.Errorf("build catalog: %w", err)
	}
	s.store = store
	s.entities = store.All(ctx)
	s.sessions = session.NewRegistry(
		session.WithMaxSessions(s.maxSessions),
		session.WithTTL(s.sessionTTL),
		session.WithClock(s.now),
	)
	metrics.UpdateSessionsActive(0)

	sweepCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = cancel
	s.wg.Add(1)
	go s.sweepLoop(sweepCtx)

	s.started = true
	s.logger.Info(ctx, "roster service started",
		logger.Int("colleges", store.Count(ctx)),
		logger.String("catalog", catalogName(s.catalogPath)),
		logger.Int("maxSessions", s.maxSessions),
		logger.Duration("sessionTTL", s.sessionTTL),
	)
	return nil
}

func catalogName(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}

// Stop stops the sweeper and waits for it to exit.
func (s *Service) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	s.logger.Info(context.Background(), "stopping roster service...")
	s.cancel()
	s.started = false
	s.mu.Unlock()

	s.wg.Wait()
	s.logger.Info(context.Background(), "roster service stopped")
}

func (s *Service) sweepLoop(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep drops idle sessions now and returns how many were dropped.
func (s *Service) Sweep(ctx context.Context) int {
	reg, err := s.registry()
	if err != nil {
		return 0
	}
	expired := reg.Sweep(ctx)
	if len(expired) > 0 {
		metrics.RecordSessionsExpired(len(expired))
		s.logger.Debug(ctx, "expired idle sessions", logger.Int("count", len(expired)))
	}
	metrics.UpdateSessionsActive(reg.Size())
	return len(expired)
}

func (s *Service) registry() (session.Registry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil, ErrNotStarted
	}
	return s.sessions, nil
}

func (s *Service) catalogEntities() ([]model.College, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.entities == nil {
		return nil, ErrNotStarted
	}
	return s.entities, nil
}

// compute derives the view and records its metrics.
func (s *Service) compute(entities []model.College, st *query.State) query.View {
	start := time.Now()
	v := query.ComputeView(entities, st)
	metrics.RecordViewComputed(float64(time.Since(start).Microseconds())/1000, v.Total)
	return v
}

// Query computes a view for a caller-held state without opening a session.
func (s *Service) Query(_ context.Context, st *query.State) (query.View, error) {
	entities, err := s.catalogEntities()
	if err != nil {
		return query.View{}, err
	}
	return s.compute(entities, st), nil
}

// OpenSession starts a listing session at the default state.
func (s *Service) OpenSession(ctx context.Context) (SessionView, error) {
	reg, err := s.registry()
	if err != nil {
		return SessionView{}, err
	}
	entities, err := s.catalogEntities()
	if err != nil {
		return SessionView{}, err
	}
	sess, evicted := reg.Create(ctx)
	metrics.RecordSessionOpened()
	if evicted != "" {
		metrics.RecordSessionEvicted()
		s.logger.Debug(ctx, "evicted least recently used session", logger.String("session", evicted))
	}
	metrics.UpdateSessionsActive(reg.Size())
	return s.viewOf(entities, sess), nil
}

// Session returns the current state and view of a session.
func (s *Service) Session(ctx context.Context, id string) (SessionView, error) {
	sess, err := s.lookup(ctx, id)
	if err != nil {
		return SessionView{}, err
	}
	entities, err := s.catalogEntities()
	if err != nil {
		return SessionView{}, err
	}
	return s.viewOf(entities, sess), nil
}

// Apply runs one action on a session and returns the recomputed view. The
// next operation on the same session waits until the view is computed.
func (s *Service) Apply(ctx context.Context, id string, a query.Action) (SessionView, query.Outcome, error) {
	sess, err := s.lookup(ctx, id)
	if err != nil {
		return SessionView{}, "", err
	}
	entities, err := s.catalogEntities()
	if err != nil {
		return SessionView{}, "", err
	}

	var (
		out    SessionView
		result query.Outcome
	)
	sess.Do(func(st *query.State) {
		result, err = query.Apply(entities, st, a)
		if err != nil {
			return
		}
		out = SessionView{ID: sess.ID, State: st.Clone(), View: s.compute(entities, st)}
	})
	if err != nil {
		metrics.RecordAction(string(a.Type), "error")
		return SessionView{}, "", err
	}

	metrics.RecordAction(string(a.Type), string(result))
	if result == query.Ignored {
		switch a.Type {
		case query.ActionSelect:
			metrics.RecordSelectionRejected()
		case query.ActionBound:
			metrics.RecordBoundFallback(a.Field)
			s.logger.Debug(ctx, "bound kept, input did not parse",
				logger.String("session", id),
				logger.String("field", a.Field),
				logger.String("input", a.Value),
			)
		}
	}
	return out, result, nil
}

// CloseSession tears a session down.
func (s *Service) CloseSession(ctx context.Context, id string) error {
	reg, err := s.registry()
	if err != nil {
		return err
	}
	if !reg.Delete(ctx, id) {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	metrics.RecordSessionClosed()
	metrics.UpdateSessionsActive(reg.Size())
	return nil
}

func (s *Service) lookup(ctx context.Context, id string) (*session.Session, error) {
	reg, err := s.registry()
	if err != nil {
		return nil, err
	}
	sess, ok := reg.Get(ctx, id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return sess, nil
}

// viewOf computes over a snapshot, so the session is not held during the query.
func (s *Service) viewOf(entities []model.College, sess *session.Session) SessionView {
	st := sess.Snapshot()
	return SessionView{ID: sess.ID, State: st, View: s.compute(entities, st)}
}

// TopN returns the best n colleges by overall score, capped at the configured limit.
func (s *Service) TopN(ctx context.Context, n int) ([]types.Entry, error) {
	store, err := s.catalogStore()
	if err != nil {
		return nil, err
	}
	return store.TopN(ctx, min(n, s.maxTopLimit))
}

// MaxTopLimit returns the configured cap of TopN.
func (s *Service) MaxTopLimit() int {
	return s.maxTopLimit
}

// College returns one catalog record.
func (s *Service) College(ctx context.Context, id int) (model.College, error) {
	store, err := s.catalogStore()
	if err != nil {
		return model.College{}, err
	}
	return store.Get(ctx, id)
}

// Profile returns the details view of a college.
func (s *Service) Profile(ctx context.Context, id int) (profile.Details, error) {
	c, err := s.College(ctx, id)
	if err != nil {
		return profile.Details{}, err
	}
	return profile.Derive(profile.For(c)), nil
}

// Colleges returns the catalog in catalog order.
func (s *Service) Colleges(_ context.Context) ([]model.College, error) {
	entities, err := s.catalogEntities()
	if err != nil {
		return nil, err
	}
	return append([]model.College(nil), entities...), nil
}

// Regions lists the distinct regions of the catalog.
func (s *Service) Regions(_ context.Context) ([]string, error) {
	entities, err := s.catalogEntities()
	if err != nil {
		return nil, err
	}
	return query.Regions(entities), nil
}

// Cities lists the distinct cities of a region.
func (s *Service) Cities(_ context.Context, region string) ([]string, error) {
	entities, err := s.catalogEntities()
	if err != nil {
		return nil, err
	}
	return query.Cities(entities, region), nil
}

func (s *Service) catalogStore() (repository.Store, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.store == nil {
		return nil, ErrNotStarted
	}
	return s.store, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]any{
		"started":       s.started,
		"maxSessions":   s.maxSessions,
		"sessionTTL":    s.sessionTTL.String(),
		"maxTopLimit":   s.maxTopLimit,
		"pageSize":      query.PageSize,
		"selectionSize": query.SelectionCapacity,
	}
	if s.started {
		active := s.sessions.Size()
		stats["colleges"] = s.store.Count(context.Background())
		stats["sessions"] = active
		metrics.UpdateSessionsActive(active)
	}
	return stats
}
