package session

import (
	"container/list"
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/okian/collegerank/internal/domain/query"
)

// Session is one open listing view. Its state is only touched through Do,
// so operations on the same session never overlap.
type Session struct {
	ID      string
	Created time.Time

	mu    sync.Mutex
	state *query.State
}

// Do runs fn with exclusive access to the session state.
func (s *Session) Do(fn func(*query.State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state)
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() *query.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Registry tracks open sessions.
type Registry interface {
	// Create opens a session with a default query state. When the registry
	// is full the least recently used session is dropped and its id returned.
	Create(ctx context.Context) (s *Session, evicted string)

	// Get returns the session and marks it as used.
	Get(ctx context.Context, id string) (*Session, bool)

	// Delete closes a session. It reports whether the session existed.
	Delete(ctx context.Context, id string) bool

	// Sweep drops sessions idle for longer than the TTL and returns their ids.
	Sweep(ctx context.Context) []string

	Size() int64
}

type entry struct {
	session  *Session
	lastSeen time.Time
	elem     *list.Element
}

// registry is an LRU-ordered map of sessions. The list front is the most
// recently used session.
type registry struct {
	mu      sync.Mutex
	byID    map[string]*entry
	order   *list.List
	maxSize int
	ttl     time.Duration
	now     func() time.Time
	size    atomic.Int64
}

// NewRegistry creates an in-memory registry.
func NewRegistry(opts ...Option) Registry {
	r := &registry{
		maxSize: 10_000,
		ttl:     30 * time.Minute,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.byID = make(map[string]*entry)
	r.order = list.New()
	return r
}

func (r *registry) Create(_ context.Context) (*Session, string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var evicted string
	if r.maxSize > 0 && len(r.byID) >= r.maxSize {
		if back := r.order.Back(); back != nil {
			evicted = back.Value.(string)
			r.removeLocked(evicted)
		}
	}

	now := r.now()
	s := &Session{
		ID:      uuid.NewString(),
		Created: now,
		state:   query.NewState(),
	}
	e := &entry{session: s, lastSeen: now}
	e.elem = r.order.PushFront(s.ID)
	r.byID[s.ID] = e
	r.size.Add(1)
	return s, evicted
}

func (r *registry) Get(_ context.Context, id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = r.now()
	r.order.MoveToFront(e.elem)
	return e.session, true
}

func (r *registry) Delete(_ context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.removeLocked(id)
}

func (r *registry) Sweep(_ context.Context) []string {
	if r.ttl <= 0 {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.ttl)
	var expired []string
	// Walk from the least recently used end; stop at the first live session.
	for el := r.order.Back(); el != nil; {
		id := el.Value.(string)
		prev := el.Prev()
		if !r.byID[id].lastSeen.Before(cutoff) {
			break
		}
		r.removeLocked(id)
		expired = append(expired, id)
		el = prev
	}
	return expired
}

func (r *registry) Size() int64 {
	return r.size.Load()
}

// removeLocked must be called with r.mu held.
func (r *registry) removeLocked(id string) bool {
	e, ok := r.byID[id]
	if !ok {
		return false
	}
	r.order.Remove(e.elem)
	delete(r.byID, id)
	r.size.Add(-1)
	return true
}
