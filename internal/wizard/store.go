package wizard

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/probikes/probikes-backend/internal/catalog"
	"github.com/probikes/probikes-backend/internal/observability/metrics"
)

const (
	// DefaultSessionTTL is how long an untouched session survives.
	DefaultSessionTTL = 30 * time.Minute

	sweepInterval = time.Minute
)

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithSessionTTL overrides how long idle sessions are kept.
func WithSessionTTL(ttl time.Duration) StoreOption {
	return func(s *Store) { s.ttl = ttl }
}

// WithWizardOptions passes options through to every wizard the store creates.
func WithWizardOptions(opts ...Option) StoreOption {
	return func(s *Store) { s.wizardOpts = opts }
}

// WithMetrics wires session and confirmation counters. A nil SiteMetrics is
// safe; all its methods no-op.
func WithMetrics(m *metrics.SiteMetrics) StoreOption {
	return func(s *Store) { s.metrics = m }
}

type session struct {
	wizard   *Wizard
	lastSeen time.Time
}

// Store keeps one Wizard per browsing session, keyed by an opaque ID handed
// to the client at creation. Sessions are unshared and in-memory only;
// a page reload simply creates a new one and the old one ages out.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*session

	catalog    *catalog.Provider
	lifecycle  context.Context
	ttl        time.Duration
	wizardOpts []Option
	metrics    *metrics.SiteMetrics
}

// NewStore creates a session store. The context bounds every in-flight
// submission started by the store's wizards.
func NewStore(ctx context.Context, cat *catalog.Provider, opts ...StoreOption) *Store {
	if ctx == nil {
		ctx = context.Background()
	}
	s := &Store{
		sessions:  make(map[string]*session),
		catalog:   cat,
		lifecycle: ctx,
		ttl:       DefaultSessionTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create starts a fresh wizard session and returns its ID and initial state.
func (s *Store) Create() (string, Snapshot) {
	w := New(s.lifecycle, s.catalog, s.wizardOpts...)

	m := s.metrics
	w.Subscribe(func(snap Snapshot) {
		if snap.Step == StepConfirmed {
			m.BookingConfirmed()
		}
	})

	id := uuid.NewString()

	s.mu.Lock()
	s.sessions[id] = &session{wizard: w, lastSeen: time.Now()}
	size := len(s.sessions)
	s.mu.Unlock()

	m.SessionStarted()
	m.SetActiveSessions(size)

	return id, w.Snapshot()
}

// Get returns the wizard for a session and marks the session as seen.
func (s *Store) Get(id string) (*Wizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess.lastSeen = time.Now()
	return sess.wizard, nil
}

// Len reports how many sessions are currently held.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops idle sessions on a fixed interval until the context ends.
// The ticker is owned here and stopped on return.
func (s *Store) Sweep(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if evicted := s.evictIdle(time.Now()); evicted > 0 {
				zap.L().Debug("evicted idle booking sessions", zap.Int("count", evicted))
			}
		}
	}
}

func (s *Store) evictIdle(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, sess := range s.sessions {
		// A busy wizard has a confirmation pending; let it land first.
		if sess.wizard.Snapshot().Busy {
			continue
		}
		if now.Sub(sess.lastSeen) > s.ttl {
			delete(s.sessions, id)
			evicted++
		}
	}
	if evicted > 0 {
		s.metrics.SetActiveSessions(len(s.sessions))
	}
	return evicted
}
