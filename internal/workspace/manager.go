// Package workspace gives every browser session its own dashboard, built from
// a private copy of the start-up dataset.
package workspace

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nfrund/portview/internal/dashboard"
	"github.com/nfrund/portview/internal/dataset"
	"github.com/nfrund/portview/internal/pubsub"
)

type entry struct {
	board    *dashboard.Dashboard
	lastSeen time.Time
}

// Manager owns the dashboards of all live sessions.
type Manager struct {
	mu      sync.Mutex
	entries map[string]*entry

	data    dataset.Data
	catalog *dashboard.Catalog
	pub     pubsub.Publisher
	idle    time.Duration
	now     func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithPublisher is handed to every dashboard the manager creates.
func WithPublisher(pub pubsub.Publisher) Option {
	return func(m *Manager) { m.pub = pub }
}

// WithIdleTimeout sets how long an unused workspace is kept. Zero keeps
// workspaces forever.
func WithIdleTimeout(d time.Duration) Option {
	return func(m *Manager) { m.idle = d }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// NewManager creates a manager seeding new workspaces from data.
func NewManager(data dataset.Data, opts ...Option) *Manager {
	m := &Manager{
		entries: make(map[string]*entry),
		data:    data,
		catalog: dashboard.NewCatalog(data.Stocks),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewID returns a fresh workspace id.
func (m *Manager) NewID() string {
	return uuid.NewString()
}

// Get returns the dashboard of the workspace with the given id, creating it
// from the start-up dataset when it does not exist or has expired.
func (m *Manager) Get(id string) *dashboard.Dashboard {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.evictLocked(now)

	if e, ok := m.entries[id]; ok {
		e.lastSeen = now
		return e.board
	}

	opts := []dashboard.Option{
		dashboard.WithName(id),
		dashboard.WithLogger(slog.Default().With("workspace", id)),
	}
	if m.pub != nil {
		opts = append(opts, dashboard.WithPublisher(m.pub))
	}
	board := dashboard.New(m.data.Clone().Users, m.catalog, opts...)
	m.entries[id] = &entry{board: board, lastSeen: now}
	slog.Debug("workspace created", "workspace", id, "live", len(m.entries))
	return board
}

// Len returns the number of live workspaces.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func (m *Manager) evictLocked(now time.Time) {
	if m.idle <= 0 {
		return
	}
	for id, e := range m.entries {
		if now.Sub(e.lastSeen) > m.idle {
			delete(m.entries, id)
			slog.Debug("workspace expired", "workspace", id)
		}
	}
}
