// Package session keeps one console workspace per browser.
package session

import (
	"context"
	"io"
	"log"
	"sync"
	"time"

	"attendance/console/internal/page"

	"github.com/google/uuid"
)

// CookieName holds the session id.
const CookieName = "hr_session"

type entry struct {
	workspace *page.Workspace
	seen      time.Time
	touched   time.Time
}

// Manager maps session ids to workspaces and forgets idle ones.
type Manager struct {
	ttl   time.Duration
	build func() *page.Workspace
	prefs PreferenceStore
	log   *log.Logger
	now   func() time.Time

	mu       sync.Mutex
	sessions map[string]*entry
}

func NewManager(ttl time.Duration, prefs PreferenceStore, logger *log.Logger, build func() *page.Workspace) *Manager {
	if prefs == nil {
		prefs = NewMemoryStore()
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Manager{
		ttl:      ttl,
		build:    build,
		prefs:    prefs,
		log:      logger,
		now:      time.Now,
		sessions: map[string]*entry{},
	}
}

// Get returns the workspace for id, creating a session when id is unknown
// or malformed. The returned id is the one the cookie must carry.
func (m *Manager) Get(ctx context.Context, id string) (string, *page.Workspace) {
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}

	m.mu.Lock()
	e, ok := m.sessions[id]
	if ok {
		now := m.now()
		e.seen = now
		touch := now.Sub(e.touched) >= m.ttl/2
		if touch {
			e.touched = now
		}
		m.mu.Unlock()

		if touch {
			if err := m.prefs.Touch(ctx, id); err != nil {
				m.log.Printf("session : %s : %v", id, err)
			}
		}
		return id, e.workspace
	}
	m.mu.Unlock()

	ws := m.build()
	open, err := m.prefs.SidebarOpen(ctx, id)
	if err != nil {
		m.log.Printf("session : %s : %v", id, err)
	}
	ws.SetSidebarOpen(open)

	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.sessions[id]; ok {
		e.seen = m.now()
		return id, e.workspace
	}
	now := m.now()
	m.sessions[id] = &entry{workspace: ws, seen: now, touched: now}
	return id, ws
}

// ToggleSidebar flips and persists the sidebar state of a session.
func (m *Manager) ToggleSidebar(ctx context.Context, id string, ws *page.Workspace) (bool, error) {
	open := ws.ToggleSidebar()
	return open, m.prefs.SetSidebarOpen(ctx, id, open)
}

// Sweep drops sessions idle for longer than the TTL, together with their
// preferences, and reports how many.
func (m *Manager) Sweep(ctx context.Context) int {
	m.mu.Lock()
	cutoff := m.now().Add(-m.ttl)
	var evicted []string
	for id, e := range m.sessions {
		if e.seen.Before(cutoff) {
			delete(m.sessions, id)
			evicted = append(evicted, id)
		}
	}
	m.mu.Unlock()

	for _, id := range evicted {
		if err := m.prefs.Forget(ctx, id); err != nil {
			m.log.Printf("session : %s : %v", id, err)
		}
	}
	return len(evicted)
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Run sweeps every interval until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep(ctx)
		}
	}
}
