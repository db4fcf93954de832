package service

import (
	"log/slog"
	"sync"
)

// Manager hands out the per-member Household sessions. A session is created
// lazily on first use and lives for the life of the process; no session
// state is ever shared between members or persisted.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Household
	logger   *slog.Logger
}

// NewManager creates an empty session manager.
func NewManager(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		sessions: make(map[string]*Household),
		logger:   logger,
	}
}

// Session returns the member's household session, creating and seeding it
// on first access.
func (m *Manager) Session(userID string) *Household {
	m.mu.Lock()
	defer m.mu.Unlock()
	if h, ok := m.sessions[userID]; ok {
		return h
	}
	h := NewHousehold(m.logger)
	m.sessions[userID] = h
	m.logger.Info("Session created", "user_id", userID)
	return h
}
