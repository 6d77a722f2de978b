package session

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/turnero/turnero/internal/domain/person"
)

// State is the authentication state of the single process-wide session.
type State int

const (
	StateUnauthenticated State = iota
	StateAdmin
	StatePerson
)

// AdminDisplayName is the fixed display label for the administrator,
// who exists only in configuration and has no stored record.
const AdminDisplayName = "System Administrator"

// AdminRoleLabel is the administrator's role label.
const AdminRoleLabel = "Administrator"

// Manager holds the single authenticated identity for the process.
// All methods are safe for concurrent use.
type Manager struct {
	mu      sync.RWMutex
	state   State
	current *person.Person
	logger  zerolog.Logger
}

func NewManager(logger zerolog.Logger) *Manager {
	return &Manager{logger: logger.With().Str("component", "session").Logger()}
}

// LoginAdmin switches the session to the administrator. Any previous
// identity is replaced.
func (m *Manager) LoginAdmin() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = StateAdmin
	m.current = nil
	m.logger.Info().Str("role", AdminRoleLabel).Msg("session opened")
}

// LoginPerson switches the session to a stored person. Any previous
// identity is replaced.
func (m *Manager) LoginPerson(p *person.Person) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = StatePerson
	m.current = p
	m.logger.Info().Str("role", p.Kind.RoleLabel()).Str("name", p.FullName()).Msg("session opened")
}

// Logout clears the session. Calling it on an already-clear session is
// a no-op.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == StateUnauthenticated {
		return
	}
	m.state = StateUnauthenticated
	m.current = nil
	m.logger.Info().Msg("session closed")
}

func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Current returns the signed-in person record, or nil for the
// administrator and for a clear session.
func (m *Manager) Current() *person.Person {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// DisplayName is the label for the signed-in identity. It is empty for
// a clear session.
func (m *Manager) DisplayName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	switch m.state {
	case StateAdmin:
		return AdminDisplayName
	case StatePerson:
		return m.current.FullName()
	default:
		return ""
	}
}

// RoleLabel is the role of the signed-in identity, empty for a clear
// session.
func (m *Manager) RoleLabel() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	switch m.state {
	case StateAdmin:
		return AdminRoleLabel
	case StatePerson:
		return m.current.Kind.RoleLabel()
	default:
		return ""
	}
}

func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state != StateUnauthenticated
}

func (m *Manager) IsAdmin() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state == StateAdmin
}

func (m *Manager) IsDoctor() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state == StatePerson && m.current.Kind == person.KindDoctor
}

func (m *Manager) IsPatient() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state == StatePerson && m.current.Kind == person.KindPatient
}
