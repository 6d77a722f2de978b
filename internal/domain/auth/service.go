package auth

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/turnero/turnero/internal/domain/person"
	"github.com/turnero/turnero/internal/platform/session"
)

// Identity is the outcome of a successful credential resolution. The
// administrator is a distinguished identity sourced from configuration;
// it never carries a stored person record.
type Identity struct {
	Admin  bool
	Person *person.Person
}

func (i *Identity) DisplayName() string {
	if i.Admin {
		return session.AdminDisplayName
	}
	return i.Person.FullName()
}

func (i *Identity) RoleLabel() string {
	if i.Admin {
		return session.AdminRoleLabel
	}
	return i.Person.Kind.RoleLabel()
}

// AdminCredentials are the configured administrator credentials.
type AdminCredentials struct {
	Username string
	Password string
}

// Service resolves login credentials against the administrator account
// and both person categories, and drives the process-wide session.
type Service struct {
	admin    AdminCredentials
	doctors  person.DAO
	patients person.DAO
	sessions *session.Manager
	logger   zerolog.Logger
}

func NewService(admin AdminCredentials, doctors, patients person.DAO, sessions *session.Manager, logger zerolog.Logger) *Service {
	return &Service{
		admin:    admin,
		doctors:  doctors,
		patients: patients,
		sessions: sessions,
		logger:   logger.With().Str("component", "auth").Logger(),
	}
}

// Authenticate resolves credentials with a fixed precedence: the
// configured administrator first, then doctors, then patients. The
// administrator check runs before any database lookup, so a stored
// person sharing the admin credentials can never be resolved by them.
// No match is a normal (nil, nil) outcome, not an error.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*Identity, error) {
	if username == s.admin.Username && password == s.admin.Password {
		return &Identity{Admin: true}, nil
	}
	if p, err := s.doctors.Authenticate(ctx, username, password); err != nil {
		return nil, err
	} else if p != nil {
		return &Identity{Person: p}, nil
	}
	if p, err := s.patients.Authenticate(ctx, username, password); err != nil {
		return nil, err
	} else if p != nil {
		return &Identity{Person: p}, nil
	}
	return nil, nil
}

// Login authenticates and, on success, installs the identity in the
// session, replacing whatever was signed in before.
func (s *Service) Login(ctx context.Context, username, password string) (*Identity, error) {
	id, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if id == nil {
		s.logger.Warn().Str("username", username).Msg("login rejected")
		return nil, nil
	}
	if id.Admin {
		s.sessions.LoginAdmin()
	} else {
		s.sessions.LoginPerson(id.Person)
	}
	return id, nil
}

// Logout clears the session.
func (s *Service) Logout() {
	s.sessions.Logout()
}

// LookupUsername resolves a username to its stored record, doctors
// first. The administrator has no record and never resolves here.
func (s *Service) LookupUsername(ctx context.Context, username string) (*person.Person, error) {
	if username == s.admin.Username {
		return nil, nil
	}
	if p, err := s.doctors.GetByUsername(ctx, username); err != nil {
		return nil, err
	} else if p != nil {
		return p, nil
	}
	return s.patients.GetByUsername(ctx, username)
}
