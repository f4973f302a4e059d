// Package auth provides the mock identity collaborator: a session that
// lives entirely in local storage, where any non-empty credentials log in.
package auth

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"shopfront/domain"
)

// Manager owns the current user session and persists it under the user key.
type Manager struct {
	mu      sync.RWMutex
	storage domain.Storage
	user    *domain.User
}

// compile-time assertion that Manager satisfies the cart's identity port
var _ domain.Identity = (*Manager)(nil)

// New constructs a Manager, rehydrating any persisted session. A corrupt
// persisted user is discarded.
func New(ctx context.Context, storage domain.Storage) *Manager {
	m := &Manager{storage: storage}
	if raw, ok, err := storage.Get(ctx, domain.KeyUser); err == nil && ok {
		var u domain.User
		if err := json.Unmarshal([]byte(raw), &u); err != nil {
			slog.Warn("discarding corrupt saved user", "error", err)
			_ = storage.Delete(ctx, domain.KeyUser)
		} else {
			m.user = &u
		}
	}
	return m
}

// IsAuthenticated reports whether a session is active.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil
}

// CurrentUser returns the active session user, if any.
func (m *Manager) CurrentUser() (domain.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return domain.User{}, false
	}
	return *m.user, true
}

// Login starts a session for the given credentials. The identity is mock:
// the first name is derived from the email local part.
func (m *Manager) Login(ctx context.Context, email, password string) (domain.User, error) {
	if email == "" {
		return domain.User{}, domain.NewInvalidCredentialsError("email required")
	}
	if password == "" {
		return domain.User{}, domain.NewInvalidCredentialsError("password required")
	}
	first := email
	if i := strings.IndexByte(email, '@'); i > 0 {
		first = email[:i]
	}
	return m.start(ctx, email, first, "User")
}

// Register starts a session with explicit names.
func (m *Manager) Register(ctx context.Context, email, password, firstName, lastName string) (domain.User, error) {
	if email == "" {
		return domain.User{}, domain.NewInvalidCredentialsError("email required")
	}
	if password == "" {
		return domain.User{}, domain.NewInvalidCredentialsError("password required")
	}
	if firstName == "" {
		return domain.User{}, domain.NewInvalidCredentialsError("first name required")
	}
	return m.start(ctx, email, firstName, lastName)
}

func (m *Manager) start(ctx context.Context, email, first, last string) (domain.User, error) {
	u := domain.User{
		ID:        uuid.NewString(),
		Email:     email,
		FirstName: first,
		LastName:  last,
		LoginTime: time.Now().UTC(),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = &u
	b, err := json.Marshal(u)
	if err != nil {
		return domain.User{}, err
	}
	if err := m.storage.Set(ctx, domain.KeyUser, string(b)); err != nil {
		return domain.User{}, err
	}
	slog.Info("session started", "user_id", u.ID, "email", u.Email)
	return u, nil
}

// Logout ends the session and removes its persisted copy. Clearing the
// cart is the caller's job, via the ledger.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return
	}
	slog.Info("session ended", "user_id", m.user.ID)
	m.user = nil
	if err := m.storage.Delete(ctx, domain.KeyUser); err != nil {
		slog.Warn("remove saved user failed", "error", err)
	}
}
