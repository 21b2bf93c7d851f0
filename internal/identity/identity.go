// Package identity implements the mock identity provider. Logins are
// client-only stubs: an email login derives a deterministic ID from the
// address, and social logins hand back fixed demo identities. The only
// thing the rest of the system does with a user is read its ID.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/chequeflow/chequeflow/internal/common"
	"github.com/chequeflow/chequeflow/internal/model"
	"github.com/chequeflow/chequeflow/internal/service"
	"github.com/chequeflow/chequeflow/internal/storage"
)

var idSafe = regexp.MustCompile(`[^a-zA-Z0-9]`)

// socialNames maps the simulated social providers to display names.
var socialNames = map[string]string{
	"facebook": "Facebook User",
	"line":     "Line User",
	"apple":    "Apple User",
}

// Manager implements service.Identity on top of the storage service.
type Manager struct {
	store      service.Storage
	loginDelay time.Duration
}

// Option configures a Manager.
type Option func(*Manager)

// WithLoginDelay sets the artificial delay applied to each login,
// simulating a real provider's sign-in round trip. Defaults to zero.
func WithLoginDelay(d time.Duration) Option {
	return func(m *Manager) { m.loginDelay = d }
}

// NewManager creates an identity manager backed by the given store.
func NewManager(store service.Storage, opts ...Option) *Manager {
	m := &Manager{store: store}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// LoginEmail signs in with an email address, registering the user in the
// directory on first login.
func (m *Manager) LoginEmail(ctx context.Context, email string) (*model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: %q", common.ErrInvalidEmail, email)
	}

	user := model.User{
		ID:          "u_email_" + idSafe.ReplaceAllString(email, "_"),
		Provider:    "email",
		DisplayName: strings.SplitN(email, "@", 2)[0],
		Email:       email,
	}
	return m.performLogin(ctx, user)
}

// LoginSocial signs in with one of the simulated social providers.
func (m *Manager) LoginSocial(ctx context.Context, provider string) (*model.User, error) {
	name, ok := socialNames[provider]
	if !ok {
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownProvider, provider)
	}

	user := model.User{
		ID:          fmt.Sprintf("u_%s_demo", provider),
		Provider:    provider,
		DisplayName: name,
		Email:       provider + "@mock.login",
	}
	return m.performLogin(ctx, user)
}

// performLogin appends the user to the directory if new and sets the
// last-active pointer.
func (m *Manager) performLogin(ctx context.Context, user model.User) (*model.User, error) {
	if m.loginDelay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(m.loginDelay):
		}
	}

	users, err := m.Users(ctx)
	if err != nil {
		return nil, err
	}

	known := false
	for _, u := range users {
		if u.ID == user.ID {
			known = true
			break
		}
	}
	if !known {
		users = append(users, user)
		data, err := json.Marshal(users)
		if err != nil {
			return nil, fmt.Errorf("failed to encode user directory: %w", err)
		}
		if err := m.store.Set(ctx, storage.KeyUsers, string(data)); err != nil {
			return nil, fmt.Errorf("failed to save user directory: %w", err)
		}
	}

	if err := m.store.Set(ctx, storage.KeyLastUser, user.ID); err != nil {
		return nil, fmt.Errorf("failed to set active user: %w", err)
	}
	return &user, nil
}

// CurrentUser returns the last-active user, or nil when no session
// exists or the pointer references an unknown user.
func (m *Manager) CurrentUser(ctx context.Context) (*model.User, error) {
	id, ok, err := m.store.Get(ctx, storage.KeyLastUser)
	if err != nil {
		return nil, fmt.Errorf("failed to read active user: %w", err)
	}
	if !ok || id == "" {
		return nil, nil
	}

	users, err := m.Users(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

// Logout clears the last-active pointer. The user's stored history and
// settings remain untouched for the next login.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.store.Remove(ctx, storage.KeyLastUser); err != nil {
		return fmt.Errorf("failed to clear active user: %w", err)
	}
	return nil
}

// Users returns the directory of all known users.
func (m *Manager) Users(ctx context.Context) ([]model.User, error) {
	raw, ok, err := m.store.Get(ctx, storage.KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("failed to read user directory: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var users []model.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, fmt.Errorf("failed to decode user directory: %w", err)
	}
	return users, nil
}
