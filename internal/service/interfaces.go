// Package service defines the interfaces between the core and its
// collaborators: the storage service, the identity provider, and the
// warning sink the presentation layer listens on.
package service

import (
	"context"

	"github.com/chequeflow/chequeflow/internal/model"
)

// Storage is the key-value persistence contract. Values are opaque
// serialized structures; the core assumes nothing beyond round-trip
// fidelity. Keys are namespaced by a fixed prefix plus the active user
// identifier (see the storage package's key builders).
type Storage interface {
	// Get returns the value for key. The boolean reports presence;
	// an absent key is not an error.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}

// Identity is the mock identity provider. It exists solely to supply an
// opaque user ID used as a storage namespace; there is no real
// authentication behind it.
type Identity interface {
	LoginEmail(ctx context.Context, email string) (*model.User, error)
	LoginSocial(ctx context.Context, provider string) (*model.User, error)
	// CurrentUser returns the last-active user, or nil when no session
	// exists.
	CurrentUser(ctx context.Context) (*model.User, error)
	Logout(ctx context.Context) error
	Users(ctx context.Context) ([]model.User, error)
}

// WarnFunc receives non-fatal warnings (persistence failures and the
// like) for display. Warnings never abort the interactive session.
type WarnFunc func(msg string, err error)
