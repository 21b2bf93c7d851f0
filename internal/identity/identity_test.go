package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chequeflow/chequeflow/internal/common"
	"github.com/chequeflow/chequeflow/internal/storage"
)

func TestLoginEmail(t *testing.T) {
	ctx := context.Background()
	m := NewManager(storage.NewMemoryStore())

	user, err := m.LoginEmail(ctx, "somchai.j@example.co.th")
	require.NoError(t, err)

	assert.Equal(t, "u_email_somchai_j_example_co_th", user.ID)
	assert.Equal(t, "email", user.Provider)
	assert.Equal(t, "somchai.j", user.DisplayName)

	current, err := m.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, user.ID, current.ID)
}

func TestLoginEmailRejectsMalformedAddress(t *testing.T) {
	m := NewManager(storage.NewMemoryStore())

	_, err := m.LoginEmail(context.Background(), "not-an-email")
	assert.ErrorIs(t, err, common.ErrInvalidEmail)

	_, err = m.LoginEmail(context.Background(), "   ")
	assert.ErrorIs(t, err, common.ErrInvalidEmail)
}

func TestLoginSocial(t *testing.T) {
	ctx := context.Background()
	m := NewManager(storage.NewMemoryStore())

	user, err := m.LoginSocial(ctx, "line")
	require.NoError(t, err)
	assert.Equal(t, "u_line_demo", user.ID)
	assert.Equal(t, "Line User", user.DisplayName)
	assert.Equal(t, "line@mock.login", user.Email)

	_, err = m.LoginSocial(ctx, "myspace")
	assert.ErrorIs(t, err, common.ErrUnknownProvider)
}

func TestDirectoryRegistersEachUserOnce(t *testing.T) {
	ctx := context.Background()
	m := NewManager(storage.NewMemoryStore())

	_, err := m.LoginEmail(ctx, "a@example.com")
	require.NoError(t, err)
	_, err = m.LoginSocial(ctx, "apple")
	require.NoError(t, err)
	_, err = m.LoginEmail(ctx, "a@example.com")
	require.NoError(t, err)

	users, err := m.Users(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestLogoutClearsSessionOnly(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	m := NewManager(store)

	_, err := m.LoginEmail(ctx, "a@example.com")
	require.NoError(t, err)
	require.NoError(t, m.Logout(ctx))

	current, err := m.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	// The directory survives logout; only the session pointer is gone.
	users, err := m.Users(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestCurrentUserWithNoSession(t *testing.T) {
	m := NewManager(storage.NewMemoryStore())

	current, err := m.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Nil(t, current)
}
