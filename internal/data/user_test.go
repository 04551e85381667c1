package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStoreRegister(t *testing.T) {
	s := NewUserStore()

	require.NoError(t, s.Register("alice", "pw1"))
	assert.True(t, s.Exists("alice"))

	// A duplicate username fails regardless of password.
	assert.ErrorIs(t, s.Register("alice", "pw2"), ErrDuplicateUsername)
}

func TestUserStoreAuthenticate(t *testing.T) {
	s := NewUserStore()
	require.NoError(t, s.Register("alice", "pw1"))

	assert.NoError(t, s.Authenticate("alice", "pw1"))
	assert.ErrorIs(t, s.Authenticate("alice", "pw2"), ErrInvalidCredentials)
	assert.ErrorIs(t, s.Authenticate("bob", "pw1"), ErrInvalidCredentials)

	// Matching is case-sensitive.
	assert.ErrorIs(t, s.Authenticate("Alice", "pw1"), ErrInvalidCredentials)
}
