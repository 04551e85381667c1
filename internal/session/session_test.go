package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartAndVerify(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	s, err := m.Start("alice", "pw1")
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.NotEmpty(t, s.Token)

	username, err := m.Verify(s.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestVerifyUnknownSession(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	_, err := m.Verify("no-such-session")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestVerifyExpiredToken(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	s, err := m.Start("alice", "pw1")
	require.NoError(t, err)

	_, err = m.Verify(s.ID)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// The dead session is dropped, so the next attempt reports no session.
	_, err = m.Verify(s.ID)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestVerifyTamperedToken(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	s, err := m.Start("alice", "pw1")
	require.NoError(t, err)

	// Corrupt the stored token's signature.
	s.Token = s.Token[:len(s.Token)-2] + "xx"

	_, err = m.Verify(s.ID)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDestroy(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	s, err := m.Start("alice", "pw1")
	require.NoError(t, err)

	m.Destroy(s.ID)

	_, err = m.Verify(s.ID)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSessionsAreIndependent(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	a, err := m.Start("alice", "pw1")
	require.NoError(t, err)
	b, err := m.Start("bob", "pw2")
	require.NoError(t, err)
	require.NotEqual(t, a.ID, b.ID)

	username, err := m.Verify(b.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", username)
}
