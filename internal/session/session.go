// Package session issues and verifies login sessions.
//
// A session has two halves, mirroring the cookie-plus-token scheme of the
// original service: a server-side record keyed by a random session ID
// (carried in a cookie) and a signed HS256 token with a fixed expiry stored
// inside that record. Verification requires both: the record must exist and
// the token must still verify against the signing secret.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Sentinel errors distinguishing the two authorization failure modes:
// no session at all vs a session whose token no longer verifies.
var (
	ErrNoSession    = errors.New("no session")
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Session is the server-side record created at login.
type Session struct {
	ID        string    // Random ID carried in the client's cookie
	Username  string    // Verified identity exposed to handlers
	Token     string    // Signed token checked on every session request
	CreatedAt time.Time // Issuance time, for logging
}

// claims is the token payload. The Data field carries the credential the
// user logged in with, matching the original service's token layout.
type claims struct {
	Data string `json:"data"`
	jwt.RegisteredClaims
}

// Manager owns the signing secret, the token lifetime, and the live
// session records. A single instance is shared by all handlers.
type Manager struct {
	secret []byte
	ttl    time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager returns a Manager signing tokens with secret, each valid for
// ttl from issuance.
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret:   []byte(secret),
		ttl:      ttl,
		sessions: make(map[string]*Session),
	}
}

// Start signs a fresh token for username and records a new server-side
// session holding it. Called only after the credentials have been checked.
func (m *Manager) Start(username, credential string) (*Session, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Data: credential,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return nil, fmt.Errorf("signing session token: %w", err)
	}

	s := &Session{
		ID:        uuid.NewString(),
		Username:  username,
		Token:     signed,
		CreatedAt: now,
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	return s, nil
}

// Verify checks the session identified by id and returns its username.
// Returns ErrNoSession when no record exists for id, and ErrInvalidToken
// when the record's token fails signature or expiry checks. A session with
// a dead token is dropped so later requests report "no session" instead.
func (m *Manager) Verify(id string) (string, error) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	m.mu.Unlock()

	if !ok {
		return "", ErrNoSession
	}

	_, err := jwt.ParseWithClaims(s.Token, &claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		m.mu.Lock()
		delete(m.sessions, id)
		m.mu.Unlock()
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return s.Username, nil
}

// Destroy removes the session identified by id, if present.
func (m *Manager) Destroy(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}
