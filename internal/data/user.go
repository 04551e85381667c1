package data

import "sync"

// User holds one registered account. The credential is stored and compared
// as an opaque byte-exact string; users are created by registration and
// never updated or deleted.
type User struct {
	Username string `json:"username"`
	Password string `json:"-"` // never serialized in responses
}

// UserStore holds every registered user. Registration is the only mutation,
// but lookups run concurrently with it, so the mutex covers both.
type UserStore struct {
	mu    sync.RWMutex
	users []User
}

// NewUserStore returns an empty user store.
func NewUserStore() *UserStore {
	return &UserStore{}
}

// Register appends a new user record.
// Returns ErrDuplicateUsername if the username is already taken, regardless
// of the password supplied.
func (s *UserStore) Register(username, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return ErrDuplicateUsername
		}
	}
	s.users = append(s.users, User{Username: username, Password: password})
	return nil
}

// Authenticate scans for a user whose username and credential both match
// exactly (case-sensitive). Returns ErrInvalidCredentials when no user
// matches, whether the username is unknown or the password is wrong.
func (s *UserStore) Authenticate(username, password string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username && u.Password == password {
			return nil
		}
	}
	return ErrInvalidCredentials
}

// Exists reports whether a username is already registered.
func (s *UserStore) Exists(username string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return true
		}
	}
	return false
}
