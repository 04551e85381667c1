// internal/data/models.go
package data

import "errors"

// Store is a top-level container that groups the in-memory stores together.
// It is passed around the application via applicationDependencies so every
// handler has access to the data layer through a single owned instance
// instead of package-level globals.
type Store struct {
	Books *BookStore // Catalog of books, keyed by ISBN
	Users *UserStore // Registered username/credential pairs
}

// NewStore constructs a Store with a seeded catalog and an empty user list.
// Call this once during application startup and share the result.
func NewStore() Store {
	return Store{
		Books: NewBookStore(),
		Users: NewUserStore(),
	}
}

// Sentinel errors returned by the stores. Handlers map these onto HTTP
// statuses with errors.Is.
var (
	ErrBookNotFound       = errors.New("book not found")
	ErrReviewNotFound     = errors.New("review not found")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
