// Package data provides the in-memory stores backing the bookstore API.
// All state lives in process memory; restarting the server loses every
// registered user and every review edit.
package data

import (
	"fmt"
	"sync"
)

// Book represents a single catalog entry, keyed by ISBN.
// Reviews maps a username to that user's review text; at most one review
// per user per book.
type Book struct {
	ISBN    string            `json:"isbn"`
	Title   string            `json:"title"`
	Author  string            `json:"author"`
	Reviews map[string]string `json:"reviews"`
}

// clone returns a deep copy of b so callers never alias store internals.
func (b *Book) clone() Book {
	out := Book{ISBN: b.ISBN, Title: b.Title, Author: b.Author}
	out.Reviews = make(map[string]string, len(b.Reviews))
	for user, text := range b.Reviews {
		out.Reviews[user] = text
	}
	return out
}

// BookStore holds the catalog. The mutex guards every read-modify-write
// sequence because the HTTP server runs handlers on concurrent goroutines.
type BookStore struct {
	mu    sync.RWMutex
	books map[string]*Book
	isbns []string // insertion order, so listings are stable across calls
}

// NewBookStore returns a store seeded with the fixed startup catalog.
func NewBookStore() *BookStore {
	s := &BookStore{books: make(map[string]*Book)}
	for _, b := range seedCatalog() {
		s.books[b.ISBN] = b
		s.isbns = append(s.isbns, b.ISBN)
	}
	return s
}

// All returns a copy of every book in stable catalog order.
func (s *BookStore) All() []Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Book, 0, len(s.isbns))
	for _, isbn := range s.isbns {
		out = append(out, s.books[isbn].clone())
	}
	return out
}

// Get retrieves a single book by ISBN.
// Returns ErrBookNotFound if the ISBN is not in the catalog.
func (s *BookStore) Get(isbn string) (Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.books[isbn]
	if !ok {
		return Book{}, ErrBookNotFound
	}
	return b.clone(), nil
}

// ByAuthor collects every book whose author matches author exactly.
// Matching is case-sensitive with no partial matches; an empty result is
// reported as ErrBookNotFound rather than an empty slice.
func (s *BookStore) ByAuthor(author string) ([]Book, error) {
	return s.scan(func(b *Book) bool { return b.Author == author })
}

// ByTitle collects every book whose title matches title exactly, with the
// same contract as ByAuthor.
func (s *BookStore) ByTitle(title string) ([]Book, error) {
	return s.scan(func(b *Book) bool { return b.Title == title })
}

// scan walks the catalog in stable order and collects copies of every book
// the match function accepts.
func (s *BookStore) scan(match func(*Book) bool) ([]Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Book
	for _, isbn := range s.isbns {
		if b := s.books[isbn]; match(b) {
			out = append(out, b.clone())
		}
	}
	if len(out) == 0 {
		return nil, ErrBookNotFound
	}
	return out, nil
}

// Reviews returns the review mapping for a book. A known ISBN with no
// reviews yields an empty (non-nil) map, not an error.
func (s *BookStore) Reviews(isbn string) (map[string]string, error) {
	b, err := s.Get(isbn)
	if err != nil {
		return nil, err
	}
	return b.Reviews, nil
}

// UpsertReview sets username's review for the given book, creating the
// entry if absent or overwriting it otherwise. The returned bool is true
// when the review was newly added, false when an existing one was replaced.
func (s *BookStore) UpsertReview(isbn, username, review string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.books[isbn]
	if !ok {
		return false, ErrBookNotFound
	}

	_, exists := b.Reviews[username]
	b.Reviews[username] = review
	return !exists, nil
}

// DeleteReview removes username's review for the given book.
// Returns ErrBookNotFound for an unknown ISBN and ErrReviewNotFound when
// the book exists but carries no review by this user.
func (s *BookStore) DeleteReview(isbn, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.books[isbn]
	if !ok {
		return ErrBookNotFound
	}
	if _, ok := b.Reviews[username]; !ok {
		return ErrReviewNotFound
	}
	delete(b.Reviews, username)
	return nil
}

// Add inserts a new book into the catalog. ISBN uniqueness is the
// catalog's only structural invariant, so a taken ISBN is an error.
func (s *BookStore) Add(b Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[b.ISBN]; ok {
		return fmt.Errorf("isbn %s already in catalog", b.ISBN)
	}
	if b.Reviews == nil {
		b.Reviews = make(map[string]string)
	}
	s.books[b.ISBN] = &b
	s.isbns = append(s.isbns, b.ISBN)
	return nil
}
