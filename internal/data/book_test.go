package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookStoreSeededCatalog(t *testing.T) {
	s := NewBookStore()

	books := s.All()
	require.NotEmpty(t, books)

	// Listing order is stable across calls.
	again := s.All()
	for i := range books {
		assert.Equal(t, books[i].ISBN, again[i].ISBN)
	}

	b, err := s.Get(books[0].ISBN)
	require.NoError(t, err)
	assert.Equal(t, books[0].Title, b.Title)
	assert.NotNil(t, b.Reviews)
}

func TestBookStoreGetUnknownISBN(t *testing.T) {
	s := NewBookStore()

	_, err := s.Get("no-such-isbn")
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestBookStoreByAuthor(t *testing.T) {
	s := NewBookStore()

	// "Unknown" is the author of several seeded books.
	books, err := s.ByAuthor("Unknown")
	require.NoError(t, err)
	require.Greater(t, len(books), 1)
	for _, b := range books {
		assert.Equal(t, "Unknown", b.Author)
		assert.NotEmpty(t, b.ISBN, "matches must be tagged with their ISBN")
	}

	// Exact matching only: case and partial variants miss.
	_, err = s.ByAuthor("unknown")
	assert.ErrorIs(t, err, ErrBookNotFound)
	_, err = s.ByAuthor("Unk")
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestBookStoreByTitle(t *testing.T) {
	s := NewBookStore()

	books, err := s.ByTitle("Things Fall Apart")
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Chinua Achebe", books[0].Author)

	_, err = s.ByTitle("Things Fall")
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestBookStoreReviews(t *testing.T) {
	s := NewBookStore()

	// Known book, no reviews yet: empty mapping, not an error.
	reviews, err := s.Reviews("1")
	require.NoError(t, err)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)

	_, err = s.Reviews("999")
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestBookStoreUpsertReview(t *testing.T) {
	s := NewBookStore()

	added, err := s.UpsertReview("1", "alice", "great")
	require.NoError(t, err)
	assert.True(t, added, "first review should report added")

	added, err = s.UpsertReview("1", "alice", "better")
	require.NoError(t, err)
	assert.False(t, added, "second review should report modified")

	// Overwrite, not duplicate.
	reviews, err := s.Reviews("1")
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "better", reviews["alice"])

	_, err = s.UpsertReview("999", "alice", "great")
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestBookStoreDeleteReview(t *testing.T) {
	s := NewBookStore()

	_, err := s.UpsertReview("1", "alice", "great")
	require.NoError(t, err)
	_, err = s.UpsertReview("1", "bob", "fine")
	require.NoError(t, err)

	// Deleting removes exactly the named user's entry.
	require.NoError(t, s.DeleteReview("1", "alice"))
	reviews, err := s.Reviews("1")
	require.NoError(t, err)
	assert.NotContains(t, reviews, "alice")
	assert.Contains(t, reviews, "bob")

	assert.ErrorIs(t, s.DeleteReview("1", "alice"), ErrReviewNotFound)
	assert.ErrorIs(t, s.DeleteReview("999", "alice"), ErrBookNotFound)
}

func TestBookStoreCopiesDoNotAliasInternals(t *testing.T) {
	s := NewBookStore()

	_, err := s.UpsertReview("1", "alice", "great")
	require.NoError(t, err)

	b, err := s.Get("1")
	require.NoError(t, err)
	b.Reviews["alice"] = "tampered"

	fresh, err := s.Reviews("1")
	require.NoError(t, err)
	assert.Equal(t, "great", fresh["alice"])
}

func TestBookStoreAdd(t *testing.T) {
	s := NewBookStore()

	require.NoError(t, s.Add(Book{ISBN: "11", Title: "Molloy", Author: "Samuel Beckett"}))

	b, err := s.Get("11")
	require.NoError(t, err)
	assert.NotNil(t, b.Reviews)

	// ISBN uniqueness is enforced.
	assert.Error(t, s.Add(Book{ISBN: "11", Title: "Other", Author: "Other"}))
}
