// cmd/api/handlers.go
// This file contains the HTTP request handlers for the public catalog
// routes. Each handler is a method on *applicationDependencies so it has
// access to the logger and the stores. Account and review handlers live in
// users.go and reviews.go.
package main

import (
	"errors"
	"net/http"

	"github.com/aoideee/bookstore-api/internal/data"
)

// listBooksHandler handles GET /.
// It returns the entire seeded catalog as a JSON array in stable order.
func (app *applicationDependencies) listBooksHandler(w http.ResponseWriter, r *http.Request) {
	books := app.store.Books.All()

	err := app.writeJSON(w, http.StatusOK, envelope{"books": books}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// showBookHandler handles GET /isbn/:isbn.
// Responds 404 if no book with that ISBN exists.
func (app *applicationDependencies) showBookHandler(w http.ResponseWriter, r *http.Request) {
	isbn, err := app.readISBNParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	book, err := app.store.Books.Get(isbn)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrBookNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"book": book}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// listBooksByAuthorHandler handles GET /author/:author.
// It scans the catalog for exact author matches; each result carries its
// ISBN. No matches at all is a 404, not an empty list.
func (app *applicationDependencies) listBooksByAuthorHandler(w http.ResponseWriter, r *http.Request) {
	author := app.readPathParam(r, "author")

	books, err := app.store.Books.ByAuthor(author)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrBookNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"books": books}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// listBooksByTitleHandler handles GET /title/:title with the same contract
// as the author lookup.
func (app *applicationDependencies) listBooksByTitleHandler(w http.ResponseWriter, r *http.Request) {
	title := app.readPathParam(r, "title")

	books, err := app.store.Books.ByTitle(title)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrBookNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"books": books}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// showReviewsHandler handles GET /review/:isbn and, behind the auth gate,
// GET /customer/auth/review/:isbn. A known book with no reviews returns an
// empty mapping; an unknown ISBN is a 404.
func (app *applicationDependencies) showReviewsHandler(w http.ResponseWriter, r *http.Request) {
	isbn, err := app.readISBNParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	reviews, err := app.store.Books.Reviews(isbn)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrBookNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"isbn": isbn, "reviews": reviews}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
