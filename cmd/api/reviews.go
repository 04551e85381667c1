// cmd/api/reviews.go
// This file contains the session-scoped review mutation handlers. Both run
// behind the requireSession middleware, which places the verified username
// on the request context.
package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/aoideee/bookstore-api/internal/data"
)

// upsertReviewHandler handles PUT /customer/auth/review/:isbn?review=...
// It sets the authenticated user's review for the book, creating or
// overwriting as needed. Responds 201 with "added" for a fresh review and
// 200 with "modified" for an overwrite; 400 on empty review text; 404 on an
// unknown book.
func (app *applicationDependencies) upsertReviewHandler(w http.ResponseWriter, r *http.Request) {
	username := app.contextGetUsername(r)

	isbn, err := app.readISBNParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	review := app.readString(r.URL.Query(), "review", "")
	if review == "" {
		app.badRequestResponse(w, r, errors.New("review text must be provided"))
		return
	}

	added, err := app.store.Books.UpsertReview(isbn, username, review)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrBookNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	status := http.StatusOK
	verb := "modified"
	if added {
		status = http.StatusCreated
		verb = "added"
	}

	app.logger.Info("review "+verb, "username", username, "isbn", isbn)

	err = app.writeJSON(w, status, envelope{"message": fmt.Sprintf("review %s for ISBN %s", verb, isbn)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// deleteReviewHandler handles DELETE /customer/auth/review/:isbn.
// It removes exactly the authenticated user's review for the book. Both an
// unknown book and a book without a review by this user are 404s.
func (app *applicationDependencies) deleteReviewHandler(w http.ResponseWriter, r *http.Request) {
	username := app.contextGetUsername(r)

	isbn, err := app.readISBNParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.store.Books.DeleteReview(isbn, username)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrBookNotFound), errors.Is(err, data.ErrReviewNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.logger.Info("review deleted", "username", username, "isbn", isbn)

	err = app.writeJSON(w, http.StatusOK, envelope{"message": fmt.Sprintf("review deleted for ISBN %s", isbn)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
