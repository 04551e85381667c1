// cmd/api/routes.go
package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// routes registers all HTTP endpoints and returns the configured router
// wrapped in the recoverPanic and rateLimit middlewares.
//
// Middleware chain (outermost → innermost):
//
//	recoverPanic → rateLimit → router (→ requireSession on /customer/auth/*)
//
// Current endpoints:
//
//	GET    /                              – full catalog
//	GET    /isbn/:isbn                    – single book by ISBN
//	GET    /author/:author                – books by exact author match
//	GET    /title/:title                  – books by exact title match
//	GET    /review/:isbn                  – reviews for a book
//	POST   /register                      – create a new user
//	POST   /customer/login                – log in, establish a session
//	GET    /customer/auth/review/:isbn    – reviews for a book (session)
//	PUT    /customer/auth/review/:isbn    – add or modify own review
//	DELETE /customer/auth/review/:isbn    – delete own review
func (app *applicationDependencies) routes() http.Handler {
	router := httprouter.New()

	// Override the default httprouter error handlers to return JSON responses.
	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	// Public catalog routes
	router.HandlerFunc(http.MethodGet, "/", app.listBooksHandler)
	router.HandlerFunc(http.MethodGet, "/isbn/:isbn", app.showBookHandler)
	router.HandlerFunc(http.MethodGet, "/author/:author", app.listBooksByAuthorHandler)
	router.HandlerFunc(http.MethodGet, "/title/:title", app.listBooksByTitleHandler)
	router.HandlerFunc(http.MethodGet, "/review/:isbn", app.showReviewsHandler)

	// Account routes
	router.HandlerFunc(http.MethodPost, "/register", app.registerUserHandler)
	router.HandlerFunc(http.MethodPost, "/customer/login", app.loginHandler)

	// Session routes: requireSession verifies the login before the handler runs.
	router.HandlerFunc(http.MethodGet, "/customer/auth/review/:isbn", app.requireSession(app.showReviewsHandler))
	router.HandlerFunc(http.MethodPut, "/customer/auth/review/:isbn", app.requireSession(app.upsertReviewHandler))
	router.HandlerFunc(http.MethodDelete, "/customer/auth/review/:isbn", app.requireSession(app.deleteReviewHandler))

	// Wrap with middleware: recoverPanic is outermost so it catches panics
	// from rateLimit and router alike.
	return app.recoverPanic(app.rateLimit(router))
}
