// cmd/api/users.go
// This file contains the account handlers: user registration and login.
package main

import (
	"errors"
	"net/http"

	"github.com/aoideee/bookstore-api/internal/data"
	"github.com/aoideee/bookstore-api/internal/validator"
)

// credentialsInput is the JSON body for both /register and /customer/login.
type credentialsInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// validate records a MissingField error for each absent credential.
// Missing-field checks run before any lookup, so a bad body never reaches
// the user store.
func (input *credentialsInput) validate(v *validator.Validator) {
	v.Check(input.Username != "", "username", "must be provided")
	v.Check(input.Password != "", "password", "must be provided")
}

// registerUserHandler handles POST /register.
// Responds 400 on missing fields, 409 when the username is already taken,
// and 200 on success. Registration has no login side effect; the user must
// log in separately.
func (app *applicationDependencies) registerUserHandler(w http.ResponseWriter, r *http.Request) {
	var input credentialsInput

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	if input.validate(v); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	err = app.store.Users.Register(input.Username, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrDuplicateUsername):
			app.duplicateUsernameResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"message": "user successfully registered, you can now log in"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// loginHandler handles POST /customer/login.
// Field checks come first (400), then the credential scan (401). On success
// it signs a session token, records a server-side session, sets the session
// cookie, and returns the token in the body.
func (app *applicationDependencies) loginHandler(w http.ResponseWriter, r *http.Request) {
	var input credentialsInput

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	if input.validate(v); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	err = app.store.Users.Authenticate(input.Username, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrInvalidCredentials):
			app.invalidCredentialsResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	sess, err := app.sessions.Start(input.Username, input.Password)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	// The cookie scopes the session to the customer routes, mirroring where
	// the auth gate applies.
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sess.ID,
		Path:     "/customer",
		HttpOnly: true,
		MaxAge:   int(app.config.jwt.ttl.Seconds()),
	})

	app.logger.Info("user logged in", "username", input.Username)

	err = app.writeJSON(w, http.StatusOK, envelope{
		"message": "user successfully logged in",
		"token":   sess.Token,
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
