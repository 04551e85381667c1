// cmd/api/middleware.go
// This file contains HTTP middleware used to wrap the router.
// Middleware functions intercept every request before it reaches a handler.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/aoideee/bookstore-api/internal/session"

	"golang.org/x/time/rate"
)

// sessionCookieName is the cookie carrying the server-side session ID.
const sessionCookieName = "session_id"

// contextKey is a private type for request context keys so values set here
// cannot collide with other packages.
type contextKey string

const usernameContextKey = contextKey("username")

// contextGetUsername returns the verified username placed on the request
// context by requireSession. Calling it outside a session-scoped handler is
// a programming error, so it panics rather than returning an empty string.
func (app *applicationDependencies) contextGetUsername(r *http.Request) string {
	username, ok := r.Context().Value(usernameContextKey).(string)
	if !ok {
		panic("missing username in request context")
	}
	return username
}

// requireSession is the auth gate applied to every /customer/auth/* route.
// It requires a session cookie naming a live server-side session whose
// token still verifies. The two failure modes are logged distinctly but
// both surface as 403 to the caller. On success the verified username is
// attached to the request context for the downstream handler.
func (app *applicationDependencies) requireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			app.logger.Info("rejected session request", "reason", "no session cookie", "request_url", r.URL.String())
			app.notLoggedInResponse(w, r)
			return
		}

		username, err := app.sessions.Verify(cookie.Value)
		if err != nil {
			switch {
			case errors.Is(err, session.ErrNoSession):
				app.logger.Info("rejected session request", "reason", "unknown session", "request_url", r.URL.String())
				app.notLoggedInResponse(w, r)
			default:
				app.logger.Info("rejected session request", "reason", "token rejected", "error", err.Error(), "request_url", r.URL.String())
				app.notAuthenticatedResponse(w, r)
			}
			return
		}

		ctx := context.WithValue(r.Context(), usernameContextKey, username)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// recoverPanic catches any runtime panic that occurs in a downstream handler.
// Without this, a panic would cause the goroutine to terminate and the client's
// connection to be dropped silently. With this middleware the client receives a
// clean 500 Internal Server Error instead.
func (app *applicationDependencies) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// defer runs when the surrounding goroutine unwinds, even after a panic.
		defer func() {
			if err := recover(); err != nil {
				// Tell the HTTP server to close the connection after this response.
				w.Header().Set("Connection", "close")
				// Convert the recovered panic value to an error and send a 500.
				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// client holds a per-IP rate limiter and the time it was last seen.
// lastSeen lets us evict old entries so the map does not grow forever.
type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimit implements per-IP token-bucket rate limiting using the
// golang.org/x/time/rate package. Each unique IP gets its own limiter
// seeded from the limiter config. A background goroutine cleans up entries
// that have not been seen in 3 minutes. The middleware is a no-op when the
// limiter is disabled.
func (app *applicationDependencies) rateLimit(next http.Handler) http.Handler {
	// clients maps IP addresses to their individual rate limiters.
	var (
		mu      sync.Mutex
		clients = make(map[string]*client)
	)

	// Cleanup goroutine: remove stale IP entries every minute.
	go func() {
		for {
			time.Sleep(time.Minute)
			mu.Lock()
			for ip, c := range clients {
				if time.Since(c.lastSeen) > 3*time.Minute {
					delete(clients, ip)
				}
			}
			mu.Unlock()
		}
	}()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !app.config.limiter.enabled {
			next.ServeHTTP(w, r)
			return
		}

		// Extract just the IP from the RemoteAddr (strips the port).
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}

		mu.Lock()
		// Create a new limiter for this IP if we have not seen it before.
		if _, found := clients[ip]; !found {
			clients[ip] = &client{
				limiter: rate.NewLimiter(rate.Limit(app.config.limiter.rps), app.config.limiter.burst),
			}
		}
		clients[ip].lastSeen = time.Now()

		// Allow() consumes one token; returns false if the bucket is empty.
		if !clients[ip].limiter.Allow() {
			mu.Unlock()
			app.rateLimitExceededResponse(w, r)
			return
		}
		mu.Unlock()

		next.ServeHTTP(w, r)
	})
}
