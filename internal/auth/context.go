package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"fintrack-be/internal/entities"
	"fintrack-be/internal/repository"
	"fintrack-be/internal/session"
)

// CookieName is the name of the session cookie.
const CookieName = "fintrack.sid"

type ctxKey struct{}

// CookieConfig controls the session cookie issued on login.
type CookieConfig struct {
	TTL    time.Duration
	Secure bool
}

// Context is the per-request authentication state. It is built by the
// session middleware before the GraphQL layer runs and gives resolvers
// access to the current user plus login/logout against the session store.
type Context struct {
	w        http.ResponseWriter
	r        *http.Request
	sessions session.Store
	users    repository.UserRepository
	cookie   CookieConfig
	user     *entities.User
}

// NewContext builds an auth context for one request. Call Resolve to
// bind the user from the session cookie.
func NewContext(w http.ResponseWriter, r *http.Request, sessions session.Store, users repository.UserRepository, cookie CookieConfig) *Context {
	return &Context{
		w:        w,
		r:        r,
		sessions: sessions,
		users:    users,
		cookie:   cookie,
	}
}

// WithContext attaches the auth context to a request context.
func WithContext(ctx context.Context, a *Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, a)
}

// FromContext retrieves the auth context, or nil if none was attached.
func FromContext(ctx context.Context) *Context {
	a, _ := ctx.Value(ctxKey{}).(*Context)
	return a
}

// User returns the user bound to the current session, or nil when the
// request is anonymous.
func (a *Context) User() *entities.User {
	return a.user
}

// Resolve loads the user referenced by the session cookie, if any.
// A missing, expired or dangling session leaves the request anonymous;
// it is never an error.
func (a *Context) Resolve(ctx context.Context) {
	cookie, err := a.r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return
	}

	userID, err := a.sessions.Get(ctx, cookie.Value)
	if err != nil {
		return
	}

	user, err := a.users.FindByID(ctx, userID)
	if err != nil || user == nil {
		return
	}
	a.user = user
}

// Login establishes a session for the user and sets the session cookie.
// Logging in while already authenticated replaces the bound user.
func (a *Context) Login(ctx context.Context, user *entities.User) error {
	sessionID, err := newSessionID()
	if err != nil {
		return fmt.Errorf("failed to generate session id: %w", err)
	}

	if err := a.sessions.Create(ctx, sessionID, user.ID, a.cookie.TTL); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	http.SetCookie(a.w, &http.Cookie{
		Name:     CookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(a.cookie.TTL.Seconds()),
		HttpOnly: true,
		Secure:   a.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	a.user = user
	return nil
}

// Logout destroys the server-side session record and clears the cookie.
// A failed session destroy fails the whole request rather than reporting
// a false success.
func (a *Context) Logout(ctx context.Context) error {
	if cookie, err := a.r.Cookie(CookieName); err == nil && cookie.Value != "" {
		if err := a.sessions.Delete(ctx, cookie.Value); err != nil {
			return fmt.Errorf("failed to destroy session: %w", err)
		}
	}

	http.SetCookie(a.w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   a.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	a.user = nil
	return nil
}

// newSessionID returns a 128-bit random hex session id.
func newSessionID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
