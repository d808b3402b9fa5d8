package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack-be/internal/entities"
	"fintrack-be/internal/session"
)

type fakeUserRepo struct {
	users map[string]*entities.User
}

func (f *fakeUserRepo) Create(ctx context.Context, username, name, passwordHash, gender, profilePicture string) (*entities.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*entities.User, error) {
	return f.users[id], nil
}

var testCookie = CookieConfig{TTL: time.Hour}

func TestLoginEstablishesSession(t *testing.T) {
	store := session.NewMemoryStore()
	repo := &fakeUserRepo{users: map[string]*entities.User{}}
	user := &entities.User{ID: "user-1", Username: "alice"}
	repo.users[user.ID] = user

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	actx := NewContext(w, r, store, repo, testCookie)

	require.NoError(t, actx.Login(r.Context(), user))
	assert.Equal(t, user, actx.User())

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, CookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, int(time.Hour.Seconds()), cookie.MaxAge)

	// A follow-up request carrying the cookie resolves to the same user
	r2 := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	r2.AddCookie(&http.Cookie{Name: CookieName, Value: cookie.Value})
	actx2 := NewContext(httptest.NewRecorder(), r2, store, repo, testCookie)
	actx2.Resolve(r2.Context())

	require.NotNil(t, actx2.User())
	assert.Equal(t, "user-1", actx2.User().ID)
}

func TestResolveAnonymousWithoutCookie(t *testing.T) {
	store := session.NewMemoryStore()
	repo := &fakeUserRepo{users: map[string]*entities.User{}}

	r := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	actx := NewContext(httptest.NewRecorder(), r, store, repo, testCookie)
	actx.Resolve(r.Context())

	assert.Nil(t, actx.User())
}

func TestResolveAnonymousWithStaleCookie(t *testing.T) {
	store := session.NewMemoryStore()
	repo := &fakeUserRepo{users: map[string]*entities.User{}}

	r := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "expired-or-forged"})
	actx := NewContext(httptest.NewRecorder(), r, store, repo, testCookie)
	actx.Resolve(r.Context())

	assert.Nil(t, actx.User())
}

func TestLogoutDestroysSession(t *testing.T) {
	store := session.NewMemoryStore()
	repo := &fakeUserRepo{users: map[string]*entities.User{}}
	user := &entities.User{ID: "user-1", Username: "alice"}
	repo.users[user.ID] = user

	// Log in to get a session id
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	actx := NewContext(w, r, store, repo, testCookie)
	require.NoError(t, actx.Login(r.Context(), user))
	sessionID := w.Result().Cookies()[0].Value

	// Log out on a request carrying that cookie
	w2 := httptest.NewRecorder()
	r2 := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	r2.AddCookie(&http.Cookie{Name: CookieName, Value: sessionID})
	actx2 := NewContext(w2, r2, store, repo, testCookie)
	actx2.Resolve(r2.Context())
	require.NotNil(t, actx2.User())

	require.NoError(t, actx2.Logout(r2.Context()))
	assert.Nil(t, actx2.User())

	// Server-side record is gone
	_, err := store.Get(context.Background(), sessionID)
	assert.ErrorIs(t, err, session.ErrNotFound)

	// Cookie is cleared
	cookies := w2.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "", cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestReloginReplacesBoundUser(t *testing.T) {
	store := session.NewMemoryStore()
	alice := &entities.User{ID: "user-1", Username: "alice"}
	bob := &entities.User{ID: "user-2", Username: "bob"}
	repo := &fakeUserRepo{users: map[string]*entities.User{alice.ID: alice, bob.ID: bob}}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	actx := NewContext(w, r, store, repo, testCookie)

	require.NoError(t, actx.Login(r.Context(), alice))
	require.NoError(t, actx.Login(r.Context(), bob))

	assert.Equal(t, bob, actx.User())
}
