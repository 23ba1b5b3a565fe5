package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfront/internal/auth"
	"shopfront/internal/model"
	"shopfront/internal/service"
	"shopfront/internal/session"
	"shopfront/internal/view"
)

// stubUserRepo serves fixed credential rows, keyed by username.
type stubUserRepo struct {
	hashes map[string]string
}

func (s *stubUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	hash, ok := s.hashes[username]
	if !ok {
		return nil, nil
	}
	return &model.User{Username: username, PasswordHash: hash}, nil
}

func newLoginTestEnv(t *testing.T) (*echo.Echo, *AuthHandler, session.Store) {
	t.Helper()

	hash, err := auth.HashPassword("secret1")
	require.NoError(t, err)

	store := session.NewMemoryStore(30 * time.Minute)
	t.Cleanup(store.Close)

	svc := service.NewAuthService(
		&stubUserRepo{hashes: map[string]string{"alice": hash}},
		auth.NewVerifier(),
		store,
		auth.NewRememberToken("test-secret"),
	)

	e := echo.New()
	renderer, err := view.New()
	require.NoError(t, err)
	e.Renderer = renderer

	return e, NewAuthHandler(svc), store
}

func postLogin(e *echo.Echo, h *AuthHandler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = h.Login(c)
	return rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e, h, store := newLoginTestEnv(t)

	rec := postLogin(e, h, url.Values{"username": {"alice"}, "password": {"secret1"}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Signed in")

	// a live authenticated session was opened and its cookie set
	cookies := rec.Result().Cookies()
	var sessionID string
	for _, c := range cookies {
		if c.Name == session.CookieName {
			sessionID = c.Value
		}
	}
	require.NotEmpty(t, sessionID)

	sess, err := store.Get(context.Background(), sessionID)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.True(t, sess.Authenticated)
	assert.Equal(t, "alice", sess.Username)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	e, h, _ := newLoginTestEnv(t)

	rec := postLogin(e, h, url.Values{"username": {"alice"}, "password": {"wrong"}})

	// login view re-rendered with the error flag, same status as the form
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid username or password")
	assert.Empty(t, rec.Result().Cookies())
}

func TestAuthHandler_Login_UnknownUserLooksTheSame(t *testing.T) {
	e, h, _ := newLoginTestEnv(t)

	wrongPass := postLogin(e, h, url.Values{"username": {"alice"}, "password": {"wrong"}})
	unknown := postLogin(e, h, url.Values{"username": {"ghost"}, "password": {"secret1"}})

	assert.Equal(t, wrongPass.Code, unknown.Code)
	assert.Equal(t, wrongPass.Body.String(), unknown.Body.String())
}

func TestAuthHandler_Login_RememberSetsTokenCookie(t *testing.T) {
	e, h, _ := newLoginTestEnv(t)

	rec := postLogin(e, h, url.Values{
		"username": {"alice"},
		"password": {"secret1"},
		"remember": {"true"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	names := make([]string, 0, 2)
	for _, c := range rec.Result().Cookies() {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, session.CookieName)
	assert.Contains(t, names, session.RememberCookieName)
}

func TestAuthHandler_Logout_IsIdempotent(t *testing.T) {
	e, h, store := newLoginTestEnv(t)

	sess, err := store.Create(context.Background(), "alice")
	require.NoError(t, err)

	logout := func(withCookie bool) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/logout", nil)
		if withCookie {
			req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sess.ID})
		}
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		require.NoError(t, h.Logout(c))
		return rec
	}

	rec := logout(true)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))

	gone, err := store.Get(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	// destroying again, with or without a cookie, is still fine
	assert.Equal(t, http.StatusSeeOther, logout(true).Code)
	assert.Equal(t, http.StatusSeeOther, logout(false).Code)
}
