package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bklyngarment/storefront/internal/admin"
	"github.com/bklyngarment/storefront/internal/auth"
	"github.com/bklyngarment/storefront/internal/session"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type stubAuth struct{ verifyErr error }

func (s stubAuth) Login(context.Context, string, string) (string, error) { return "tok", nil }
func (s stubAuth) Verify(context.Context, string) error                  { return s.verifyErr }

func TestRequestIDIsEchoed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get(RequestIDHeader))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestRecoveryReturns500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery(quietLogger()))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Something went wrong")
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set("Accept", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
}

func TestWantsJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		url, accept string
		want        bool
	}{
		{"/", "application/json", true},
		{"/", "text/html,application/xhtml+xml", false},
		{"/", "", false},
		{"/?format=json", "text/html", true},
	}
	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, tc.url, nil)
		c.Request.Header.Set("Accept", tc.accept)
		assert.Equal(t, tc.want, WantsJSON(c), tc.url+" "+tc.accept)
	}
}

func newAdminRouter(authenticator admin.Authenticator, signer *auth.Signer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Session(signer, session.CookieOptions{Name: "adminToken", MaxAge: 3600}))
	g := r.Group("/admin", AdminGate(authenticator, quietLogger()))
	g.GET("", func(c *gin.Context) {
		gate, _ := GateFromContext(c)
		c.String(http.StatusOK, string(gate.State()))
	})
	g.GET("/secret", RequireAdmin(), func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	return r
}

func signedCookie(t *testing.T, signer *auth.Signer) *http.Cookie {
	t.Helper()
	value, err := signer.Sign("sid-1", "backend-token")
	require.NoError(t, err)
	return &http.Cookie{Name: "adminToken", Value: value}
}

func TestAdminGateWithoutCookie(t *testing.T) {
	signer := auth.NewSigner("secret", time.Hour)
	r := newAdminRouter(stubAuth{}, signer)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, "unauthenticated", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/secret", nil))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/secret", nil)
	req.Header.Set("Accept", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminGateWithVerifiedCookie(t *testing.T) {
	signer := auth.NewSigner("secret", time.Hour)
	r := newAdminRouter(stubAuth{}, signer)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/secret", nil)
	req.AddCookie(signedCookie(t, signer))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestAdminGateClearsRejectedCookie(t *testing.T) {
	signer := auth.NewSigner("secret", time.Hour)
	r := newAdminRouter(stubAuth{verifyErr: errors.New("401")}, signer)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(signedCookie(t, signer))
	r.ServeHTTP(w, req)
	assert.Equal(t, "unauthenticated", w.Body.String())

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "adminToken", cookies[0].Name)
	assert.True(t, cookies[0].MaxAge < 0)
}
