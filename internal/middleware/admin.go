package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/bklyngarment/storefront/internal/admin"
	"github.com/bklyngarment/storefront/internal/auth"
	"github.com/bklyngarment/storefront/internal/session"
)

const gateKey = "admin_gate"

// Session attaches the admin session, backed by the signed cookie, to every request.
func Session(signer *auth.Signer, opts session.CookieOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		session.Attach(c, session.New(session.NewCookieStore(c, signer, opts)))
		c.Next()
	}
}

// AdminGate resolves the gate for the request: a stored token is verified against the backend,
// a missing one is not.
func AdminGate(authenticator admin.Authenticator, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		gate := admin.NewGate(authenticator, session.FromContext(c), logger)
		gate.Check(c.Request.Context())
		c.Set(gateKey, gate)
		c.Next()
	}
}

// GateFromContext returns the gate placed by AdminGate.
func GateFromContext(c *gin.Context) (*admin.Gate, bool) {
	v, ok := c.Get(gateKey)
	if !ok {
		return nil, false
	}
	g, ok := v.(*admin.Gate)
	return g, ok
}

// RequireAdmin stops unauthenticated requests. Browsers are sent back to the login form.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		gate, ok := GateFromContext(c)
		if ok && gate.State() == admin.StateAuthenticated {
			c.Next()
			return
		}
		if WantsJSON(c) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Admin login required"})
			return
		}
		c.Redirect(http.StatusSeeOther, "/admin")
		c.Abort()
	}
}

// WantsJSON reports whether the caller asked for JSON rather than a page.
func WantsJSON(c *gin.Context) bool {
	if c.Query("format") == "json" {
		return true
	}
	accept := c.GetHeader("Accept")
	return strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html")
}
