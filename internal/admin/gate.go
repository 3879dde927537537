// Package admin implements the token-gated admin panel: the auth gate and the dashboard
// submissions.
package admin

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/bklyngarment/storefront/internal/apiclient"
)

// State is the gate's view of the visitor.
type State string

const (
	StateChecking        State = "checking"
	StateAuthenticated   State = "authenticated"
	StateUnauthenticated State = "unauthenticated"
)

// DefaultLoginError is shown when the backend gives no reason for a failed login.
const DefaultLoginError = "Invalid credentials"

// Authenticator is the backend side of the gate.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (string, error)
	Verify(ctx context.Context, token string) error
}

// TokenStore is where the gate keeps the bearer token. session.Session satisfies it.
type TokenStore interface {
	Token() (string, bool)
	Save(token string) error
	Clear() error
}

// LoginError is a rejected login. Message is safe to show to the user.
type LoginError struct {
	Message string
	Err     error
}

func (e *LoginError) Error() string { return e.Message }

func (e *LoginError) Unwrap() error { return e.Err }

// Gate decides whether the current visitor may see the dashboard.
type Gate struct {
	auth  Authenticator
	store TokenStore
	log   *logrus.Logger
	state State
}

// NewGate returns a gate in the checking state.
func NewGate(auth Authenticator, store TokenStore, logger *logrus.Logger) *Gate {
	return &Gate{auth: auth, store: store, log: logger, state: StateChecking}
}

// State returns the current state.
func (g *Gate) State() State { return g.state }

// Token returns the stored token, if any.
func (g *Gate) Token() (string, bool) { return g.store.Token() }

// Check resolves the checking state. Without a stored token no request is made.
// A token the backend rejects is discarded.
func (g *Gate) Check(ctx context.Context) State {
	token, ok := g.store.Token()
	if !ok {
		g.state = StateUnauthenticated
		return g.state
	}
	if err := g.auth.Verify(ctx, token); err != nil {
		g.log.WithError(err).Info("stored admin token rejected")
		if err := g.store.Clear(); err != nil {
			g.log.WithError(err).Error("failed to clear admin token")
		}
		g.state = StateUnauthenticated
		return g.state
	}
	g.state = StateAuthenticated
	return g.state
}

// Login exchanges credentials for a token and stores it. On failure nothing is stored and
// a *LoginError is returned.
func (g *Gate) Login(ctx context.Context, username, password string) error {
	token, err := g.auth.Login(ctx, username, password)
	if err != nil {
		g.state = StateUnauthenticated
		return &LoginError{Message: apiclient.DetailOr(err, DefaultLoginError), Err: err}
	}
	if err := g.store.Save(token); err != nil {
		g.state = StateUnauthenticated
		return fmt.Errorf("failed to store admin token: %w", err)
	}
	g.state = StateAuthenticated
	return nil
}

// Logout forgets the token. The backend is not contacted.
func (g *Gate) Logout() error {
	g.state = StateUnauthenticated
	return g.store.Clear()
}
