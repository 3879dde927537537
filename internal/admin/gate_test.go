package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bklyngarment/storefront/internal/apiclient"
	"github.com/bklyngarment/storefront/internal/session"
)

func TestCheckWithoutTokenSkipsNetwork(t *testing.T) {
	auth := &fakeAuth{}
	g := NewGate(auth, session.New(&session.MemoryStore{}), quietLogger())
	assert.Equal(t, StateChecking, g.State())

	assert.Equal(t, StateUnauthenticated, g.Check(context.Background()))
	assert.Zero(t, auth.verifies)
}

func TestCheckWithValidToken(t *testing.T) {
	s := session.New(&session.MemoryStore{})
	require.NoError(t, s.Save("good"))
	auth := &fakeAuth{}
	g := NewGate(auth, s, quietLogger())

	assert.Equal(t, StateAuthenticated, g.Check(context.Background()))
	assert.Equal(t, 1, auth.verifies)
}

func TestCheckClearsRejectedToken(t *testing.T) {
	s := session.New(&session.MemoryStore{})
	require.NoError(t, s.Save("expired"))
	g := NewGate(&fakeAuth{verifyErr: &apiclient.APIError{Status: 401}}, s, quietLogger())

	assert.Equal(t, StateUnauthenticated, g.Check(context.Background()))
	_, ok := s.Token()
	assert.False(t, ok)
}

func TestLoginStoresToken(t *testing.T) {
	s := session.New(&session.MemoryStore{})
	g := NewGate(&fakeAuth{token: "fresh"}, s, quietLogger())

	require.NoError(t, g.Login(context.Background(), "admin", "pw"))
	assert.Equal(t, StateAuthenticated, g.State())
	tok, ok := s.Token()
	require.True(t, ok)
	assert.Equal(t, "fresh", tok)
}

func TestLoginFailureShowsBackendDetail(t *testing.T) {
	s := session.New(&session.MemoryStore{})
	g := NewGate(&fakeAuth{loginErr: &apiclient.APIError{Status: 401, Detail: "Invalid credentials"}}, s, quietLogger())

	err := g.Login(context.Background(), "admin", "wrong")
	var loginErr *LoginError
	require.True(t, errors.As(err, &loginErr))
	assert.Equal(t, "Invalid credentials", loginErr.Message)
	_, ok := s.Token()
	assert.False(t, ok)
	assert.Equal(t, StateUnauthenticated, g.State())
}

func TestLoginFailureWithoutDetailUsesFallback(t *testing.T) {
	g := NewGate(&fakeAuth{loginErr: errTransport}, session.New(&session.MemoryStore{}), quietLogger())

	err := g.Login(context.Background(), "admin", "pw")
	var loginErr *LoginError
	require.True(t, errors.As(err, &loginErr))
	assert.Equal(t, DefaultLoginError, loginErr.Message)
	assert.ErrorIs(t, err, errTransport)
}

func TestLogoutClearsToken(t *testing.T) {
	s := session.New(&session.MemoryStore{})
	require.NoError(t, s.Save("tok"))
	auth := &fakeAuth{}
	g := NewGate(auth, s, quietLogger())

	require.NoError(t, g.Logout())
	assert.Equal(t, StateUnauthenticated, g.State())
	_, ok := s.Token()
	assert.False(t, ok)
	assert.Zero(t, auth.verifies)
}
