package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParse(t *testing.T) {
	s := NewSigner("test-secret", time.Hour)

	value, err := s.Sign("sess-1", "backend-token")
	require.NoError(t, err)

	claims, err := s.Parse(value)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.Equal(t, "backend-token", claims.Token)
}

func TestParseRejectsOtherSecret(t *testing.T) {
	value, err := NewSigner("one", time.Hour).Sign("sess-1", "tok")
	require.NoError(t, err)

	_, err = NewSigner("two", time.Hour).Parse(value)
	assert.Error(t, err)
}

func TestParseRejectsTampered(t *testing.T) {
	s := NewSigner("test-secret", time.Hour)
	value, err := s.Sign("sess-1", "tok")
	require.NoError(t, err)

	_, err = s.Parse(value[:len(value)-2] + "xx")
	assert.Error(t, err)
	_, err = s.Parse("garbage")
	assert.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	s := NewSigner("test-secret", time.Minute)
	issued := time.Now().Add(-time.Hour)
	s.now = func() time.Time { return issued }
	value, err := s.Sign("sess-1", "tok")
	require.NoError(t, err)

	s.now = time.Now
	_, err = s.Parse(value)
	assert.Error(t, err)
}
