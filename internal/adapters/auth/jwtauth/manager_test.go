package jwtauth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-shop-api/internal/ports/auth"
)

func newTestManager(t *testing.T, secret string, now time.Time) *Manager {
	t.Helper()
	m, err := NewManager(Config{Secret: secret, TTL: time.Hour})
	require.NoError(t, err)
	m.now = func() time.Time { return now }
	return m
}

func TestManager_IssueAndVerify(t *testing.T) {
	now := time.Now()
	m := newTestManager(t, "s3cret", now)

	token, exp, err := m.Issue("user-1", "a@b.c", auth.RoleAdmin)
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(time.Hour), exp, time.Second)

	claims, err := m.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, auth.Claims{UserID: "user-1", Email: "a@b.c", Role: auth.RoleAdmin}, claims)
}

func TestManager_RejectsExpired(t *testing.T) {
	issuedAt := time.Now().Add(-2 * time.Hour)
	m := newTestManager(t, "s3cret", issuedAt)

	token, _, err := m.Issue("user-1", "", auth.RoleUser)
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestManager_RejectsOtherSecret(t *testing.T) {
	now := time.Now()
	issuer := newTestManager(t, "one", now)
	verifier := newTestManager(t, "two", now)

	token, _, err := issuer.Issue("user-1", "", auth.RoleUser)
	require.NoError(t, err)

	_, err = verifier.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestManager_EmptyToken(t *testing.T) {
	m := newTestManager(t, "s3cret", time.Now())
	_, err := m.Verify(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrTokenEmpty)
}

func TestNewManager_RequiresSecret(t *testing.T) {
	_, err := NewManager(Config{})
	assert.ErrorIs(t, err, ErrNoSecret)
}
