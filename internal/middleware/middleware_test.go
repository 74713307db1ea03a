package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-shop-api/internal/platform/apperr"
	"pet-shop-api/internal/platform/logger"
	"pet-shop-api/internal/ports/auth"
)

type fakeVerifier struct {
	claims auth.Claims
	err    error
}

func (f fakeVerifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	if token != "good" {
		return auth.Claims{}, errors.New("bad token")
	}
	return f.claims, f.err
}

func capturePrincipal(t *testing.T, mw func(http.Handler) http.Handler, req *http.Request) (string, auth.Role, error) {
	t.Helper()
	var (
		id   string
		role auth.Role
		err  error
	)
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, perr := RequirePrincipal(r)
		id, role, err = p.ID, p.Role, perr
	}))
	h.ServeHTTP(httptest.NewRecorder(), req)
	return id, role, err
}

func TestAuthContext_DevHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Debug-User-ID", "user-1")
	req.Header.Set("X-Debug-Role", "admin")

	id, role, err := capturePrincipal(t, AuthContext(nil, true), req)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)
	assert.Equal(t, auth.RoleAdmin, role)
}

func TestAuthContext_DevHeaders_UnknownRoleFallsBackToUser(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Debug-User-ID", "user-1")
	req.Header.Set("X-Debug-Role", "root")

	_, role, err := capturePrincipal(t, AuthContext(nil, true), req)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleUser, role)
}

func TestAuthContext_Bearer(t *testing.T) {
	v := fakeVerifier{claims: auth.Claims{UserID: "u-9", Role: auth.RoleUser}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	id, _, err := capturePrincipal(t, AuthContext(v, false), req)
	require.NoError(t, err)
	assert.Equal(t, "u-9", id)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer nope")
	_, _, err = capturePrincipal(t, AuthContext(v, false), req)
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)

	// Fuera de modo dev los headers de debug se ignoran.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Debug-User-ID", "intruder")
	_, _, err = capturePrincipal(t, AuthContext(v, false), req)
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestAuthContext_DevModeKeepsBearer(t *testing.T) {
	v := fakeVerifier{claims: auth.Claims{UserID: "u-9", Role: auth.RoleUser}}
	mw := AuthContext(v, true)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	req.Header.Set("X-Debug-User-ID", "user-1")
	id, _, err := capturePrincipal(t, mw, req)
	require.NoError(t, err)
	assert.Equal(t, "u-9", id)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer nope")
	req.Header.Set("X-Debug-User-ID", "user-1")
	id, _, err = capturePrincipal(t, mw, req)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	_, _, err = capturePrincipal(t, mw, req)
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestRecover_Returns500JSON(t *testing.T) {
	h := Recover(logger.Nop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, rec.Body.String())
}

func TestRateLimit_BlocksAfterBurst(t *testing.T) {
	h := RateLimit(RateLimitConfig{RPS: 0.001, Burst: 2}, logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
}

func TestRateLimit_ForgetsLeastRecentClients(t *testing.T) {
	h := RateLimit(RateLimitConfig{RPS: 0.001, Burst: 1, MaxClients: 1}, logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	hit := func(addr string) int {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, hit("10.0.0.1:1"))
	assert.Equal(t, http.StatusTooManyRequests, hit("10.0.0.1:1"))

	// Con un solo cupo, la segunda IP desplaza a la primera.
	assert.Equal(t, http.StatusNoContent, hit("10.0.0.2:1"))
	assert.Equal(t, http.StatusNoContent, hit("10.0.0.1:1"))
}

func TestIPLimiters_ExpireIdleClients(t *testing.T) {
	store := newIPLimiters(RateLimitConfig{RPS: 1, Burst: 1, MaxClients: 10, IdleTTL: 20 * time.Millisecond})

	store.get("10.0.0.1")
	store.get("10.0.0.2")
	assert.Equal(t, 2, store.limiters.Len())

	require.Eventually(t, func() bool { return store.limiters.Len() == 0 }, time.Second, 10*time.Millisecond)
}

func TestRateLimit_DisabledIsPassthrough(t *testing.T) {
	called := 0
	h := RateLimit(RateLimitConfig{}, logger.Nop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called++ }))
	for i := 0; i < 50; i++ {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	}
	assert.Equal(t, 50, called)
}

func TestHTTPMetrics_CountsRequests(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

	got := testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "unmatched", "418"))
	assert.Equal(t, float64(1), got)
}
