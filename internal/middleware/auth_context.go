package middleware

import (
	"context"
	"net/http"
	"strings"

	"pet-shop-api/internal/domain/access"
	"pet-shop-api/internal/platform/apperr"
	"pet-shop-api/internal/ports/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// AuthContext:
// - Si viene Bearer token y hay verifier => intenta Verify() y setea claims.
// - Si devHeaders y no hubo token válido => X-Debug-User-ID (+ X-Debug-Role opcional) setean claims.
// - Si no hay claims, el request sigue igual; los handlers decidirán si exigen auth.
func AuthContext(verifier auth.AuthVerifier, devHeaders bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if verifier != nil {
				if token := bearerToken(r.Header.Get("Authorization")); token != "" {
					// Un token inválido no corta aquí. El handler decide 401/403.
					if claims, err := verifier.Verify(r.Context(), token); err == nil {
						next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
						return
					}
				}
			}

			// Dev mode: permitir inyectar user por headers
			if devHeaders {
				if uid := strings.TrimSpace(r.Header.Get("X-Debug-User-ID")); uid != "" {
					role, ok := auth.ParseRole(r.Header.Get("X-Debug-Role"))
					if !ok {
						role = auth.RoleUser
					}
					claims := auth.Claims{UserID: uid, Role: role}
					next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}

// WithClaims se usa en tests de handlers que no pasan por AuthContext.
func WithClaims(ctx context.Context, c auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

// RequirePrincipal devuelve el principal del request o ErrUnauthorized.
func RequirePrincipal(r *http.Request) (access.Principal, error) {
	claims, ok := GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		return access.Principal{}, apperr.Unauthorized("unauthorized")
	}
	return access.FromClaims(claims), nil
}

// OptionalPrincipal es para endpoints públicos que cambian con auth.
func OptionalPrincipal(r *http.Request) (access.Principal, bool) {
	p, err := RequirePrincipal(r)
	return p, err == nil
}

func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
