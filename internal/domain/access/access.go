package access

import (
	"strings"

	"pet-shop-api/internal/platform/apperr"
	"pet-shop-api/internal/ports/auth"
)

// Principal es el actor autenticado que hace el request.
type Principal struct {
	ID   string
	Role auth.Role
}

func FromClaims(c auth.Claims) Principal {
	role := c.Role
	if role == "" {
		role = auth.RoleUser
	}
	return Principal{ID: strings.TrimSpace(c.UserID), Role: role}
}

func (p Principal) IsElevated() bool {
	return p.Role.IsElevated()
}

// CheckOwner aplica la regla de ownership: permitido si el principal es el
// dueño del recurso o tiene un rol elevado. La denegación es ErrForbidden.
func CheckOwner(p Principal, ownerID string) error {
	if strings.TrimSpace(p.ID) == "" {
		return apperr.Unauthorized("unauthorized")
	}
	if p.IsElevated() {
		return nil
	}
	if ownerID != "" && p.ID == ownerID {
		return nil
	}
	return apperr.Forbidden()
}

// RequireElevated se usa en operaciones reservadas a staff (admin/superuser).
func RequireElevated(p Principal) error {
	if strings.TrimSpace(p.ID) == "" {
		return apperr.Unauthorized("unauthorized")
	}
	if !p.IsElevated() {
		return apperr.Forbidden()
	}
	return nil
}

// OwnerScope devuelve el owner id al que se restringe un listado.
// "" significa sin restricción (roles elevados).
func OwnerScope(p Principal) string {
	if p.IsElevated() {
		return ""
	}
	return p.ID
}
