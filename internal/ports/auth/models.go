package auth

import "strings"

// Role es el conjunto cerrado de roles que puede tener un principal.
type Role string

const (
	RoleUser      Role = "user"
	RoleAdmin     Role = "admin"
	RoleSuperUser Role = "superuser"
)

// ParseRole convierte un string a Role; los valores desconocidos se rechazan.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleUser:
		return RoleUser, true
	case RoleAdmin:
		return RoleAdmin, true
	case RoleSuperUser:
		return RoleSuperUser, true
	default:
		return "", false
	}
}

// IsElevated indica si el rol saltea la regla de ownership.
func (r Role) IsElevated() bool {
	return r == RoleAdmin || r == RoleSuperUser
}

// Claims representa la información extraída del token.
type Claims struct {
	UserID string
	Email  string
	Role   Role
}
