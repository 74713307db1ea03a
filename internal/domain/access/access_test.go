package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-shop-api/internal/platform/apperr"
	"pet-shop-api/internal/ports/auth"
)

func TestCheckOwner(t *testing.T) {
	owner := Principal{ID: "user-a", Role: auth.RoleUser}
	other := Principal{ID: "user-b", Role: auth.RoleUser}
	admin := Principal{ID: "admin-1", Role: auth.RoleAdmin}
	super := Principal{ID: "root", Role: auth.RoleSuperUser}

	assert.NoError(t, CheckOwner(owner, "user-a"))
	assert.NoError(t, CheckOwner(admin, "user-a"))
	assert.NoError(t, CheckOwner(super, "user-a"))

	err := CheckOwner(other, "user-a")
	require.ErrorIs(t, err, apperr.ErrForbidden)
	assert.NotErrorIs(t, err, apperr.ErrNotFound)
}

func TestCheckOwner_EmptyOwnerNeverMatches(t *testing.T) {
	err := CheckOwner(Principal{ID: "user-a"}, "")
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestCheckOwner_AnonymousIsUnauthorized(t *testing.T) {
	err := CheckOwner(Principal{}, "user-a")
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestRequireElevated(t *testing.T) {
	assert.NoError(t, RequireElevated(Principal{ID: "a", Role: auth.RoleAdmin}))
	assert.ErrorIs(t, RequireElevated(Principal{ID: "u", Role: auth.RoleUser}), apperr.ErrForbidden)
}

func TestOwnerScope(t *testing.T) {
	assert.Equal(t, "u-1", OwnerScope(Principal{ID: "u-1", Role: auth.RoleUser}))
	assert.Equal(t, "", OwnerScope(Principal{ID: "a-1", Role: auth.RoleAdmin}))
}

func TestFromClaims_DefaultsToUserRole(t *testing.T) {
	p := FromClaims(auth.Claims{UserID: " u-1 "})
	assert.Equal(t, Principal{ID: "u-1", Role: auth.RoleUser}, p)
}
