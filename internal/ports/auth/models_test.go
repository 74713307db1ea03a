package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	r, ok := ParseRole(" Admin ")
	assert.True(t, ok)
	assert.Equal(t, RoleAdmin, r)

	_, ok = ParseRole("admn")
	assert.False(t, ok)
}

func TestRole_IsElevated(t *testing.T) {
	assert.False(t, RoleUser.IsElevated())
	assert.True(t, RoleAdmin.IsElevated())
	assert.True(t, RoleSuperUser.IsElevated())
	assert.False(t, Role("").IsElevated())
}
