package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRoles(t *testing.T) {
	roles := ParseRoles([]string{"customer", "superuser", "admin", "customer"})

	assert.Equal(t, Roles{RoleCustomer, RoleAdmin}, roles)
	assert.Equal(t, []string{"customer", "admin"}, roles.Strings())
	assert.True(t, roles.Contains(RoleAdmin))
}

func TestParseRoles_Empty(t *testing.T) {
	roles := ParseRoles(nil)

	assert.Empty(t, roles)
	assert.False(t, roles.Contains(RoleCustomer))
}
