package entity

import "slices"

// Role is carried in access tokens and sessions. Every signed-in user is a
// customer; admin is added when admin_users.is_admin is set at sign-in.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

var knownRoles = map[Role]struct{}{
	RoleCustomer: {},
	RoleAdmin:    {},
}

type Roles []Role

func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// Strings is the form stored in JWT claims and session rows.
func (rs Roles) Strings() []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r)
	}

	return out
}

// ParseRoles reads roles back from claims or a session row. Unknown and
// repeated values are dropped, so a token minted by a newer build that knows
// more roles never grants anything here.
func ParseRoles(values []string) Roles {
	roles := make(Roles, 0, len(values))
	for _, v := range values {
		role := Role(v)
		if _, ok := knownRoles[role]; ok && !roles.Contains(role) {
			roles = append(roles, role)
		}
	}

	return roles
}
