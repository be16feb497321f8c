package domain

// Role is a coarse-grained permission label attached to a user and embedded
// verbatim in issued tokens. Roles carry no prefix convention.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// RolesToStrings converts a role set to plain strings for token claims.
func RolesToStrings(roles []Role) []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}
	return out
}

// RolesFromStrings converts token claim strings back to a role set.
func RolesFromStrings(ss []string) []Role {
	out := make([]Role, len(ss))
	for i, s := range ss {
		out[i] = Role(s)
	}
	return out
}

// ContainsRole reports whether r is present in roles.
func ContainsRole(roles []Role, r Role) bool {
	for _, have := range roles {
		if have == r {
			return true
		}
	}
	return false
}
