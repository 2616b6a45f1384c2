// Package entity contains the core business objects of the project.
package entity

// Role represents the access level attached to a profile.
type Role string

const (
	// RoleUser is the default role assigned at registration.
	RoleUser Role = "user"
	// RoleAdmin can manage the catalog, home content and settings.
	RoleAdmin Role = "admin"
	// RoleSuperAdmin can additionally change other profiles' roles
	// and manage order state.
	RoleSuperAdmin Role = "superadmin"
)

// rank orders roles for comparison; unknown roles rank below user.
var rank = map[Role]int{
	RoleUser:       1,
	RoleAdmin:      2,
	RoleSuperAdmin: 3,
}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

// AtLeast reports whether r grants at least the access of min.
func (r Role) AtLeast(min Role) bool {
	return rank[r] >= rank[min]
}
