package model

// Role is the typed enumeration of system roles. The source of truth for
// authorization: every protected endpoint declares the roles it accepts and
// the check is a pure set membership — no global permission state.
type Role string

const (
	RoleAdmin          Role = "admin"
	RoleClientManager  Role = "client_manager"
	RoleProductManager Role = "product_manager"
	RoleHRManager      Role = "hr_manager"
	RoleEmployee       Role = "employee"
)

// Roles lists every valid role, for registration validation.
var Roles = []Role{RoleAdmin, RoleClientManager, RoleProductManager, RoleHRManager, RoleEmployee}

func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// HasAnyRole reports whether r is one of allowed.
func HasAnyRole(r Role, allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}
