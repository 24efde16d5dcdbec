package model

// Role is the caller's resolved role. It arrives as a custom claim on the
// ID token; this backend only consumes it.
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperadmin Role = "superadmin"
)

var roleRank = map[Role]int{
	RoleUser:       0,
	RoleAdmin:      1,
	RoleSuperadmin: 2,
}

// ParseRole maps an arbitrary claim value to a known role, defaulting to user.
func ParseRole(s string) Role {
	r := Role(s)
	if _, ok := roleRank[r]; ok {
		return r
	}
	return RoleUser
}

// AtLeast reports whether r sits at or above min in the role hierarchy.
func (r Role) AtLeast(min Role) bool {
	return roleRank[r] >= roleRank[min]
}
