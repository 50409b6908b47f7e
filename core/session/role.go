package session

// Role is the navigation role derived from the identity token.
// It only drives what the portal shows; the remote API authorizes every call on its own.
type Role string

const (
	RoleNone       Role = "" // anonymous visitor
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperadmin Role = "superadmin"
)

// ResidentGroup is the group name residents may carry; it grants the same as RoleUser.
const ResidentGroup = "resident"

// DefaultRole is assigned when the identity token names no usable group.
const DefaultRole = RoleUser

var rolePriorities = map[Role]int{
	RoleUser:       1,
	RoleAdmin:      2,
	RoleSuperadmin: 3,
}

// ParseRole maps a group name to a Role. Names match exactly: unknown, empty, resident and
// differently cased groups map to DefaultRole.
func ParseRole(group string) Role {
	switch r := Role(group); r {
	case RoleAdmin, RoleSuperadmin, RoleUser:
		return r
	default:
		return DefaultRole
	}
}

func (r Role) String() string {
	return string(r)
}

// Priority orders roles; RoleNone is 0.
func (r Role) Priority() int {
	return rolePriorities[r]
}

// IsAdmin reports whether the role is admin or superadmin.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperadmin
}
