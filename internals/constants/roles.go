package constants

// Role is the closed set of caller roles. Every switch over Role must
// handle all three constants plus a rejecting default.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// ParseRole maps a raw claim value to a Role. Unknown values are rejected
// so callers fail closed instead of falling through string comparisons.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleTeacher:
		return RoleTeacher, true
	case RoleStudent:
		return RoleStudent, true
	default:
		return "", false
	}
}

func (r Role) String() string { return string(r) }

/* ==========================
   Grouped role slices
========================== */

var (
	AllRoles = []Role{
		RoleAdmin,
		RoleTeacher,
		RoleStudent,
	}

	StaffRoles = []Role{
		RoleAdmin,
		RoleTeacher,
	}

	AdminOnly = []Role{
		RoleAdmin,
	}
)
