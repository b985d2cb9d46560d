package model

type Role string

const (
	RoleUser       Role = "user"
	RoleTrabajador Role = "trabajador"
	RoleAdmin      Role = "admin"
)

// NormalizeRole maps any stored role string onto the closed enum.
// Unknown or empty values fall back to the least-privileged role.
func NormalizeRole(s string) Role {
	switch Role(s) {
	case RoleTrabajador:
		return RoleTrabajador
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleUser
	}
}

// CanManageTickets reports whether the role may change ticket status,
// respond on behalf of the desk, or mark tickets as seen.
func (r Role) CanManageTickets() bool {
	return r == RoleTrabajador || r == RoleAdmin
}

// UserRole is the role record the identity system maintains per user.
// Read-only from this service; absence means RoleUser.
type UserRole struct {
	UserID string `gorm:"type:uuid;primaryKey" json:"user_id"`
	Role   string `gorm:"type:varchar(32);not null" json:"role"`
	AreaID *int64 `json:"area_id,omitempty"`
}

func (UserRole) TableName() string { return "user_roles" }
