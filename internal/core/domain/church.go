package domain

import "time"

// ChurchRole is a user's role within one church.
type ChurchRole string

const (
	RoleViewer    ChurchRole = "VIEWER"
	RoleTreasurer ChurchRole = "TREASURER"
	RoleAdmin     ChurchRole = "ADMIN"
)

// rank orders roles by privilege for HasPermission.
var roleRank = map[ChurchRole]int{
	RoleViewer:    1,
	RoleTreasurer: 2,
	RoleAdmin:     3,
}

// HasPermission reports whether the role satisfies the required role.
func (r ChurchRole) HasPermission(required ChurchRole) bool {
	return roleRank[r] >= roleRank[required]
}

// Church is the multi-tenant scoping unit. Every ledger entity belongs to
// exactly one church.
type Church struct {
	ChurchID string `json:"churchID"` // Primary key (UUID)
	Name     string `json:"name"`
	Address  string `json:"address"`
	AuditFields
}

// ChurchMember links a user to a church with a role.
type ChurchMember struct {
	UserID   string     `json:"userID"`
	ChurchID string     `json:"churchID"`
	Role     ChurchRole `json:"role"`
	JoinedAt time.Time  `json:"joinedAt"`
}
