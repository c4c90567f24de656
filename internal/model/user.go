package model

// Role 用戶角色，權限依 rank 遞增：customer < staff < admin
type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
	RoleAdmin    Role = "admin"
)

var roleRanks = map[Role]int{
	RoleCustomer: 1,
	RoleStaff:    2,
	RoleAdmin:    3,
}

// IsValid 驗證角色是否有效
func (r Role) IsValid() bool {
	_, ok := roleRanks[r]
	return ok
}

// AtLeast 檢查角色是否不低於指定角色
func (r Role) AtLeast(required Role) bool {
	rank, ok := roleRanks[r]
	if !ok {
		return false
	}
	requiredRank, ok := roleRanks[required]
	if !ok {
		return false
	}
	return rank >= requiredRank
}

// Principal 經過認證的呼叫者，由外部的認證層提供
type Principal struct {
	UserID int  `json:"user_id"`
	Role   Role `json:"role"`
}
