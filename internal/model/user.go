package model

// UserRole 用户角色
type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleVendor   UserRole = "vendor"
	UserRoleCustomer UserRole = "customer"
)

// User 当前登录用户，每个设备同一时刻最多一个
type User struct {
	ID    string   `json:"id"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
	Name  string   `json:"name"`
}

// IsAdmin 是否管理员
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == UserRoleAdmin
}
