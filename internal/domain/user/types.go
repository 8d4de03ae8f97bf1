package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role of a marketplace account. Only the back-office roles gate endpoints here.
type Role string

const (
	RoleCreator Role = "creator"
	RoleBrand   Role = "brand"
	RoleAdmin   Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCreator, RoleBrand, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
