package user

import (
	"sistema-advocacia/internal/iam/domain/model"
)

type User = model.User
type UserRole = model.UserRole

const (
	RoleAdmin = model.RoleAdmin
	RoleStaff = model.RoleStaff
)

var AllValidRoles = []string{
	string(RoleAdmin),
	string(RoleStaff),
}

func IsValidUserRole(r UserRole) bool {
	return r == RoleAdmin || r == RoleStaff
}
