package entities

import (
	"efiling-system/pkg/types"
)

type User struct {
	ID       uint64 `json:"id" db:"id"`
	FullName string `json:"full_name" db:"full_name"`
	Email    string `json:"email" db:"email"`

	Password string `json:"-" db:"password"`

	RoleID   uint64 `json:"role_id" db:"role_id"`
	RoleCode string `json:"role_code" db:"role_code"`
	Admin    bool   `json:"is_admin" db:"is_admin"`
	IsActive bool   `json:"is_active" db:"is_active"`

	DepartmentID *uint64 `json:"department_id" db:"department_id"`
	DistrictID   *uint64 `json:"district_id" db:"district_id"`
	TownID       *uint64 `json:"town_id" db:"town_id"`
	DivisionID   *uint64 `json:"division_id" db:"division_id"`

	types.BaseEntity
	types.SoftDelete
}

// IsAdmin reports whether the user's role carries the administrative flag
// (joined from roles on load).
func (u *User) IsAdmin() bool { return u.Admin }
