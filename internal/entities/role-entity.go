package entities

import (
	"efiling-system/pkg/types"
)

// Role codes follow the engineer-level naming convention (EE-*, SE-*, CE-*,
// COO, CEO, CFO-*); see constants.LevelForRoleCode.
type Role struct {
	ID          uint64  `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Code        string  `json:"code" db:"code"`
	Description string  `json:"description" db:"description"`
	RoleGroupID *uint64 `json:"role_group_id" db:"role_group_id"`
	IsAdmin     bool    `json:"is_admin" db:"is_admin"`

	types.BaseEntity
}

type RoleGroup struct {
	ID          uint64 `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`

	types.BaseEntity
}
