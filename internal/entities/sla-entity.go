package entities

import (
	"efiling-system/pkg/types"
)

// SLAMatrix maps a department and priority to the allowed resolution window.
// File creation stamps sla_deadline from the matching row.
type SLAMatrix struct {
	ID              uint64  `json:"id" db:"id"`
	DepartmentID    *uint64 `json:"department_id" db:"department_id"`
	Priority        string  `json:"priority" db:"priority"`
	ResolutionHours int     `json:"resolution_hours" db:"resolution_hours"`

	types.BaseEntity
}
