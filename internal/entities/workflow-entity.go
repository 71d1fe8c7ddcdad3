package entities

import (
	"encoding/json"

	"efiling-system/pkg/types"
)

// WorkflowTemplate is a named stage sequence used when routing files inside
// a department. Stages are stored as an ordered JSON array.
type WorkflowTemplate struct {
	ID           uint64          `json:"id" db:"id"`
	Name         string          `json:"name" db:"name"`
	DepartmentID *uint64         `json:"department_id" db:"department_id"`
	Stages       json.RawMessage `json:"stages" db:"stages"`
	IsActive     bool            `json:"is_active" db:"is_active"`

	types.BaseEntity
}

// WorkflowStage is one entry of a template's stage array.
type WorkflowStage struct {
	Order    int    `json:"order"`
	Name     string `json:"name"`
	RoleCode string `json:"role_code"`
	SLAHours int    `json:"sla_hours"`
}
