package entities

import (
	"time"

	"efiling-system/pkg/types"
)

// File is a unit of administrative work. Its geographic scope resolves
// through a fallback chain: the file's own location, else the creator's.
type File struct {
	ID         uint64 `json:"id" db:"id"`
	FileNumber string `json:"file_number" db:"file_number"`
	Subject    string `json:"subject" db:"subject"`
	Status     string `json:"status" db:"status"`
	Priority   string `json:"priority" db:"priority"`
	Category   string `json:"category" db:"category"`

	DepartmentID *uint64 `json:"department_id" db:"department_id"`
	DistrictID   *uint64 `json:"district_id" db:"district_id"`
	TownID       *uint64 `json:"town_id" db:"town_id"`
	DivisionID   *uint64 `json:"division_id" db:"division_id"`

	AssignedTo *uint64 `json:"assigned_to" db:"assigned_to"`
	CreatedBy  uint64  `json:"created_by" db:"created_by"`

	// Derived per file from the workflow_states join; empty means the file
	// is implicitly TEAM_INTERNAL.
	WorkflowState string `json:"workflow_state,omitempty" db:"workflow_state"`

	SLADeadline *time.Time `json:"sla_deadline" db:"sla_deadline"`
	SLABreached bool       `json:"sla_breached" db:"sla_breached"`
	SLAPaused   bool       `json:"sla_paused" db:"sla_paused"`

	DepartmentName *string `json:"department_name,omitempty" db:"department_name"`
	AssigneeName   *string `json:"assignee_name,omitempty" db:"assignee_name"`
	CreatorName    *string `json:"creator_name,omitempty" db:"creator_name"`

	types.BaseEntity
	types.SoftDelete
}

// FileSignature records a signing event; the latest active one per file is
// the "approved by" answer on the dashboard.
type FileSignature struct {
	ID       uint64    `json:"id" db:"id"`
	FileID   uint64    `json:"file_id" db:"file_id"`
	SignedBy uint64    `json:"signed_by" db:"signed_by"`
	SignedAt time.Time `json:"signed_at" db:"signed_at"`
	IsActive bool      `json:"is_active" db:"is_active"`
}
