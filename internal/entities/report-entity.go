package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type ReportFilter struct {
	DateFrom      *time.Time
	DateTo        *time.Time
	DepartmentIDs []uint64
	DistrictIDs   []uint64
	Statuses      []string
	Page          int
	PerPage       int
}

// FileReportItem is one row of the file register export.
type FileReportItem struct {
	FileID          uint64      `json:"file_id" db:"file_id"`
	FileNumber      string      `json:"file_number" db:"file_number"`
	Subject         string      `json:"subject" db:"subject"`
	Status          string      `json:"status" db:"status"`
	Priority        string      `json:"priority" db:"priority"`
	DepartmentName  null.String `json:"department_name" db:"department_name"`
	DistrictName    null.String `json:"district_name" db:"district_name"`
	CreatorName     null.String `json:"creator_name" db:"creator_name"`
	AssigneeName    null.String `json:"assignee_name" db:"assignee_name"`
	CreatedAt       time.Time   `json:"created_at" db:"created_at"`
	SLADeadline     null.Time   `json:"sla_deadline" db:"sla_deadline"`
	SLAStatus       string      `json:"sla_status" db:"sla_status"`
	HoursToDeadline null.Float64 `json:"hours_to_deadline" db:"hours_to_deadline"`
}
