package types

import "time"

// DashboardOverall holds the headline counters. at_risk_files counts files
// whose deadline already passed without the breach flag being set — a
// data-inconsistency bucket distinct from the at_risk drill-down, kept
// deliberately (both definitions come from the reporting contract).
type DashboardOverall struct {
	TotalFiles           int64 `json:"total_files"`
	DraftFiles           int64 `json:"draft_files"`
	InProgressFiles      int64 `json:"in_progress_files"`
	PendingApprovalFiles int64 `json:"pending_approval_files"`
	ApprovedFiles        int64 `json:"approved_files"`
	CompletedFiles       int64 `json:"completed_files"`
	OverdueFiles         int64 `json:"overdue_files"`
	AtRiskFiles          int64 `json:"at_risk_files"`
}

// DashboardCountByGroup is a generic grouped counter (status, priority,
// category, workflow state).
type DashboardCountByGroup struct {
	GroupName string `json:"group_name" db:"group_name"`
	Count     int64  `json:"count" db:"count"`
}

// DashboardRegionStat is a grouped counter with an in-progress sub-count,
// used for departments and the geographic breakdowns.
type DashboardRegionStat struct {
	Name            string `json:"name" db:"name"`
	Count           int64  `json:"count" db:"count"`
	InProgressCount int64  `json:"in_progress_count" db:"in_progress_count"`
}

// DashboardRoleStat groups files by the assignee's role.
type DashboardRoleStat struct {
	RoleCode        string `json:"role_code" db:"role_code"`
	RoleName        string `json:"role_name" db:"role_name"`
	Count           int64  `json:"count" db:"count"`
	InProgressCount int64  `json:"in_progress_count" db:"in_progress_count"`
	ExternalCount   int64  `json:"external_count" db:"external_count"`
}

// DashboardLevelStat is the by-level rollup of DashboardRoleStat rows.
type DashboardLevelStat struct {
	Level           string `json:"level"`
	Count           int64  `json:"count"`
	InProgressCount int64  `json:"in_progress_count"`
	ExternalCount   int64  `json:"external_count"`
}

// DashboardActivityPoint is one day of the trailing creation chart.
type DashboardActivityPoint struct {
	Label string `json:"label" db:"label"`
	Value int64  `json:"value" db:"value"`
}

// DashboardWorkflowStateStat is one row of the workflow details table.
type DashboardWorkflowStateStat struct {
	State      string `json:"state" db:"state"`
	Total      int64  `json:"total" db:"total"`
	InProgress int64  `json:"in_progress" db:"in_progress"`
}

// DashboardWorkflowDetails aggregates the workflow-state table with the
// fixed sub-counters the overview cards need.
type DashboardWorkflowDetails struct {
	States            []DashboardWorkflowStateStat `json:"states"`
	InProgress        int64                        `json:"in_progress"`
	WithinTeam        int64                        `json:"within_team"`
	External          int64                        `json:"external"`
	ReturnedToCreator int64                        `json:"returned_to_creator"`
}

// DashboardSLASummary: four counters plus the average hours remaining across
// non-breached files that have a deadline.
type DashboardSLASummary struct {
	FilesWithSLA      int64   `json:"files_with_sla"`
	Breached          int64   `json:"breached"`
	OnTrack           int64   `json:"on_track"`
	Paused            int64   `json:"paused"`
	AvgHoursRemaining float64 `json:"avg_hours_remaining"`
}

// DashboardFileRow is one drill-down entry. Exactly one of the reason fields
// is populated depending on which list the row belongs to.
type DashboardFileRow struct {
	ID             int64      `json:"id"`
	FileNumber     string     `json:"file_number"`
	Subject        string     `json:"subject"`
	Status         string     `json:"status"`
	Priority       string     `json:"priority"`
	DepartmentName string     `json:"department_name,omitempty"`
	AssigneeName   string     `json:"assignee_name,omitempty"`
	SLADeadline    *time.Time `json:"sla_deadline,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	PendingReason  string     `json:"pending_reason,omitempty"`
	ApprovedBy     string     `json:"approved_by,omitempty"`
	OverdueReason  string     `json:"overdue_reason,omitempty"`
	AtRiskReason   string     `json:"at_risk_reason,omitempty"`
}

// DashboardDrilldowns are the five bounded, explained lists.
type DashboardDrilldowns struct {
	InProgress []DashboardFileRow `json:"in_progress"`
	Pending    []DashboardFileRow `json:"pending"`
	Approved   []DashboardFileRow `json:"approved"`
	Overdue    []DashboardFileRow `json:"overdue"`
	AtRisk     []DashboardFileRow `json:"at_risk"`
}

// DashboardStats is the full payload under "data".
type DashboardStats struct {
	Overall            DashboardOverall         `json:"overall"`
	DetailedBreakdowns DashboardDrilldowns      `json:"detailed_breakdowns"`
	ByWorkflowState    []DashboardCountByGroup  `json:"by_workflow_state"`
	ByDepartment       []DashboardRegionStat    `json:"by_department"`
	ByTown             []DashboardRegionStat    `json:"by_town"`
	ByDivision         []DashboardRegionStat    `json:"by_division"`
	ByDistrict         []DashboardRegionStat    `json:"by_district"`
	ByAssignedRole     []DashboardRoleStat      `json:"by_assigned_role"`
	ByLevel            []DashboardLevelStat     `json:"by_level"`
	ByStatus           []DashboardCountByGroup  `json:"by_status"`
	ByPriority         []DashboardCountByGroup  `json:"by_priority"`
	ByCategory         []DashboardCountByGroup  `json:"by_category"`
	RecentActivity     []DashboardActivityPoint `json:"recent_activity"`
	WorkflowDetails    DashboardWorkflowDetails `json:"workflow_details"`
	SLA                DashboardSLASummary      `json:"sla"`
}
