package constants

// File status vocabulary. Files may carry statuses outside this list (legacy
// imports); dashboards bucket those only into the total.
const (
	StatusDraft           = "DRAFT"
	StatusInProgress      = "IN_PROGRESS"
	StatusPendingApproval = "PENDING_APPROVAL"
	StatusApproved        = "APPROVED"
	StatusCompleted       = "COMPLETED"
)

// Workflow states. A file with no workflow_states row is implicitly
// TEAM_INTERNAL.
const (
	WorkflowTeamInternal      = "TEAM_INTERNAL"
	WorkflowExternal          = "EXTERNAL"
	WorkflowReturnedToCreator = "RETURNED_TO_CREATOR"
)

const (
	PriorityNormal = "normal"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Daak direction.
const (
	DaakInward  = "INWARD"
	DaakOutward = "OUTWARD"
)
