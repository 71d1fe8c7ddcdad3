package dto

type CreateFileDTO struct {
	Subject      string  `json:"subject" validate:"required,min=3,max=500"`
	Priority     string  `json:"priority" validate:"omitempty,oneof=normal high urgent"`
	Category     string  `json:"category" validate:"max=100"`
	DepartmentID *uint64 `json:"department_id"`
	DistrictID   *uint64 `json:"district_id"`
	TownID       *uint64 `json:"town_id"`
	DivisionID   *uint64 `json:"division_id"`
	AssignedTo   *uint64 `json:"assigned_to"`
}

type UpdateFileDTO struct {
	Subject      *string `json:"subject" validate:"omitempty,min=3,max=500"`
	Status       *string `json:"status" validate:"omitempty,oneof=DRAFT IN_PROGRESS PENDING_APPROVAL APPROVED COMPLETED"`
	Priority     *string `json:"priority" validate:"omitempty,oneof=normal high urgent"`
	Category     *string `json:"category" validate:"omitempty,max=100"`
	DepartmentID *uint64 `json:"department_id"`
	DistrictID   *uint64 `json:"district_id"`
	TownID       *uint64 `json:"town_id"`
	DivisionID   *uint64 `json:"division_id"`
	AssignedTo   *uint64 `json:"assigned_to"`
	SLAPaused    *bool   `json:"sla_paused"`
}
