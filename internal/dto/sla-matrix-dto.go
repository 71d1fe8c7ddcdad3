package dto

type CreateSLAMatrixDTO struct {
	DepartmentID    *uint64 `json:"department_id"`
	Priority        string  `json:"priority" validate:"required,oneof=normal high urgent"`
	ResolutionHours int     `json:"resolution_hours" validate:"required,min=1,max=8760"`
}

type UpdateSLAMatrixDTO struct {
	DepartmentID    *uint64 `json:"department_id"`
	Priority        *string `json:"priority" validate:"omitempty,oneof=normal high urgent"`
	ResolutionHours *int    `json:"resolution_hours" validate:"omitempty,min=1,max=8760"`
}
