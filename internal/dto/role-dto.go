package dto

type CreateRoleDTO struct {
	Name        string  `json:"name" validate:"required,min=2,max=150"`
	Code        string  `json:"code" validate:"required,min=2,max=30"`
	Description string  `json:"description" validate:"max=500"`
	RoleGroupID *uint64 `json:"role_group_id"`
	IsAdmin     bool    `json:"is_admin"`
}

type UpdateRoleDTO struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=150"`
	Code        *string `json:"code" validate:"omitempty,min=2,max=30"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	RoleGroupID *uint64 `json:"role_group_id"`
	IsAdmin     *bool   `json:"is_admin"`
}

type CreateRoleGroupDTO struct {
	Name        string `json:"name" validate:"required,min=2,max=150"`
	Description string `json:"description" validate:"max=500"`
}

type UpdateRoleGroupDTO struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=150"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}
