package dto

type CreateDepartmentDTO struct {
	Name string `json:"name" validate:"required,min=2,max=150"`
	Code string `json:"code" validate:"required,min=2,max=30"`
}

type UpdateDepartmentDTO struct {
	Name *string `json:"name" validate:"omitempty,min=2,max=150"`
	Code *string `json:"code" validate:"omitempty,min=2,max=30"`
}
