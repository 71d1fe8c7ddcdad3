package dto

import "encoding/json"

type CreateWorkflowTemplateDTO struct {
	Name         string          `json:"name" validate:"required,min=2,max=200"`
	DepartmentID *uint64         `json:"department_id"`
	Stages       json.RawMessage `json:"stages" validate:"required"`
	IsActive     bool            `json:"is_active"`
}

type UpdateWorkflowTemplateDTO struct {
	Name         *string         `json:"name" validate:"omitempty,min=2,max=200"`
	DepartmentID *uint64         `json:"department_id"`
	Stages       json.RawMessage `json:"stages"`
	IsActive     *bool           `json:"is_active"`
}
