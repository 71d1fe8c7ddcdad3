package dto

import "time"

type CreateDaakDTO struct {
	Direction    string     `json:"direction" validate:"required,oneof=INWARD OUTWARD"`
	Subject      string     `json:"subject" validate:"required,min=3,max=500"`
	Sender       string     `json:"sender" validate:"required,max=250"`
	Recipient    string     `json:"recipient" validate:"required,max=250"`
	FileID       *uint64    `json:"file_id"`
	DepartmentID *uint64    `json:"department_id"`
	ReceivedAt   *time.Time `json:"received_at"`
}

type UpdateDaakDTO struct {
	Subject      *string    `json:"subject" validate:"omitempty,min=3,max=500"`
	Sender       *string    `json:"sender" validate:"omitempty,max=250"`
	Recipient    *string    `json:"recipient" validate:"omitempty,max=250"`
	FileID       *uint64    `json:"file_id"`
	DepartmentID *uint64    `json:"department_id"`
	ReceivedAt   *time.Time `json:"received_at"`
}
