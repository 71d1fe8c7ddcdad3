package entities

import (
	"time"

	"efiling-system/pkg/types"
)

// Daak is an official correspondence entry, inward or outward, optionally
// linked to a file.
type Daak struct {
	ID          uint64 `json:"id" db:"id"`
	ReferenceNo string `json:"reference_no" db:"reference_no"`
	Direction   string `json:"direction" db:"direction"`
	Subject     string `json:"subject" db:"subject"`
	Sender      string `json:"sender" db:"sender"`
	Recipient   string `json:"recipient" db:"recipient"`

	FileID       *uint64    `json:"file_id" db:"file_id"`
	DepartmentID *uint64    `json:"department_id" db:"department_id"`
	ReceivedAt   *time.Time `json:"received_at" db:"received_at"`
	CreatedBy    uint64     `json:"created_by" db:"created_by"`

	types.BaseEntity
	types.SoftDelete
}
