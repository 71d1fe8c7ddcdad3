package entities

import (
	"efiling-system/pkg/types"
)

type Department struct {
	ID   uint64 `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	Code string `json:"code" db:"code"`

	types.BaseEntity
}
