package entities

import (
	"efiling-system/pkg/types"
)

// Zones aggregate districts and divisions for routing and reporting.
type Zone struct {
	ID   uint64 `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	Code string `json:"code" db:"code"`

	types.BaseEntity
}

type District struct {
	ID     uint64  `json:"id" db:"id"`
	Name   string  `json:"name" db:"name"`
	ZoneID *uint64 `json:"zone_id" db:"zone_id"`

	types.BaseEntity
}

type Town struct {
	ID         uint64  `json:"id" db:"id"`
	Name       string  `json:"name" db:"name"`
	DistrictID *uint64 `json:"district_id" db:"district_id"`

	types.BaseEntity
}

type Division struct {
	ID     uint64  `json:"id" db:"id"`
	Name   string  `json:"name" db:"name"`
	ZoneID *uint64 `json:"zone_id" db:"zone_id"`

	types.BaseEntity
}
