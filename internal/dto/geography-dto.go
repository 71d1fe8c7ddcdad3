package dto

type CreateZoneDTO struct {
	Name string `json:"name" validate:"required,min=2,max=150"`
	Code string `json:"code" validate:"required,min=1,max=30"`
}

type UpdateZoneDTO struct {
	Name *string `json:"name" validate:"omitempty,min=2,max=150"`
	Code *string `json:"code" validate:"omitempty,min=1,max=30"`
}

type CreateDistrictDTO struct {
	Name   string  `json:"name" validate:"required,min=2,max=150"`
	ZoneID *uint64 `json:"zone_id"`
}

type UpdateDistrictDTO struct {
	Name   *string `json:"name" validate:"omitempty,min=2,max=150"`
	ZoneID *uint64 `json:"zone_id"`
}

type CreateTownDTO struct {
	Name       string  `json:"name" validate:"required,min=2,max=150"`
	DistrictID *uint64 `json:"district_id"`
}

type UpdateTownDTO struct {
	Name       *string `json:"name" validate:"omitempty,min=2,max=150"`
	DistrictID *uint64 `json:"district_id"`
}

type CreateDivisionDTO struct {
	Name   string  `json:"name" validate:"required,min=2,max=150"`
	ZoneID *uint64 `json:"zone_id"`
}

type UpdateDivisionDTO struct {
	Name   *string `json:"name" validate:"omitempty,min=2,max=150"`
	ZoneID *uint64 `json:"zone_id"`
}
