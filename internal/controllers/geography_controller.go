package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"efiling-system/internal/dto"
	"efiling-system/internal/services"
	apperrors "efiling-system/pkg/errors"
	"efiling-system/pkg/utils"
)

type GeographyController struct {
	geoService *services.GeographyService
	logger     *zap.Logger
}

func NewGeographyController(service *services.GeographyService, logger *zap.Logger) *GeographyController {
	return &GeographyController{geoService: service, logger: logger}
}

func optionalIDQuery(ctx echo.Context, name string) (*uint64, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, apperrors.NewBadRequestError("invalid %s: %s", name, raw)
	}
	return &id, nil
}

func (c *GeographyController) GetZones(ctx echo.Context) error {
	zones, err := c.geoService.GetZones(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, zones, "zones retrieved", http.StatusOK)
}

func (c *GeographyController) CreateZone(ctx echo.Context) error {
	var payload dto.CreateZoneDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("invalid request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "validation failed", err), c.logger)
	}
	id, err := c.geoService.CreateZone(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, map[string]uint64{"id": id}, "zone created", http.StatusCreated)
}

func (c *GeographyController) UpdateZone(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateZoneDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("invalid request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "validation failed", err), c.logger)
	}
	if err := c.geoService.UpdateZone(ctx.Request().Context(), id, payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "zone updated", http.StatusOK)
}

func (c *GeographyController) DeleteZone(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.geoService.DeleteZone(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "zone deleted", http.StatusOK)
}

func (c *GeographyController) GetDistricts(ctx echo.Context) error {
	zoneID, err := optionalIDQuery(ctx, "zone_id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	districts, err := c.geoService.GetDistricts(ctx.Request().Context(), zoneID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, districts, "districts retrieved", http.StatusOK)
}

func (c *GeographyController) CreateDistrict(ctx echo.Context) error {
	var payload dto.CreateDistrictDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("invalid request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "validation failed", err), c.logger)
	}
	id, err := c.geoService.CreateDistrict(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, map[string]uint64{"id": id}, "district created", http.StatusCreated)
}

func (c *GeographyController) UpdateDistrict(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateDistrictDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("invalid request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "validation failed", err), c.logger)
	}
	if err := c.geoService.UpdateDistrict(ctx.Request().Context(), id, payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "district updated", http.StatusOK)
}

func (c *GeographyController) DeleteDistrict(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.geoService.DeleteDistrict(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "district deleted", http.StatusOK)
}

func (c *GeographyController) GetTowns(ctx echo.Context) error {
	districtID, err := optionalIDQuery(ctx, "district_id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	towns, err := c.geoService.GetTowns(ctx.Request().Context(), districtID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, towns, "towns retrieved", http.StatusOK)
}

func (c *GeographyController) CreateTown(ctx echo.Context) error {
	var payload dto.CreateTownDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("invalid request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "validation failed", err), c.logger)
	}
	id, err := c.geoService.CreateTown(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, map[string]uint64{"id": id}, "town created", http.StatusCreated)
}

func (c *GeographyController) UpdateTown(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateTownDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("invalid request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "validation failed", err), c.logger)
	}
	if err := c.geoService.UpdateTown(ctx.Request().Context(), id, payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "town updated", http.StatusOK)
}

func (c *GeographyController) DeleteTown(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.geoService.DeleteTown(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "town deleted", http.StatusOK)
}

func (c *GeographyController) GetDivisions(ctx echo.Context) error {
	zoneID, err := optionalIDQuery(ctx, "zone_id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	divisions, err := c.geoService.GetDivisions(ctx.Request().Context(), zoneID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, divisions, "divisions retrieved", http.StatusOK)
}

func (c *GeographyController) CreateDivision(ctx echo.Context) error {
	var payload dto.CreateDivisionDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("invalid request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "validation failed", err), c.logger)
	}
	id, err := c.geoService.CreateDivision(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, map[string]uint64{"id": id}, "division created", http.StatusCreated)
}

func (c *GeographyController) UpdateDivision(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateDivisionDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("invalid request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "validation failed", err), c.logger)
	}
	if err := c.geoService.UpdateDivision(ctx.Request().Context(), id, payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "division updated", http.StatusOK)
}

func (c *GeographyController) DeleteDivision(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.geoService.DeleteDivision(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "division deleted", http.StatusOK)
}
