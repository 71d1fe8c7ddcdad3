package services

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"efiling-system/internal/dto"
	"efiling-system/internal/entities"
	"efiling-system/internal/repositories"
	apperrors "efiling-system/pkg/errors"
)

const zonesCacheKey = "reference:zones"

type GeographyService struct {
	repo     repositories.GeographyRepositoryInterface
	cache    repositories.CacheRepositoryInterface
	cacheTTL time.Duration
	logger   *zap.Logger
}

func NewGeographyService(repo repositories.GeographyRepositoryInterface, cache repositories.CacheRepositoryInterface, cacheTTL time.Duration, logger *zap.Logger) *GeographyService {
	return &GeographyService{repo: repo, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

func (s *GeographyService) GetZones(ctx context.Context) ([]entities.Zone, error) {
	if s.cache != nil {
		var cached []entities.Zone
		if err := s.cache.Get(ctx, zonesCacheKey, &cached); err == nil {
			return cached, nil
		}
	}
	zones, err := s.repo.GetZones(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, zonesCacheKey, zones, s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache zones", zap.Error(err))
		}
	}
	return zones, nil
}

func (s *GeographyService) CreateZone(ctx context.Context, payload dto.CreateZoneDTO) (uint64, error) {
	id, err := s.repo.CreateZone(ctx, entities.Zone{Name: payload.Name, Code: payload.Code})
	if err != nil {
		return 0, apperrors.NewHttpError(http.StatusInternalServerError, "failed to create zone", err)
	}
	s.invalidateZones(ctx)
	return id, nil
}

func (s *GeographyService) UpdateZone(ctx context.Context, id uint64, payload dto.UpdateZoneDTO) error {
	if err := s.repo.UpdateZone(ctx, id, payload.Name, payload.Code); err != nil {
		return err
	}
	s.invalidateZones(ctx)
	return nil
}

func (s *GeographyService) DeleteZone(ctx context.Context, id uint64) error {
	if err := s.repo.DeleteZone(ctx, id); err != nil {
		return err
	}
	s.invalidateZones(ctx)
	return nil
}

func (s *GeographyService) GetDistricts(ctx context.Context, zoneID *uint64) ([]entities.District, error) {
	return s.repo.GetDistricts(ctx, zoneID)
}

func (s *GeographyService) CreateDistrict(ctx context.Context, payload dto.CreateDistrictDTO) (uint64, error) {
	id, err := s.repo.CreateDistrict(ctx, entities.District{Name: payload.Name, ZoneID: payload.ZoneID})
	if err != nil {
		return 0, apperrors.NewHttpError(http.StatusInternalServerError, "failed to create district", err)
	}
	return id, nil
}

func (s *GeographyService) UpdateDistrict(ctx context.Context, id uint64, payload dto.UpdateDistrictDTO) error {
	return s.repo.UpdateDistrict(ctx, id, payload.Name, payload.ZoneID)
}

func (s *GeographyService) DeleteDistrict(ctx context.Context, id uint64) error {
	return s.repo.DeleteDistrict(ctx, id)
}

func (s *GeographyService) GetTowns(ctx context.Context, districtID *uint64) ([]entities.Town, error) {
	return s.repo.GetTowns(ctx, districtID)
}

func (s *GeographyService) CreateTown(ctx context.Context, payload dto.CreateTownDTO) (uint64, error) {
	id, err := s.repo.CreateTown(ctx, entities.Town{Name: payload.Name, DistrictID: payload.DistrictID})
	if err != nil {
		return 0, apperrors.NewHttpError(http.StatusInternalServerError, "failed to create town", err)
	}
	return id, nil
}

func (s *GeographyService) UpdateTown(ctx context.Context, id uint64, payload dto.UpdateTownDTO) error {
	return s.repo.UpdateTown(ctx, id, payload.Name, payload.DistrictID)
}

func (s *GeographyService) DeleteTown(ctx context.Context, id uint64) error {
	return s.repo.DeleteTown(ctx, id)
}

func (s *GeographyService) GetDivisions(ctx context.Context, zoneID *uint64) ([]entities.Division, error) {
	return s.repo.GetDivisions(ctx, zoneID)
}

func (s *GeographyService) CreateDivision(ctx context.Context, payload dto.CreateDivisionDTO) (uint64, error) {
	id, err := s.repo.CreateDivision(ctx, entities.Division{Name: payload.Name, ZoneID: payload.ZoneID})
	if err != nil {
		return 0, apperrors.NewHttpError(http.StatusInternalServerError, "failed to create division", err)
	}
	return id, nil
}

func (s *GeographyService) UpdateDivision(ctx context.Context, id uint64, payload dto.UpdateDivisionDTO) error {
	return s.repo.UpdateDivision(ctx, id, payload.Name, payload.ZoneID)
}

func (s *GeographyService) DeleteDivision(ctx context.Context, id uint64) error {
	return s.repo.DeleteDivision(ctx, id)
}

func (s *GeographyService) invalidateZones(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, zonesCacheKey); err != nil {
		s.logger.Warn("failed to invalidate zone cache", zap.Error(err))
	}
}
