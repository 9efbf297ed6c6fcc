package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/types"
)

type LocationService struct {
	locationRepository repositories.LocationRepositoryInterface
	activityRepository repositories.ActivityRepositoryInterface
	logger             *zap.Logger
}

func NewLocationService(
	locationRepository repositories.LocationRepositoryInterface,
	activityRepository repositories.ActivityRepositoryInterface,
	logger *zap.Logger,
) *LocationService {
	return &LocationService{
		locationRepository: locationRepository,
		activityRepository: activityRepository,
		logger:             logger,
	}
}

func (s *LocationService) GetLocations(ctx context.Context, filter types.Filter) ([]entities.Location, error) {
	locations, err := s.locationRepository.GetLocations(ctx, filter)
	if err != nil {
		s.logger.Error("error al listar las ubicaciones", zap.Error(err))
		return nil, err
	}
	if locations == nil {
		locations = []entities.Location{}
	}
	return locations, nil
}

func (s *LocationService) FindLocation(ctx context.Context, id uint64) (*entities.Location, error) {
	return s.locationRepository.FindLocation(ctx, id)
}

func (s *LocationService) CreateLocation(ctx context.Context, actorID uint64, in dto.CreateLocationDTO) (*entities.Location, error) {
	created, err := s.locationRepository.CreateLocation(ctx, in)
	if err != nil {
		s.logger.Error("error al crear la ubicación", zap.Error(err))
		return nil, err
	}

	s.recordActivity(ctx, actorID, entities.ActionCreate, created.ID,
		fmt.Sprintf("Ubicación creada: %s / %s / %s", created.Edificio, created.Planta, created.Servicio))
	return created, nil
}

func (s *LocationService) UpdateLocation(ctx context.Context, actorID, id uint64, in dto.UpdateLocationDTO) (*entities.Location, error) {
	updated, err := s.locationRepository.UpdateLocation(ctx, id, in)
	if err != nil {
		return nil, err
	}

	s.recordActivity(ctx, actorID, entities.ActionUpdate, id,
		fmt.Sprintf("Ubicación actualizada: %s / %s / %s", updated.Edificio, updated.Planta, updated.Servicio))
	return updated, nil
}

func (s *LocationService) DeleteLocation(ctx context.Context, actorID, id uint64) error {
	if err := s.locationRepository.DeleteLocation(ctx, id); err != nil {
		return err
	}
	s.recordActivity(ctx, actorID, entities.ActionDelete, id, fmt.Sprintf("Ubicación eliminada (id %d)", id))
	return nil
}

func (s *LocationService) recordActivity(ctx context.Context, actorID uint64, action string, id uint64, details string) {
	entry := entities.ActivityLog{
		UserID:    actorID,
		Action:    action,
		TableName: "locations",
		RecordID:  fmt.Sprintf("%d", id),
		Details:   details,
	}
	if err := s.activityRepository.InsertActivity(ctx, entry); err != nil {
		s.logger.Warn("no se pudo registrar la actividad", zap.String("action", action), zap.Error(err))
	}
}
