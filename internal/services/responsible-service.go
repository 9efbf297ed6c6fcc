package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
)

type ResponsibleService struct {
	responsibleRepository repositories.ResponsibleRepositoryInterface
	activityRepository    repositories.ActivityRepositoryInterface
	logger                *zap.Logger
}

func NewResponsibleService(
	responsibleRepository repositories.ResponsibleRepositoryInterface,
	activityRepository repositories.ActivityRepositoryInterface,
	logger *zap.Logger,
) *ResponsibleService {
	return &ResponsibleService{
		responsibleRepository: responsibleRepository,
		activityRepository:    activityRepository,
		logger:                logger,
	}
}

func (s *ResponsibleService) GetResponsibles(ctx context.Context) ([]entities.Responsible, error) {
	list, err := s.responsibleRepository.GetResponsibles(ctx)
	if err != nil {
		s.logger.Error("error al listar los responsables", zap.Error(err))
		return nil, err
	}
	if list == nil {
		list = []entities.Responsible{}
	}
	return list, nil
}

func (s *ResponsibleService) FindResponsible(ctx context.Context, id uint64) (*entities.Responsible, error) {
	return s.responsibleRepository.FindResponsible(ctx, id)
}

func (s *ResponsibleService) CreateResponsible(ctx context.Context, actorID uint64, in dto.CreateResponsibleDTO) (*entities.Responsible, error) {
	created, err := s.responsibleRepository.CreateResponsible(ctx, entities.Responsible{
		NombreCompleto: in.NombreCompleto,
		Cargo:          in.Cargo,
		Email:          in.Email.Ptr(),
		Telefono:       in.Telefono.Ptr(),
	})
	if err != nil {
		s.logger.Error("error al crear el responsable", zap.Error(err))
		return nil, err
	}

	s.recordActivity(ctx, actorID, entities.ActionCreate, created.ID,
		fmt.Sprintf("Responsable creado: %s", created.NombreCompleto))
	return created, nil
}

// UpdateResponsible aplica solo los campos enviados; fecha_registro no se toca.
func (s *ResponsibleService) UpdateResponsible(ctx context.Context, actorID, id uint64, in dto.UpdateResponsibleDTO) (*entities.Responsible, error) {
	current, err := s.responsibleRepository.FindResponsible(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.NombreCompleto != nil {
		current.NombreCompleto = *in.NombreCompleto
	}
	if in.Cargo != nil {
		current.Cargo = *in.Cargo
	}
	if in.Email.Valid {
		current.Email = in.Email.Ptr()
	}
	if in.Telefono.Valid {
		current.Telefono = in.Telefono.Ptr()
	}

	updated, err := s.responsibleRepository.UpdateResponsible(ctx, id, *current)
	if err != nil {
		return nil, err
	}

	s.recordActivity(ctx, actorID, entities.ActionUpdate, id,
		fmt.Sprintf("Responsable actualizado: %s", updated.NombreCompleto))
	return updated, nil
}

func (s *ResponsibleService) DeleteResponsible(ctx context.Context, actorID, id uint64) error {
	if err := s.responsibleRepository.DeleteResponsible(ctx, id); err != nil {
		return err
	}
	s.recordActivity(ctx, actorID, entities.ActionDelete, id, fmt.Sprintf("Responsable eliminado (id %d)", id))
	return nil
}

func (s *ResponsibleService) recordActivity(ctx context.Context, actorID uint64, action string, id uint64, details string) {
	entry := entities.ActivityLog{
		UserID:    actorID,
		Action:    action,
		TableName: "responsibles",
		RecordID:  fmt.Sprintf("%d", id),
		Details:   details,
	}
	if err := s.activityRepository.InsertActivity(ctx, entry); err != nil {
		s.logger.Warn("no se pudo registrar la actividad", zap.String("action", action), zap.Error(err))
	}
}
