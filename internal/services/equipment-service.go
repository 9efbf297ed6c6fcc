package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	apperrors "inventory-system/pkg/errors"
)

type EquipmentService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	activityRepository  repositories.ActivityRepositoryInterface
	logger              *zap.Logger
}

func NewEquipmentService(
	equipmentRepository repositories.EquipmentRepositoryInterface,
	activityRepository repositories.ActivityRepositoryInterface,
	logger *zap.Logger,
) *EquipmentService {
	return &EquipmentService{
		equipmentRepository: equipmentRepository,
		activityRepository:  activityRepository,
		logger:              logger,
	}
}

func (s *EquipmentService) GetEquipment(ctx context.Context) ([]dto.EquipmentListItemDTO, error) {
	items, err := s.equipmentRepository.GetEquipmentWithAssignment(ctx)
	if err != nil {
		s.logger.Error("error al listar el inventario", zap.Error(err))
		return nil, err
	}
	if items == nil {
		items = []dto.EquipmentListItemDTO{}
	}
	return items, nil
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	return s.equipmentRepository.FindEquipment(ctx, id)
}

// GetAvailableEquipment calcula el conjunto asignable: estado disponible y sin
// fila en workstation_equipment. stationType llega del cliente pero no filtra;
// el selector filtra por tipo en el frontend.
func (s *EquipmentService) GetAvailableEquipment(ctx context.Context, stationType string) (*dto.AvailableEquipmentResponseDTO, error) {
	all, err := s.equipmentRepository.GetAllEquipment(ctx)
	if err != nil {
		s.logger.Error("error al cargar el inventario para disponibilidad", zap.Error(err))
		return nil, err
	}

	assigned, err := s.equipmentRepository.GetAssignedEquipmentIDs(ctx)
	if err != nil {
		s.logger.Error("error al cargar los equipos asignados", zap.Error(err))
		return nil, err
	}

	resp := buildAvailability(all, assigned)
	s.logger.Debug("disponibilidad resuelta",
		zap.String("stationType", stationType),
		zap.Int("total", resp.Debug.TotalEquipment),
		zap.Int("finalAvailable", resp.Debug.FinalAvailable),
	)
	return resp, nil
}

// buildAvailability es el filtro puro de disponibilidad sobre el inventario
// completo, con el objeto debug que consume el frontend.
func buildAvailability(all []entities.Equipment, assigned map[uint64]struct{}) *dto.AvailableEquipmentResponseDTO {
	available := []dto.AvailableEquipmentDTO{}
	availableByState := 0
	statesSeen := map[string]struct{}{}
	typesSeen := map[string]struct{}{}
	var states, types []string

	for _, eq := range all {
		if _, ok := statesSeen[eq.Estado]; !ok {
			statesSeen[eq.Estado] = struct{}{}
			states = append(states, eq.Estado)
		}

		if !isAvailableState(eq.Estado) {
			continue
		}
		availableByState++

		if _, taken := assigned[eq.ID]; taken {
			continue
		}

		// types refleja solo el conjunto final asignable.
		if _, ok := typesSeen[eq.Tipo]; !ok {
			typesSeen[eq.Tipo] = struct{}{}
			types = append(types, eq.Tipo)
		}

		available = append(available, dto.AvailableEquipmentDTO{
			ID:            eq.ID,
			Value:         eq.ID,
			Label:         fmt.Sprintf("%s %s (%s)", eq.Marca, eq.Modelo, eq.NumeroSerie),
			Tipo:          eq.Tipo,
			TipoEquipo:    eq.Tipo,
			Marca:         eq.Marca,
			Modelo:        eq.Modelo,
			NumeroSerie:   eq.NumeroSerie,
			Estado:        eq.Estado,
			Perfil:        eq.Perfil,
			TipoImpresora: eq.TipoImpresora,
			OriginalData:  eq,
		})
	}

	return &dto.AvailableEquipmentResponseDTO{
		Equipment: available,
		Total:     len(available),
		Debug: dto.AvailableDebugDTO{
			TotalEquipment:   len(all),
			AvailableByState: availableByState,
			AssignedCount:    len(assigned),
			FinalAvailable:   len(available),
			States:           states,
			Types:            types,
		},
	}
}

func isAvailableState(estado string) bool {
	return strings.EqualFold(estado, "disponible") || strings.EqualFold(estado, "available")
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, actorID uint64, in dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	eq, err := equipmentFromInput(in.Nombre.Ptr(), in.Tipo, in.Perfil.Ptr(), in.TipoImpresora.Ptr(), in.Marca, in.Modelo, in.NumeroSerie, in.Estado)
	if err != nil {
		return nil, err
	}

	created, err := s.equipmentRepository.CreateEquipment(ctx, *eq)
	if err != nil {
		s.logger.Error("error al crear el equipo", zap.Error(err))
		return nil, err
	}

	s.recordActivity(ctx, actorID, entities.ActionCreate, created.ID,
		fmt.Sprintf("Equipo creado: %s %s (%s)", created.Marca, created.Modelo, created.NumeroSerie))
	return created, nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, actorID, id uint64, in dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	eq, err := equipmentFromInput(in.Nombre.Ptr(), in.Tipo, in.Perfil.Ptr(), in.TipoImpresora.Ptr(), in.Marca, in.Modelo, in.NumeroSerie, in.Estado)
	if err != nil {
		return nil, err
	}

	updated, err := s.equipmentRepository.UpdateEquipment(ctx, id, *eq)
	if err != nil {
		return nil, err
	}

	s.recordActivity(ctx, actorID, entities.ActionUpdate, id,
		fmt.Sprintf("Equipo actualizado: %s %s (%s)", updated.Marca, updated.Modelo, updated.NumeroSerie))
	return updated, nil
}

// DeleteEquipment rechaza con 400 cualquier equipo todavía ligado a una estación.
func (s *EquipmentService) DeleteEquipment(ctx context.Context, actorID, id uint64) error {
	assigned, err := s.equipmentRepository.IsAssigned(ctx, id)
	if err != nil {
		s.logger.Error("error al verificar la asignación del equipo", zap.Uint64("id", id), zap.Error(err))
		return err
	}
	if assigned {
		return apperrors.NewHttpError(http.StatusBadRequest, apperrors.ErrEquipmentAssigned.Error(), apperrors.ErrEquipmentAssigned, nil)
	}

	if err := s.equipmentRepository.DeleteEquipment(ctx, id); err != nil {
		return err
	}

	s.recordActivity(ctx, actorID, entities.ActionDelete, id, fmt.Sprintf("Equipo eliminado (id %d)", id))
	return nil
}

// equipmentFromInput normaliza tipo a mayúsculas y exige perfil y tipo de
// impresora cuando la categoría es IMPRESORA; en las demás categorías esos
// campos se fuerzan a NULL.
func equipmentFromInput(nombre *string, tipo string, perfil, tipoImpresora *string, marca, modelo, numeroSerie, estado string) (*entities.Equipment, error) {
	normalized := strings.ToUpper(strings.TrimSpace(tipo))

	if normalized == entities.TipoImpresora {
		if perfil == nil || strings.TrimSpace(*perfil) == "" || tipoImpresora == nil || strings.TrimSpace(*tipoImpresora) == "" {
			return nil, apperrors.NewHttpError(http.StatusBadRequest,
				"las impresoras requieren perfil y tipo de impresora", nil, nil)
		}
	} else {
		perfil = nil
		tipoImpresora = nil
	}

	return &entities.Equipment{
		Nombre:        nombre,
		Tipo:          normalized,
		Perfil:        perfil,
		TipoImpresora: tipoImpresora,
		Marca:         marca,
		Modelo:        modelo,
		NumeroSerie:   numeroSerie,
		Estado:        estado,
	}, nil
}

// recordActivity es de mejor esfuerzo: un fallo de bitácora no tumba la operación.
func (s *EquipmentService) recordActivity(ctx context.Context, actorID uint64, action string, id uint64, details string) {
	entry := entities.ActivityLog{
		UserID:    actorID,
		Action:    action,
		TableName: "equipment",
		RecordID:  fmt.Sprintf("%d", id),
		Details:   details,
	}
	if err := s.activityRepository.InsertActivity(ctx, entry); err != nil {
		s.logger.Warn("no se pudo registrar la actividad", zap.String("action", action), zap.Error(err))
	}
}
