package services

import (
	"context"

	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
)

const recentActivityLimit = 5

type DashboardService struct {
	dashboardRepository repositories.DashboardRepositoryInterface
	activityRepository  repositories.ActivityRepositoryInterface
	logger              *zap.Logger
}

func NewDashboardService(
	dashboardRepository repositories.DashboardRepositoryInterface,
	activityRepository repositories.ActivityRepositoryInterface,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		dashboardRepository: dashboardRepository,
		activityRepository:  activityRepository,
		logger:              logger,
	}
}

// GetSummary arma el resumen del tablero. Cualquier fallo devuelve el objeto
// en ceros con HTTP 200: el tablero se pinta vacío en lugar de romperse.
func (s *DashboardService) GetSummary(ctx context.Context) *dto.DashboardSummaryDTO {
	totalEquipment, err := s.dashboardRepository.CountEquipment(ctx)
	if err != nil {
		return s.fallback("equipment", err)
	}
	totalStations, err := s.dashboardRepository.CountStations(ctx)
	if err != nil {
		return s.fallback("workstations", err)
	}
	totalLocations, err := s.dashboardRepository.CountLocations(ctx)
	if err != nil {
		return s.fallback("locations", err)
	}
	totalResponsibles, err := s.dashboardRepository.CountResponsibles(ctx)
	if err != nil {
		return s.fallback("responsibles", err)
	}

	servicios, err := s.dashboardRepository.GetLocationServicios(ctx)
	if err != nil {
		return s.fallback("servicios", err)
	}
	tipos, err := s.dashboardRepository.GetEquipmentTipos(ctx)
	if err != nil {
		return s.fallback("tipos", err)
	}

	recent, err := s.activityRepository.GetRecentActivity(ctx, recentActivityLimit)
	if err != nil {
		return s.fallback("activity", err)
	}
	if recent == nil {
		recent = []entities.ActivityLog{}
	}

	return &dto.DashboardSummaryDTO{
		TotalEquipment:       totalEquipment,
		TotalStations:        totalStations,
		TotalLocations:       totalLocations,
		TotalResponsibles:    totalResponsibles,
		LocationDistribution: Distribution(servicios, "Sin servicio"),
		EquipmentStatus:      Distribution(tipos, "Otros"),
		RecentActivity:       recent,
	}
}

func (s *DashboardService) fallback(stage string, err error) *dto.DashboardSummaryDTO {
	s.logger.Error("error al armar el resumen del tablero", zap.String("stage", stage), zap.Error(err))
	return dto.FallbackSummary()
}

// Distribution cuenta las frecuencias de una columna; los valores nulos o
// vacíos se agrupan bajo el centinela.
func Distribution(values []*string, sentinel string) map[string]int {
	dist := map[string]int{}
	for _, v := range values {
		key := sentinel
		if v != nil && *v != "" {
			key = *v
		}
		dist[key]++
	}
	return dist
}
