package dto

import (
	"inventory-system/internal/entities"
)

type DashboardSummaryDTO struct {
	TotalEquipment       int64                  `json:"totalEquipment"`
	TotalStations        int64                  `json:"totalStations"`
	TotalLocations       int64                  `json:"totalLocations"`
	TotalResponsibles    int64                  `json:"totalResponsibles"`
	LocationDistribution map[string]int         `json:"locationDistribution"`
	EquipmentStatus      map[string]int         `json:"equipmentStatus"`
	RecentActivity       []entities.ActivityLog `json:"recentActivity"`
}

// FallbackSummary es el objeto en ceros que se devuelve cuando la BD falla.
func FallbackSummary() *DashboardSummaryDTO {
	return &DashboardSummaryDTO{
		LocationDistribution: map[string]int{},
		EquipmentStatus:      map[string]int{},
		RecentActivity:       []entities.ActivityLog{},
	}
}
