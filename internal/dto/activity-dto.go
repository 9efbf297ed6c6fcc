package dto

import (
	"inventory-system/internal/entities"
)

// ActivityQuery son los filtros opcionales de la bitácora.
type ActivityQuery struct {
	Search string
	Type   string
	UserID string
	Date   string // YYYY-MM-DD
}

type ActivityListDTO struct {
	Activities []entities.ActivityLog `json:"activities"`
}
