package entities

import (
	"inventory-system/pkg/types"
)

type Location struct {
	ID               uint64  `json:"id" db:"id"`
	Edificio         string  `json:"edificio" db:"edificio"`
	Planta           string  `json:"planta" db:"planta"`
	Servicio         string  `json:"servicio" db:"servicio"`
	UbicacionInterna *string `json:"ubicacion_interna" db:"ubicacion_interna"`

	// Derivado de view_locations_with_station_count
	AssignedStations int `json:"assigned_stations" db:"assigned_stations"`

	types.BaseEntity
}
