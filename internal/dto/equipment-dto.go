package dto

import (
	"github.com/aarondl/null/v8"

	"inventory-system/internal/entities"
)

type CreateEquipmentDTO struct {
	Nombre        null.String `json:"nombre"`
	Tipo          string      `json:"tipo" validate:"required,tipo_equipo"`
	Perfil        null.String `json:"perfil"`
	TipoImpresora null.String `json:"tipo_impresora"`
	Marca         string      `json:"marca" validate:"required"`
	Modelo        string      `json:"modelo" validate:"required"`
	NumeroSerie   string      `json:"numero_serie" validate:"required"`
	Estado        string      `json:"estado" validate:"required"`
}

// UpdateEquipmentDTO exige los mismos campos que el alta: el formulario de
// edición siempre manda el registro completo.
type UpdateEquipmentDTO struct {
	Nombre        null.String `json:"nombre"`
	Tipo          string      `json:"tipo" validate:"required,tipo_equipo"`
	Perfil        null.String `json:"perfil"`
	TipoImpresora null.String `json:"tipo_impresora"`
	Marca         string      `json:"marca" validate:"required"`
	Modelo        string      `json:"modelo" validate:"required"`
	NumeroSerie   string      `json:"numero_serie" validate:"required"`
	Estado        string      `json:"estado" validate:"required"`
}

// AssignedToDTO describe la estación a la que está ligado un equipo.
type AssignedToDTO struct {
	WorkstationID    uint64  `json:"workstation_id"`
	EquipmentType    string  `json:"equipment_type"`
	StationType      string  `json:"station_type"`
	StationStatus    string  `json:"station_status"`
	StationDireccion *string `json:"station_direccion"`
}

// EquipmentListItemDTO es la fila de inventario con su información de asignación.
type EquipmentListItemDTO struct {
	entities.Equipment
	IsAssigned bool           `json:"isAssigned"`
	AssignedTo *AssignedToDTO `json:"assignedTo"`
	Estacion   string         `json:"estacion"`
}

// AvailableEquipmentDTO es la forma que espera el selector de equipos del frontend.
type AvailableEquipmentDTO struct {
	ID            uint64             `json:"id"`
	Value         uint64             `json:"value"`
	Label         string             `json:"label"`
	Tipo          string             `json:"tipo"`
	TipoEquipo    string             `json:"tipo_equipo"`
	Marca         string             `json:"marca"`
	Modelo        string             `json:"modelo"`
	NumeroSerie   string             `json:"numero_serie"`
	Estado        string             `json:"estado"`
	Perfil        *string            `json:"perfil"`
	TipoImpresora *string            `json:"tipo_impresora"`
	OriginalData  entities.Equipment `json:"originalData"`
}

type AvailableDebugDTO struct {
	TotalEquipment   int      `json:"totalEquipment"`
	AvailableByState int      `json:"availableByState"`
	AssignedCount    int      `json:"assignedCount"`
	FinalAvailable   int      `json:"finalAvailable"`
	States           []string `json:"states"`
	Types            []string `json:"types"`
}

type AvailableEquipmentResponseDTO struct {
	Equipment []AvailableEquipmentDTO `json:"equipment"`
	Total     int                     `json:"total"`
	Debug     AvailableDebugDTO       `json:"debug"`
}
