package entities

import (
	"inventory-system/pkg/types"
)

// Tipos de estación.
const (
	StationCPUMonitor = "cpu-monitor"
	StationLaptop     = "laptop"
	StationImpresora  = "impresora"
)

// Roles de un equipo dentro de una estación.
const (
	EquipmentRolePrimary   = "primary"
	EquipmentRoleSecondary = "secondary"
	EquipmentRoleTertiary  = "tertiary"
)

// Accesorios opcionales de una estación.
var AccessoryTypes = []string{"mouse", "teclado", "webcam", "diadema", "supresor", "ups"}

type Station struct {
	ID            uint64  `json:"id" db:"id"`
	StationType   string  `json:"station_type" db:"station_type"`
	Status        string  `json:"status" db:"status"`
	Direccion     *string `json:"direccion" db:"direccion"`
	LocationID    *uint64 `json:"location_id" db:"location_id"`
	ResponsibleID *uint64 `json:"responsible_id" db:"responsible_id"`
	AuthorizedBy  *string `json:"authorized_by" db:"authorized_by"`
	Descripcion   *string `json:"descripcion" db:"descripcion"`

	types.BaseEntity

	// Relaciones (no son columnas de workstations)
	Location    *Location          `json:"locations,omitempty" db:"-"`
	Responsible *Responsible       `json:"responsibles,omitempty" db:"-"`
	Equipment   []StationEquipment `json:"workstation_equipment,omitempty" db:"-"`
	Accessories []StationAccessory `json:"workstation_accessories,omitempty" db:"-"`
}

// StationEquipment es la fila de enlace estación-equipo con su rol.
type StationEquipment struct {
	ID            uint64     `json:"id,omitempty" db:"id"`
	WorkstationID uint64     `json:"workstation_id" db:"workstation_id"`
	EquipmentID   uint64     `json:"equipment_id" db:"equipment_id"`
	EquipmentType string     `json:"equipment_type" db:"equipment_type"`
	Cantidad      int        `json:"cantidad" db:"cantidad"`
	Equipment     *Equipment `json:"equipment,omitempty" db:"-"`
}

type StationAccessory struct {
	ID            uint64 `json:"id,omitempty" db:"id"`
	WorkstationID uint64 `json:"workstation_id" db:"workstation_id"`
	AccessoryType string `json:"accessory_type" db:"accessory_type"`
	Included      bool   `json:"included" db:"included"`
}
