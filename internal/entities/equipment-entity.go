package entities

import (
	"inventory-system/pkg/types"
)

// Categorías de equipo (siempre almacenadas en mayúsculas).
const (
	TipoCPU       = "CPU"
	TipoMonitor   = "MONITOR"
	TipoLaptop    = "LAPTOP"
	TipoImpresora = "IMPRESORA"
)

type Equipment struct {
	ID            uint64  `json:"id" db:"id"`
	Nombre        *string `json:"nombre" db:"nombre"`
	Tipo          string  `json:"tipo" db:"tipo"`
	Perfil        *string `json:"perfil" db:"perfil"`
	TipoImpresora *string `json:"tipo_impresora" db:"tipo_impresora"`
	Marca         string  `json:"marca" db:"marca"`
	Modelo        string  `json:"modelo" db:"modelo"`
	NumeroSerie   string  `json:"numero_serie" db:"numero_serie"`
	Estado        string  `json:"estado" db:"estado"`

	types.BaseEntity
}
