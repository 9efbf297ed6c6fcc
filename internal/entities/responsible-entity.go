package entities

import "time"

type Responsible struct {
	ID             uint64    `json:"id" db:"id"`
	NombreCompleto string    `json:"nombre_completo" db:"nombre_completo"`
	Cargo          string    `json:"cargo" db:"cargo"`
	Email          *string   `json:"email" db:"email"`
	Telefono       *string   `json:"telefono" db:"telefono"`
	FechaRegistro  time.Time `json:"fecha_registro" db:"fecha_registro"`
}
