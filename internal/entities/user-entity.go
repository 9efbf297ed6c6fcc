package entities

import (
	"time"
)

// PermisosMatrix es la matriz declarativa por módulo: permisos["equipment"]["create"] = true.
type PermisosMatrix map[string]map[string]bool

func (m PermisosMatrix) Allows(module, action string) bool {
	if m == nil {
		return false
	}
	actions, ok := m[module]
	if !ok {
		return false
	}
	return actions[action]
}

type User struct {
	ID     uint64 `json:"id" db:"id"`
	Nombre string `json:"nombre" db:"nombre"`
	Email  string `json:"email" db:"email"`

	PasswordHash string `json:"-" db:"password_hash"`

	Rol      string         `json:"rol" db:"rol"`
	Estado   string         `json:"estado" db:"estado"`
	Permisos PermisosMatrix `json:"permisos" db:"permisos"`

	FechaCreacion time.Time  `json:"fecha_creacion" db:"fecha_creacion"`
	UltimoAcceso  *time.Time `json:"ultimo_acceso" db:"ultimo_acceso"`
}
