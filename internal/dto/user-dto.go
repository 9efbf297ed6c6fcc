package dto

import (
	"inventory-system/internal/entities"
)

type CreateUserDTO struct {
	Nombre   string                  `json:"nombre" validate:"required"`
	Email    string                  `json:"email" validate:"required,custom_email"`
	Password string                  `json:"password" validate:"required,min=6"`
	Rol      string                  `json:"rol" validate:"required"`
	Estado   string                  `json:"estado"`
	Permisos entities.PermisosMatrix `json:"permisos"`
}

type UpdateUserDTO struct {
	Nombre   *string                 `json:"nombre" validate:"omitempty,min=1"`
	Email    *string                 `json:"email" validate:"omitempty,custom_email"`
	Password *string                 `json:"password" validate:"omitempty,min=6"`
	Rol      *string                 `json:"rol"`
	Estado   *string                 `json:"estado"`
	Permisos entities.PermisosMatrix `json:"permisos"`
}
