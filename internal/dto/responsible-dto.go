package dto

import "github.com/aarondl/null/v8"

type CreateResponsibleDTO struct {
	NombreCompleto string      `json:"nombre_completo" validate:"required"`
	Cargo          string      `json:"cargo" validate:"required"`
	Email          null.String `json:"email" validate:"omitempty,custom_email"`
	Telefono       null.String `json:"telefono"`
}

// UpdateResponsibleDTO: campos opcionales; fecha_registro nunca se toca.
type UpdateResponsibleDTO struct {
	NombreCompleto *string     `json:"nombre_completo" validate:"omitempty,min=1"`
	Cargo          *string     `json:"cargo" validate:"omitempty,min=1"`
	Email          null.String `json:"email" validate:"omitempty,custom_email"`
	Telefono       null.String `json:"telefono"`
}
