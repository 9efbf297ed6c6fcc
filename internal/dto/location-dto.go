package dto

import "github.com/aarondl/null/v8"

type CreateLocationDTO struct {
	Edificio         string      `json:"edificio" validate:"required"`
	Planta           string      `json:"planta" validate:"required"`
	Servicio         string      `json:"servicio" validate:"required"`
	UbicacionInterna null.String `json:"ubicacion_interna"`
}

type UpdateLocationDTO struct {
	Edificio         string      `json:"edificio" validate:"required"`
	Planta           string      `json:"planta" validate:"required"`
	Servicio         string      `json:"servicio" validate:"required"`
	UbicacionInterna null.String `json:"ubicacion_interna"`
}
