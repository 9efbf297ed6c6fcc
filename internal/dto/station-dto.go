package dto

import (
	"inventory-system/internal/entities"
)

// StationFormDTO llega tal cual del formulario del frontend; los ids de los
// selects viajan como texto ("" o "none" cuando no se eligió nada).
type StationFormDTO struct {
	Direccion        string `json:"direccion"`
	Ubicacion        string `json:"ubicacion"`
	Responsable      string `json:"responsable"`
	Autorizacion     string `json:"autorizacion"`
	Descripcion      string `json:"descripcion"`
	Status           string `json:"status"`
	EquipoPrincipal  string `json:"equipoPrincipal"`
	EquipoSecundario string `json:"equipoSecundario"`
	EquipoTercero    string `json:"equipoTercero"`
}

type SaveStationDTO struct {
	StationType string          `json:"stationType" validate:"required,station_type"`
	FormData    StationFormDTO  `json:"formData"`
	Accessories map[string]bool `json:"accessories"`
}

// Las tres proyecciones de lectura: cada tipo de estación alimenta una tabla
// distinta en el frontend con nombres de campo propios.

type LaptopStationDTO struct {
	ID               uint64            `json:"id"`
	NombreEquipo     string            `json:"nombreEquipo"`
	Marca            string            `json:"marca"`
	Modelo           string            `json:"modelo"`
	Serie            string            `json:"serie"`
	Direccion        string            `json:"direccion"`
	Edificio         string            `json:"edificio"`
	Planta           string            `json:"planta"`
	Servicio         string            `json:"servicio"`
	UbicacionInterna string            `json:"ubicacionInterna"`
	Responsable      string            `json:"responsable"`
	Resguardos       string            `json:"resguardos"`
	Tipo             string            `json:"tipo"`
	OriginalData     *entities.Station `json:"originalData"`
}

type PrinterStationDTO struct {
	ID            uint64            `json:"id"`
	Ubicacion     string            `json:"ubicacion"`
	Area          string            `json:"area"`
	Perfil        string            `json:"perfil"`
	TipoImpresora string            `json:"tipoImpresora"`
	Marca         string            `json:"marca"`
	Modelo        string            `json:"modelo"`
	Serie         string            `json:"serie"`
	Resguardos    string            `json:"resguardos"`
	Tipo          string            `json:"tipo"`
	OriginalData  *entities.Station `json:"originalData"`
}

type CPUMonitorStationDTO struct {
	ID               uint64            `json:"id"`
	EquipoPrincipal  string            `json:"equipoPrincipal"`
	MarcaPrincipal   string            `json:"marcaPrincipal"`
	ModeloPrincipal  string            `json:"modeloPrincipal"`
	SeriePrincipal   string            `json:"seriePrincipal"`
	EquipoSecundario string            `json:"equipoSecundario"`
	MarcaSecundario  string            `json:"marcaSecundario"`
	ModeloSecundario string            `json:"modeloSecundario"`
	SerieSecundario  string            `json:"serieSecundario"`
	Direccion        string            `json:"direccion"`
	Edificio         string            `json:"edificio"`
	Planta           string            `json:"planta"`
	Servicio         string            `json:"servicio"`
	UbicacionInterna string            `json:"ubicacionInterna"`
	Responsable      string            `json:"responsable"`
	Resguardos       string            `json:"resguardos"`
	Tipo             string            `json:"tipo"`
	OriginalData     *entities.Station `json:"originalData"`
}
