package services

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	apperrors "inventory-system/pkg/errors"
)

type StationService struct {
	stationRepository repositories.StationRepositoryInterface
	logger            *zap.Logger
}

func NewStationService(stationRepository repositories.StationRepositoryInterface, logger *zap.Logger) *StationService {
	return &StationService{
		stationRepository: stationRepository,
		logger:            logger,
	}
}

// GetStations devuelve cada estación ya proyectada a la forma que espera la
// tabla de su tipo (laptop / impresora / cpu-monitor).
func (s *StationService) GetStations(ctx context.Context) ([]interface{}, error) {
	stations, err := s.stationRepository.GetStations(ctx)
	if err != nil {
		s.logger.Error("error al listar las estaciones", zap.Error(err))
		return nil, err
	}

	projected := make([]interface{}, 0, len(stations))
	for i := range stations {
		projected = append(projected, ProjectStation(&stations[i]))
	}
	return projected, nil
}

func (s *StationService) FindStation(ctx context.Context, id uint64) (*entities.Station, error) {
	return s.stationRepository.FindStation(ctx, id)
}

func (s *StationService) CreateStation(ctx context.Context, actorID uint64, in dto.SaveStationDTO) (*entities.Station, error) {
	station, err := stationFromForm(in.StationType, in.FormData)
	if err != nil {
		return nil, err
	}
	// Las estaciones nuevas siempre nacen activas.
	station.Status = "active"

	equipment, err := BuildEquipmentRows(in.StationType, in.FormData)
	if err != nil {
		return nil, err
	}
	accessories := accessoryRows(in.Accessories)

	entry := entities.ActivityLog{
		UserID:    actorID,
		Action:    entities.ActionCreate,
		TableName: "workstations",
		Details:   fmt.Sprintf("Estación %s creada", in.StationType),
	}

	created, err := s.stationRepository.CreateComposition(ctx, *station, equipment, accessories, entry)
	if err != nil {
		s.logger.Error("error al crear la estación", zap.String("stationType", in.StationType), zap.Error(err))
		return nil, err
	}
	return created, nil
}

// UpdateStation sustituye por completo los enlaces de equipo y accesorios: lo
// que no se reenvía queda desligado.
func (s *StationService) UpdateStation(ctx context.Context, actorID, id uint64, in dto.SaveStationDTO) (*entities.Station, error) {
	station, err := stationFromForm(in.StationType, in.FormData)
	if err != nil {
		return nil, err
	}
	if station.Status == "" {
		station.Status = "active"
	}

	equipment, err := BuildEquipmentRows(in.StationType, in.FormData)
	if err != nil {
		return nil, err
	}
	accessories := accessoryRows(in.Accessories)

	entry := entities.ActivityLog{
		UserID:    actorID,
		Action:    entities.ActionUpdate,
		TableName: "workstations",
		Details:   fmt.Sprintf("Estación %s actualizada", in.StationType),
	}

	updated, err := s.stationRepository.ReplaceComposition(ctx, id, *station, equipment, accessories, entry)
	if err != nil {
		s.logger.Error("error al actualizar la estación", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (s *StationService) DeleteStation(ctx context.Context, actorID, id uint64) error {
	entry := entities.ActivityLog{
		UserID:    actorID,
		Action:    entities.ActionDelete,
		TableName: "workstations",
		Details:   fmt.Sprintf("Estación eliminada (id %d)", id),
	}
	return s.stationRepository.DeleteStation(ctx, id, entry)
}

func stationFromForm(stationType string, form dto.StationFormDTO) (*entities.Station, error) {
	locationID, err := parseOptionalID(form.Ubicacion, "ubicacion")
	if err != nil {
		return nil, err
	}
	responsibleID, err := parseOptionalID(form.Responsable, "responsable")
	if err != nil {
		return nil, err
	}

	return &entities.Station{
		StationType:   stationType,
		Status:        form.Status,
		Direccion:     optionalString(form.Direccion),
		LocationID:    locationID,
		ResponsibleID: responsibleID,
		AuthorizedBy:  optionalString(form.Autorizacion),
		Descripcion:   optionalString(form.Descripcion),
	}, nil
}

// BuildEquipmentRows mapea los slots del formulario a filas de enlace por rol:
// secundario solo en cpu-monitor, terciario opcional ("" y "none" se ignoran).
// Sin equipo principal no se vincula nada: los demás slots se descartan.
func BuildEquipmentRows(stationType string, form dto.StationFormDTO) ([]entities.StationEquipment, error) {
	primary, err := parseOptionalID(form.EquipoPrincipal, "equipoPrincipal")
	if err != nil {
		return nil, err
	}
	if primary == nil {
		return nil, nil
	}

	rows := []entities.StationEquipment{equipmentRow(*primary, entities.EquipmentRolePrimary)}

	if stationType == entities.StationCPUMonitor {
		secondary, err := parseOptionalID(form.EquipoSecundario, "equipoSecundario")
		if err != nil {
			return nil, err
		}
		if secondary != nil {
			rows = append(rows, equipmentRow(*secondary, entities.EquipmentRoleSecondary))
		}
	}

	tertiary, err := parseOptionalID(form.EquipoTercero, "equipoTercero")
	if err != nil {
		return nil, err
	}
	if tertiary != nil {
		rows = append(rows, equipmentRow(*tertiary, entities.EquipmentRoleTertiary))
	}

	return rows, nil
}

func equipmentRow(equipmentID uint64, role string) entities.StationEquipment {
	return entities.StationEquipment{
		EquipmentID:   equipmentID,
		EquipmentType: role,
		Cantidad:      1,
	}
}

// accessoryRows conserva solo los accesorios marcados, en el orden canónico.
func accessoryRows(flags map[string]bool) []entities.StationAccessory {
	var rows []entities.StationAccessory
	for _, accessoryType := range entities.AccessoryTypes {
		if flags[accessoryType] {
			rows = append(rows, entities.StationAccessory{
				AccessoryType: accessoryType,
				Included:      true,
			})
		}
	}
	return rows
}

// parseOptionalID trata "" y "none" como no elegido; cualquier otro valor debe
// ser un id numérico.
func parseOptionalID(raw, field string) (*uint64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "none" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusBadRequest,
			fmt.Sprintf("el campo %s debe ser un id numérico", field), err, nil)
	}
	return &id, nil
}

func optionalString(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

const unassigned = "Sin asignar"

// ProjectStation reparte la estación en una de las tres formas de lectura.
func ProjectStation(st *entities.Station) interface{} {
	switch st.StationType {
	case entities.StationLaptop:
		return projectLaptop(st)
	case entities.StationImpresora:
		return projectPrinter(st)
	default:
		return projectCPUMonitor(st)
	}
}

func roleEquipment(st *entities.Station, role string) *entities.Equipment {
	for i := range st.Equipment {
		if st.Equipment[i].EquipmentType == role {
			return st.Equipment[i].Equipment
		}
	}
	return nil
}

func resguardosLabel(status string) string {
	if status == "active" {
		return "Firmado"
	}
	return "Pendiente"
}

func eqField(eq *entities.Equipment, pick func(*entities.Equipment) string) string {
	if eq == nil {
		return unassigned
	}
	if v := pick(eq); v != "" {
		return v
	}
	return unassigned
}

func locField(st *entities.Station, pick func(*entities.Location) string) string {
	if st.Location == nil {
		return unassigned
	}
	if v := pick(st.Location); v != "" {
		return v
	}
	return unassigned
}

func projectLaptop(st *entities.Station) dto.LaptopStationDTO {
	primary := roleEquipment(st, entities.EquipmentRolePrimary)

	nombre := "Laptop"
	if primary != nil && primary.Tipo != "" {
		nombre = primary.Tipo
	}

	out := dto.LaptopStationDTO{
		ID:           st.ID,
		NombreEquipo: nombre,
		Marca:        eqField(primary, func(e *entities.Equipment) string { return e.Marca }),
		Modelo:       eqField(primary, func(e *entities.Equipment) string { return e.Modelo }),
		Serie:        eqField(primary, func(e *entities.Equipment) string { return e.NumeroSerie }),
		Direccion:    unassigned,
		Edificio:     locField(st, func(l *entities.Location) string { return l.Edificio }),
		Planta:       locField(st, func(l *entities.Location) string { return l.Planta }),
		Servicio:     locField(st, func(l *entities.Location) string { return l.Servicio }),
		UbicacionInterna: locField(st, func(l *entities.Location) string {
			if l.UbicacionInterna == nil {
				return ""
			}
			return *l.UbicacionInterna
		}),
		Responsable:  unassigned,
		Resguardos:   resguardosLabel(st.Status),
		Tipo:         st.StationType,
		OriginalData: st,
	}
	if st.Direccion != nil && *st.Direccion != "" {
		out.Direccion = *st.Direccion
	}
	if st.Responsible != nil && st.Responsible.NombreCompleto != "" {
		out.Responsable = st.Responsible.NombreCompleto
	}
	return out
}

func projectPrinter(st *entities.Station) dto.PrinterStationDTO {
	primary := roleEquipment(st, entities.EquipmentRolePrimary)

	ubicacion := unassigned
	if st.Location != nil {
		ubicacion = st.Location.Servicio
		if st.Location.UbicacionInterna != nil && *st.Location.UbicacionInterna != "" {
			ubicacion = strings.TrimSpace(ubicacion + " " + *st.Location.UbicacionInterna)
		}
	}

	return dto.PrinterStationDTO{
		ID:        st.ID,
		Ubicacion: ubicacion,
		Area:      locField(st, func(l *entities.Location) string { return l.Servicio }),
		Perfil: eqField(primary, func(e *entities.Equipment) string {
			if e.Perfil == nil {
				return ""
			}
			return *e.Perfil
		}),
		TipoImpresora: eqField(primary, func(e *entities.Equipment) string {
			if e.TipoImpresora == nil {
				return ""
			}
			return *e.TipoImpresora
		}),
		Marca:        eqField(primary, func(e *entities.Equipment) string { return e.Marca }),
		Modelo:       eqField(primary, func(e *entities.Equipment) string { return e.Modelo }),
		Serie:        eqField(primary, func(e *entities.Equipment) string { return e.NumeroSerie }),
		Resguardos:   resguardosLabel(st.Status),
		Tipo:         st.StationType,
		OriginalData: st,
	}
}

func projectCPUMonitor(st *entities.Station) dto.CPUMonitorStationDTO {
	primary := roleEquipment(st, entities.EquipmentRolePrimary)
	secondary := roleEquipment(st, entities.EquipmentRoleSecondary)

	out := dto.CPUMonitorStationDTO{
		ID:               st.ID,
		EquipoPrincipal:  eqField(primary, func(e *entities.Equipment) string { return e.Tipo }),
		MarcaPrincipal:   eqField(primary, func(e *entities.Equipment) string { return e.Marca }),
		ModeloPrincipal:  eqField(primary, func(e *entities.Equipment) string { return e.Modelo }),
		SeriePrincipal:   eqField(primary, func(e *entities.Equipment) string { return e.NumeroSerie }),
		EquipoSecundario: eqField(secondary, func(e *entities.Equipment) string { return e.Tipo }),
		MarcaSecundario:  eqField(secondary, func(e *entities.Equipment) string { return e.Marca }),
		ModeloSecundario: eqField(secondary, func(e *entities.Equipment) string { return e.Modelo }),
		SerieSecundario:  eqField(secondary, func(e *entities.Equipment) string { return e.NumeroSerie }),
		Direccion:        unassigned,
		Edificio:         locField(st, func(l *entities.Location) string { return l.Edificio }),
		Planta:           locField(st, func(l *entities.Location) string { return l.Planta }),
		Servicio:         locField(st, func(l *entities.Location) string { return l.Servicio }),
		UbicacionInterna: locField(st, func(l *entities.Location) string {
			if l.UbicacionInterna == nil {
				return ""
			}
			return *l.UbicacionInterna
		}),
		Responsable:  unassigned,
		Resguardos:   resguardosLabel(st.Status),
		Tipo:         st.StationType,
		OriginalData: st,
	}
	if st.Direccion != nil && *st.Direccion != "" {
		out.Direccion = *st.Direccion
	}
	if st.Responsible != nil && st.Responsible.NombreCompleto != "" {
		out.Responsable = st.Responsible.NombreCompleto
	}
	return out
}
