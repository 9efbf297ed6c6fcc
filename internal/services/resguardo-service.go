package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
)

type ResguardoService struct {
	stationRepository repositories.StationRepositoryInterface
	logger            *zap.Logger
	now               func() time.Time
	newFolio          func() string
}

func NewResguardoService(stationRepository repositories.StationRepositoryInterface, logger *zap.Logger) *ResguardoService {
	return &ResguardoService{
		stationRepository: stationRepository,
		logger:            logger,
		now:               time.Now,
		newFolio:          func() string { return uuid.NewString() },
	}
}

// GenerateResguardo produce el documento de resguardo en texto plano para la
// estación indicada.
func (s *ResguardoService) GenerateResguardo(ctx context.Context, stationID uint64) (string, error) {
	station, err := s.stationRepository.FindStation(ctx, stationID)
	if err != nil {
		return "", err
	}
	return BuildResguardoDocument(station, s.newFolio(), s.now()), nil
}

// BuildResguardoDocument arma el texto del resguardo; es puro para poder
// probarlo sin BD.
func BuildResguardoDocument(station *entities.Station, folio string, fecha time.Time) string {
	var b strings.Builder

	fmt.Fprintln(&b, "RESGUARDO DE EQUIPO DE CÓMPUTO")
	fmt.Fprintln(&b, "================================")
	fmt.Fprintf(&b, "Folio: %s\n", folio)
	fmt.Fprintf(&b, "Fecha: %s\n", fecha.Format("02/01/2006"))
	fmt.Fprintf(&b, "Estación: #%d (%s)\n", station.ID, station.StationType)
	fmt.Fprintln(&b)

	if station.Location != nil {
		fmt.Fprintf(&b, "Ubicación: %s, %s, %s\n",
			station.Location.Edificio, station.Location.Planta, station.Location.Servicio)
		if station.Location.UbicacionInterna != nil && *station.Location.UbicacionInterna != "" {
			fmt.Fprintf(&b, "Ubicación interna: %s\n", *station.Location.UbicacionInterna)
		}
	} else {
		fmt.Fprintln(&b, "Ubicación: Sin asignar")
	}

	if station.Responsible != nil {
		fmt.Fprintf(&b, "Responsable: %s (%s)\n", station.Responsible.NombreCompleto, station.Responsible.Cargo)
	} else {
		fmt.Fprintln(&b, "Responsable: Sin asignar")
	}
	if station.AuthorizedBy != nil && *station.AuthorizedBy != "" {
		fmt.Fprintf(&b, "Autoriza: %s\n", *station.AuthorizedBy)
	}

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Equipos asignados:")
	if len(station.Equipment) == 0 {
		fmt.Fprintln(&b, "  (ninguno)")
	}
	for _, link := range station.Equipment {
		if link.Equipment == nil {
			continue
		}
		eq := link.Equipment
		fmt.Fprintf(&b, "  - [%s] %s %s %s, serie %s\n",
			link.EquipmentType, eq.Tipo, eq.Marca, eq.Modelo, eq.NumeroSerie)
	}

	if len(station.Accessories) > 0 {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, "Accesorios incluidos:")
		for _, acc := range station.Accessories {
			if acc.Included {
				fmt.Fprintf(&b, "  - %s\n", acc.AccessoryType)
			}
		}
	}

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "_______________________________")
	fmt.Fprintln(&b, "Firma del responsable")

	return b.String()
}
