package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
)

const stationFields = "id, station_type, status, direccion, location_id, responsible_id, authorized_by, descripcion, created_at, updated_at"

type StationRepositoryInterface interface {
	GetStations(ctx context.Context) ([]entities.Station, error)
	FindStation(ctx context.Context, id uint64) (*entities.Station, error)
	CreateComposition(ctx context.Context, station entities.Station, equipment []entities.StationEquipment, accessories []entities.StationAccessory, logEntry entities.ActivityLog) (*entities.Station, error)
	ReplaceComposition(ctx context.Context, id uint64, station entities.Station, equipment []entities.StationEquipment, accessories []entities.StationAccessory, logEntry entities.ActivityLog) (*entities.Station, error)
	DeleteStation(ctx context.Context, id uint64, logEntry entities.ActivityLog) error
}

type StationRepository struct {
	storage *pgxpool.Pool
}

func NewStationRepository(storage *pgxpool.Pool) StationRepositoryInterface {
	return &StationRepository{storage: storage}
}

func scanStation(row pgx.Row) (*entities.Station, error) {
	var st entities.Station
	err := row.Scan(
		&st.ID,
		&st.StationType,
		&st.Status,
		&st.Direccion,
		&st.LocationID,
		&st.ResponsibleID,
		&st.AuthorizedBy,
		&st.Descripcion,
		&st.CreatedAt,
		&st.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// GetStations carga todas las estaciones con su ubicación, responsable y
// equipos por rol ya resueltos.
func (r *StationRepository) GetStations(ctx context.Context) ([]entities.Station, error) {
	query := `
		SELECT w.id, w.station_type, w.status, w.direccion, w.location_id,
		       w.responsible_id, w.authorized_by, w.descripcion, w.created_at, w.updated_at,
		       l.id, l.edificio, l.planta, l.servicio, l.ubicacion_interna,
		       resp.id, resp.nombre_completo, resp.cargo
		FROM workstations w
			LEFT JOIN locations l ON l.id = w.location_id
			LEFT JOIN responsibles resp ON resp.id = w.responsible_id
		ORDER BY w.created_at DESC
	`

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stations []entities.Station
	index := make(map[uint64]int)
	for rows.Next() {
		var st entities.Station
		var (
			locID, respID          *uint64
			edificio, planta       *string
			servicio, ubicacionInt *string
			nombreCompleto, cargo  *string
		)

		err := rows.Scan(
			&st.ID, &st.StationType, &st.Status, &st.Direccion, &st.LocationID,
			&st.ResponsibleID, &st.AuthorizedBy, &st.Descripcion, &st.CreatedAt, &st.UpdatedAt,
			&locID, &edificio, &planta, &servicio, &ubicacionInt,
			&respID, &nombreCompleto, &cargo,
		)
		if err != nil {
			return nil, err
		}

		if locID != nil {
			st.Location = &entities.Location{
				ID:               *locID,
				Edificio:         deref(edificio),
				Planta:           deref(planta),
				Servicio:         deref(servicio),
				UbicacionInterna: ubicacionInt,
			}
		}
		if respID != nil {
			st.Responsible = &entities.Responsible{
				ID:             *respID,
				NombreCompleto: deref(nombreCompleto),
				Cargo:          deref(cargo),
			}
		}

		index[st.ID] = len(stations)
		stations = append(stations, st)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(stations) == 0 {
		return stations, nil
	}

	if err := r.attachEquipment(ctx, stations, index); err != nil {
		return nil, err
	}
	return stations, nil
}

func (r *StationRepository) attachEquipment(ctx context.Context, stations []entities.Station, index map[uint64]int) error {
	query := `
		SELECT we.workstation_id, we.equipment_id, we.equipment_type, we.cantidad,
		       e.id, e.nombre, e.tipo, e.perfil, e.tipo_impresora, e.marca, e.modelo,
		       e.numero_serie, e.estado, e.created_at, e.updated_at
		FROM workstation_equipment we
			JOIN equipment e ON e.id = we.equipment_id
	`

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var link entities.StationEquipment
		var eq entities.Equipment
		err := rows.Scan(
			&link.WorkstationID, &link.EquipmentID, &link.EquipmentType, &link.Cantidad,
			&eq.ID, &eq.Nombre, &eq.Tipo, &eq.Perfil, &eq.TipoImpresora,
			&eq.Marca, &eq.Modelo, &eq.NumeroSerie, &eq.Estado, &eq.CreatedAt, &eq.UpdatedAt,
		)
		if err != nil {
			return err
		}
		link.Equipment = &eq

		if i, ok := index[link.WorkstationID]; ok {
			stations[i].Equipment = append(stations[i].Equipment, link)
		}
	}
	return rows.Err()
}

func (r *StationRepository) FindStation(ctx context.Context, id uint64) (*entities.Station, error) {
	st, err := scanStation(r.storage.QueryRow(ctx,
		`SELECT `+stationFields+` FROM workstations WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if st.LocationID != nil {
		var loc entities.Location
		err := r.storage.QueryRow(ctx,
			`SELECT id, edificio, planta, servicio, ubicacion_interna FROM locations WHERE id = $1`,
			*st.LocationID,
		).Scan(&loc.ID, &loc.Edificio, &loc.Planta, &loc.Servicio, &loc.UbicacionInterna)
		if err == nil {
			st.Location = &loc
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
	}

	if st.ResponsibleID != nil {
		var resp entities.Responsible
		err := r.storage.QueryRow(ctx,
			`SELECT id, nombre_completo, cargo, email, telefono, fecha_registro FROM responsibles WHERE id = $1`,
			*st.ResponsibleID,
		).Scan(&resp.ID, &resp.NombreCompleto, &resp.Cargo, &resp.Email, &resp.Telefono, &resp.FechaRegistro)
		if err == nil {
			st.Responsible = &resp
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
	}

	single := []entities.Station{*st}
	if err := r.attachEquipmentForStation(ctx, &single[0]); err != nil {
		return nil, err
	}
	if err := r.attachAccessories(ctx, &single[0]); err != nil {
		return nil, err
	}
	return &single[0], nil
}

func (r *StationRepository) attachEquipmentForStation(ctx context.Context, st *entities.Station) error {
	query := `
		SELECT we.workstation_id, we.equipment_id, we.equipment_type, we.cantidad,
		       e.id, e.nombre, e.tipo, e.perfil, e.tipo_impresora, e.marca, e.modelo,
		       e.numero_serie, e.estado, e.created_at, e.updated_at
		FROM workstation_equipment we
			JOIN equipment e ON e.id = we.equipment_id
		WHERE we.workstation_id = $1
	`

	rows, err := r.storage.Query(ctx, query, st.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var link entities.StationEquipment
		var eq entities.Equipment
		err := rows.Scan(
			&link.WorkstationID, &link.EquipmentID, &link.EquipmentType, &link.Cantidad,
			&eq.ID, &eq.Nombre, &eq.Tipo, &eq.Perfil, &eq.TipoImpresora,
			&eq.Marca, &eq.Modelo, &eq.NumeroSerie, &eq.Estado, &eq.CreatedAt, &eq.UpdatedAt,
		)
		if err != nil {
			return err
		}
		link.Equipment = &eq
		st.Equipment = append(st.Equipment, link)
	}
	return rows.Err()
}

func (r *StationRepository) attachAccessories(ctx context.Context, st *entities.Station) error {
	rows, err := r.storage.Query(ctx,
		`SELECT id, workstation_id, accessory_type, included FROM workstation_accessories WHERE workstation_id = $1`,
		st.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var acc entities.StationAccessory
		if err := rows.Scan(&acc.ID, &acc.WorkstationID, &acc.AccessoryType, &acc.Included); err != nil {
			return err
		}
		st.Accessories = append(st.Accessories, acc)
	}
	return rows.Err()
}

// CreateComposition inserta la estación, sus enlaces de equipo, accesorios y la
// entrada de bitácora en UNA transacción; si algo falla no queda nada a medias.
func (r *StationRepository) CreateComposition(
	ctx context.Context,
	station entities.Station,
	equipment []entities.StationEquipment,
	accessories []entities.StationAccessory,
	logEntry entities.ActivityLog,
) (*entities.Station, error) {
	var created *entities.Station

	err := WithTx(ctx, r.storage, func(tx pgx.Tx) error {
		st, err := scanStation(tx.QueryRow(ctx, `
			INSERT INTO workstations (station_type, status, direccion, location_id, responsible_id, authorized_by, descripcion)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING `+stationFields,
			station.StationType,
			station.Status,
			station.Direccion,
			station.LocationID,
			station.ResponsibleID,
			station.AuthorizedBy,
			station.Descripcion,
		))
		if err != nil {
			return err
		}

		if err := insertLinks(ctx, tx, st.ID, equipment, accessories); err != nil {
			return err
		}

		logEntry.RecordID = recordID(st.ID)
		if err := insertActivity(ctx, tx, logEntry); err != nil {
			return err
		}

		created = st
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ReplaceComposition actualiza la estación y SUSTITUYE por completo sus
// enlaces: borra todos los workstation_equipment y workstation_accessories
// del id y reinserta lo enviado. Un id que no se reenvía queda desligado.
func (r *StationRepository) ReplaceComposition(
	ctx context.Context,
	id uint64,
	station entities.Station,
	equipment []entities.StationEquipment,
	accessories []entities.StationAccessory,
	logEntry entities.ActivityLog,
) (*entities.Station, error) {
	var updated *entities.Station

	err := WithTx(ctx, r.storage, func(tx pgx.Tx) error {
		st, err := scanStation(tx.QueryRow(ctx, `
			UPDATE workstations
			SET station_type = $1, status = $2, direccion = $3, location_id = $4,
			    responsible_id = $5, authorized_by = $6, descripcion = $7, updated_at = CURRENT_TIMESTAMP
			WHERE id = $8
			RETURNING `+stationFields,
			station.StationType,
			station.Status,
			station.Direccion,
			station.LocationID,
			station.ResponsibleID,
			station.AuthorizedBy,
			station.Descripcion,
			id,
		))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrNotFound
			}
			return err
		}

		if _, err := tx.Exec(ctx, `DELETE FROM workstation_equipment WHERE workstation_id = $1`, id); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM workstation_accessories WHERE workstation_id = $1`, id); err != nil {
			return err
		}

		if err := insertLinks(ctx, tx, id, equipment, accessories); err != nil {
			return err
		}

		logEntry.RecordID = recordID(id)
		if err := insertActivity(ctx, tx, logEntry); err != nil {
			return err
		}

		updated = st
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *StationRepository) DeleteStation(ctx context.Context, id uint64, logEntry entities.ActivityLog) error {
	return WithTx(ctx, r.storage, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM workstation_equipment WHERE workstation_id = $1`, id); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM workstation_accessories WHERE workstation_id = $1`, id); err != nil {
			return err
		}

		result, err := tx.Exec(ctx, `DELETE FROM workstations WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if result.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}

		logEntry.RecordID = recordID(id)
		return insertActivity(ctx, tx, logEntry)
	})
}

func insertLinks(ctx context.Context, tx pgx.Tx, stationID uint64, equipment []entities.StationEquipment, accessories []entities.StationAccessory) error {
	for _, link := range equipment {
		_, err := tx.Exec(ctx, `
			INSERT INTO workstation_equipment (workstation_id, equipment_id, equipment_type, cantidad)
			VALUES ($1, $2, $3, $4)`,
			stationID, link.EquipmentID, link.EquipmentType, link.Cantidad,
		)
		if err != nil {
			return err
		}
	}

	for _, acc := range accessories {
		_, err := tx.Exec(ctx, `
			INSERT INTO workstation_accessories (workstation_id, accessory_type, included)
			VALUES ($1, $2, $3)`,
			stationID, acc.AccessoryType, acc.Included,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
