package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
)

const equipmentFields = "id, nombre, tipo, perfil, tipo_impresora, marca, modelo, numero_serie, estado, created_at, updated_at"

type EquipmentRepositoryInterface interface {
	GetEquipmentWithAssignment(ctx context.Context) ([]dto.EquipmentListItemDTO, error)
	GetAllEquipment(ctx context.Context) ([]entities.Equipment, error)
	GetAssignedEquipmentIDs(ctx context.Context) (map[uint64]struct{}, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, eq entities.Equipment) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id uint64, eq entities.Equipment) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id uint64) error
	IsAssigned(ctx context.Context, id uint64) (bool, error)
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage}
}

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var eq entities.Equipment
	err := row.Scan(
		&eq.ID,
		&eq.Nombre,
		&eq.Tipo,
		&eq.Perfil,
		&eq.TipoImpresora,
		&eq.Marca,
		&eq.Modelo,
		&eq.NumeroSerie,
		&eq.Estado,
		&eq.CreatedAt,
		&eq.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &eq, nil
}

// GetEquipmentWithAssignment devuelve el inventario completo, más reciente
// primero, con la información de asignación resuelta en un solo JOIN en lugar
// de una consulta por fila.
func (r *EquipmentRepository) GetEquipmentWithAssignment(ctx context.Context) ([]dto.EquipmentListItemDTO, error) {
	query := `
		SELECT e.id, e.nombre, e.tipo, e.perfil, e.tipo_impresora, e.marca, e.modelo,
		       e.numero_serie, e.estado, e.created_at, e.updated_at,
		       we.workstation_id, we.equipment_type,
		       w.station_type, w.status, w.direccion
		FROM equipment e
			LEFT JOIN workstation_equipment we ON we.equipment_id = e.id
			LEFT JOIN workstations w ON w.id = we.workstation_id
		ORDER BY e.created_at DESC
	`

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []dto.EquipmentListItemDTO
	for rows.Next() {
		var item dto.EquipmentListItemDTO
		var (
			workstationID *uint64
			equipmentType *string
			stationType   *string
			stationStatus *string
			stationDir    *string
		)

		err := rows.Scan(
			&item.ID, &item.Nombre, &item.Tipo, &item.Perfil, &item.TipoImpresora,
			&item.Marca, &item.Modelo, &item.NumeroSerie, &item.Estado,
			&item.CreatedAt, &item.UpdatedAt,
			&workstationID, &equipmentType,
			&stationType, &stationStatus, &stationDir,
		)
		if err != nil {
			return nil, err
		}

		if workstationID != nil {
			item.IsAssigned = true
			assigned := dto.AssignedToDTO{
				WorkstationID:    *workstationID,
				StationDireccion: stationDir,
			}
			if equipmentType != nil {
				assigned.EquipmentType = *equipmentType
			}
			if stationType != nil {
				assigned.StationType = *stationType
			}
			if stationStatus != nil {
				assigned.StationStatus = *stationStatus
			}
			item.AssignedTo = &assigned
			item.Estacion = assigned.StationType + " (" + assigned.EquipmentType + ")"
		} else {
			item.Estacion = "Sin asignar"
		}

		items = append(items, item)
	}

	return items, rows.Err()
}

// GetAllEquipment devuelve todo el inventario ordenado por tipo y marca;
// el resolutor de disponibilidad filtra en memoria sobre este conjunto.
func (r *EquipmentRepository) GetAllEquipment(ctx context.Context) ([]entities.Equipment, error) {
	query := `SELECT ` + equipmentFields + ` FROM equipment ORDER BY tipo ASC, marca ASC`

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []entities.Equipment
	for rows.Next() {
		eq, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *eq)
	}
	return list, rows.Err()
}

func (r *EquipmentRepository) GetAssignedEquipmentIDs(ctx context.Context) (map[uint64]struct{}, error) {
	rows, err := r.storage.Query(ctx, `SELECT equipment_id FROM workstation_equipment`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assigned := make(map[uint64]struct{})
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		assigned[id] = struct{}{}
	}
	return assigned, rows.Err()
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	query := `SELECT ` + equipmentFields + ` FROM equipment WHERE id = $1`

	eq, err := scanEquipment(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return eq, nil
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, eq entities.Equipment) (*entities.Equipment, error) {
	query := `
		INSERT INTO equipment (nombre, tipo, perfil, tipo_impresora, marca, modelo, numero_serie, estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + equipmentFields

	return scanEquipment(r.storage.QueryRow(ctx, query,
		eq.Nombre,
		eq.Tipo,
		eq.Perfil,
		eq.TipoImpresora,
		eq.Marca,
		eq.Modelo,
		eq.NumeroSerie,
		eq.Estado,
	))
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id uint64, eq entities.Equipment) (*entities.Equipment, error) {
	query := `
		UPDATE equipment
		SET nombre = $1, tipo = $2, perfil = $3, tipo_impresora = $4, marca = $5,
		    modelo = $6, numero_serie = $7, estado = $8, updated_at = CURRENT_TIMESTAMP
		WHERE id = $9
		RETURNING ` + equipmentFields

	updated, err := scanEquipment(r.storage.QueryRow(ctx, query,
		eq.Nombre,
		eq.Tipo,
		eq.Perfil,
		eq.TipoImpresora,
		eq.Marca,
		eq.Modelo,
		eq.NumeroSerie,
		eq.Estado,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM equipment WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) IsAssigned(ctx context.Context, id uint64) (bool, error) {
	var exists bool
	err := r.storage.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM workstation_equipment WHERE equipment_id = $1)`, id,
	).Scan(&exists)
	return exists, err
}
