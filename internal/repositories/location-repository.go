package repositories

import (
	"context"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"
)

const locationViewFields = "id, edificio, planta, servicio, ubicacion_interna, assigned_stations, created_at, updated_at"

// Columnas de la vista admitidas en sort[...] y filter[...].
var locationColumns = map[string]struct{}{
	"edificio":          {},
	"planta":            {},
	"servicio":          {},
	"ubicacion_interna": {},
	"assigned_stations": {},
}

type LocationRepositoryInterface interface {
	GetLocations(ctx context.Context, filter types.Filter) ([]entities.Location, error)
	FindLocation(ctx context.Context, id uint64) (*entities.Location, error)
	CreateLocation(ctx context.Context, in dto.CreateLocationDTO) (*entities.Location, error)
	UpdateLocation(ctx context.Context, id uint64, in dto.UpdateLocationDTO) (*entities.Location, error)
	DeleteLocation(ctx context.Context, id uint64) error
}

type LocationRepository struct {
	storage *pgxpool.Pool
}

func NewLocationRepository(storage *pgxpool.Pool) LocationRepositoryInterface {
	return &LocationRepository{storage: storage}
}

// GetLocations lee de la vista con el conteo de estaciones asignadas,
// aplicando búsqueda, igualdades, orden y paginación del Filter.
func (r *LocationRepository) GetLocations(ctx context.Context, filter types.Filter) ([]entities.Location, error) {
	builder := sq.Select(locationViewFields).
		From("view_locations_with_station_count").
		PlaceholderFormat(sq.Dollar)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(sq.Or{
			sq.Expr("edificio ILIKE ?", pattern),
			sq.Expr("planta ILIKE ?", pattern),
			sq.Expr("servicio ILIKE ?", pattern),
			sq.Expr("ubicacion_interna ILIKE ?", pattern),
		})
	}

	for field, value := range filter.Filter {
		if _, ok := locationColumns[field]; ok {
			builder = builder.Where(sq.Eq{field: value})
		}
	}

	ordered := false
	for field, direction := range filter.Sort {
		if _, ok := locationColumns[field]; ok {
			builder = builder.OrderBy(field + " " + strings.ToUpper(direction))
			ordered = true
		}
	}
	if !ordered {
		builder = builder.OrderBy("edificio ASC", "planta ASC", "servicio ASC")
	}

	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []entities.Location
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locations = append(locations, *loc)
	}
	return locations, rows.Err()
}

func scanLocation(row pgx.Row) (*entities.Location, error) {
	var loc entities.Location
	err := row.Scan(
		&loc.ID,
		&loc.Edificio,
		&loc.Planta,
		&loc.Servicio,
		&loc.UbicacionInterna,
		&loc.AssignedStations,
		&loc.CreatedAt,
		&loc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

func (r *LocationRepository) FindLocation(ctx context.Context, id uint64) (*entities.Location, error) {
	loc, err := scanLocation(r.storage.QueryRow(ctx,
		`SELECT `+locationViewFields+` FROM view_locations_with_station_count WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return loc, nil
}

func (r *LocationRepository) CreateLocation(ctx context.Context, in dto.CreateLocationDTO) (*entities.Location, error) {
	var loc entities.Location
	err := r.storage.QueryRow(ctx, `
		INSERT INTO locations (edificio, planta, servicio, ubicacion_interna)
		VALUES ($1, $2, $3, $4)
		RETURNING id, edificio, planta, servicio, ubicacion_interna, created_at, updated_at`,
		in.Edificio, in.Planta, in.Servicio, in.UbicacionInterna.Ptr(),
	).Scan(&loc.ID, &loc.Edificio, &loc.Planta, &loc.Servicio, &loc.UbicacionInterna, &loc.CreatedAt, &loc.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

func (r *LocationRepository) UpdateLocation(ctx context.Context, id uint64, in dto.UpdateLocationDTO) (*entities.Location, error) {
	var loc entities.Location
	err := r.storage.QueryRow(ctx, `
		UPDATE locations
		SET edificio = $1, planta = $2, servicio = $3, ubicacion_interna = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $5
		RETURNING id, edificio, planta, servicio, ubicacion_interna, created_at, updated_at`,
		in.Edificio, in.Planta, in.Servicio, in.UbicacionInterna.Ptr(), id,
	).Scan(&loc.ID, &loc.Edificio, &loc.Planta, &loc.Servicio, &loc.UbicacionInterna, &loc.CreatedAt, &loc.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &loc, nil
}

func (r *LocationRepository) DeleteLocation(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
