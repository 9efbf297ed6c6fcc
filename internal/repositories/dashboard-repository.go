package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type DashboardRepositoryInterface interface {
	CountEquipment(ctx context.Context) (int64, error)
	CountStations(ctx context.Context) (int64, error)
	CountLocations(ctx context.Context) (int64, error)
	CountResponsibles(ctx context.Context) (int64, error)
	GetLocationServicios(ctx context.Context) ([]*string, error)
	GetEquipmentTipos(ctx context.Context) ([]*string, error)
}

type DashboardRepository struct {
	storage *pgxpool.Pool
}

func NewDashboardRepository(storage *pgxpool.Pool) DashboardRepositoryInterface {
	return &DashboardRepository{storage: storage}
}

func (r *DashboardRepository) count(ctx context.Context, table string) (int64, error) {
	var total int64
	err := r.storage.QueryRow(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table)).Scan(&total)
	return total, err
}

func (r *DashboardRepository) CountEquipment(ctx context.Context) (int64, error) {
	return r.count(ctx, "equipment")
}

func (r *DashboardRepository) CountStations(ctx context.Context) (int64, error) {
	return r.count(ctx, "workstations")
}

func (r *DashboardRepository) CountLocations(ctx context.Context) (int64, error) {
	return r.count(ctx, "locations")
}

func (r *DashboardRepository) CountResponsibles(ctx context.Context) (int64, error) {
	return r.count(ctx, "responsibles")
}

func (r *DashboardRepository) stringColumn(ctx context.Context, query string) ([]*string, error) {
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []*string
	for rows.Next() {
		var value *string
		if err := rows.Scan(&value); err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, rows.Err()
}

// GetLocationServicios devuelve el servicio de cada ubicación, uno por fila,
// para que el servicio agrupe y aplique el relleno "Sin servicio".
func (r *DashboardRepository) GetLocationServicios(ctx context.Context) ([]*string, error) {
	return r.stringColumn(ctx, `SELECT servicio FROM locations`)
}

func (r *DashboardRepository) GetEquipmentTipos(ctx context.Context) ([]*string, error) {
	return r.stringColumn(ctx, `SELECT tipo FROM equipment`)
}
