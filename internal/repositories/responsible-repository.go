package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
)

const responsibleFields = "id, nombre_completo, cargo, email, telefono, fecha_registro"

type ResponsibleRepositoryInterface interface {
	GetResponsibles(ctx context.Context) ([]entities.Responsible, error)
	FindResponsible(ctx context.Context, id uint64) (*entities.Responsible, error)
	CreateResponsible(ctx context.Context, resp entities.Responsible) (*entities.Responsible, error)
	UpdateResponsible(ctx context.Context, id uint64, resp entities.Responsible) (*entities.Responsible, error)
	DeleteResponsible(ctx context.Context, id uint64) error
}

type ResponsibleRepository struct {
	storage *pgxpool.Pool
}

func NewResponsibleRepository(storage *pgxpool.Pool) ResponsibleRepositoryInterface {
	return &ResponsibleRepository{storage: storage}
}

func scanResponsible(row pgx.Row) (*entities.Responsible, error) {
	var resp entities.Responsible
	err := row.Scan(&resp.ID, &resp.NombreCompleto, &resp.Cargo, &resp.Email, &resp.Telefono, &resp.FechaRegistro)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (r *ResponsibleRepository) GetResponsibles(ctx context.Context) ([]entities.Responsible, error) {
	rows, err := r.storage.Query(ctx,
		`SELECT `+responsibleFields+` FROM responsibles ORDER BY nombre_completo ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []entities.Responsible
	for rows.Next() {
		resp, err := scanResponsible(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *resp)
	}
	return list, rows.Err()
}

func (r *ResponsibleRepository) FindResponsible(ctx context.Context, id uint64) (*entities.Responsible, error) {
	resp, err := scanResponsible(r.storage.QueryRow(ctx,
		`SELECT `+responsibleFields+` FROM responsibles WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return resp, nil
}

func (r *ResponsibleRepository) CreateResponsible(ctx context.Context, resp entities.Responsible) (*entities.Responsible, error) {
	return scanResponsible(r.storage.QueryRow(ctx, `
		INSERT INTO responsibles (nombre_completo, cargo, email, telefono)
		VALUES ($1, $2, $3, $4)
		RETURNING `+responsibleFields,
		resp.NombreCompleto, resp.Cargo, resp.Email, resp.Telefono,
	))
}

// UpdateResponsible nunca toca fecha_registro.
func (r *ResponsibleRepository) UpdateResponsible(ctx context.Context, id uint64, resp entities.Responsible) (*entities.Responsible, error) {
	updated, err := scanResponsible(r.storage.QueryRow(ctx, `
		UPDATE responsibles
		SET nombre_completo = $1, cargo = $2, email = $3, telefono = $4
		WHERE id = $5
		RETURNING `+responsibleFields,
		resp.NombreCompleto, resp.Cargo, resp.Email, resp.Telefono, id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (r *ResponsibleRepository) DeleteResponsible(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM responsibles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
