package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
)

const userFields = "id, nombre, email, password_hash, rol, estado, permisos, fecha_creacion, ultimo_acceso"

type UserRepositoryInterface interface {
	GetUsers(ctx context.Context) ([]entities.User, error)
	FindUser(ctx context.Context, id uint64) (*entities.User, error)
	CreateUser(ctx context.Context, user entities.User) (*entities.User, error)
	UpdateUser(ctx context.Context, id uint64, user entities.User) (*entities.User, error)
	DeleteUser(ctx context.Context, id uint64) error
}

type UserRepository struct {
	storage *pgxpool.Pool
}

func NewUserRepository(storage *pgxpool.Pool) UserRepositoryInterface {
	return &UserRepository{storage: storage}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var user entities.User
	var permisosRaw []byte
	err := row.Scan(
		&user.ID,
		&user.Nombre,
		&user.Email,
		&user.PasswordHash,
		&user.Rol,
		&user.Estado,
		&permisosRaw,
		&user.FechaCreacion,
		&user.UltimoAcceso,
	)
	if err != nil {
		return nil, err
	}
	if len(permisosRaw) > 0 {
		if err := json.Unmarshal(permisosRaw, &user.Permisos); err != nil {
			// permisos corrupto no debe tumbar la lectura del usuario
			user.Permisos = nil
		}
	}
	return &user, nil
}

func marshalPermisos(m entities.PermisosMatrix) ([]byte, error) {
	if m == nil {
		m = entities.PermisosMatrix{}
	}
	return json.Marshal(m)
}

func (r *UserRepository) GetUsers(ctx context.Context) ([]entities.User, error) {
	rows, err := r.storage.Query(ctx, `SELECT `+userFields+` FROM users ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []entities.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func (r *UserRepository) FindUser(ctx context.Context, id uint64) (*entities.User, error) {
	user, err := scanUser(r.storage.QueryRow(ctx, `SELECT `+userFields+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	permisos, err := marshalPermisos(user.Permisos)
	if err != nil {
		return nil, err
	}

	return scanUser(r.storage.QueryRow(ctx, `
		INSERT INTO users (nombre, email, password_hash, rol, estado, permisos)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+userFields,
		user.Nombre, user.Email, user.PasswordHash, user.Rol, user.Estado, permisos,
	))
}

// UpdateUser no toca id ni fecha_creacion.
func (r *UserRepository) UpdateUser(ctx context.Context, id uint64, user entities.User) (*entities.User, error) {
	permisos, err := marshalPermisos(user.Permisos)
	if err != nil {
		return nil, err
	}

	updated, err := scanUser(r.storage.QueryRow(ctx, `
		UPDATE users
		SET nombre = $1, email = $2, password_hash = $3, rol = $4, estado = $5, permisos = $6
		WHERE id = $7
		RETURNING `+userFields,
		user.Nombre, user.Email, user.PasswordHash, user.Rol, user.Estado, permisos, id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
