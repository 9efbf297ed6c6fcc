package repositories

import (
	"context"
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"inventory-system/internal/entities"
)

const activityFields = "id, user_id, action, table_name, record_id, details, created_at"

type ActivityRepositoryInterface interface {
	ListActivity(ctx context.Context, search, action, userID string, from, to *time.Time) ([]entities.ActivityLog, error)
	GetRecentActivity(ctx context.Context, limit uint64) ([]entities.ActivityLog, error)
	InsertActivity(ctx context.Context, entry entities.ActivityLog) error
}

type ActivityRepository struct {
	storage *pgxpool.Pool
}

func NewActivityRepository(storage *pgxpool.Pool) ActivityRepositoryInterface {
	return &ActivityRepository{storage: storage}
}

// ListActivity arma los predicados opcionales con squirrel: texto libre sobre
// action/details, igualdad por acción y actor, y la ventana [from, to).
func (r *ActivityRepository) ListActivity(ctx context.Context, search, action, userID string, from, to *time.Time) ([]entities.ActivityLog, error) {
	builder := sq.Select(activityFields).
		From("activity_log").
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if search != "" {
		pattern := "%" + search + "%"
		builder = builder.Where(sq.Or{
			sq.Expr("details ILIKE ?", pattern),
			sq.Expr("action ILIKE ?", pattern),
		})
	}
	if action != "" {
		builder = builder.Where(sq.Eq{"action": action})
	}
	if userID != "" {
		builder = builder.Where(sq.Eq{"user_id": userID})
	}
	if from != nil && to != nil {
		builder = builder.Where(sq.GtOrEq{"created_at": *from}).Where(sq.Lt{"created_at": *to})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryActivity(ctx, query, args...)
}

func (r *ActivityRepository) GetRecentActivity(ctx context.Context, limit uint64) ([]entities.ActivityLog, error) {
	query := `SELECT ` + activityFields + ` FROM activity_log ORDER BY created_at DESC LIMIT $1`
	return r.queryActivity(ctx, query, limit)
}

func (r *ActivityRepository) queryActivity(ctx context.Context, query string, args ...any) ([]entities.ActivityLog, error) {
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []entities.ActivityLog{}
	for rows.Next() {
		var entry entities.ActivityLog
		err := rows.Scan(
			&entry.ID, &entry.UserID, &entry.Action, &entry.TableName,
			&entry.RecordID, &entry.Details, &entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *ActivityRepository) InsertActivity(ctx context.Context, entry entities.ActivityLog) error {
	return insertActivity(ctx, r.storage, entry)
}

// insertActivity acepta tanto el pool como una transacción abierta.
func insertActivity(ctx context.Context, q querier, entry entities.ActivityLog) error {
	_, err := q.Exec(ctx, `
		INSERT INTO activity_log (user_id, action, table_name, record_id, details)
		VALUES ($1, $2, $3, $4, $5)`,
		entry.UserID, entry.Action, entry.TableName, entry.RecordID, entry.Details,
	)
	return err
}

func recordID(id uint64) string {
	return strconv.FormatUint(id, 10)
}
