package entities

import "time"

// Acciones registradas en la bitácora.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// ActivityLog es un registro de auditoría de solo inserción.
type ActivityLog struct {
	ID        uint64    `json:"id" db:"id"`
	UserID    uint64    `json:"user_id" db:"user_id"`
	Action    string    `json:"action" db:"action"`
	TableName string    `json:"table_name" db:"table_name"`
	RecordID  string    `json:"record_id" db:"record_id"`
	Details   string    `json:"details" db:"details"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
