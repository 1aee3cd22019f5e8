package models

import (
	"time"

	"github.com/google/uuid"
)

type AuditLog struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	UserID    *uuid.UUID `json:"user_id" db:"user_id"`
	Username  string     `json:"username" db:"username"`
	Action    string     `json:"action" db:"action"`
	TableName string     `json:"table_name" db:"table_name"`
	RowID     string     `json:"row_id" db:"row_id"`
	Details   string     `json:"details" db:"details"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}
