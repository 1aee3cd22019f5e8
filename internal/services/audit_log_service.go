package services

import (
	"context"

	"modamart/internal/models"
	"modamart/internal/repositories"

	"github.com/google/uuid"
)

// AuditLogService records who changed what. Entries are best-effort: a
// failed audit write is logged by the caller, never surfaced to the client.
type AuditLogService interface {
	Record(ctx context.Context, userID *uuid.UUID, username, action, tableName, rowID, details string) error
	List(ctx context.Context, limit, offset int) ([]*models.AuditLog, error)
}

type auditLogService struct {
	auditRepo repositories.AuditLogRepository
}

func NewAuditLogService(auditRepo repositories.AuditLogRepository) AuditLogService {
	return &auditLogService{auditRepo: auditRepo}
}

func (s *auditLogService) Record(ctx context.Context, userID *uuid.UUID, username, action, tableName, rowID, details string) error {
	entry := &models.AuditLog{
		ID:        uuid.New(),
		UserID:    userID,
		Username:  username,
		Action:    action,
		TableName: tableName,
		RowID:     rowID,
		Details:   details,
	}
	return s.auditRepo.Create(ctx, entry)
}

func (s *auditLogService) List(ctx context.Context, limit, offset int) ([]*models.AuditLog, error) {
	return s.auditRepo.List(ctx, limit, offset)
}
