package repository

import (
	"context"

	"flightlog-service/internal/domain/entity"
)

// LookupLogRepository defines the interface for the lookup audit trail.
type LookupLogRepository interface {
	Append(ctx context.Context, record *entity.LookupRecord) error
	FindRecent(ctx context.Context, limit int) ([]entity.LookupRecord, error)
}
