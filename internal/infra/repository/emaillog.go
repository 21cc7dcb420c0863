package repository

import (
	"context"
	"encoding/json"

	"blueprint-api/internal/infra"
	sqlc "blueprint-api/internal/infra/sqlc/generated"
	"blueprint-api/internal/pkg/pgconv"
	"blueprint-api/internal/usecase/shared"
)

type EmailLogWriteQueries interface {
	CreateEmailLog(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateEmailLogParams) error
}

type EmailLogRepository struct {
	queries EmailLogWriteQueries
}

func NewEmailLogRepository(queries EmailLogWriteQueries) *EmailLogRepository {
	return &EmailLogRepository{
		queries: queries,
	}
}

// Create appends to the dedup ledger. The insert is conflict-tolerant: a
// second append for the same user and email type is a no-op, not an error.
func (r *EmailLogRepository) Create(ctx context.Context, tx sqlc.DBTX, entry shared.NewEmailLog) error {
	metadata, err := json.Marshal(entry.Metadata)
	if err != nil {
		return infra.WrapRepoErr("failed to encode email log metadata", err)
	}

	params := sqlc.CreateEmailLogParams{
		UserID:    entry.UserID,
		EmailType: entry.EmailType,
		Email:     entry.Email,
		Metadata:  metadata,
		SentAt:    pgconv.TimeToPgtype(entry.SentAt),
	}

	if err := r.queries.CreateEmailLog(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create email log", err)
	}
	return nil
}
