package readstore

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"blueprint-api/internal/infra"
	sqlc "blueprint-api/internal/infra/sqlc/generated"
	"blueprint-api/internal/pkg/pgconv"
	"blueprint-api/internal/usecase/queries"
)

type EmailLogReadQueries interface {
	EmailLogExists(ctx context.Context, db sqlc.DBTX, arg sqlc.EmailLogExistsParams) (bool, error)
	GetEmailLogsByUserID(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.EmailLogs, error)
}

type EmailLogReadStore struct {
	queries EmailLogReadQueries
	db      sqlc.DBTX
}

func NewEmailLogReadStore(queries EmailLogReadQueries, db sqlc.DBTX) *EmailLogReadStore {
	return &EmailLogReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *EmailLogReadStore) Exists(ctx context.Context, userID uuid.UUID, emailType string) (bool, error) {
	exists, err := s.queries.EmailLogExists(ctx, s.db, sqlc.EmailLogExistsParams{
		UserID:    userID,
		EmailType: emailType,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check email log", err)
	}
	return exists, nil
}

func (s *EmailLogReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.EmailLogView, error) {
	rows, err := s.queries.GetEmailLogsByUserID(ctx, s.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get email logs by user", err)
	}

	result := make([]*queries.EmailLogView, len(rows))
	for i, row := range rows {
		view := &queries.EmailLogView{
			ID:        row.ID,
			UserID:    row.UserID,
			EmailType: row.EmailType,
			Email:     row.Email,
			SentAt:    pgconv.TimeFromPgtype(row.SentAt),
		}
		if len(row.Metadata) > 0 {
			_ = json.Unmarshal(row.Metadata, &view.Metadata)
		}
		result[i] = view
	}
	return result, nil
}
