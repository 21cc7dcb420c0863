package readstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"blueprint-api/internal/infra"
	sqlc "blueprint-api/internal/infra/sqlc/generated"
	"blueprint-api/internal/pkg/pgconv"
	"blueprint-api/internal/usecase/queries"
)

type EmailJobReadQueries interface {
	GetEmailJobByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.EmailJobs, error)
	GetDueEmailJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.GetDueEmailJobsParams) ([]sqlc.EmailJobs, error)
	GetEmailJobsByUserIDFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.GetEmailJobsByUserIDFirstPageParams) ([]sqlc.EmailJobs, error)
	GetEmailJobsByUserIDKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.GetEmailJobsByUserIDKeysetParams) ([]sqlc.EmailJobs, error)
}

type EmailJobReadStore struct {
	queries EmailJobReadQueries
	db      sqlc.DBTX
}

func NewEmailJobReadStore(queries EmailJobReadQueries, db sqlc.DBTX) *EmailJobReadStore {
	return &EmailJobReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *EmailJobReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EmailJobView, error) {
	row, err := s.queries.GetEmailJobByID(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("email job not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get email job", err)
	}
	return toEmailJobViewFromRow(row), nil
}

func (s *EmailJobReadStore) FindDue(ctx context.Context, now time.Time, limit int32) ([]*queries.EmailJobView, error) {
	rows, err := s.queries.GetDueEmailJobs(ctx, s.db, sqlc.GetDueEmailJobsParams{
		ScheduledFor: pgconv.TimeToPgtype(now),
		Limit:        limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get due email jobs", err)
	}
	return toEmailJobViews(rows), nil
}

func (s *EmailJobReadStore) FindByUserIDFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.EmailJobView, error) {
	rows, err := s.queries.GetEmailJobsByUserIDFirstPage(ctx, s.db, sqlc.GetEmailJobsByUserIDFirstPageParams{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get email jobs first page", err)
	}
	return toEmailJobViews(rows), nil
}

func (s *EmailJobReadStore) FindByUserIDKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.EmailJobView, error) {
	rows, err := s.queries.GetEmailJobsByUserIDKeyset(ctx, s.db, sqlc.GetEmailJobsByUserIDKeysetParams{
		UserID:    userID,
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get email jobs keyset page", err)
	}
	return toEmailJobViews(rows), nil
}

func toEmailJobViews(rows []sqlc.EmailJobs) []*queries.EmailJobView {
	result := make([]*queries.EmailJobView, len(rows))
	for i, row := range rows {
		result[i] = toEmailJobViewFromRow(row)
	}
	return result
}

func toEmailJobViewFromRow(row sqlc.EmailJobs) *queries.EmailJobView {
	view := &queries.EmailJobView{
		ID:           row.ID,
		UserID:       row.UserID,
		Email:        row.Email,
		EmailType:    row.EmailType,
		TemplateName: row.TemplateName,
		ScheduledFor: pgconv.TimeFromPgtype(row.ScheduledFor),
		Status:       row.Status,
		Attempts:     row.Attempts,
		ErrorMessage: pgconv.StringPtrFromPgtype(row.ErrorMessage),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}

	if row.SentAt.Valid {
		sentAt := row.SentAt.Time
		view.SentAt = &sentAt
	}

	if len(row.Metadata) > 0 {
		// Metadata is stored as a flat string map; anything else is left nil.
		_ = json.Unmarshal(row.Metadata, &view.Metadata)
	}

	return view
}
