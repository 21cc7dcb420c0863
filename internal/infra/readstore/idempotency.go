package readstore

import (
	"context"

	"github.com/google/uuid"

	"blueprint-api/internal/infra"
	sqlc "blueprint-api/internal/infra/sqlc/generated"
	"blueprint-api/internal/pkg/pgconv"
	"blueprint-api/internal/usecase/shared"
)

type IdempotencyReadQueries interface {
	GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIdempotencyKeyParams) (sqlc.IdempotencyKeys, error)
}

type IdempotencyReadStore struct {
	queries IdempotencyReadQueries
}

func NewIdempotencyReadStore(queries IdempotencyReadQueries) *IdempotencyReadStore {
	return &IdempotencyReadStore{
		queries: queries,
	}
}

// Get reads through the caller's transaction so a key inserted earlier in the
// same transaction is visible.
func (s *IdempotencyReadStore) Get(ctx context.Context, db sqlc.DBTX, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	row, err := s.queries.GetIdempotencyKey(ctx, db, sqlc.GetIdempotencyKeyParams{
		Key:    key,
		UserID: userID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	return &shared.IdempotencyRecord{
		Key:              row.Key,
		UserID:           row.UserID,
		Status:           row.Status,
		RequestHash:      row.RequestHash,
		ResultPurchaseID: pgconv.UUIDPtrFromPgtype(row.ResultPurchaseID),
		ExpiresAt:        pgconv.TimeFromPgtype(row.ExpiresAt),
	}, nil
}
