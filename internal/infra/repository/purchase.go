package repository

import (
	"context"
	"time"

	"blueprint-api/internal/domain/purchase"
	"blueprint-api/internal/infra"
	sqlc "blueprint-api/internal/infra/sqlc/generated"
	"blueprint-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PurchaseWriteQueries interface {
	UpsertPurchase(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertPurchaseParams) (sqlc.Purchases, error)
	RaisePurchaseExpirations(ctx context.Context, db sqlc.DBTX, arg sqlc.RaisePurchaseExpirationsParams) (int64, error)
}

type PurchaseRepository struct {
	queries PurchaseWriteQueries
}

func NewPurchaseRepository(queries PurchaseWriteQueries) *PurchaseRepository {
	return &PurchaseRepository{
		queries: queries,
	}
}

func (r *PurchaseRepository) Upsert(ctx context.Context, tx sqlc.DBTX, p *purchase.Purchase) (uuid.UUID, error) {
	params := sqlc.UpsertPurchaseParams{
		UserID:      p.UserID,
		ProductType: p.Product.String(),
		SessionRef:  p.SessionRef,
		AmountCents: p.AmountCents,
		PurchasedAt: pgconv.TimeToPgtype(p.PurchasedAt),
		ExpiresAt:   pgconv.TimeToPgtype(p.ExpiresAt),
	}

	row, err := r.queries.UpsertPurchase(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert purchase", err)
	}

	return row.ID, nil
}

func (r *PurchaseRepository) RaiseExpirations(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, expiresAt time.Time) (int64, error) {
	params := sqlc.RaisePurchaseExpirationsParams{
		UserID:    userID,
		ExpiresAt: pgconv.TimeToPgtype(expiresAt),
	}

	count, err := r.queries.RaisePurchaseExpirations(ctx, tx, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to raise purchase expirations", err)
	}

	return count, nil
}
