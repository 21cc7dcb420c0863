package readstore

import (
	"context"

	"github.com/google/uuid"

	"blueprint-api/internal/domain/product"
	"blueprint-api/internal/domain/purchase"
	"blueprint-api/internal/infra"
	sqlc "blueprint-api/internal/infra/sqlc/generated"
	"blueprint-api/internal/pkg/pgconv"
	"blueprint-api/internal/usecase/queries"
)

type PurchaseReadQueries interface {
	GetPurchasesByUserID(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.Purchases, error)
}

type PurchaseReadStore struct {
	queries PurchaseReadQueries
	db      sqlc.DBTX
}

func NewPurchaseReadStore(queries PurchaseReadQueries, db sqlc.DBTX) *PurchaseReadStore {
	return &PurchaseReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *PurchaseReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.PurchaseView, error) {
	rows, err := s.queries.GetPurchasesByUserID(ctx, s.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get purchases by user", err)
	}

	result := make([]*queries.PurchaseView, len(rows))
	for i, row := range rows {
		result[i] = toPurchaseViewFromRow(row)
	}
	return result, nil
}

// SnapshotByUserID returns domain entities for the entitlement resolver.
// Rows carrying a product type the catalog no longer knows are skipped
// rather than failing the whole read.
func (s *PurchaseReadStore) SnapshotByUserID(ctx context.Context, userID uuid.UUID) ([]purchase.Purchase, error) {
	rows, err := s.queries.GetPurchasesByUserID(ctx, s.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get purchase snapshot", err)
	}

	snapshot := make([]purchase.Purchase, 0, len(rows))
	for _, row := range rows {
		productType, parseErr := product.Parse(row.ProductType)
		if parseErr != nil {
			continue
		}
		snapshot = append(snapshot, purchase.Purchase{
			ID:          row.ID,
			UserID:      row.UserID,
			Product:     productType,
			SessionRef:  row.SessionRef,
			AmountCents: row.AmountCents,
			PurchasedAt: pgconv.TimeFromPgtype(row.PurchasedAt),
			ExpiresAt:   pgconv.TimeFromPgtype(row.ExpiresAt),
		})
	}
	return snapshot, nil
}

func toPurchaseViewFromRow(row sqlc.Purchases) *queries.PurchaseView {
	return &queries.PurchaseView{
		ID:          row.ID,
		UserID:      row.UserID,
		ProductType: row.ProductType,
		SessionRef:  row.SessionRef,
		AmountCents: row.AmountCents,
		PurchasedAt: pgconv.TimeFromPgtype(row.PurchasedAt),
		ExpiresAt:   pgconv.TimeFromPgtype(row.ExpiresAt),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
