package queries

import (
	"context"
	"log/slog"

	"blueprint-api/internal/domain/product"
	"blueprint-api/internal/domain/purchase"
	"blueprint-api/internal/pkg/clock"

	"github.com/google/uuid"
)

type PurchaseReadStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*PurchaseView, error)
	SnapshotByUserID(ctx context.Context, userID uuid.UUID) ([]purchase.Purchase, error)
}

// ProductAccess pairs a catalog entry with the caller's current entitlement.
type ProductAccess struct {
	ProductType string `json:"product_type"`
	HasAccess   bool   `json:"has_access"`
}

type EntitlementQueries interface {
	// HasAccess never fails: a store error is logged and reported as no access.
	HasAccess(ctx context.Context, userID uuid.UUID, requested product.Type) bool
	Catalog(ctx context.Context, userID uuid.UUID) []ProductAccess
	ListPurchases(ctx context.Context, userID uuid.UUID) ([]*PurchaseView, error)
}

type entitlementQueriesImpl struct {
	readStore PurchaseReadStore
	clock     clock.Clock
}

func NewEntitlementQueries(readStore PurchaseReadStore, clock clock.Clock) EntitlementQueries {
	return &entitlementQueriesImpl{
		readStore: readStore,
		clock:     clock,
	}
}

func (q *entitlementQueriesImpl) HasAccess(ctx context.Context, userID uuid.UUID, requested product.Type) bool {
	if requested.IsFree() {
		return true
	}

	snapshot, err := q.readStore.SnapshotByUserID(ctx, userID)
	if err != nil {
		slog.Warn("failed to load purchase snapshot, denying access",
			"user_id", userID, "product_type", requested.String(), "error", err.Error())
		return false
	}

	return purchase.HasAccess(snapshot, requested, q.clock.Now())
}

func (q *entitlementQueriesImpl) Catalog(ctx context.Context, userID uuid.UUID) []ProductAccess {
	now := q.clock.Now()

	snapshot, err := q.readStore.SnapshotByUserID(ctx, userID)
	if err != nil {
		slog.Warn("failed to load purchase snapshot for catalog",
			"user_id", userID, "error", err.Error())
		snapshot = nil
	}

	types := product.All()
	result := make([]ProductAccess, len(types))
	for i, t := range types {
		result[i] = ProductAccess{
			ProductType: t.String(),
			HasAccess:   purchase.HasAccess(snapshot, t, now),
		}
	}
	return result
}

func (q *entitlementQueriesImpl) ListPurchases(ctx context.Context, userID uuid.UUID) ([]*PurchaseView, error) {
	return q.readStore.FindByUserID(ctx, userID)
}
