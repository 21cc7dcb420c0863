//go:build unit || e2e

package builder

import (
	"time"

	"blueprint-api/internal/domain/product"
	"blueprint-api/internal/domain/purchase"
	"blueprint-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type PurchaseBuilder struct {
	UserID      uuid.UUID
	Product     product.Type
	SessionRef  string
	AmountCents int32
	PurchasedAt time.Time
	ExpiresAt   time.Time
}

func NewPurchaseBuilder() *PurchaseBuilder {
	now := time.Now()
	return &PurchaseBuilder{
		UserID:      uuid.New(),
		Product:     product.TypeWorkbook1,
		SessionRef:  "cs_test_" + uuid.NewString(),
		AmountCents: 4900,
		PurchasedAt: now,
		ExpiresAt:   now.AddDate(0, 6, 0),
	}
}

func (b *PurchaseBuilder) BuildDomain() purchase.Purchase {
	return purchase.Purchase{
		ID:          uuid.New(),
		UserID:      b.UserID,
		Product:     b.Product,
		SessionRef:  b.SessionRef,
		AmountCents: b.AmountCents,
		PurchasedAt: b.PurchasedAt,
		ExpiresAt:   b.ExpiresAt,
	}
}

func (b *PurchaseBuilder) BuildReadModel() *queries.PurchaseView {
	return &queries.PurchaseView{
		ID:          uuid.New(),
		UserID:      b.UserID,
		ProductType: b.Product.String(),
		SessionRef:  b.SessionRef,
		AmountCents: b.AmountCents,
		PurchasedAt: b.PurchasedAt,
		ExpiresAt:   b.ExpiresAt,
		CreatedAt:   b.PurchasedAt,
		UpdatedAt:   b.PurchasedAt,
	}
}

// Fluent builder methods
func (b *PurchaseBuilder) WithUserID(id uuid.UUID) *PurchaseBuilder {
	b.UserID = id
	return b
}

func (b *PurchaseBuilder) WithProduct(t product.Type) *PurchaseBuilder {
	b.Product = t
	return b
}

func (b *PurchaseBuilder) WithSessionRef(ref string) *PurchaseBuilder {
	b.SessionRef = ref
	return b
}

func (b *PurchaseBuilder) WithExpiresAt(t time.Time) *PurchaseBuilder {
	b.ExpiresAt = t
	return b
}

func (b *PurchaseBuilder) Expired(now time.Time) *PurchaseBuilder {
	b.PurchasedAt = now.AddDate(0, -7, 0)
	b.ExpiresAt = now.AddDate(0, -1, 0)
	return b
}
