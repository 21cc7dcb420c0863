package purchase

import (
	"time"

	"blueprint-api/internal/domain/product"

	"github.com/google/uuid"
)

// Purchase is a snapshot of one verified payment row. At most one row exists
// per (user, product) pair; repeat payments for the same product upsert it.
type Purchase struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Product     product.Type
	SessionRef  string
	AmountCents int32
	PurchasedAt time.Time
	ExpiresAt   time.Time
}

// Active reports whether the purchase still grants access at the given instant.
func (p Purchase) Active(now time.Time) bool {
	return p.ExpiresAt.After(now)
}
