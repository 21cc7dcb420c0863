package purchase

import (
	"time"

	"blueprint-api/internal/domain/product"
)

// HasAccess decides whether a purchase snapshot grants access to the requested
// product at the given instant. Existence of any qualifying row suffices;
// ordering of the snapshot is irrelevant. Absence of data means no access,
// never a fault, so the resolver is safe to call with a stale cache.
func HasAccess(purchases []Purchase, requested product.Type, now time.Time) bool {
	if requested.IsFree() {
		return true
	}
	for _, p := range purchases {
		if p.Product == product.TypeBundle && p.Active(now) {
			return true
		}
	}
	for _, p := range purchases {
		if p.Product == requested && p.Active(now) {
			return true
		}
	}
	return false
}
