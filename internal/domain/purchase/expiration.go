package purchase

import "time"

// defaultAccessMonths is the access window granted by a fresh purchase,
// in calendar months (AddDate semantics, not fixed days).
const defaultAccessMonths = 6

func DefaultExpiration(now time.Time) time.Time {
	return now.AddDate(0, defaultAccessMonths, 0)
}

// EffectiveExpiration applies the merge-on-purchase policy: a new purchase
// never shortens the buyer's effective access window. The result is the
// later of the default window and the furthest future expiration the user
// already holds on any product.
func EffectiveExpiration(now time.Time, existing []Purchase) time.Time {
	expiresAt := DefaultExpiration(now)
	for _, p := range existing {
		if p.ExpiresAt.After(now) && p.ExpiresAt.After(expiresAt) {
			expiresAt = p.ExpiresAt
		}
	}
	return expiresAt
}
