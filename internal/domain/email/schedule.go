package email

import (
	"time"

	"blueprint-api/internal/domain/product"
)

// expiryWarningLead is how long before access expiry the warning goes out.
const expiryWarningLead = 14 * 24 * time.Hour

// ScheduledSend is one planned follow-up produced at purchase time.
type ScheduledSend struct {
	Type         Type
	TemplateKind TemplateKind
	ScheduledFor time.Time
}

// Schedule returns the fixed follow-up sequence for a verified purchase.
// Offsets are relative to the purchase instant, except the expiry warning
// which anchors on the effective expiration.
func Schedule(p product.Type, now, expiresAt time.Time) []ScheduledSend {
	if p == product.TypeWebinar {
		return []ScheduledSend{
			{Type: TypePurchaseConfirmation, TemplateKind: TemplatePurchaseConfirmation, ScheduledFor: now},
			{Type: TypeWebinarConfirmation, TemplateKind: TemplateWebinarConfirmation, ScheduledFor: now},
			{Type: TypeWebinarReminder, TemplateKind: TemplateWebinarReminder, ScheduledFor: now.Add(24 * time.Hour)},
		}
	}

	sends := []ScheduledSend{
		{Type: TypePurchaseConfirmation, TemplateKind: TemplatePurchaseConfirmation, ScheduledFor: now},
		{Type: TypeGettingStarted, TemplateKind: TemplateGettingStarted, ScheduledFor: now.Add(72 * time.Hour)},
	}

	warnAt := expiresAt.Add(-expiryWarningLead)
	if warnAt.After(now) {
		sends = append(sends, ScheduledSend{Type: TypeExpiryWarning, TemplateKind: TemplateExpiryWarning, ScheduledFor: warnAt})
	}
	return sends
}
