package response

import (
	"time"

	"blueprint-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type PurchaseResponse struct {
	ID          uuid.UUID `json:"id"`
	ProductType string    `json:"productType"`
	AmountCents int32     `json:"amountCents"`
	PurchasedAt time.Time `json:"purchasedAt"`
	ExpiresAt   time.Time `json:"expiresAt"`
	Active      bool      `json:"active"`
}

type VerifyPurchaseResponse struct {
	PurchaseID uuid.UUID `json:"purchaseId"`
	ExpiresAt  time.Time `json:"expiresAt"`
	Replayed   bool      `json:"replayed"`
}

func FromPurchaseView(view *queries.PurchaseView, now time.Time) *PurchaseResponse {
	return &PurchaseResponse{
		ID:          view.ID,
		ProductType: view.ProductType,
		AmountCents: view.AmountCents,
		PurchasedAt: view.PurchasedAt,
		ExpiresAt:   view.ExpiresAt,
		Active:      view.ExpiresAt.After(now),
	}
}
