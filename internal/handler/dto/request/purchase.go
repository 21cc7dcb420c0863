package request

import "strings"

// VerifyPurchaseRequest is the payment-callback body. The session ref is the
// opaque reference of the already-verified payment session; the same ref may
// be retried and must resolve to the same purchase.
type VerifyPurchaseRequest struct {
	ProductType string `json:"product_type" binding:"required"`
	SessionRef  string `json:"session_ref" binding:"required"`
	AmountCents int32  `json:"amount_cents" binding:"required,min=0"`
}

func (r VerifyPurchaseRequest) TrimmedSessionRef() string {
	return strings.TrimSpace(r.SessionRef)
}
