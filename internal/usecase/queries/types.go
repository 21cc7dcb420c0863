package queries

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseView represents read-optimized purchase data
type PurchaseView struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	ProductType string    `json:"product_type"`
	SessionRef  string    `json:"session_ref"`
	AmountCents int32     `json:"amount_cents"`
	PurchasedAt time.Time `json:"purchased_at"`
	ExpiresAt   time.Time `json:"expires_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EmailJobView represents read-optimized email job data
type EmailJobView struct {
	ID           uuid.UUID         `json:"id"`
	UserID       uuid.UUID         `json:"user_id"`
	Email        string            `json:"email"`
	EmailType    string            `json:"email_type"`
	TemplateName string            `json:"template_name"`
	ScheduledFor time.Time         `json:"scheduled_for"`
	Status       string            `json:"status"`
	Attempts     int32             `json:"attempts"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	ErrorMessage *string           `json:"error_message,omitempty"`
	SentAt       *time.Time        `json:"sent_at,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// EmailLogView represents one row of the dedup ledger
type EmailLogView struct {
	ID        uuid.UUID         `json:"id"`
	UserID    uuid.UUID         `json:"user_id"`
	EmailType string            `json:"email_type"`
	Email     string            `json:"email"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	SentAt    time.Time         `json:"sent_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     *string   `json:"name,omitempty"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
