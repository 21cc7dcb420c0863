//go:build unit || e2e

package builder

import (
	"time"

	"blueprint-api/internal/domain/email"
	"blueprint-api/internal/usecase/queries"
	"blueprint-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type EmailJobBuilder struct {
	UserID       uuid.UUID
	Email        string
	EmailType    email.Type
	TemplateName string
	ScheduledFor time.Time
	Status       string
	Attempts     int32
	Metadata     map[string]string
}

func NewEmailJobBuilder() *EmailJobBuilder {
	return &EmailJobBuilder{
		UserID:       uuid.New(),
		Email:        "test@example.com",
		EmailType:    email.TypePurchaseConfirmation,
		TemplateName: email.TemplatePurchaseConfirmation.Name(),
		ScheduledFor: time.Now().Add(-time.Minute),
		Status:       "pending",
		Metadata:     map[string]string{"product": "workbook_1"},
	}
}

func (b *EmailJobBuilder) BuildReadModel() *queries.EmailJobView {
	return &queries.EmailJobView{
		ID:           uuid.New(),
		UserID:       b.UserID,
		Email:        b.Email,
		EmailType:    b.EmailType.String(),
		TemplateName: b.TemplateName,
		ScheduledFor: b.ScheduledFor,
		Status:       b.Status,
		Attempts:     b.Attempts,
		Metadata:     b.Metadata,
		CreatedAt:    b.ScheduledFor,
		UpdatedAt:    b.ScheduledFor,
	}
}

func (b *EmailJobBuilder) BuildNewJob() shared.NewEmailJob {
	return shared.NewEmailJob{
		UserID:       b.UserID,
		Email:        b.Email,
		EmailType:    b.EmailType.String(),
		TemplateName: b.TemplateName,
		ScheduledFor: b.ScheduledFor,
		Metadata:     b.Metadata,
	}
}

// Fluent builder methods
func (b *EmailJobBuilder) WithUserID(id uuid.UUID) *EmailJobBuilder {
	b.UserID = id
	return b
}

func (b *EmailJobBuilder) WithEmail(address string) *EmailJobBuilder {
	b.Email = address
	return b
}

func (b *EmailJobBuilder) WithType(t email.Type) *EmailJobBuilder {
	b.EmailType = t
	b.TemplateName = email.TemplateKindFor(t).Name()
	return b
}

func (b *EmailJobBuilder) WithScheduledFor(t time.Time) *EmailJobBuilder {
	b.ScheduledFor = t
	return b
}

func (b *EmailJobBuilder) WithMetadata(md map[string]string) *EmailJobBuilder {
	b.Metadata = md
	return b
}
