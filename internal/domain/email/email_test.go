//go:build unit

package email_test

import (
	"strings"
	"testing"
	"time"

	"blueprint-api/internal/domain/email"
	"blueprint-api/internal/domain/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubject(t *testing.T) {
	assert.Equal(t, "Your Brand Blueprint purchase is confirmed", email.Subject(email.TypePurchaseConfirmation))
	assert.Equal(t, "Your workbook access expires soon", email.Subject(email.TypeExpiryWarning))
	assert.Equal(t, email.DefaultSubject, email.Subject(email.Type("totally_unknown")))
	assert.Equal(t, email.DefaultSubject, email.Subject(email.Type("")))
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name        string
		profileName string
		address     string
		want        string
	}{
		{"profile name wins", "Jordan", "jordan@example.com", "Jordan"},
		{"whitespace-only profile name falls back", "   ", "jordan@example.com", "jordan"},
		{"empty profile name uses local part", "", "sam.smith@example.com", "sam.smith"},
		{"address without at-sign used as-is", "", "not-an-address", "not-an-address"},
		{"leading at-sign keeps full string", "", "@example.com", "@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, email.DisplayName(tt.profileName, tt.address))
		})
	}
}

func TestSchedule(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("workbook purchase gets confirmation, follow-up, and expiry warning", func(t *testing.T) {
		expiresAt := now.AddDate(0, 6, 0)
		sends := email.Schedule(product.TypeWorkbook1, now, expiresAt)
		require.Len(t, sends, 3)

		assert.Equal(t, email.TypePurchaseConfirmation, sends[0].Type)
		assert.Equal(t, now, sends[0].ScheduledFor)

		assert.Equal(t, email.TypeGettingStarted, sends[1].Type)
		assert.Equal(t, now.Add(72*time.Hour), sends[1].ScheduledFor)

		assert.Equal(t, email.TypeExpiryWarning, sends[2].Type)
		assert.Equal(t, expiresAt.Add(-14*24*time.Hour), sends[2].ScheduledFor)
	})

	t.Run("expiry warning dropped when it would already be in the past", func(t *testing.T) {
		expiresAt := now.Add(7 * 24 * time.Hour)
		sends := email.Schedule(product.TypeWorkbook1, now, expiresAt)
		require.Len(t, sends, 2)
		for _, s := range sends {
			assert.NotEqual(t, email.TypeExpiryWarning, s.Type)
		}
	})

	t.Run("webinar purchase gets both confirmations and the reminder", func(t *testing.T) {
		sends := email.Schedule(product.TypeWebinar, now, now.AddDate(0, 6, 0))
		require.Len(t, sends, 3)

		assert.Equal(t, email.TypePurchaseConfirmation, sends[0].Type)
		assert.Equal(t, now, sends[0].ScheduledFor)

		assert.Equal(t, email.TypeWebinarConfirmation, sends[1].Type)
		assert.Equal(t, now, sends[1].ScheduledFor)

		assert.Equal(t, email.TypeWebinarReminder, sends[2].Type)
		assert.Equal(t, now.Add(24*time.Hour), sends[2].ScheduledFor)
	})

	t.Run("bundle follows the workbook sequence", func(t *testing.T) {
		sends := email.Schedule(product.TypeBundle, now, now.AddDate(0, 6, 0))
		require.Len(t, sends, 3)
		assert.Equal(t, email.TypePurchaseConfirmation, sends[0].Type)
	})
}

func TestRender(t *testing.T) {
	data := email.TemplateData{
		DisplayName: "Jordan",
		Metadata: map[string]string{
			"product":    "workbook_1",
			"expires_at": "December 15, 2025",
		},
	}

	t.Run("purchase confirmation includes product and expiry", func(t *testing.T) {
		body, err := email.Render(email.TemplatePurchaseConfirmation, data)
		require.NoError(t, err)
		assert.Contains(t, body, "Hi Jordan,")
		assert.Contains(t, body, "workbook_1")
		assert.Contains(t, body, "December 15, 2025")
	})

	t.Run("missing metadata renders without the optional block", func(t *testing.T) {
		body, err := email.Render(email.TemplatePurchaseConfirmation, email.TemplateData{DisplayName: "Jordan"})
		require.NoError(t, err)
		assert.NotContains(t, body, "Your access runs until")
	})

	t.Run("unknown kind falls back to generic body", func(t *testing.T) {
		body, err := email.Render(email.TemplateKind(99), data)
		require.NoError(t, err)
		assert.Contains(t, body, "We have an update for you")
	})

	t.Run("html in display name is escaped", func(t *testing.T) {
		body, err := email.Render(email.TemplateGeneric, email.TemplateData{DisplayName: "<script>x</script>"})
		require.NoError(t, err)
		assert.False(t, strings.Contains(body, "<script>"))
	})
}

func TestParseTemplateKind(t *testing.T) {
	assert.Equal(t, email.TemplateExpiryWarning, email.ParseTemplateKind("expiry_warning"))
	assert.Equal(t, email.TemplateGeneric, email.ParseTemplateKind("never_heard_of_it"))
	assert.Equal(t, "purchase_confirmation", email.TemplateKindFor(email.TypePurchaseConfirmation).Name())
	assert.Equal(t, "generic", email.TemplateKind(42).Name())
}
