package email

import (
	"bytes"
	"html/template"

	"blueprint-api/internal/pkg/errs"
)

// TemplateKind is a closed set of known HTML bodies. Rendering dispatches by
// exhaustive switch, so a kind without a body cannot compile.
type TemplateKind int

const (
	TemplateGeneric TemplateKind = iota
	TemplatePurchaseConfirmation
	TemplateGettingStarted
	TemplateExpiryWarning
	TemplateWebinarConfirmation
	TemplateWebinarReminder
)

var templateNames = map[TemplateKind]string{
	TemplateGeneric:              "generic",
	TemplatePurchaseConfirmation: "purchase_confirmation",
	TemplateGettingStarted:       "getting_started",
	TemplateExpiryWarning:        "expiry_warning",
	TemplateWebinarConfirmation:  "webinar_confirmation",
	TemplateWebinarReminder:      "webinar_reminder",
}

func (k TemplateKind) Name() string {
	if n, ok := templateNames[k]; ok {
		return n
	}
	return "generic"
}

// ParseTemplateKind maps a stored template name back to its kind. Names the
// closed set does not know fall back to the generic body.
func ParseTemplateKind(name string) TemplateKind {
	for k, n := range templateNames {
		if n == name {
			return k
		}
	}
	return TemplateGeneric
}

// TemplateKindFor picks the body for a notification kind.
func TemplateKindFor(t Type) TemplateKind {
	switch t {
	case TypePurchaseConfirmation:
		return TemplatePurchaseConfirmation
	case TypeGettingStarted:
		return TemplateGettingStarted
	case TypeExpiryWarning:
		return TemplateExpiryWarning
	case TypeWebinarConfirmation:
		return TemplateWebinarConfirmation
	case TypeWebinarReminder:
		return TemplateWebinarReminder
	default:
		return TemplateGeneric
	}
}

// TemplateData is what every body template receives.
type TemplateData struct {
	DisplayName string
	Metadata    map[string]string
}

const (
	genericBody = `<html><body>
<p>Hi {{.DisplayName}},</p>
<p>We have an update for you on your Brand Blueprint account.</p>
<p>— The Brand Blueprint team</p>
</body></html>`

	purchaseConfirmationBody = `<html><body>
<p>Hi {{.DisplayName}},</p>
<p>Thanks for your purchase! Your <strong>{{index .Metadata "product"}}</strong> is ready.</p>
{{with index .Metadata "expires_at"}}<p>Your access runs until {{.}}.</p>{{end}}
<p>— The Brand Blueprint team</p>
</body></html>`

	gettingStartedBody = `<html><body>
<p>Hi {{.DisplayName}},</p>
<p>A few days in is the perfect time to open your workbook and fill in the first section. Small steps beat perfect plans.</p>
<p>— The Brand Blueprint team</p>
</body></html>`

	expiryWarningBody = `<html><body>
<p>Hi {{.DisplayName}},</p>
<p>Your access to <strong>{{index .Metadata "product"}}</strong> expires soon{{with index .Metadata "expires_at"}} (on {{.}}){{end}}. Export your worksheets or renew to keep editing.</p>
<p>— The Brand Blueprint team</p>
</body></html>`

	webinarConfirmationBody = `<html><body>
<p>Hi {{.DisplayName}},</p>
<p>You're in! Your webinar seat is confirmed. We'll send a reminder before it starts.</p>
<p>— The Brand Blueprint team</p>
</body></html>`

	webinarReminderBody = `<html><body>
<p>Hi {{.DisplayName}},</p>
<p>Quick reminder: your brand webinar is coming up. Check your confirmation email for the join link.</p>
<p>— The Brand Blueprint team</p>
</body></html>`
)

var bodyTemplates = map[TemplateKind]*template.Template{
	TemplateGeneric:              template.Must(template.New("generic").Parse(genericBody)),
	TemplatePurchaseConfirmation: template.Must(template.New("purchase_confirmation").Parse(purchaseConfirmationBody)),
	TemplateGettingStarted:       template.Must(template.New("getting_started").Parse(gettingStartedBody)),
	TemplateExpiryWarning:        template.Must(template.New("expiry_warning").Parse(expiryWarningBody)),
	TemplateWebinarConfirmation:  template.Must(template.New("webinar_confirmation").Parse(webinarConfirmationBody)),
	TemplateWebinarReminder:      template.Must(template.New("webinar_reminder").Parse(webinarReminderBody)),
}

// Render produces the HTML body for a kind.
func Render(kind TemplateKind, data TemplateData) (string, error) {
	var tmpl *template.Template
	switch kind {
	case TemplatePurchaseConfirmation:
		tmpl = bodyTemplates[TemplatePurchaseConfirmation]
	case TemplateGettingStarted:
		tmpl = bodyTemplates[TemplateGettingStarted]
	case TemplateExpiryWarning:
		tmpl = bodyTemplates[TemplateExpiryWarning]
	case TemplateWebinarConfirmation:
		tmpl = bodyTemplates[TemplateWebinarConfirmation]
	case TemplateWebinarReminder:
		tmpl = bodyTemplates[TemplateWebinarReminder]
	default:
		tmpl = bodyTemplates[TemplateGeneric]
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errs.Wrap(err, "failed to render email body")
	}
	return buf.String(), nil
}
