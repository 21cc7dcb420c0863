package email

// Type is the fixed set of outbound notification kinds.
type Type string

const (
	TypePurchaseConfirmation Type = "purchase_confirmation"
	TypeGettingStarted       Type = "getting_started"
	TypeExpiryWarning        Type = "expiry_warning"
	TypeWebinarConfirmation  Type = "webinar_confirmation"
	TypeWebinarReminder      Type = "webinar_reminder"
)

func (t Type) String() string {
	return string(t)
}

// DefaultSubject is used when a job carries an email type the subject table
// does not know. Unknown types degrade to this, never to an error.
const DefaultSubject = "An update from Brand Blueprint"

var subjects = map[Type]string{
	TypePurchaseConfirmation: "Your Brand Blueprint purchase is confirmed",
	TypeGettingStarted:       "Getting started with your workbook",
	TypeExpiryWarning:        "Your workbook access expires soon",
	TypeWebinarConfirmation:  "You're registered for the brand webinar",
	TypeWebinarReminder:      "Your webinar starts soon",
}

func Subject(t Type) string {
	if s, ok := subjects[t]; ok {
		return s
	}
	return DefaultSubject
}
