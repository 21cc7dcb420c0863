package commands

import "context"

// Sender is the external send primitive. The returned id is the provider's
// message reference and is only logged.
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) (string, error)
}
