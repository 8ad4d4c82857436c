package noop

import (
	"context"
	"log"

	"folio/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs contact submissions to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendContactEmail(_ context.Context, msg port.ContactMessage) error {
	log.Printf("[NOOP EMAIL] Contact form from %s <%s>: %s", msg.Name, msg.Email, msg.Subject)
	return nil
}
