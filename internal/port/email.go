package port

import "context"

// ContactMessage is a submission from the public contact form.
type ContactMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// EmailSender defines the contract for outbound email delivery.
type EmailSender interface {
	SendContactEmail(ctx context.Context, msg ContactMessage) error
}
