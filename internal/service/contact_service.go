package service

import (
	"context"
	"fmt"
	"log"

	"folio/internal/domain"
	"folio/internal/port"
)

// ContactInput is the DTO for public contact form submissions.
type ContactInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// ContactService delivers contact form submissions to the site owner.
type ContactService interface {
	Send(ctx context.Context, input ContactInput) error
}

type contactService struct {
	sender port.EmailSender
}

// NewContactService creates a new ContactService implementation.
func NewContactService(sender port.EmailSender) ContactService {
	return &contactService{sender: sender}
}

func (s *contactService) Send(ctx context.Context, input ContactInput) error {
	msg := port.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	}
	if err := s.sender.SendContactEmail(ctx, msg); err != nil {
		log.Printf("contactService.Send: delivery failed for %s: %v", input.Email, err)
		return fmt.Errorf("%w: %v", domain.ErrEmailSendFailed, err)
	}
	return nil
}
