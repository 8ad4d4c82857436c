package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"folio/internal/domain"
	"folio/internal/port"
	"folio/internal/service"
	"folio/mocks"
)

func TestContactService_Send_Success(t *testing.T) {
	sender := new(mocks.MockEmailSender)
	svc := service.NewContactService(sender)

	sender.On("SendContactEmail", mock.Anything, mock.MatchedBy(func(msg port.ContactMessage) bool {
		return msg.Name == "Sam Okafor" && msg.Email == "sam@example.com" && msg.Subject == "Project inquiry"
	})).Return(nil)

	err := svc.Send(context.Background(), service.ContactInput{
		Name:    "Sam Okafor",
		Email:   "sam@example.com",
		Subject: "Project inquiry",
		Message: "Hi, I'd like to discuss a website build.",
	})

	assert.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestContactService_Send_DeliveryFailure(t *testing.T) {
	sender := new(mocks.MockEmailSender)
	svc := service.NewContactService(sender)

	sender.On("SendContactEmail", mock.Anything, mock.AnythingOfType("port.ContactMessage")).
		Return(errors.New("ses throttled"))

	err := svc.Send(context.Background(), service.ContactInput{
		Name:    "Sam Okafor",
		Email:   "sam@example.com",
		Subject: "Project inquiry",
		Message: "Hello",
	})

	assert.ErrorIs(t, err, domain.ErrEmailSendFailed)
}
