package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"folio/internal/domain"
	"folio/internal/service"
	"folio/mocks"
)

func TestClientService_Upsert_Create(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	svc := service.NewClientService(repo)

	repo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Client")).Return(true, nil)

	ownerID := uuid.New()
	client, created, err := svc.Upsert(context.Background(), ownerID, service.UpsertClientInput{
		Name:  "Acme Corp",
		Email: "billing@acme.com",
	})

	assert.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, ownerID, client.OwnerID)
	assert.Equal(t, "Acme Corp", client.Name)
	repo.AssertExpectations(t)
}

func TestClientService_Upsert_UpdateWithID(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	svc := service.NewClientService(repo)

	clientID := uuid.New()
	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(c *domain.Client) bool {
		return c.ID == clientID
	})).Return(false, nil)

	client, created, err := svc.Upsert(context.Background(), uuid.New(), service.UpsertClientInput{
		ID:    &clientID,
		Name:  "Acme Corp",
		Email: "billing@acme.com",
	})

	assert.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, clientID, client.ID)
}

func TestClientService_Delete_InUse(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	svc := service.NewClientService(repo)

	ownerID := uuid.New()
	clientID := uuid.New()
	repo.On("Delete", mock.Anything, ownerID, clientID).Return(domain.ErrClientInUse)

	err := svc.Delete(context.Background(), ownerID, clientID)

	assert.ErrorIs(t, err, domain.ErrClientInUse)
}

func TestClientService_GetByID_NotFound(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	svc := service.NewClientService(repo)

	ownerID := uuid.New()
	clientID := uuid.New()
	repo.On("GetByID", mock.Anything, ownerID, clientID).Return(nil, domain.ErrNotFound)

	client, err := svc.GetByID(context.Background(), ownerID, clientID)

	assert.Nil(t, client)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
