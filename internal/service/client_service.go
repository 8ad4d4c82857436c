package service

import (
	"context"

	"github.com/google/uuid"

	"folio/internal/domain"
	"folio/internal/port"
)

// UpsertClientInput is the DTO for creating or updating a client.
// An empty ID creates; a present ID updates in place.
type UpsertClientInput struct {
	ID      *uuid.UUID `json:"id"`
	Name    string     `json:"name" binding:"required"`
	Email   string     `json:"email" binding:"required,email"`
	Phone   string     `json:"phone"`
	Address string     `json:"address"`
	City    string     `json:"city"`
	State   string     `json:"state"`
	ZipCode string     `json:"zip_code"`
	Country string     `json:"country"`
	TaxID   string     `json:"tax_id"`
}

// ClientService defines the client registry contract.
type ClientService interface {
	Upsert(ctx context.Context, ownerID uuid.UUID, input UpsertClientInput) (*domain.Client, bool, error)
	GetByID(ctx context.Context, ownerID, clientID uuid.UUID) (*domain.Client, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]domain.Client, error)
	Delete(ctx context.Context, ownerID, clientID uuid.UUID) error
}

type clientService struct {
	clientRepo port.ClientRepository
}

// NewClientService creates a new ClientService implementation.
func NewClientService(clientRepo port.ClientRepository) ClientService {
	return &clientService{clientRepo: clientRepo}
}

func (s *clientService) Upsert(ctx context.Context, ownerID uuid.UUID, input UpsertClientInput) (*domain.Client, bool, error) {
	client := &domain.Client{
		OwnerID: ownerID,
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
		City:    input.City,
		State:   input.State,
		ZipCode: input.ZipCode,
		Country: input.Country,
		TaxID:   input.TaxID,
	}
	if input.ID != nil {
		client.ID = *input.ID
	}

	created, err := s.clientRepo.Upsert(ctx, client)
	if err != nil {
		return nil, false, err
	}
	return client, created, nil
}

func (s *clientService) GetByID(ctx context.Context, ownerID, clientID uuid.UUID) (*domain.Client, error) {
	return s.clientRepo.GetByID(ctx, ownerID, clientID)
}

func (s *clientService) List(ctx context.Context, ownerID uuid.UUID) ([]domain.Client, error) {
	return s.clientRepo.ListByOwner(ctx, ownerID)
}

// Delete removes a client. The database restricts deletion while any document
// still references the client; that surfaces as domain.ErrClientInUse.
func (s *clientService) Delete(ctx context.Context, ownerID, clientID uuid.UUID) error {
	return s.clientRepo.Delete(ctx, ownerID, clientID)
}
