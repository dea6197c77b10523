package services

import (
	"context"
	"errors"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Create a service document for a provider
// --------------------------------------------------
func (s *Service) CreateForProvider(
	ctx context.Context,
	providerID string,
	serviceType string,
	country, governorate, city string,
) (*ServiceDocument, error) {

	if providerID == "" {
		return nil, errors.New("provider id is required")
	}
	if !InCatalog(serviceType) {
		return nil, errors.New("unknown service type: " + serviceType)
	}

	doc := &ServiceDocument{
		ProviderID:  providerID,
		ServiceType: serviceType,
		Country:     country,
		Governorate: governorate,
		City:        city,
		Status:      "pending",
	}

	if err := s.repo.Create(ctx, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// --------------------------------------------------
// List service documents owned by the caller
// --------------------------------------------------
func (s *Service) ListMine(ctx context.Context, providerID string) ([]*ServiceDocument, error) {
	return s.repo.ListByProvider(ctx, providerID)
}

// --------------------------------------------------
// Public fetch
// --------------------------------------------------
func (s *Service) Get(ctx context.Context, id string) (*ServiceDocument, error) {
	return s.repo.GetByID(ctx, id)
}
