package services

import "context"

type Repository interface {
	Create(ctx context.Context, doc *ServiceDocument) error
	ListByProvider(ctx context.Context, providerID string) ([]*ServiceDocument, error)
	GetByID(ctx context.Context, id string) (*ServiceDocument, error)
}
