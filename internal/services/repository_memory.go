package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu   sync.Mutex
	docs map[string]*ServiceDocument

	// CreateOrder records document ids in creation order, for tests.
	CreateOrder []string
	// FailAfter aborts Create once this many documents exist (0 = never).
	FailAfter int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		docs: make(map[string]*ServiceDocument),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, doc *ServiceDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FailAfter > 0 && len(r.docs) >= r.FailAfter {
		return errors.New("service creation failed")
	}

	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	if doc.Status == "" {
		doc.Status = "pending"
	}
	doc.CreatedAt = time.Now()

	r.docs[doc.ID] = doc
	r.CreateOrder = append(r.CreateOrder, doc.ID)
	return nil
}

func (r *InMemoryRepository) ListByProvider(ctx context.Context, providerID string) ([]*ServiceDocument, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var docs []*ServiceDocument
	for _, id := range r.CreateOrder {
		if doc := r.docs[id]; doc != nil && doc.ProviderID == providerID {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*ServiceDocument, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.docs[id]
	if !ok {
		return nil, errors.New("service not found")
	}
	return doc, nil
}
