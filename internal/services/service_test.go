package services

import (
	"context"
	"testing"
)

func TestCreateForProviderRejectsUnknownType(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	_, err := service.CreateForProvider(context.Background(), "user-1", "time_travel", "EG", "Cairo", "Nasr City")
	if err == nil {
		t.Fatal("expected error for unknown service type")
	}
}

func TestCreateForProviderStoresPendingDocument(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)

	doc, err := service.CreateForProvider(context.Background(), "user-1", "horse_stable", "EG", "Cairo", "Nasr City")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.ID == "" {
		t.Fatal("expected generated id")
	}
	if doc.Status != "pending" {
		t.Fatalf("expected pending status, got %s", doc.Status)
	}

	stored, err := repo.GetByID(context.Background(), doc.ID)
	if err != nil {
		t.Fatalf("document not stored: %v", err)
	}
	if stored.ServiceType != "horse_stable" || stored.Governorate != "Cairo" {
		t.Fatalf("stored document mismatch: %+v", stored)
	}
}

func TestListMineReturnsOwnDocumentsOnly(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	_, _ = service.CreateForProvider(context.Background(), "user-1", "horse_stable", "EG", "Cairo", "Nasr City")
	_, _ = service.CreateForProvider(context.Background(), "user-1", "veterinary", "EG", "Cairo", "Nasr City")
	_, _ = service.CreateForProvider(context.Background(), "user-2", "farrier", "EG", "Giza", "Dokki")

	docs, err := service.ListMine(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
}

func TestCatalogHasSixteenFixedEntries(t *testing.T) {
	if len(Catalog) != 16 {
		t.Fatalf("catalog must stay at 16 entries, got %d", len(Catalog))
	}
	if !InCatalog("riding_school") || InCatalog("nope") {
		t.Fatal("catalog membership check broken")
	}
}
