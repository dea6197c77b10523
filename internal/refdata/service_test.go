package refdata

import (
	"context"
	"testing"
)

func TestLoadAllJoinsAllCollections(t *testing.T) {
	service := NewService(NewSeededRepository())

	bundle, err := service.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(bundle.Countries) != 2 {
		t.Fatalf("expected 2 countries, got %d", len(bundle.Countries))
	}
	if len(bundle.Governorates) != 3 {
		t.Fatalf("expected 3 governorates, got %d", len(bundle.Governorates))
	}
	if len(bundle.Cities) != 4 {
		t.Fatalf("expected 4 cities, got %d", len(bundle.Cities))
	}
	if len(bundle.Courses) == 0 || len(bundle.Books) == 0 {
		t.Fatal("expected seeded courses and books")
	}
}

func TestGovernoratesAreFilteredByCountry(t *testing.T) {
	service := NewService(NewSeededRepository())

	governorates, err := service.GovernoratesByCountry(context.Background(), "EG")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(governorates) != 2 {
		t.Fatalf("expected 2 EG governorates, got %d", len(governorates))
	}
	for _, g := range governorates {
		if g.CountryCode != "EG" {
			t.Fatalf("governorate %s leaked from %s", g.Name, g.CountryCode)
		}
	}
}

func TestCitiesAreFilteredByGovernorate(t *testing.T) {
	service := NewService(NewSeededRepository())

	cities, err := service.CitiesByGovernorate(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cities) != 2 {
		t.Fatalf("expected 2 Cairo cities, got %d", len(cities))
	}
	for _, c := range cities {
		if c.GovernorateID != 1 {
			t.Fatalf("city %s belongs to governorate %d", c.Name, c.GovernorateID)
		}
	}
}
