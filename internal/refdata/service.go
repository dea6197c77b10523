package refdata

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// LoadAll fetches all five reference collections.
// The reads are independent, so they fan out concurrently
// and join before returning.
// --------------------------------------------------
func (s *Service) LoadAll(ctx context.Context) (*Bundle, error) {
	var bundle Bundle

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		countries, err := s.repo.ListCountries(ctx)
		bundle.Countries = countries
		return err
	})
	g.Go(func() error {
		governorates, err := s.repo.ListGovernorates(ctx)
		bundle.Governorates = governorates
		return err
	})
	g.Go(func() error {
		cities, err := s.repo.ListCities(ctx)
		bundle.Cities = cities
		return err
	})
	g.Go(func() error {
		courses, err := s.repo.ListCourses(ctx)
		bundle.Courses = courses
		return err
	})
	g.Go(func() error {
		books, err := s.repo.ListBooks(ctx)
		bundle.Books = books
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &bundle, nil
}

// --------------------------------------------------
// Cascade filters
// --------------------------------------------------
func (s *Service) GovernoratesByCountry(ctx context.Context, countryCode string) ([]Governorate, error) {
	all, err := s.repo.ListGovernorates(ctx)
	if err != nil {
		return nil, err
	}

	var filtered []Governorate
	for _, g := range all {
		if g.CountryCode == countryCode {
			filtered = append(filtered, g)
		}
	}
	return filtered, nil
}

func (s *Service) CitiesByGovernorate(ctx context.Context, governorateID int) ([]City, error) {
	all, err := s.repo.ListCities(ctx)
	if err != nil {
		return nil, err
	}

	var filtered []City
	for _, c := range all {
		if c.GovernorateID == governorateID {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}
