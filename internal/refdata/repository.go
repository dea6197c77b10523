package refdata

import "context"

// Repository defines the read-only data-access contract.
type Repository interface {
	ListCountries(ctx context.Context) ([]Country, error)
	ListGovernorates(ctx context.Context) ([]Governorate, error)
	ListCities(ctx context.Context) ([]City, error)
	ListCourses(ctx context.Context) ([]Course, error)
	ListBooks(ctx context.Context) ([]Book, error)
}
