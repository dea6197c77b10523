package refdata

import "context"

// InMemoryRepository serves fixed reference data, used in tests.
type InMemoryRepository struct {
	Countries    []Country
	Governorates []Governorate
	Cities       []City
	Courses      []Course
	Books        []Book
}

// NewSeededRepository returns a repository with a small location cascade
// covering Egypt and Saudi Arabia.
func NewSeededRepository() *InMemoryRepository {
	return &InMemoryRepository{
		Countries: []Country{
			{Code: "EG", Name: "Egypt"},
			{Code: "SA", Name: "Saudi Arabia"},
		},
		Governorates: []Governorate{
			{ID: 1, CountryCode: "EG", Name: "Cairo"},
			{ID: 2, CountryCode: "EG", Name: "Giza"},
			{ID: 3, CountryCode: "SA", Name: "Riyadh"},
		},
		Cities: []City{
			{ID: 1, GovernorateID: 1, Name: "Nasr City"},
			{ID: 2, GovernorateID: 1, Name: "Heliopolis"},
			{ID: 3, GovernorateID: 2, Name: "Dokki"},
			{ID: 4, GovernorateID: 3, Name: "Al Olaya"},
		},
		Courses: []Course{
			{ID: "course-1", Title: "Foundations of Horsemanship"},
		},
		Books: []Book{
			{ID: "book-1", Title: "The Modern Stable"},
		},
	}
}

func (r *InMemoryRepository) ListCountries(ctx context.Context) ([]Country, error) {
	return r.Countries, nil
}

func (r *InMemoryRepository) ListGovernorates(ctx context.Context) ([]Governorate, error) {
	return r.Governorates, nil
}

func (r *InMemoryRepository) ListCities(ctx context.Context) ([]City, error) {
	return r.Cities, nil
}

func (r *InMemoryRepository) ListCourses(ctx context.Context) ([]Course, error) {
	return r.Courses, nil
}

func (r *InMemoryRepository) ListBooks(ctx context.Context) ([]Book, error) {
	return r.Books, nil
}
