package refdata

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListCountries(ctx context.Context) ([]Country, error) {
	rows, err := r.db.Query(ctx, `
		SELECT code, name
		FROM countries
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var countries []Country
	for rows.Next() {
		var c Country
		if err := rows.Scan(&c.Code, &c.Name); err != nil {
			return nil, err
		}
		countries = append(countries, c)
	}
	return countries, rows.Err()
}

func (r *PostgresRepository) ListGovernorates(ctx context.Context) ([]Governorate, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, country_code, name
		FROM governorates
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var governorates []Governorate
	for rows.Next() {
		var g Governorate
		if err := rows.Scan(&g.ID, &g.CountryCode, &g.Name); err != nil {
			return nil, err
		}
		governorates = append(governorates, g)
	}
	return governorates, rows.Err()
}

func (r *PostgresRepository) ListCities(ctx context.Context) ([]City, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, governorate_id, name
		FROM cities
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cities []City
	for rows.Next() {
		var c City
		if err := rows.Scan(&c.ID, &c.GovernorateID, &c.Name); err != nil {
			return nil, err
		}
		cities = append(cities, c)
	}
	return cities, rows.Err()
}

func (r *PostgresRepository) ListCourses(ctx context.Context) ([]Course, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title
		FROM courses
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []Course
	for rows.Next() {
		var c Course
		if err := rows.Scan(&c.ID, &c.Title); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

func (r *PostgresRepository) ListBooks(ctx context.Context) ([]Book, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title
		FROM books
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.Title); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}
