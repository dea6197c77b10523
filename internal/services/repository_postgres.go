package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Create a new service document
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, doc *ServiceDocument) error {
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	if doc.Status == "" {
		doc.Status = "pending"
	}

	query := `
		INSERT INTO services (
			id,
			provider_id,
			service_type,
			country,
			governorate,
			city,
			status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	return r.db.QueryRow(
		ctx,
		query,
		doc.ID,
		doc.ProviderID,
		doc.ServiceType,
		doc.Country,
		doc.Governorate,
		doc.City,
		doc.Status,
	).Scan(&doc.CreatedAt)
}

// --------------------------------------------------
// List service documents owned by a provider
// --------------------------------------------------
func (r *PostgresRepository) ListByProvider(ctx context.Context, providerID string) ([]*ServiceDocument, error) {
	query := `
		SELECT
			id,
			provider_id,
			service_type,
			country,
			governorate,
			city,
			status,
			created_at
		FROM services
		WHERE provider_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, providerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*ServiceDocument

	for rows.Next() {
		var doc ServiceDocument
		if err := rows.Scan(
			&doc.ID,
			&doc.ProviderID,
			&doc.ServiceType,
			&doc.Country,
			&doc.Governorate,
			&doc.City,
			&doc.Status,
			&doc.CreatedAt,
		); err != nil {
			return nil, err
		}
		docs = append(docs, &doc)
	}

	return docs, rows.Err()
}

// --------------------------------------------------
// Fetch one service document
// --------------------------------------------------
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*ServiceDocument, error) {
	var doc ServiceDocument
	err := r.db.QueryRow(ctx, `
		SELECT
			id,
			provider_id,
			service_type,
			country,
			governorate,
			city,
			status,
			created_at
		FROM services
		WHERE id = $1
	`, id).Scan(
		&doc.ID,
		&doc.ProviderID,
		&doc.ServiceType,
		&doc.Country,
		&doc.Governorate,
		&doc.City,
		&doc.Status,
		&doc.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errors.New("service not found")
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}
