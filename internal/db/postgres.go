package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS (account shell + profile document)
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			username VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			user_type VARCHAR(50),
			is_email_verified BOOLEAN NOT NULL DEFAULT FALSE,
			profile_completed BOOLEAN NOT NULL DEFAULT FALSE,
			profile JSONB NOT NULL DEFAULT '{}'::jsonb,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	profileColumnsSQL := `
		ALTER TABLE users
		ADD COLUMN IF NOT EXISTS profile JSONB NOT NULL DEFAULT '{}'::jsonb;

		ALTER TABLE users
		ADD COLUMN IF NOT EXISTS profile_completed BOOLEAN NOT NULL DEFAULT FALSE;
	`
	if _, err := db.Exec(ctx, profileColumnsSQL); err != nil {
		log.Println("Note: profile columns may already exist")
	}

	// -------------------------------
	// PROVIDER SERVICE DOCUMENTS
	// -------------------------------
	servicesSQL := `
		CREATE TABLE IF NOT EXISTS services (
			id UUID PRIMARY KEY,
			provider_id UUID NOT NULL,
			service_type VARCHAR(100) NOT NULL,
			country VARCHAR(10),
			governorate VARCHAR(100),
			city VARCHAR(100),
			status VARCHAR(50) NOT NULL DEFAULT 'pending',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (provider_id) REFERENCES users(id)
		)
	`
	if _, err := db.Exec(ctx, servicesSQL); err != nil {
		return err
	}

	// -------------------------------
	// REFERENCE DATA (location cascade + catalog)
	// -------------------------------
	refDataSQL := []string{
		`CREATE TABLE IF NOT EXISTS countries (
			code VARCHAR(10) PRIMARY KEY,
			name VARCHAR(100) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS governorates (
			id SERIAL PRIMARY KEY,
			country_code VARCHAR(10) NOT NULL REFERENCES countries(code),
			name VARCHAR(100) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS cities (
			id SERIAL PRIMARY KEY,
			governorate_id INT NOT NULL REFERENCES governorates(id),
			name VARCHAR(100) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS courses (
			id UUID PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS books (
			id UUID PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	}
	for _, stmt := range refDataSQL {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
