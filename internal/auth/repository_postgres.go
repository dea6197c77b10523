package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Save(user *User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	query := `
		INSERT INTO users (id, username, email, password)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(
		context.Background(),
		query,
		user.ID,
		user.Username,
		user.Email,
		user.Password,
	)
	return err
}

func (r *PostgresUserRepository) ExistsByEmail(email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(context.Background(), `
		SELECT EXISTS (
			SELECT 1 FROM users WHERE email = $1
		)
	`, email).Scan(&exists)

	return exists, err
}

func (r *PostgresUserRepository) FindByEmail(email string) (*User, error) {
	return r.findOne(`
		SELECT id, username, email, password, COALESCE(user_type, ''), is_email_verified, profile_completed
		FROM users
		WHERE email = $1
	`, email)
}

func (r *PostgresUserRepository) FindByID(id string) (*User, error) {
	return r.findOne(`
		SELECT id, username, email, password, COALESCE(user_type, ''), is_email_verified, profile_completed
		FROM users
		WHERE id = $1
	`, id)
}

func (r *PostgresUserRepository) findOne(query string, arg any) (*User, error) {
	var user User
	err := r.db.QueryRow(context.Background(), query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Password,
		&user.UserType,
		&user.IsEmailVerified,
		&user.ProfileCompleted,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errors.New("user not found")
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *PostgresUserRepository) MarkEmailVerified(id string) error {
	_, err := r.db.Exec(context.Background(), `
		UPDATE users
		SET is_email_verified = TRUE
		WHERE id = $1
	`, id)
	return err
}
