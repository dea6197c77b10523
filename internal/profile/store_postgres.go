package profile

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// Apply merges the patch into the user row in a single statement.
// `profile || $2` gives JSONB merge semantics: existing keys not present
// in the patch are left untouched.
func (s *PostgresStore) Apply(ctx context.Context, userID string, patch Patch) error {
	fields, err := json.Marshal(patch.Fields)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(ctx, `
		UPDATE users
		SET
			profile = profile || $2::jsonb,
			user_type = COALESCE(NULLIF($3, ''), user_type),
			profile_completed = profile_completed OR $4
		WHERE id = $1
	`, userID, fields, patch.UserType, patch.Completed)

	return err
}
