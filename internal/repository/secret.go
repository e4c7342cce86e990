package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lockbox/lockbox-go/internal/model"
)

var ErrSecretNotFound = errors.New("secret not found")

const secretColumns = `id, user_id, title, username, password, website, notes, category, created_at, updated_at`

// SecretRepository handles secret persistence operations. Every query is
// scoped by owner: a secret is only visible through the (id, user_id) pair.
type SecretRepository struct {
	db *sql.DB
}

// NewSecretRepository creates a new SecretRepository.
func NewSecretRepository(db *sql.DB) *SecretRepository {
	return &SecretRepository{db: db}
}

// Create inserts a new secret and reads the stored row back so that the
// server-assigned id and timestamps are populated.
func (r *SecretRepository) Create(ctx context.Context, secret *model.Secret) error {
	query := `INSERT INTO secrets (user_id, title, username, password, website, notes, category)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		secret.UserID, secret.Title, secret.Username, secret.Password,
		secret.Website, secret.Notes, secret.Category,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	stored, err := r.GetByID(ctx, secret.UserID, id)
	if err != nil {
		return err
	}

	*secret = *stored
	return nil
}

// GetByID retrieves a secret by owner and id. A secret belonging to another
// user is indistinguishable from one that does not exist.
func (r *SecretRepository) GetByID(ctx context.Context, userID, secretID int64) (*model.Secret, error) {
	query := `SELECT ` + secretColumns + ` FROM secrets WHERE id = ? AND user_id = ?`

	secret := &model.Secret{}
	err := r.db.QueryRowContext(ctx, query, secretID, userID).Scan(
		&secret.ID, &secret.UserID, &secret.Title, &secret.Username, &secret.Password,
		&secret.Website, &secret.Notes, &secret.Category, &secret.CreatedAt, &secret.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSecretNotFound
		}
		return nil, err
	}

	return secret, nil
}

// ListByUser retrieves all secrets owned by a user, newest first.
func (r *SecretRepository) ListByUser(ctx context.Context, userID int64) ([]model.Secret, error) {
	query := `SELECT ` + secretColumns + ` FROM secrets WHERE user_id = ? ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var secrets []model.Secret
	for rows.Next() {
		var s model.Secret
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.Title, &s.Username, &s.Password,
			&s.Website, &s.Notes, &s.Category, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		secrets = append(secrets, s)
	}

	return secrets, rows.Err()
}

// Update replaces the mutable fields of a secret in a single statement.
// id, user_id and created_at never change. Updating an absent or foreign
// secret yields ErrSecretNotFound. Relies on the clientFoundRows DSN flag so
// that RowsAffected counts matched rows and a no-op write is not mistaken
// for a missing one.
func (r *SecretRepository) Update(ctx context.Context, secret *model.Secret) error {
	query := `UPDATE secrets SET title = ?, username = ?, password = ?, website = ?, notes = ?, category = ?
		WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query,
		secret.Title, secret.Username, secret.Password, secret.Website,
		secret.Notes, secret.Category, secret.ID, secret.UserID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrSecretNotFound
	}

	return nil
}

// Delete removes a secret permanently. Deleting an absent or foreign secret
// yields ErrSecretNotFound, so a repeated delete fails the same way.
func (r *SecretRepository) Delete(ctx context.Context, userID, secretID int64) error {
	query := `DELETE FROM secrets WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, secretID, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrSecretNotFound
	}

	return nil
}
