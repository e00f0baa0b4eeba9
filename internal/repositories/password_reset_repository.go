package repositories

import (
	"context"

	"mumanager-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PasswordResetRepository struct {
	DB *pgxpool.Pool
}

func NewPasswordResetRepository(db *pgxpool.Pool) *PasswordResetRepository {
	return &PasswordResetRepository{DB: db}
}

// Create stores a new reset token for the user. Previous tokens of the same
// user are deleted first so only the latest one can be redeemed.
func (r *PasswordResetRepository) Create(ctx context.Context, reset *models.PasswordReset) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM password_resets WHERE user_id = $1`, reset.UserID); err != nil {
		return err
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO password_resets (user_id, token, expires_at)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		reset.UserID, reset.Token, reset.ExpiresAt,
	).Scan(&reset.ID, &reset.CreatedAt)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PasswordResetRepository) GetByToken(ctx context.Context, token string) (*models.PasswordReset, error) {
	reset := &models.PasswordReset{}
	err := r.DB.QueryRow(ctx,
		`SELECT id, user_id, token, expires_at, created_at
		 FROM password_resets WHERE token = $1`,
		token,
	).Scan(&reset.ID, &reset.UserID, &reset.Token, &reset.ExpiresAt, &reset.CreatedAt)
	if err != nil {
		return nil, err
	}
	return reset, nil
}

// DeleteByToken consumes a token after a successful reset
func (r *PasswordResetRepository) DeleteByToken(ctx context.Context, token string) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM password_resets WHERE token = $1`, token)
	return err
}

func (r *PasswordResetRepository) DeleteByUser(ctx context.Context, userID int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM password_resets WHERE user_id = $1`, userID)
	return err
}
