package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/aussiebroadwan/passkeep/internal/vault/domain"
)

type passwordResetsRepo struct {
	db dbtx
}

func (r *passwordResetsRepo) CreatePasswordReset(ctx context.Context, pr domain.PasswordReset) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO password_resets (token_hash, account_id, expires_at, created_at)
		VALUES (?, ?, ?, ?)`,
		pr.TokenHash, pr.AccountID, toUnix(pr.ExpiresAt), toUnix(pr.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("create password reset: %w", mapConstraint(err))
	}
	return nil
}

func (r *passwordResetsRepo) ConsumePasswordReset(ctx context.Context, tokenHash string, now time.Time) (int64, error) {
	var accountID int64
	err := r.db.QueryRowContext(ctx, `
		UPDATE password_resets
		SET used_at = ?
		WHERE token_hash = ? AND used_at IS NULL AND expires_at > ?
		RETURNING account_id`,
		toUnix(now), tokenHash, toUnix(now),
	).Scan(&accountID)
	if err != nil {
		return 0, mapNotFound(err)
	}
	return accountID, nil
}

func (r *passwordResetsRepo) DeleteStalePasswordResets(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM password_resets WHERE used_at IS NOT NULL OR expires_at <= ?`,
		toUnix(now),
	)
	if err != nil {
		return 0, fmt.Errorf("delete stale password resets: %w", err)
	}
	return res.RowsAffected()
}
