package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aussiebroadwan/passkeep/internal/vault/domain"
)

type accountsRepo struct {
	db dbtx
}

const accountColumns = `id, email, username, password_hash, phone, is_active, is_verified, registered_at`

func scanAccount(row interface{ Scan(...any) error }) (domain.Account, error) {
	var (
		a            domain.Account
		phone        sql.NullString
		registeredAt int64
	)
	err := row.Scan(&a.ID, &a.Email, &a.Username, &a.PasswordHash, &phone, &a.Active, &a.Verified, &registeredAt)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	a.Phone = mapNullString(phone)
	a.RegisteredAt = fromUnix(registeredAt)
	return a, nil
}

func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.Account) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (email, username, password_hash, phone, is_active, is_verified, registered_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.Email, a.Username, a.PasswordHash, mapStringNull(a.Phone), a.Active, a.Verified, toUnix(a.RegisteredAt),
	)
	if err != nil {
		return 0, fmt.Errorf("create account %q: %w", a.Username, mapConstraint(err))
	}
	return res.LastInsertId()
}

func (r *accountsRepo) GetAccountByID(ctx context.Context, id int64) (domain.Account, error) {
	return scanAccount(r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = ?`, id))
}

func (r *accountsRepo) GetAccountByUsername(ctx context.Context, username string) (domain.Account, error) {
	return scanAccount(r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE username = ?`, username))
}

func (r *accountsRepo) GetAccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	return scanAccount(r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE email = ?`, email))
}

func (r *accountsRepo) UpdateProfile(ctx context.Context, id int64, username, phone *string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE accounts
		SET username = COALESCE(?, username),
		    phone    = CASE WHEN ? THEN NULLIF(?, '') ELSE phone END
		WHERE id = ?`,
		mapOptionalString(username), phone != nil, mapOptionalString(phone), id,
	)
	if err != nil {
		return fmt.Errorf("update account %d: %w", id, mapConstraint(err))
	}
	return requireAffected(res)
}

func (r *accountsRepo) UpdatePasswordHash(ctx context.Context, id int64, hash string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE accounts SET password_hash = ? WHERE id = ?`, hash, id)
	if err != nil {
		return fmt.Errorf("update password for account %d: %w", id, err)
	}
	return requireAffected(res)
}

func (r *accountsRepo) DeleteAccount(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete account %d: %w", id, err)
	}
	return requireAffected(res)
}
