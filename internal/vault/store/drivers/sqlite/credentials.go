package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/passkeep/internal/vault/domain"
)

type credentialsRepo struct {
	db dbtx
}

// ownedCredential restricts a credentials statement to rows whose group
// belongs to the account bound at the last placeholder.
const ownedCredential = `group_id IN (SELECT id FROM vault_groups WHERE account_id = ?)`

func (r *credentialsRepo) CreateCredential(ctx context.Context, accountID int64, c domain.Credential) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO credentials (group_id, service_name, login, secret)
		SELECT id, ?, ?, ? FROM vault_groups WHERE id = ? AND account_id = ?`,
		c.ServiceName, c.Login, c.Secret, c.GroupID, accountID,
	)
	if err != nil {
		return 0, fmt.Errorf("create credential %q: %w", c.ServiceName, mapConstraint(err))
	}
	if err := requireAffected(res); err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *credentialsRepo) GetCredential(ctx context.Context, accountID, credentialID int64) (domain.Credential, error) {
	var c domain.Credential
	err := r.db.QueryRowContext(ctx, `
		SELECT id, group_id, service_name, login, secret
		FROM credentials
		WHERE id = ? AND `+ownedCredential,
		credentialID, accountID,
	).Scan(&c.ID, &c.GroupID, &c.ServiceName, &c.Login, &c.Secret)
	if err != nil {
		return domain.Credential{}, mapNotFound(err)
	}
	return c, nil
}

func (r *credentialsRepo) OwnsCredential(ctx context.Context, accountID, credentialID int64) (bool, error) {
	var owned bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM credentials WHERE id = ? AND `+ownedCredential+`)`,
		credentialID, accountID,
	).Scan(&owned)
	return owned, err
}

func (r *credentialsRepo) UpdateCredential(ctx context.Context, accountID, credentialID int64, p domain.CredentialPatch) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE credentials
		SET service_name = COALESCE(?, service_name),
		    login        = COALESCE(?, login),
		    secret       = COALESCE(?, secret)
		WHERE id = ? AND `+ownedCredential,
		mapOptionalString(p.ServiceName), mapOptionalString(p.Login), mapOptionalString(p.Secret),
		credentialID, accountID,
	)
	if err != nil {
		return fmt.Errorf("update credential %d: %w", credentialID, mapConstraint(err))
	}
	return requireAffected(res)
}

func (r *credentialsRepo) DeleteCredential(ctx context.Context, accountID, credentialID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM credentials WHERE id = ? AND `+ownedCredential,
		credentialID, accountID,
	)
	if err != nil {
		return fmt.Errorf("delete credential %d: %w", credentialID, err)
	}
	return requireAffected(res)
}

func (r *credentialsRepo) ListByGroup(ctx context.Context, accountID, groupID int64) ([]domain.CredentialSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.service_name, c.login
		FROM credentials c
		JOIN vault_groups g ON g.id = c.group_id
		WHERE g.id = ? AND g.account_id = ?
		ORDER BY c.id`,
		groupID, accountID,
	)
	if err != nil {
		return nil, fmt.Errorf("list credentials of group %d: %w", groupID, err)
	}
	defer rows.Close()

	out := []domain.CredentialSummary{}
	for rows.Next() {
		var cs domain.CredentialSummary
		if err := rows.Scan(&cs.ID, &cs.ServiceName, &cs.Login); err != nil {
			return nil, fmt.Errorf("scan credential: %w", err)
		}
		out = append(out, cs)
	}
	return out, rows.Err()
}

func (r *credentialsRepo) Search(ctx context.Context, accountID int64, f domain.SearchFilter) ([]domain.SearchMatch, error) {
	var (
		sb   strings.Builder
		args = []any{accountID}
	)
	sb.WriteString(`
		SELECT c.id, g.name, c.service_name, c.login
		FROM credentials c
		JOIN vault_groups g ON g.id = c.group_id
		WHERE g.account_id = ?`)

	// instr is case-sensitive where LIKE is not
	if f.Login != "" {
		sb.WriteString(` AND instr(c.login, ?) > 0`)
		args = append(args, f.Login)
	}
	if f.ServiceName != "" {
		sb.WriteString(` AND instr(c.service_name, ?) > 0`)
		args = append(args, f.ServiceName)
	}
	sb.WriteString(` ORDER BY c.id`)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("search credentials: %w", err)
	}
	defer rows.Close()

	out := []domain.SearchMatch{}
	for rows.Next() {
		var m domain.SearchMatch
		if err := rows.Scan(&m.CredentialID, &m.GroupName, &m.ServiceName, &m.Login); err != nil {
			return nil, fmt.Errorf("scan search match: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
