package sqlite

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/passkeep/internal/vault/domain"
)

type groupsRepo struct {
	db dbtx
}

func (r *groupsRepo) CreateGroup(ctx context.Context, g domain.Group) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO vault_groups (account_id, name, description) VALUES (?, ?, ?)`,
		g.AccountID, g.Name, g.Description,
	)
	if err != nil {
		return 0, fmt.Errorf("create group %q: %w", g.Name, mapConstraint(err))
	}
	return res.LastInsertId()
}

func (r *groupsRepo) GetGroup(ctx context.Context, accountID, groupID int64) (domain.Group, error) {
	var g domain.Group
	err := r.db.QueryRowContext(ctx, `
		SELECT id, account_id, name, description
		FROM vault_groups
		WHERE id = ? AND account_id = ?`,
		groupID, accountID,
	).Scan(&g.ID, &g.AccountID, &g.Name, &g.Description)
	if err != nil {
		return domain.Group{}, mapNotFound(err)
	}
	return g, nil
}

func (r *groupsRepo) OwnsGroup(ctx context.Context, accountID, groupID int64) (bool, error) {
	var owned bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM vault_groups WHERE id = ? AND account_id = ?)`,
		groupID, accountID,
	).Scan(&owned)
	return owned, err
}

func (r *groupsRepo) UpdateGroup(ctx context.Context, accountID, groupID int64, p domain.GroupPatch) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE vault_groups
		SET name        = COALESCE(?, name),
		    description = COALESCE(?, description)
		WHERE id = ? AND account_id = ?`,
		mapOptionalString(p.Name), mapOptionalString(p.Description), groupID, accountID,
	)
	if err != nil {
		return fmt.Errorf("update group %d: %w", groupID, mapConstraint(err))
	}
	return requireAffected(res)
}

func (r *groupsRepo) DeleteGroup(ctx context.Context, accountID, groupID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM vault_groups WHERE id = ? AND account_id = ?`,
		groupID, accountID,
	)
	if err != nil {
		return fmt.Errorf("delete group %d: %w", groupID, err)
	}
	return requireAffected(res)
}

func (r *groupsRepo) ListGroups(ctx context.Context, accountID int64) ([]domain.Group, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, account_id, name, description
		FROM vault_groups
		WHERE account_id = ?
		ORDER BY id`,
		accountID,
	)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	defer rows.Close()

	groups := []domain.Group{}
	for rows.Next() {
		var g domain.Group
		if err := rows.Scan(&g.ID, &g.AccountID, &g.Name, &g.Description); err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func (r *groupsRepo) ListGroupsWithCredentials(ctx context.Context, accountID int64) ([]domain.GroupCredential, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT g.id, g.name, g.description, c.id, c.service_name, c.login
		FROM vault_groups g
		JOIN credentials c ON c.group_id = g.id
		WHERE g.account_id = ?
		ORDER BY g.id, c.id`,
		accountID,
	)
	if err != nil {
		return nil, fmt.Errorf("list groups with credentials: %w", err)
	}
	defer rows.Close()

	out := []domain.GroupCredential{}
	for rows.Next() {
		var gc domain.GroupCredential
		if err := rows.Scan(&gc.GroupID, &gc.GroupName, &gc.GroupDescription,
			&gc.CredentialID, &gc.ServiceName, &gc.Login); err != nil {
			return nil, fmt.Errorf("scan group credential: %w", err)
		}
		out = append(out, gc)
	}
	return out, rows.Err()
}
