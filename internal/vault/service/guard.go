package service

import (
	"context"

	"github.com/aussiebroadwan/passkeep/internal/vault/store"
)

// Guard answers ownership questions against the store it is bound to. Bind
// it to the same transaction as the mutation it protects.
type Guard struct {
	Store store.Store
}

func (g Guard) OwnsGroup(ctx context.Context, accountID, groupID int64) (bool, error) {
	return g.Store.Groups().OwnsGroup(ctx, accountID, groupID)
}

func (g Guard) OwnsCredential(ctx context.Context, accountID, credentialID int64) (bool, error) {
	return g.Store.Credentials().OwnsCredential(ctx, accountID, credentialID)
}

// RequireGroup fails with ErrNotFoundOrForbidden unless accountID owns groupID.
func (g Guard) RequireGroup(ctx context.Context, accountID, groupID int64) error {
	return requireOwned(g.OwnsGroup(ctx, accountID, groupID))
}

// RequireCredential fails with ErrNotFoundOrForbidden unless accountID owns
// the group holding credentialID.
func (g Guard) RequireCredential(ctx context.Context, accountID, credentialID int64) error {
	return requireOwned(g.OwnsCredential(ctx, accountID, credentialID))
}

func requireOwned(owned bool, err error) error {
	if err != nil {
		return err
	}
	if !owned {
		return ErrNotFoundOrForbidden
	}
	return nil
}
