package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/passkeep/internal/vault/domain"
	"github.com/aussiebroadwan/passkeep/internal/vault/store"
	"github.com/aussiebroadwan/passkeep/pkg/slogx"
)

// Cipher seals credential secrets at rest. *cryptox.Cipher implements it.
type Cipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// VaultService manages the groups and credentials of an already
// authenticated account. Every call runs in one transaction, with the
// ownership check and the owner-scoped statement inside it.
type VaultService struct {
	Store  store.Store
	Cipher Cipher
}

func (s *VaultService) CreateGroup(ctx context.Context, accountID int64, name, description string) (domain.Group, error) {
	log := slogx.FromContext(ctx)

	g := domain.Group{
		AccountID:   accountID,
		Name:        normalize(name),
		Description: normalize(description),
	}
	if err := validateGroupName(g.Name); err != nil {
		return domain.Group{}, err
	}
	if err := validateDescription(g.Description); err != nil {
		return domain.Group{}, err
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		id, err := tx.Groups().CreateGroup(ctx, g)
		if err != nil {
			return mapStoreErr(err, fmt.Sprintf("group %q", g.Name))
		}
		g.ID = id
		return nil
	})
	if err != nil {
		return domain.Group{}, err
	}

	log.Info("group created", slog.Int64("group_id", g.ID))
	return g, nil
}

func (s *VaultService) UpdateGroup(ctx context.Context, accountID, groupID int64, p domain.GroupPatch) (domain.Group, error) {
	log := slogx.FromContext(ctx)

	if p.IsEmpty() {
		return domain.Group{}, validationf("at least one of name or description is required")
	}
	if p.Name != nil {
		p.Name = ptr(normalize(*p.Name))
		if err := validateGroupName(*p.Name); err != nil {
			return domain.Group{}, err
		}
	}
	if p.Description != nil {
		p.Description = ptr(normalize(*p.Description))
		if err := validateDescription(*p.Description); err != nil {
			return domain.Group{}, err
		}
	}

	var updated domain.Group
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := (Guard{Store: tx}).RequireGroup(ctx, accountID, groupID); err != nil {
			return err
		}

		what := "group"
		if p.Name != nil {
			what = fmt.Sprintf("group %q", *p.Name)
		}
		if err := tx.Groups().UpdateGroup(ctx, accountID, groupID, p); err != nil {
			return mapStoreErr(err, what)
		}

		g, err := tx.Groups().GetGroup(ctx, accountID, groupID)
		if err != nil {
			return mapStoreErr(err, what)
		}
		updated = g
		return nil
	})
	if err != nil {
		return domain.Group{}, err
	}

	log.Info("group updated", slog.Int64("group_id", groupID))
	return updated, nil
}

// DeleteGroup removes the group and every credential in it.
func (s *VaultService) DeleteGroup(ctx context.Context, accountID, groupID int64) error {
	log := slogx.FromContext(ctx)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := (Guard{Store: tx}).RequireGroup(ctx, accountID, groupID); err != nil {
			return err
		}
		return mapStoreErr(tx.Groups().DeleteGroup(ctx, accountID, groupID), "group")
	})
	if err != nil {
		return err
	}

	log.Info("group deleted", slog.Int64("group_id", groupID))
	return nil
}

func (s *VaultService) ListGroups(ctx context.Context, accountID int64) ([]domain.Group, error) {
	return s.Store.Groups().ListGroups(ctx, accountID)
}

// ListGroupsWithCredentials returns one row per credential joined with its
// group. Groups without credentials are not listed.
func (s *VaultService) ListGroupsWithCredentials(ctx context.Context, accountID int64) ([]domain.GroupCredential, error) {
	return s.Store.Groups().ListGroupsWithCredentials(ctx, accountID)
}

// CreateCredential stores a new credential in one of the account's groups.
// The secret is encrypted before it leaves this method.
func (s *VaultService) CreateCredential(ctx context.Context, accountID, groupID int64, serviceName, login, secret string) (domain.Credential, error) {
	log := slogx.FromContext(ctx)

	c := domain.Credential{
		GroupID:     groupID,
		ServiceName: normalize(serviceName),
		Login:       normalize(login),
	}
	if err := validateServiceName(c.ServiceName); err != nil {
		return domain.Credential{}, err
	}
	if err := validateLogin(c.Login); err != nil {
		return domain.Credential{}, err
	}
	if err := validateSecret(secret); err != nil {
		return domain.Credential{}, err
	}

	sealed, err := s.Cipher.Encrypt(secret)
	if err != nil {
		log.Error("failed to encrypt secret", slog.Any("error", err))
		return domain.Credential{}, err
	}
	c.Secret = sealed

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := (Guard{Store: tx}).RequireGroup(ctx, accountID, groupID); err != nil {
			return err
		}

		id, err := tx.Credentials().CreateCredential(ctx, accountID, c)
		if err != nil {
			return mapStoreErr(err, fmt.Sprintf("credential %q/%q", c.ServiceName, c.Login))
		}
		c.ID = id
		return nil
	})
	if err != nil {
		return domain.Credential{}, err
	}

	log.Info("credential created",
		slog.Int64("credential_id", c.ID),
		slog.Int64("group_id", groupID),
	)
	return c, nil
}

// UpdateCredential applies the supplied fields. A new secret is encrypted
// again with a fresh nonce.
func (s *VaultService) UpdateCredential(ctx context.Context, accountID, credentialID int64, p domain.CredentialPatch) (domain.Credential, error) {
	log := slogx.FromContext(ctx)

	if p.IsEmpty() {
		return domain.Credential{}, validationf("at least one of service name, login or secret is required")
	}
	if p.ServiceName != nil {
		p.ServiceName = ptr(normalize(*p.ServiceName))
		if err := validateServiceName(*p.ServiceName); err != nil {
			return domain.Credential{}, err
		}
	}
	if p.Login != nil {
		p.Login = ptr(normalize(*p.Login))
		if err := validateLogin(*p.Login); err != nil {
			return domain.Credential{}, err
		}
	}
	if p.Secret != nil {
		if err := validateSecret(*p.Secret); err != nil {
			return domain.Credential{}, err
		}
		sealed, err := s.Cipher.Encrypt(*p.Secret)
		if err != nil {
			log.Error("failed to encrypt secret", slog.Any("error", err))
			return domain.Credential{}, err
		}
		p.Secret = &sealed
	}

	var updated domain.Credential
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := (Guard{Store: tx}).RequireCredential(ctx, accountID, credentialID); err != nil {
			return err
		}

		if err := tx.Credentials().UpdateCredential(ctx, accountID, credentialID, p); err != nil {
			return mapStoreErr(err, "credential with that service name and login")
		}

		c, err := tx.Credentials().GetCredential(ctx, accountID, credentialID)
		if err != nil {
			return mapStoreErr(err, "credential")
		}
		updated = c
		return nil
	})
	if err != nil {
		return domain.Credential{}, err
	}

	log.Info("credential updated", slog.Int64("credential_id", credentialID))
	return updated, nil
}

func (s *VaultService) DeleteCredential(ctx context.Context, accountID, credentialID int64) error {
	log := slogx.FromContext(ctx)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := (Guard{Store: tx}).RequireCredential(ctx, accountID, credentialID); err != nil {
			return err
		}
		return mapStoreErr(tx.Credentials().DeleteCredential(ctx, accountID, credentialID), "credential")
	})
	if err != nil {
		return err
	}

	log.Info("credential deleted", slog.Int64("credential_id", credentialID))
	return nil
}

// ListCredentialsByGroup lists a group's credentials without secrets. A
// group the account does not own yields an empty list.
func (s *VaultService) ListCredentialsByGroup(ctx context.Context, accountID, groupID int64) ([]domain.CredentialSummary, error) {
	return s.Store.Credentials().ListByGroup(ctx, accountID, groupID)
}

// RevealSecret is the only way to get a plaintext secret back.
func (s *VaultService) RevealSecret(ctx context.Context, accountID, credentialID int64) (string, error) {
	log := slogx.FromContext(ctx)

	var sealed string
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := (Guard{Store: tx}).RequireCredential(ctx, accountID, credentialID); err != nil {
			return err
		}

		c, err := tx.Credentials().GetCredential(ctx, accountID, credentialID)
		if err != nil {
			return mapStoreErr(err, "credential")
		}
		sealed = c.Secret
		return nil
	})
	if err != nil {
		return "", err
	}

	plaintext, err := s.Cipher.Decrypt(sealed)
	if err != nil {
		log.Error("failed to decrypt secret",
			slog.Int64("credential_id", credentialID),
			slog.Any("error", err),
		)
		return "", err
	}

	log.Info("secret revealed", slog.Int64("credential_id", credentialID))
	return plaintext, nil
}

// Search finds the account's credentials whose login and/or service name
// contain the given substrings. Matching is case-sensitive.
func (s *VaultService) Search(ctx context.Context, accountID int64, f domain.SearchFilter) ([]domain.SearchMatch, error) {
	if f.IsEmpty() {
		return nil, validationf("at least one of login or service name is required")
	}
	return s.Store.Credentials().Search(ctx, accountID, f)
}

func ptr[T any](v T) *T { return &v }
