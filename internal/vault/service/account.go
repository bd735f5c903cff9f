package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/passkeep/internal/vault/domain"
	"github.com/aussiebroadwan/passkeep/internal/vault/notify"
	"github.com/aussiebroadwan/passkeep/internal/vault/store"
	"github.com/aussiebroadwan/passkeep/pkg/cryptox"
	"github.com/aussiebroadwan/passkeep/pkg/slogx"
)

// PasswordHasher hashes account passwords. *cryptox.Hasher implements it.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) error
}

type RegisterInput struct {
	Email    string
	Username string
	Password string
	Phone    string
}

// AccountService is the account directory: registration, login, profile
// and password management.
type AccountService struct {
	Store    store.Store
	Hasher   PasswordHasher
	Tokens   *TokenService
	Notifier notify.Notifier
}

func (s *AccountService) Register(ctx context.Context, in RegisterInput) (domain.Account, error) {
	log := slogx.FromContext(ctx)

	in.Email = strings.TrimSpace(in.Email)
	in.Username = strings.TrimSpace(in.Username)
	in.Phone = strings.TrimSpace(in.Phone)

	if err := validateEmail(in.Email); err != nil {
		return domain.Account{}, err
	}
	if err := validateUsername(in.Username); err != nil {
		return domain.Account{}, err
	}
	if err := validateAccountPassword(in.Password); err != nil {
		return domain.Account{}, err
	}
	if err := validatePhone(in.Phone); err != nil {
		return domain.Account{}, err
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.Account{}, err
	}

	a := domain.Account{
		Email:        in.Email,
		Username:     in.Username,
		PasswordHash: hash,
		Phone:        in.Phone,
		Active:       true,
		Verified:     false,
		RegisteredAt: time.Now().UTC(),
	}

	id, err := s.Store.Accounts().CreateAccount(ctx, a)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("registration with taken email or username", slog.String("username", in.Username))
			return domain.Account{}, fmt.Errorf("%w: email or username already registered", ErrConflict)
		}
		log.Error("failed to create account", slog.Any("error", err))
		return domain.Account{}, err
	}
	a.ID = id

	log.Info("account registered successfully", slog.Int64("account_id", id))
	return a, nil
}

// Login exchanges a username and password for an access token. Unknown
// users, wrong passwords and inactive accounts all fail with ErrAuth.
func (s *AccountService) Login(ctx context.Context, username, password string) (AccessToken, error) {
	log := slogx.FromContext(ctx)

	a, err := s.Store.Accounts().GetAccountByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("login for unknown username", slog.String("username", username))
			return AccessToken{}, ErrAuth
		}
		return AccessToken{}, err
	}

	if err := s.Hasher.Verify(password, a.PasswordHash); err != nil {
		log.Warn("login with wrong password", slog.Int64("account_id", a.ID))
		return AccessToken{}, ErrAuth
	}
	if !a.Active {
		log.Warn("login to inactive account", slog.Int64("account_id", a.ID))
		return AccessToken{}, ErrAuth
	}

	tok, err := s.Tokens.IssueAccessToken(a, time.Now())
	if err != nil {
		log.Error("failed to sign access token", slog.Any("error", err))
		return AccessToken{}, err
	}

	log.Info("login successful", slog.Int64("account_id", a.ID))
	return tok, nil
}

// ResolveCurrentAccount loads the account a verified token points at. A
// deleted or deactivated account fails with ErrAuth.
func (s *AccountService) ResolveCurrentAccount(ctx context.Context, accountID int64) (domain.Account, error) {
	a, err := s.Store.Accounts().GetAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, ErrAuth
		}
		return domain.Account{}, err
	}
	if !a.Active {
		return domain.Account{}, ErrAuth
	}
	return a, nil
}

// UpdateProfile changes the username and/or phone. An empty phone clears it.
func (s *AccountService) UpdateProfile(ctx context.Context, accountID int64, username, phone *string) (domain.Account, error) {
	log := slogx.FromContext(ctx)

	if username == nil && phone == nil {
		return domain.Account{}, validationf("at least one of username or phone is required")
	}
	if username != nil {
		username = ptr(strings.TrimSpace(*username))
		if err := validateUsername(*username); err != nil {
			return domain.Account{}, err
		}
	}
	if phone != nil {
		phone = ptr(strings.TrimSpace(*phone))
		if err := validatePhone(*phone); err != nil {
			return domain.Account{}, err
		}
	}

	var updated domain.Account
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Accounts().UpdateProfile(ctx, accountID, username, phone); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) && username != nil {
				return fmt.Errorf("%w: username %q already taken", ErrConflict, *username)
			}
			return mapStoreErr(err, "account")
		}

		a, err := tx.Accounts().GetAccountByID(ctx, accountID)
		if err != nil {
			return mapStoreErr(err, "account")
		}
		updated = a
		return nil
	})
	if err != nil {
		return domain.Account{}, err
	}

	log.Info("profile updated successfully")
	return updated, nil
}

// Lookup returns another account's public profile by username.
func (s *AccountService) Lookup(ctx context.Context, username string) (domain.Account, error) {
	a, err := s.Store.Accounts().GetAccountByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return domain.Account{}, mapStoreErr(err, "account")
	}
	return a, nil
}

// RequestPasswordReset mints a reset token for the account identified by
// email or username and hands it to the notifier. It returns the masked
// address the link was sent to.
func (s *AccountService) RequestPasswordReset(ctx context.Context, identifier string) (string, error) {
	log := slogx.FromContext(ctx)
	now := time.Now()

	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return "", validationf("email or username is required")
	}

	// 1. Find the account
	var (
		a   domain.Account
		err error
	)
	if strings.Contains(identifier, "@") {
		a, err = s.Store.Accounts().GetAccountByEmail(ctx, identifier)
	} else {
		a, err = s.Store.Accounts().GetAccountByUsername(ctx, identifier)
	}
	if err != nil {
		return "", mapStoreErr(err, "account")
	}
	if !a.Active {
		log.Warn("password reset for inactive account", slog.Int64("account_id", a.ID))
		return "", fmt.Errorf("%w: account is inactive", ErrForbidden)
	}

	// 2. Mint the token and remember its jti
	token, claims, err := s.Tokens.IssueResetToken(a, now)
	if err != nil {
		log.Error("failed to sign reset token", slog.Any("error", err))
		return "", err
	}

	err = s.Store.PasswordResets().CreatePasswordReset(ctx, domain.PasswordReset{
		TokenHash: cryptox.FingerprintToken(claims.ID),
		AccountID: a.ID,
		ExpiresAt: claims.ExpiresAt.Time,
		CreatedAt: now,
	})
	if err != nil {
		log.Error("failed to record password reset", slog.Any("error", err))
		return "", err
	}

	// 3. Hand it off for delivery
	err = s.Notifier.PasswordReset(ctx, notify.PasswordResetNotice{
		AccountID: a.ID,
		Email:     a.Email,
		Username:  a.Username,
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
	})
	if err != nil {
		log.Error("failed to enqueue password reset notice", slog.Any("error", err))
		return "", err
	}

	log.Info("password reset issued", slog.Int64("account_id", a.ID))
	return notify.MaskEmail(a.Email), nil
}

// ResetPassword sets a new password using a reset token. Each token works
// once.
func (s *AccountService) ResetPassword(ctx context.Context, token, newPassword string) error {
	log := slogx.FromContext(ctx)

	accountID, claims, err := s.Tokens.VerifyResetToken(token)
	if err != nil {
		log.Warn("invalid password reset token", slog.Any("error", err))
		return ErrAuth
	}
	if err := validateAccountPassword(newPassword); err != nil {
		return err
	}

	hash, err := s.Hasher.Hash(newPassword)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		owner, err := tx.PasswordResets().ConsumePasswordReset(ctx, cryptox.FingerprintToken(claims.ID), time.Now())
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrAuth
			}
			return err
		}
		if owner != accountID {
			return ErrAuth
		}
		return mapStoreErr(tx.Accounts().UpdatePasswordHash(ctx, accountID, hash), "account")
	})
	if err != nil {
		if errors.Is(err, ErrAuth) {
			log.Warn("password reset token already used or unknown", slog.Int64("account_id", accountID))
		}
		return err
	}

	log.Info("password reset successfully", slog.Int64("account_id", accountID))
	return nil
}

// ChangePassword replaces the password after checking the current one.
func (s *AccountService) ChangePassword(ctx context.Context, accountID int64, oldPassword, newPassword string) error {
	log := slogx.FromContext(ctx)

	a, err := s.Store.Accounts().GetAccountByID(ctx, accountID)
	if err != nil {
		return mapStoreErr(err, "account")
	}
	if err := s.Hasher.Verify(oldPassword, a.PasswordHash); err != nil {
		log.Warn("password change with wrong current password")
		return ErrAuth
	}
	if err := validateAccountPassword(newPassword); err != nil {
		return err
	}

	hash, err := s.Hasher.Hash(newPassword)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return err
	}
	if err := s.Store.Accounts().UpdatePasswordHash(ctx, accountID, hash); err != nil {
		return mapStoreErr(err, "account")
	}

	log.Info("password changed successfully")
	return nil
}

// DeleteAccount removes the account and, by cascade, its whole vault.
func (s *AccountService) DeleteAccount(ctx context.Context, accountID int64, password string) error {
	log := slogx.FromContext(ctx)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		a, err := tx.Accounts().GetAccountByID(ctx, accountID)
		if err != nil {
			return mapStoreErr(err, "account")
		}
		if err := s.Hasher.Verify(password, a.PasswordHash); err != nil {
			return ErrAuth
		}
		return mapStoreErr(tx.Accounts().DeleteAccount(ctx, accountID), "account")
	})
	if err != nil {
		return err
	}

	log.Info("account deleted successfully")
	return nil
}
