package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/passkeep/internal/vault/domain"
)

var (
	// ErrNotFound means no row matched. For owner-scoped lookups that
	// includes rows that exist but belong to another account.
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface, implemented by the drivers under
// drivers/. It hands out sub-repositories so that code running inside a
// transaction gets the same repos bound to that transaction and cannot open a
// second one by accident.
type Store interface {
	Accounts() Accounts
	Groups() Groups
	Credentials() Credentials
	PasswordResets() PasswordResets

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store. The
	// caller MUST call Commit() or Rollback().
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise. Inside fn use only tx; the outer Store may be
	// blocked for the duration.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx is a transactional store.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Accounts interface {
	// CreateAccount inserts a and returns its id. ErrAlreadyExists when the
	// email or username is taken.
	CreateAccount(ctx context.Context, a domain.Account) (int64, error)

	GetAccountByID(ctx context.Context, id int64) (domain.Account, error)
	GetAccountByUsername(ctx context.Context, username string) (domain.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (domain.Account, error)

	// UpdateProfile sets the non-nil fields. An empty phone clears it.
	UpdateProfile(ctx context.Context, id int64, username, phone *string) error

	// UpdatePasswordHash replaces the stored argon2id hash.
	UpdatePasswordHash(ctx context.Context, id int64, hash string) error

	// DeleteAccount cascades to groups, credentials and reset records.
	DeleteAccount(ctx context.Context, id int64) error
}

// Groups are always addressed through their owner. A group owned by someone
// else is reported exactly like a missing one.
type Groups interface {
	// CreateGroup inserts g and returns its id. ErrAlreadyExists when the
	// owner already has a group with that name.
	CreateGroup(ctx context.Context, g domain.Group) (int64, error)

	GetGroup(ctx context.Context, accountID, groupID int64) (domain.Group, error)

	// OwnsGroup reports whether groupID exists and belongs to accountID.
	OwnsGroup(ctx context.Context, accountID, groupID int64) (bool, error)

	// UpdateGroup applies p in a single owner-scoped statement.
	UpdateGroup(ctx context.Context, accountID, groupID int64, p domain.GroupPatch) error

	// DeleteGroup removes the group and, by cascade, its credentials.
	DeleteGroup(ctx context.Context, accountID, groupID int64) error

	// ListGroups returns the owner's groups in creation order.
	ListGroups(ctx context.Context, accountID int64) ([]domain.Group, error)

	// ListGroupsWithCredentials is the inner join of groups and their
	// credentials; groups without credentials do not appear.
	ListGroupsWithCredentials(ctx context.Context, accountID int64) ([]domain.GroupCredential, error)
}

// Credentials are scoped through the owning group's account.
type Credentials interface {
	// CreateCredential inserts c into c.GroupID if that group belongs to
	// accountID. c.Secret must already be encrypted. ErrNotFound when the
	// group is not owned, ErrAlreadyExists on a (service, login) collision.
	CreateCredential(ctx context.Context, accountID int64, c domain.Credential) (int64, error)

	GetCredential(ctx context.Context, accountID, credentialID int64) (domain.Credential, error)

	OwnsCredential(ctx context.Context, accountID, credentialID int64) (bool, error)

	// UpdateCredential applies p. p.Secret must already be encrypted.
	UpdateCredential(ctx context.Context, accountID, credentialID int64, p domain.CredentialPatch) error

	DeleteCredential(ctx context.Context, accountID, credentialID int64) error

	// ListByGroup returns the credentials of an owned group without secrets.
	// A foreign or missing group yields an empty list.
	ListByGroup(ctx context.Context, accountID, groupID int64) ([]domain.CredentialSummary, error)

	// Search matches case-sensitive substrings, ANDing the set filters.
	Search(ctx context.Context, accountID int64, f domain.SearchFilter) ([]domain.SearchMatch, error)
}

type PasswordResets interface {
	CreatePasswordReset(ctx context.Context, r domain.PasswordReset) error

	// ConsumePasswordReset marks the record used and returns its account.
	// ErrNotFound when it is unknown, already used or expired at now.
	ConsumePasswordReset(ctx context.Context, tokenHash string, now time.Time) (int64, error)

	// DeleteStalePasswordResets removes used or expired records and returns
	// how many were deleted.
	DeleteStalePasswordResets(ctx context.Context, now time.Time) (int64, error)
}
