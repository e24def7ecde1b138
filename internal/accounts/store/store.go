package store

import (
	"context"
	"errors"

	"github.com/lumabank/accounts/internal/accounts/domain"
)

var (
	ErrNotFound = errors.New("store: not found")

	// Uniqueness violations surface as one of these so the service layer
	// can report a field-level validation error instead of crashing.
	ErrEmailExists    = errors.New("store: email already exists")
	ErrPassportExists = errors.New("store: passport number already exists")
)

// ClientFilter narrows ListClients. Nil pointers mean "don't filter".
type ClientFilter struct {
	IsActive *bool
	IsClosed *bool
}

// ProfileUpdate carries the client-editable profile fields.
type ProfileUpdate struct {
	FirstName      string
	LastName       string
	Email          string
	PassportNumber string
}

// Store is the root data access interface. Concrete drivers (sqlite)
// implement this. Sub-repositories keep concerns tidy and testable.
type Store interface {
	Accounts() Accounts
	Tokens() Tokens

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction: rolled back if fn returns an
	// error, committed otherwise. Preferred over Tx for multi-step writes
	// such as account+token creation.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Accounts interface {
	// GetAccountByID returns an account by id.
	GetAccountByID(ctx context.Context, id string) (domain.Account, error)

	// GetAccountByEmail is used during login.
	GetAccountByEmail(ctx context.Context, email string) (domain.Account, error)

	// CreateAccount inserts a new account (id is provided by app via ULID).
	// Duplicate email/passport return ErrEmailExists/ErrPassportExists.
	CreateAccount(ctx context.Context, a domain.Account) error

	// UpdateProfile mutates the client-editable fields and bumps updated_at.
	UpdateProfile(ctx context.Context, accountID string, p ProfileUpdate) error

	// UpdatePINHash sets the pin_hash (argon2) and bumps updated_at.
	UpdatePINHash(ctx context.Context, accountID string, newHash string) error

	// UpdateLifecycle sets the manager-editable is_active/is_closed flags.
	UpdateLifecycle(ctx context.Context, accountID string, isActive, isClosed bool) error

	// DeleteAccount hard-deletes; the token row cascades (per schema).
	DeleteAccount(ctx context.Context, accountID string) error

	// ListClients returns role=client accounts, optionally filtered.
	ListClients(ctx context.Context, f ClientFilter) ([]domain.Account, error)

	// ListManagerEmails returns the email of every manager account, for
	// new-account notifications.
	ListManagerEmails(ctx context.Context) ([]string, error)

	// IsEmpty reports whether any account exists (bootstrap check).
	IsEmpty(ctx context.Context) (bool, error)
}

type Tokens interface {
	// CreateToken stores the account's bearer token. Called in the same
	// transaction as CreateAccount so an account cannot exist without one.
	CreateToken(ctx context.Context, t domain.Token) error

	// GetTokenByAccountID returns the account's token (login response).
	GetTokenByAccountID(ctx context.Context, accountID string) (domain.Token, error)

	// GetAccountIDByToken resolves a presented bearer token.
	GetAccountIDByToken(ctx context.Context, token string) (string, error)
}
