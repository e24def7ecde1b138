package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/lumabank/accounts/internal/accounts/domain"
	"github.com/lumabank/accounts/internal/accounts/store"
	"github.com/lumabank/accounts/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(filepath.Join(t.TempDir(), "accounts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func testAccount(role domain.Role, email, passport string) domain.Account {
	return domain.Account{
		ID:             idx.New().String(),
		Email:          email,
		PassportNumber: passport,
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Role:           role,
	}
}

func TestAccountsCreateAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := testAccount(domain.RoleClient, "ada@example.com", "AB123456")
	require.NoError(t, s.Accounts().CreateAccount(ctx, a))

	got, err := s.Accounts().GetAccountByID(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, a.Email, got.Email)
	require.Equal(t, domain.RoleClient, got.Role)
	require.False(t, got.IsActive)
	require.False(t, got.IsClosed)
	require.Nil(t, got.PINHash)
	require.EqualValues(t, 0, got.BalanceCents)
	require.False(t, got.CreatedAt.IsZero())

	byEmail, err := s.Accounts().GetAccountByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.Equal(t, a.ID, byEmail.ID)

	_, err = s.Accounts().GetAccountByID(ctx, idx.New().String())
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestAccountsUniqueConstraints(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Accounts().CreateAccount(ctx,
		testAccount(domain.RoleClient, "dup@example.com", "PP111111")))

	err := s.Accounts().CreateAccount(ctx,
		testAccount(domain.RoleClient, "dup@example.com", "PP222222"))
	require.ErrorIs(t, err, store.ErrEmailExists)

	err = s.Accounts().CreateAccount(ctx,
		testAccount(domain.RoleClient, "other@example.com", "PP111111"))
	require.ErrorIs(t, err, store.ErrPassportExists)
}

func TestAccountsUpdates(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := testAccount(domain.RoleClient, "upd@example.com", "UP123456")
	require.NoError(t, s.Accounts().CreateAccount(ctx, a))

	require.NoError(t, s.Accounts().UpdateProfile(ctx, a.ID, store.ProfileUpdate{
		FirstName:      "Grace",
		LastName:       "Hopper",
		Email:          "grace@example.com",
		PassportNumber: "UP654321",
	}))

	require.NoError(t, s.Accounts().UpdatePINHash(ctx, a.ID, "$argon2id$..."))
	require.NoError(t, s.Accounts().UpdateLifecycle(ctx, a.ID, true, false))

	got, err := s.Accounts().GetAccountByID(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, "Grace", got.FirstName)
	require.Equal(t, "grace@example.com", got.Email)
	require.True(t, got.HasPIN())
	require.True(t, got.IsActive)

	require.ErrorIs(t,
		s.Accounts().UpdateLifecycle(ctx, idx.New().String(), true, false),
		store.ErrNotFound)
}

func TestListClientsFilters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	active := testAccount(domain.RoleClient, "active@example.com", "LC000001")
	active.IsActive = true
	closed := testAccount(domain.RoleClient, "closed@example.com", "LC000002")
	closed.IsClosed = true
	pending := testAccount(domain.RoleClient, "pending@example.com", "LC000003")
	manager := testAccount(domain.RoleManager, "boss@example.com", "LC000004")
	staff := testAccount(domain.RoleStaff, "staff@example.com", "LC000005")

	for _, a := range []domain.Account{active, closed, pending, manager, staff} {
		require.NoError(t, s.Accounts().CreateAccount(ctx, a))
	}

	all, err := s.Accounts().ListClients(ctx, store.ClientFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3, "managers and staff must not be listed")

	tr, fa := true, false

	activeOnly, err := s.Accounts().ListClients(ctx, store.ClientFilter{IsActive: &tr})
	require.NoError(t, err)
	require.Len(t, activeOnly, 1)
	require.Equal(t, active.ID, activeOnly[0].ID)

	openOnly, err := s.Accounts().ListClients(ctx, store.ClientFilter{IsClosed: &fa})
	require.NoError(t, err)
	require.Len(t, openOnly, 2)

	emails, err := s.Accounts().ListManagerEmails(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"boss@example.com"}, emails)
}

func TestTokensLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := testAccount(domain.RoleClient, "tok@example.com", "TK123456")
	require.NoError(t, s.Accounts().CreateAccount(ctx, a))
	require.NoError(t, s.Tokens().CreateToken(ctx, domain.Token{
		Value:     "opaque-token-value",
		AccountID: a.ID,
	}))

	tok, err := s.Tokens().GetTokenByAccountID(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, "opaque-token-value", tok.Value)

	accountID, err := s.Tokens().GetAccountIDByToken(ctx, "opaque-token-value")
	require.NoError(t, err)
	require.Equal(t, a.ID, accountID)

	_, err = s.Tokens().GetAccountIDByToken(ctx, "unknown")
	require.ErrorIs(t, err, store.ErrNotFound)

	// Deleting the account cascades to its token.
	require.NoError(t, s.Accounts().DeleteAccount(ctx, a.ID))
	_, err = s.Tokens().GetAccountIDByToken(ctx, "opaque-token-value")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestWithTxRollback(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	boom := errors.New("boom")
	err := s.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Accounts().CreateAccount(ctx,
			testAccount(domain.RoleClient, "tx@example.com", "TX123456")); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = s.Accounts().GetAccountByEmail(ctx, "tx@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}
