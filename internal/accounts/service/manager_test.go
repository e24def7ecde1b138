package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumabank/accounts/internal/accounts/domain"
	"github.com/lumabank/accounts/internal/accounts/store"
)

func boolp(b bool) *bool { return &b }

func TestManagerListClients(t *testing.T) {
	st := newTestStore(t)
	svc := &ManagerService{Store: st}
	ctx := context.Background()

	active, _ := seedAccount(t, st, domain.Account{
		Email: "active@example.com", PassportNumber: "AC111111",
		FirstName: "Active", LastName: "Client",
		Role: domain.RoleClient, IsActive: true,
	})
	closed, _ := seedAccount(t, st, domain.Account{
		Email: "closed@example.com", PassportNumber: "CL222222",
		FirstName: "Closed", LastName: "Client",
		Role: domain.RoleClient, IsActive: true, IsClosed: true,
	})
	seedAccount(t, st, domain.Account{
		Email: "boss@example.com", PassportNumber: "MG333333",
		FirstName: "Max", LastName: "Planck",
		Role: domain.RoleManager, IsActive: true,
	})

	all, err := svc.ListClients(ctx, store.ClientFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2, "managers never appear in the client list")

	open, err := svc.ListClients(ctx, store.ClientFilter{IsClosed: boolp(false)})
	require.NoError(t, err)
	require.Len(t, open, 1)
	require.Equal(t, active.ID, open[0].ID)

	shut, err := svc.ListClients(ctx, store.ClientFilter{IsClosed: boolp(true)})
	require.NoError(t, err)
	require.Len(t, shut, 1)
	require.Equal(t, closed.ID, shut[0].ID)
}

func TestManagerGetClientHidesNonClients(t *testing.T) {
	st := newTestStore(t)
	svc := &ManagerService{Store: st}
	ctx := context.Background()

	client, _ := seedAccount(t, st, domain.Account{
		Email: "c@example.com", PassportNumber: "CC111111",
		FirstName: "Some", LastName: "Client",
		Role: domain.RoleClient,
	})
	manager, _ := seedAccount(t, st, domain.Account{
		Email: "m@example.com", PassportNumber: "MM222222",
		FirstName: "Some", LastName: "Manager",
		Role: domain.RoleManager, IsActive: true,
	})

	got, err := svc.GetClient(ctx, client.ID)
	require.NoError(t, err)
	require.Equal(t, client.ID, got.ID)

	_, err = svc.GetClient(ctx, manager.ID)
	require.ErrorIs(t, err, store.ErrNotFound, "manager accounts look like missing ids here")

	_, err = svc.GetClient(ctx, "01ZZZZZZZZZZZZZZZZZZZZZZZZ")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestManagerUpdateClientLifecycle(t *testing.T) {
	st := newTestStore(t)
	svc := &ManagerService{Store: st}
	ctx := context.Background()

	client, _ := seedAccount(t, st, domain.Account{
		Email: "c@example.com", PassportNumber: "CC111111",
		FirstName: "Some", LastName: "Client",
		Role: domain.RoleClient,
	})

	updated, err := svc.UpdateClient(ctx, client.ID, LifecycleUpdate{IsActive: true})
	require.NoError(t, err)
	require.True(t, updated.IsActive)
	require.False(t, updated.IsClosed)

	updated, err = svc.UpdateClient(ctx, client.ID, LifecycleUpdate{IsActive: false, IsClosed: true})
	require.NoError(t, err)
	require.False(t, updated.IsActive)
	require.True(t, updated.IsClosed)
}

func TestManagerDeleteClient(t *testing.T) {
	st := newTestStore(t)
	svc := &ManagerService{Store: st}
	ctx := context.Background()

	client, token := seedAccount(t, st, domain.Account{
		Email: "c@example.com", PassportNumber: "CC111111",
		FirstName: "Some", LastName: "Client",
		Role: domain.RoleClient,
	})
	manager, _ := seedAccount(t, st, domain.Account{
		Email: "m@example.com", PassportNumber: "MM222222",
		FirstName: "Some", LastName: "Manager",
		Role: domain.RoleManager, IsActive: true,
	})

	require.NoError(t, svc.DeleteClient(ctx, client.ID))

	_, err := st.Accounts().GetAccountByID(ctx, client.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	// The token row cascades with the account.
	_, err = st.Tokens().GetAccountIDByToken(ctx, token.Value)
	require.ErrorIs(t, err, store.ErrNotFound)

	// Managers cannot be deleted through this surface.
	err = svc.DeleteClient(ctx, manager.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestBootstrapManager(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, BootstrapManager(ctx, st, "root@example.com", "4821"))

	account, err := st.Accounts().GetAccountByEmail(ctx, "root@example.com")
	require.NoError(t, err)
	require.Equal(t, domain.RoleManager, account.Role)
	require.True(t, account.IsActive)

	// The seeded manager can log in straight away.
	auth := &AuthService{Store: st}
	_, token, err := auth.Login(ctx, "root@example.com", "4821")
	require.NoError(t, err)
	require.NotEmpty(t, token.Value)

	// A second run is a no-op once any account exists.
	require.NoError(t, BootstrapManager(ctx, st, "other@example.com", "0000"))
	_, err = st.Accounts().GetAccountByEmail(ctx, "other@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	// Blank credentials never seed anything.
	empty := newTestStore(t)
	require.NoError(t, BootstrapManager(ctx, empty, "", ""))
	isEmpty, err := empty.Accounts().IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, isEmpty)
}
