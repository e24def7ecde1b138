package service

import (
	"context"
	"log/slog"

	"github.com/lumabank/accounts/internal/accounts/domain"
	"github.com/lumabank/accounts/internal/accounts/metrics"
	"github.com/lumabank/accounts/internal/accounts/store"
	"github.com/lumabank/accounts/pkg/slogx"
)

// ManagerService implements the administration surface managers use on
// client accounts. Non-client accounts are invisible through this service:
// looking one up by id behaves exactly like looking up an id that does not
// exist.
type ManagerService struct {
	Store store.Store
}

// LifecycleUpdate carries the manager-editable flags.
type LifecycleUpdate struct {
	IsActive bool
	IsClosed bool
}

func (s *ManagerService) ListClients(ctx context.Context, f store.ClientFilter) ([]domain.Account, error) {
	clients, err := s.Store.Accounts().ListClients(ctx, f)
	if err != nil {
		return nil, err
	}
	metrics.ManagerActionsTotal.WithLabelValues("list").Inc()
	return clients, nil
}

func (s *ManagerService) GetClient(ctx context.Context, id string) (domain.Account, error) {
	account, err := s.getClient(ctx, id)
	if err != nil {
		return domain.Account{}, err
	}
	metrics.ManagerActionsTotal.WithLabelValues("get").Inc()
	return account, nil
}

// UpdateClient sets the lifecycle flags and returns the updated account.
func (s *ManagerService) UpdateClient(ctx context.Context, id string, u LifecycleUpdate) (domain.Account, error) {
	if _, err := s.getClient(ctx, id); err != nil {
		return domain.Account{}, err
	}
	if err := s.Store.Accounts().UpdateLifecycle(ctx, id, u.IsActive, u.IsClosed); err != nil {
		return domain.Account{}, err
	}

	slogx.FromContext(ctx).Info("client lifecycle updated",
		slog.String("account_id", id),
		slog.Bool("is_active", u.IsActive),
		slog.Bool("is_closed", u.IsClosed),
	)
	metrics.ManagerActionsTotal.WithLabelValues("update").Inc()
	return s.Store.Accounts().GetAccountByID(ctx, id)
}

// DeleteClient hard-deletes the account; the token row cascades away with it.
func (s *ManagerService) DeleteClient(ctx context.Context, id string) error {
	if _, err := s.getClient(ctx, id); err != nil {
		return err
	}
	if err := s.Store.Accounts().DeleteAccount(ctx, id); err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("client deleted", slog.String("account_id", id))
	metrics.ManagerActionsTotal.WithLabelValues("delete").Inc()
	return nil
}

func (s *ManagerService) getClient(ctx context.Context, id string) (domain.Account, error) {
	account, err := s.Store.Accounts().GetAccountByID(ctx, id)
	if err != nil {
		return domain.Account{}, err
	}
	if !account.IsClient() {
		return domain.Account{}, store.ErrNotFound
	}
	return account, nil
}
