package service

import (
	"context"
	"log/slog"

	"github.com/lumabank/accounts/internal/accounts/domain"
	"github.com/lumabank/accounts/internal/accounts/store"
	"github.com/lumabank/accounts/pkg/cryptox"
	"github.com/lumabank/accounts/pkg/slogx"
)

// ProfileService handles the client's self-service operations: viewing and
// editing the profile, and setting or changing the PIN.
type ProfileService struct {
	Store store.Store
}

// GetProfile returns a fresh copy of the account. The authn middleware
// already resolved the account, but re-reading keeps the response
// consistent with concurrent updates within the same request window.
func (s *ProfileService) GetProfile(ctx context.Context, accountID string) (domain.Account, error) {
	return s.Store.Accounts().GetAccountByID(ctx, accountID)
}

// UpdateProfile replaces the client-editable fields. Duplicate email or
// passport surfaces as store.ErrEmailExists/ErrPassportExists for the
// handler to render as a field validation error.
func (s *ProfileService) UpdateProfile(ctx context.Context, accountID string, p store.ProfileUpdate) (domain.Account, error) {
	if err := s.Store.Accounts().UpdateProfile(ctx, accountID, p); err != nil {
		return domain.Account{}, err
	}

	slogx.FromContext(ctx).Info("profile updated", slog.String("account_id", accountID))
	return s.Store.Accounts().GetAccountByID(ctx, accountID)
}

// SetPIN hashes and stores a new PIN. It serves both the initial set and a
// later change; a client who forgot their PIN can overwrite it while still
// holding a valid token.
func (s *ProfileService) SetPIN(ctx context.Context, accountID, pin string) error {
	hash, err := cryptox.HashPIN(pin)
	if err != nil {
		return err
	}
	if err := s.Store.Accounts().UpdatePINHash(ctx, accountID, hash); err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("pin set", slog.String("account_id", accountID))
	return nil
}
