package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/lumabank/accounts/internal/accounts/domain"
	"github.com/lumabank/accounts/internal/accounts/metrics"
	"github.com/lumabank/accounts/internal/accounts/store"
	"github.com/lumabank/accounts/pkg/cryptox"
	"github.com/lumabank/accounts/pkg/slogx"
)

type AuthService struct {
	Store store.Store
}

// Login verifies an email+PIN pair and returns the account together with
// its bearer token. It deliberately does not check is_active: an inactive
// account can log in but its token is rejected on authenticated endpoints.
func (s *AuthService) Login(ctx context.Context, email, pin string) (domain.Account, domain.Token, error) {
	log := slogx.FromContext(ctx)

	account, err := s.Store.Accounts().GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			metrics.LoginsTotal.WithLabelValues("unknown_email").Inc()
			return domain.Account{}, domain.Token{}, ErrUnknownEmail
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return domain.Account{}, domain.Token{}, err
	}

	if !account.HasPIN() {
		metrics.LoginsTotal.WithLabelValues("bad_credentials").Inc()
		return domain.Account{}, domain.Token{}, ErrInvalidCredentials
	}
	if err := cryptox.VerifyPIN(pin, *account.PINHash); err != nil {
		if errors.Is(err, cryptox.ErrPINMismatch) {
			log.Info("login failed", slog.String("account_id", account.ID))
			metrics.LoginsTotal.WithLabelValues("bad_credentials").Inc()
			return domain.Account{}, domain.Token{}, ErrInvalidCredentials
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return domain.Account{}, domain.Token{}, err
	}

	token, err := s.Store.Tokens().GetTokenByAccountID(ctx, account.ID)
	if err != nil {
		// Every account gets a token at creation time; a miss here is a
		// data integrity problem, not a login failure.
		log.Error("account has no token", slog.String("account_id", account.ID), slog.Any("error", err))
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return domain.Account{}, domain.Token{}, err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return account, token, nil
}

// ResolveToken authenticates a presented bearer token. Unknown tokens
// return ErrInvalidToken; tokens of inactive accounts return
// ErrAccountInactive (both map to 401 at the HTTP boundary).
func (s *AuthService) ResolveToken(ctx context.Context, token string) (domain.Account, error) {
	accountID, err := s.Store.Tokens().GetAccountIDByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, ErrInvalidToken
		}
		return domain.Account{}, err
	}

	account, err := s.Store.Accounts().GetAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, ErrInvalidToken
		}
		return domain.Account{}, err
	}

	if !account.IsActive {
		return domain.Account{}, ErrAccountInactive
	}
	return account, nil
}
