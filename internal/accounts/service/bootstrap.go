package service

import (
	"context"
	"log/slog"

	"github.com/lumabank/accounts/internal/accounts/domain"
	"github.com/lumabank/accounts/internal/accounts/store"
	"github.com/lumabank/accounts/pkg/cryptox"
	"github.com/lumabank/accounts/pkg/idx"
	"github.com/lumabank/accounts/pkg/slogx"
)

// BootstrapManager seeds the first manager account when the store is
// empty, so a fresh deployment has someone who can activate clients.
// No-op when any account already exists or when email/pin are blank.
func BootstrapManager(ctx context.Context, st store.Store, email, pin string) error {
	log := slogx.FromContext(ctx)

	if email == "" || pin == "" {
		return nil
	}

	empty, err := st.Accounts().IsEmpty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	hash, err := cryptox.HashPIN(pin)
	if err != nil {
		return err
	}
	tokenValue, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return err
	}

	account := domain.Account{
		ID:             idx.New().String(),
		Email:          email,
		PassportNumber: "BOOTSTRAP",
		FirstName:      "Account",
		LastName:       "Manager",
		PINHash:        &hash,
		Role:           domain.RoleManager,
		IsActive:       true,
	}

	err = st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Accounts().CreateAccount(ctx, account); err != nil {
			return err
		}
		return tx.Tokens().CreateToken(ctx, domain.Token{Value: tokenValue, AccountID: account.ID})
	})
	if err != nil {
		return err
	}

	log.Info("bootstrap manager created",
		slog.String("account_id", account.ID),
		slog.String("email", email),
	)
	return nil
}
