package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lumabank/accounts/internal/accounts/domain"
	"github.com/lumabank/accounts/internal/accounts/mail"
	"github.com/lumabank/accounts/internal/accounts/metrics"
	"github.com/lumabank/accounts/internal/accounts/store"
	"github.com/lumabank/accounts/pkg/cryptox"
	"github.com/lumabank/accounts/pkg/idx"
	"github.com/lumabank/accounts/pkg/slogx"
)

type RegisterService struct {
	Store  store.Store
	Mailer mail.Mailer
}

type RegisterInput struct {
	FirstName      string
	LastName       string
	Email          string
	PassportNumber string
}

// Register creates a client account and its bearer token in one
// transaction, then dispatches the creation notifications. The account
// starts inactive with no PIN; a manager activates it and the client sets
// a PIN afterwards.
//
// Notification failures are logged and swallowed: mail is best-effort and
// must never roll back or fail a registration that already committed.
func (s *RegisterService) Register(ctx context.Context, in RegisterInput) (domain.Account, domain.Token, error) {
	log := slogx.FromContext(ctx)

	tokenValue, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return domain.Account{}, domain.Token{}, err
	}

	account := domain.Account{
		ID:             idx.New().String(),
		Email:          in.Email,
		PassportNumber: in.PassportNumber,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Role:           domain.RoleClient,
		IsActive:       false,
	}
	token := domain.Token{Value: tokenValue, AccountID: account.ID}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Accounts().CreateAccount(ctx, account); err != nil {
			return err
		}
		return tx.Tokens().CreateToken(ctx, token)
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) || errors.Is(err, store.ErrPassportExists) {
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
		} else {
			log.Error("failed to create account", slog.Any("error", err))
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		}
		return domain.Account{}, domain.Token{}, err
	}

	log.Info("client account registered",
		slog.String("account_id", account.ID),
		slog.String("email", account.Email),
	)
	metrics.RegistrationsTotal.WithLabelValues("created").Inc()

	s.notifyCreated(ctx, account)

	return account, token, nil
}

// notifyCreated announces the new account to every manager and welcomes
// the client. Runs after the creation transaction has committed.
func (s *RegisterService) notifyCreated(ctx context.Context, a domain.Account) {
	log := slogx.FromContext(ctx)

	managers, err := s.Store.Accounts().ListManagerEmails(ctx)
	if err != nil {
		log.Error("failed to list manager emails for notification", slog.Any("error", err))
		metrics.NotificationsTotal.WithLabelValues("manager_announcement", "error").Inc()
	} else if len(managers) > 0 {
		err := s.Mailer.Send(ctx, mail.Message{
			To:      managers,
			Subject: fmt.Sprintf("New client account %s", a.ID),
			Body: fmt.Sprintf("A new client account was registered: %s (id %s, email %s).",
				a.FullName(), a.ID, a.Email),
		})
		if err != nil {
			log.Error("failed to send manager announcement", slog.Any("error", err))
			metrics.NotificationsTotal.WithLabelValues("manager_announcement", "error").Inc()
		} else {
			metrics.NotificationsTotal.WithLabelValues("manager_announcement", "sent").Inc()
		}
	}

	err = s.Mailer.Send(ctx, mail.Message{
		To:      []string{a.Email},
		Subject: "Thank you for registering",
		Body: fmt.Sprintf("Dear %s, thank you for registering with our service. "+
			"A manager will review and activate your account shortly.", a.FullName()),
	})
	if err != nil {
		log.Error("failed to send welcome mail",
			slog.String("account_id", a.ID),
			slog.Any("error", err),
		)
		metrics.NotificationsTotal.WithLabelValues("client_welcome", "error").Inc()
		return
	}
	metrics.NotificationsTotal.WithLabelValues("client_welcome", "sent").Inc()
}
