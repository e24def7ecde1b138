package service

import "errors"

var (
	// ErrUnknownEmail is returned by Login when no account has the email.
	ErrUnknownEmail = errors.New("unknown email")

	// ErrInvalidCredentials is returned by Login when the PIN is wrong or
	// the account has no PIN set yet.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned when a presented bearer token resolves
	// to no account.
	ErrInvalidToken = errors.New("invalid token")

	// ErrAccountInactive is returned when the token's account exists but
	// has not been activated by a manager (or was deactivated).
	ErrAccountInactive = errors.New("account inactive")
)
