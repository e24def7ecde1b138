package domain

import "time"

// Token is the opaque bearer credential. Exactly one exists per account,
// created in the same transaction as the account and never rotated. The
// value is stored as-is because login returns the existing token.
type Token struct {
	Value     string
	AccountID string
	CreatedAt time.Time
}
