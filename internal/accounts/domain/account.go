package domain

import (
	"fmt"
	"time"
)

// Role is the account's role, stored as a single tagged value rather than
// a combination of boolean flags so that ambiguous states (manager+staff)
// cannot be persisted.
type Role string

const (
	RoleClient    Role = "client"
	RoleManager   Role = "manager"
	RoleStaff     Role = "staff"
	RoleSuperuser Role = "superuser"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleManager, RoleStaff, RoleSuperuser:
		return true
	}
	return false
}

type Account struct {
	ID             string
	Email          string
	PassportNumber string
	FirstName      string
	LastName       string
	PINHash        *string // argon2 encoded; nil means no PIN has been set yet
	Role           Role
	IsActive       bool
	IsClosed       bool
	BalanceCents   int64 // minor units; never mutated through the HTTP surface
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsClient is derived from the role, never stored.
func (a Account) IsClient() bool { return a.Role == RoleClient }

// HasPIN reports whether a usable credential has been set.
func (a Account) HasPIN() bool { return a.PINHash != nil && *a.PINHash != "" }

// FullName renders "First Last" for notification bodies.
func (a Account) FullName() string { return a.FirstName + " " + a.LastName }

// Balance renders the stored minor units with two decimal places.
func (a Account) Balance() string {
	cents := a.BalanceCents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
