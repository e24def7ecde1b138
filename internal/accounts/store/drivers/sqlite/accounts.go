package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/lumabank/accounts/internal/accounts/domain"
	"github.com/lumabank/accounts/internal/accounts/store"
)

const accountColumns = `id, email, passport_number, first_name, last_name,
	pin_hash, role, is_active, is_closed, balance_cents, created_at, updated_at`

type accountsRepo struct {
	db dbtx
}

func (r *accountsRepo) scanAccount(row interface{ Scan(...any) error }) (domain.Account, error) {
	var a accountRow
	err := row.Scan(
		&a.id, &a.email, &a.passportNumber, &a.firstName, &a.lastName,
		&a.pinHash, &a.role, &a.isActive, &a.isClosed, &a.balanceCents,
		&a.createdAt, &a.updatedAt,
	)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return a.toDomain(), nil
}

func (r *accountsRepo) GetAccountByID(ctx context.Context, id string) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = ?`, id)
	return r.scanAccount(row)
}

func (r *accountsRepo) GetAccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE email = ?`, email)
	return r.scanAccount(row)
}

func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.Account) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO accounts (
			id, email, passport_number, first_name, last_name,
			pin_hash, role, is_active, is_closed, balance_cents, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Email, a.PassportNumber, a.FirstName, a.LastName,
		mapOptionalString(a.PINHash), string(a.Role),
		boolToInt(a.IsActive), boolToInt(a.IsClosed), a.BalanceCents, now, now,
	)
	return mapConflict(err)
}

func (r *accountsRepo) UpdateProfile(ctx context.Context, accountID string, p store.ProfileUpdate) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE accounts
		 SET first_name = ?, last_name = ?, email = ?, passport_number = ?, updated_at = ?
		 WHERE id = ?`,
		p.FirstName, p.LastName, p.Email, p.PassportNumber, time.Now().UTC(), accountID,
	)
	if err != nil {
		return mapConflict(err)
	}
	return requireRow(res)
}

func (r *accountsRepo) UpdatePINHash(ctx context.Context, accountID string, newHash string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE accounts SET pin_hash = ?, updated_at = ? WHERE id = ?`,
		newHash, time.Now().UTC(), accountID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *accountsRepo) UpdateLifecycle(ctx context.Context, accountID string, isActive, isClosed bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE accounts SET is_active = ?, is_closed = ?, updated_at = ? WHERE id = ?`,
		boolToInt(isActive), boolToInt(isClosed), time.Now().UTC(), accountID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *accountsRepo) DeleteAccount(ctx context.Context, accountID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, accountID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *accountsRepo) ListClients(ctx context.Context, f store.ClientFilter) ([]domain.Account, error) {
	var (
		conds = []string{`role = ?`}
		args  = []any{string(domain.RoleClient)}
	)
	if f.IsActive != nil {
		conds = append(conds, `is_active = ?`)
		args = append(args, boolToInt(*f.IsActive))
	}
	if f.IsClosed != nil {
		conds = append(conds, `is_closed = ?`)
		args = append(args, boolToInt(*f.IsClosed))
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+accountColumns+` FROM accounts
		 WHERE `+strings.Join(conds, " AND ")+`
		 ORDER BY created_at DESC, id DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Account
	for rows.Next() {
		a, err := r.scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *accountsRepo) ListManagerEmails(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT email FROM accounts WHERE role = ? ORDER BY email`,
		string(domain.RoleManager))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}
		emails = append(emails, email)
	}
	return emails, rows.Err()
}

func (r *accountsRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}
