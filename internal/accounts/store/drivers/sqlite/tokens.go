package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/lumabank/accounts/internal/accounts/domain"
	"github.com/lumabank/accounts/internal/accounts/store"
)

type tokensRepo struct {
	db dbtx
}

func (r *tokensRepo) CreateToken(ctx context.Context, t domain.Token) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tokens (token, account_id, created_at) VALUES (?, ?, ?)`,
		t.Value, t.AccountID, time.Now().UTC(),
	)
	return err
}

func (r *tokensRepo) GetTokenByAccountID(ctx context.Context, accountID string) (domain.Token, error) {
	var t domain.Token
	err := r.db.QueryRowContext(ctx,
		`SELECT token, account_id, created_at FROM tokens WHERE account_id = ?`,
		accountID,
	).Scan(&t.Value, &t.AccountID, &t.CreatedAt)
	if err != nil {
		return domain.Token{}, mapNotFound(err)
	}
	return t, nil
}

func (r *tokensRepo) GetAccountIDByToken(ctx context.Context, token string) (string, error) {
	var accountID string
	err := r.db.QueryRowContext(ctx,
		`SELECT account_id FROM tokens WHERE token = ?`, token,
	).Scan(&accountID)
	if err != nil {
		return "", mapNotFound(err)
	}
	return accountID, nil
}

// requireRow converts a zero-row UPDATE/DELETE into store.ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
