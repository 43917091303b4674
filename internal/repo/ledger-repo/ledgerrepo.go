package ledgerrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gigmart/internal/domain"
	"github.com/GlebRadaev/gigmart/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// GetBalance returns 0 for an account that was never credited.
func (r *Repository) GetBalance(ctx context.Context, accountID int) (int64, error) {
	var balance int64
	err := r.db.QueryRow(ctx, `SELECT balance FROM ledger_accounts WHERE account_id = $1`, accountID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		zap.L().Error("failed to get balance", zap.Int("accountID", accountID), zap.Error(err))
		return 0, err
	}
	return balance, nil
}

// LockAccounts row-locks the given accounts, creating missing ones at zero.
// accountIDs must be sorted so every caller acquires locks in the same order.
func (r *Repository) LockAccounts(ctx context.Context, accountIDs []int) error {
	insert := `
		INSERT INTO ledger_accounts (account_id, balance)
		SELECT id, 0 FROM unnest($1::int[]) AS id
		ON CONFLICT (account_id) DO NOTHING
	`
	if _, err := r.db.Exec(ctx, insert, accountIDs); err != nil {
		zap.L().Error("failed to create ledger accounts", zap.Error(err))
		return err
	}

	lock := `
		SELECT account_id
		FROM ledger_accounts
		WHERE account_id = ANY($1)
		ORDER BY account_id
		FOR UPDATE
	`
	rows, err := r.db.Query(ctx, lock, accountIDs)
	if err != nil {
		zap.L().Error("failed to lock ledger accounts", zap.Error(err))
		return err
	}
	defer rows.Close()

	locked := 0
	for rows.Next() {
		locked++
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to lock ledger accounts", zap.Error(err))
		return err
	}
	if locked != len(accountIDs) {
		return fmt.Errorf("locked %d of %d ledger accounts", locked, len(accountIDs))
	}
	return nil
}

func (r *Repository) Credit(ctx context.Context, accountID int, amount int64) (int64, error) {
	query := `
		INSERT INTO ledger_accounts (account_id, balance)
		VALUES ($1, $2)
		ON CONFLICT (account_id) DO UPDATE SET balance = ledger_accounts.balance + EXCLUDED.balance
		RETURNING balance
	`
	var balance int64
	if err := r.db.QueryRow(ctx, query, accountID, amount).Scan(&balance); err != nil {
		err = pg.Classify(err)
		if errors.Is(err, domain.ErrBalanceOverflow) {
			return 0, err
		}
		zap.L().Error("failed to credit account", zap.Int("accountID", accountID), zap.Error(err))
		return 0, err
	}
	return balance, nil
}

// Debit checks and decrements in one statement so concurrent debits can't both pass a stale check.
func (r *Repository) Debit(ctx context.Context, accountID int, amount int64) (int64, error) {
	query := `
		UPDATE ledger_accounts
		SET balance = balance - $1
		WHERE account_id = $2 AND balance >= $1
		RETURNING balance
	`
	var balance int64
	err := r.db.QueryRow(ctx, query, amount, accountID).Scan(&balance)
	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		zap.L().Error("failed to debit account", zap.Int("accountID", accountID), zap.Error(err))
		return 0, err
	}

	current, err := r.GetBalance(ctx, accountID)
	if err != nil {
		return 0, err
	}
	return 0, &domain.InsufficientFundsError{AccountID: accountID, Balance: current, Amount: amount}
}
