package entryrepo

import (
	"context"

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

func (r *Repository) CreateEntry(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	query := `
		INSERT INTO ledger_entries (account_id, transfer_id, kind, amount, balance_after, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, entry.AccountID, entry.TransferID, string(entry.Kind), entry.Amount, entry.BalanceAfter, entry.CreatedAt).
		Scan(&entry.ID)
	if err != nil {
		zap.L().Error("can't save ledger entry", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (r *Repository) GetEntriesByAccountID(ctx context.Context, accountID int) ([]domain.LedgerEntry, error) {
	query := `
		SELECT id, account_id, transfer_id, kind, amount, balance_after, created_at
		FROM ledger_entries
		WHERE account_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		zap.L().Error("failed to fetch ledger entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var entry domain.LedgerEntry
		var kind string
		err := rows.Scan(&entry.ID, &entry.AccountID, &entry.TransferID, &kind, &entry.Amount, &entry.BalanceAfter, &entry.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan ledger entry row", zap.Error(err))
			return nil, err
		}
		entry.Kind = domain.EntryKind(kind)
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
