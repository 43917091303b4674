package entryrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/gigmart/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestRepository_CreateEntry(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	transferID := uuid.New()
	query := regexp.QuoteMeta(`INSERT INTO ledger_entries (account_id, transfer_id, kind, amount, balance_after, created_at) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Entry saved",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(1, transferID, "DEBIT", int64(30), int64(70), now).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(5))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(1, transferID, "DEBIT", int64(30), int64(70), now).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			entry := &domain.LedgerEntry{AccountID: 1, TransferID: transferID, Kind: domain.EntryDebit, Amount: 30, BalanceAfter: 70, CreatedAt: now}
			result, err := repo.CreateEntry(context.Background(), entry)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 5, result.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetEntriesByAccountID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	transferID := uuid.New()
	query := regexp.QuoteMeta(`SELECT id, account_id, transfer_id, kind, amount, balance_after, created_at FROM ledger_entries WHERE account_id = $1 ORDER BY created_at DESC, id DESC`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.LedgerEntry
	}{
		{
			name: "Entries found",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "account_id", "transfer_id", "kind", "amount", "balance_after", "created_at"}).
					AddRow(6, 1, transferID, "DEBIT", int64(30), int64(70), now).
					AddRow(5, 1, transferID, "CREDIT", int64(100), int64(100), now)
				mock.ExpectQuery(query).WithArgs(1).WillReturnRows(rows)
			},
			result: []domain.LedgerEntry{
				{ID: 6, AccountID: 1, TransferID: transferID, Kind: domain.EntryDebit, Amount: 30, BalanceAfter: 70, CreatedAt: now},
				{ID: 5, AccountID: 1, TransferID: transferID, Kind: domain.EntryCredit, Amount: 100, BalanceAfter: 100, CreatedAt: now},
			},
		},
		{
			name: "No entries",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1).
					WillReturnRows(pgxmock.NewRows([]string{"id", "account_id", "transfer_id", "kind", "amount", "balance_after", "created_at"}))
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetEntriesByAccountID(context.Background(), 1)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
