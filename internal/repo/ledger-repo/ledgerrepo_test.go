package ledgerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/gigmart/internal/domain"
)

const (
	selectBalance = `SELECT balance FROM ledger_accounts WHERE account_id = $1`
	creditQuery   = `INSERT INTO ledger_accounts (account_id, balance) VALUES ($1, $2) ON CONFLICT (account_id) DO UPDATE SET balance = ledger_accounts.balance + EXCLUDED.balance RETURNING balance`
	debitQuery    = `UPDATE ledger_accounts SET balance = balance - $1 WHERE account_id = $2 AND balance >= $1 RETURNING balance`
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestRepository_GetBalance(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		accountID int
		mockSetup func()
		expectErr bool
		result    int64
	}{
		{
			name:      "Existing account",
			accountID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectBalance)).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(int64(100)))
			},
			result: 100,
		},
		{
			name:      "Unknown account reads as zero",
			accountID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectBalance)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			result: 0,
		},
		{
			name:      "Database error",
			accountID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectBalance)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetBalance(context.Background(), tt.accountID)
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

func TestRepository_Credit(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(creditQuery)).
		WithArgs(1, int64(50)).
		WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(int64(150)))

	balance, err := repo.Credit(context.Background(), 1, 50)
	assert.NoError(t, err)
	assert.Equal(t, int64(150), balance)

	mock.ExpectQuery(regexp.QuoteMeta(creditQuery)).
		WithArgs(1, int64(50)).
		WillReturnError(errors.New("database error"))

	_, err = repo.Credit(context.Background(), 1, 50)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrBalanceOverflow)

	mock.ExpectQuery(regexp.QuoteMeta(creditQuery)).
		WithArgs(1, int64(1)).
		WillReturnError(&pgconn.PgError{Code: "22003", Message: "bigint out of range"})

	_, err = repo.Credit(context.Background(), 1, 1)
	assert.ErrorIs(t, err, domain.ErrBalanceOverflow)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Debit(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		amount    int64
		mockSetup func()
		expectErr error
		result    int64
	}{
		{
			name:   "Sufficient balance",
			amount: 60,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(debitQuery)).
					WithArgs(int64(60), 1).
					WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(int64(40)))
			},
			result: 40,
		},
		{
			name:   "Insufficient balance reports current balance",
			amount: 60,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(debitQuery)).
					WithArgs(int64(60), 1).
					WillReturnError(pgx.ErrNoRows)
				mock.ExpectQuery(regexp.QuoteMeta(selectBalance)).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(int64(40)))
			},
			expectErr: &domain.InsufficientFundsError{AccountID: 1, Balance: 40, Amount: 60},
		},
		{
			name:   "Database error",
			amount: 60,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(debitQuery)).
					WithArgs(int64(60), 1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Debit(context.Background(), 1, tt.amount)
			if tt.expectErr != nil {
				assert.Equal(t, tt.expectErr, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_LockAccounts(t *testing.T) {
	repo, mock := NewMock(t)
	ids := []int{3, 8}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO ledger_accounts (account_id, balance) SELECT id, 0 FROM unnest($1::int[]) AS id ON CONFLICT (account_id) DO NOTHING`)).
		WithArgs(ids).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT account_id FROM ledger_accounts WHERE account_id = ANY($1) ORDER BY account_id FOR UPDATE`)).
		WithArgs(ids).
		WillReturnRows(pgxmock.NewRows([]string{"account_id"}).AddRow(3).AddRow(8))

	assert.NoError(t, repo.LockAccounts(context.Background(), ids))

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO ledger_accounts`)).
		WithArgs(ids).
		WillReturnError(errors.New("database error"))

	assert.Error(t, repo.LockAccounts(context.Background(), ids))
	assert.NoError(t, mock.ExpectationsWereMet())
}
