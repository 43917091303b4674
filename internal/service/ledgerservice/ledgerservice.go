package ledgerservice

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gigmart/internal/domain"
	"github.com/GlebRadaev/gigmart/internal/metrics"
	"github.com/GlebRadaev/gigmart/internal/pg"
)

//go:generate mockgen -source=ledgerservice.go -destination=mock_ledgerservice.go -package=ledgerservice

type LedgerRepo interface {
	GetBalance(ctx context.Context, accountID int) (int64, error)
	LockAccounts(ctx context.Context, accountIDs []int) error
	Credit(ctx context.Context, accountID int, amount int64) (int64, error)
	Debit(ctx context.Context, accountID int, amount int64) (int64, error)
}
type EntryRepo interface {
	CreateEntry(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error)
	GetEntriesByAccountID(ctx context.Context, accountID int) ([]domain.LedgerEntry, error)
}

type Service struct {
	ledgerRepo LedgerRepo
	entryRepo  EntryRepo
	txManager  pg.TXManager
}

func New(ledgerRepo LedgerRepo, entryRepo EntryRepo, txManager pg.TXManager) *Service {
	return &Service{
		ledgerRepo: ledgerRepo,
		entryRepo:  entryRepo,
		txManager:  txManager,
	}
}

func (s *Service) Credit(ctx context.Context, accountID int, amount int64) (balance int64, err error) {
	defer func() { metrics.RecordLedgerOperation("credit", amount, err) }()
	if amount <= 0 {
		return 0, domain.ErrInvalidAmount
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.ledgerRepo.LockAccounts(ctx, []int{accountID}); err != nil {
			return err
		}
		balance, err = s.credit(ctx, uuid.New(), accountID, amount)
		return err
	})
	if err != nil {
		logFailure("failed to credit account", accountID, err)
		return 0, err
	}
	return balance, nil
}

// Debit fails with *domain.InsufficientFundsError and leaves the balance untouched when it would go negative.
func (s *Service) Debit(ctx context.Context, accountID int, amount int64) (balance int64, err error) {
	defer func() { metrics.RecordLedgerOperation("debit", amount, err) }()
	if amount <= 0 {
		return 0, domain.ErrInvalidAmount
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.ledgerRepo.LockAccounts(ctx, []int{accountID}); err != nil {
			return err
		}
		balance, err = s.debit(ctx, uuid.New(), accountID, amount)
		return err
	})
	if err != nil {
		logFailure("failed to debit account", accountID, err)
		return 0, err
	}
	return balance, nil
}

func (s *Service) BalanceOf(ctx context.Context, accountID int) (int64, error) {
	balance, err := s.ledgerRepo.GetBalance(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Int("accountID", accountID), zap.Error(err))
		return 0, err
	}
	return balance, nil
}

// Transfer moves amount from one account to another atomically in a transaction of its own.
// Callers that already hold a transaction use TransferInTx.
func (s *Service) Transfer(ctx context.Context, from, to int, amount int64) (transferID uuid.UUID, err error) {
	defer func() { metrics.RecordLedgerOperation("transfer", amount, err) }()
	if err := checkTransfer(from, to, amount); err != nil {
		return uuid.Nil, err
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		transferID, err = s.TransferInTx(ctx, from, to, amount)
		return err
	})
	if err != nil {
		logFailure("failed to transfer", from, err)
		return uuid.Nil, err
	}

	zap.L().Info("transfer completed",
		zap.String("transferID", transferID.String()),
		zap.Int("from", from),
		zap.Int("to", to),
		zap.Int64("amount", amount),
	)
	return transferID, nil
}

// TransferInTx joins the transaction in ctx, so a failure here rolls back the caller's work too.
// Nothing is logged or counted: the outcome is only known once the caller commits.
func (s *Service) TransferInTx(ctx context.Context, from, to int, amount int64) (uuid.UUID, error) {
	if err := checkTransfer(from, to, amount); err != nil {
		return uuid.Nil, err
	}

	accounts := []int{from, to}
	sort.Ints(accounts)
	transferID := uuid.New()

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.ledgerRepo.LockAccounts(ctx, accounts); err != nil {
			return err
		}
		if _, err := s.debit(ctx, transferID, from, amount); err != nil {
			return err
		}
		_, err := s.credit(ctx, transferID, to, amount)
		return err
	})
	if err != nil {
		return uuid.Nil, err
	}
	return transferID, nil
}

func checkTransfer(from, to int, amount int64) error {
	if amount <= 0 {
		return domain.ErrInvalidAmount
	}
	if from == to {
		return domain.ErrSelfTransfer
	}
	return nil
}

func (s *Service) History(ctx context.Context, accountID int) ([]domain.LedgerEntry, error) {
	entries, err := s.entryRepo.GetEntriesByAccountID(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to fetch ledger entries", zap.Int("accountID", accountID), zap.Error(err))
		return nil, err
	}
	return entries, nil
}

func (s *Service) credit(ctx context.Context, transferID uuid.UUID, accountID int, amount int64) (int64, error) {
	balance, err := s.ledgerRepo.Credit(ctx, accountID, amount)
	if err != nil {
		return 0, err
	}
	return balance, s.writeEntry(ctx, transferID, accountID, domain.EntryCredit, amount, balance)
}

func (s *Service) debit(ctx context.Context, transferID uuid.UUID, accountID int, amount int64) (int64, error) {
	balance, err := s.ledgerRepo.Debit(ctx, accountID, amount)
	if err != nil {
		return 0, err
	}
	return balance, s.writeEntry(ctx, transferID, accountID, domain.EntryDebit, amount, balance)
}

func (s *Service) writeEntry(ctx context.Context, transferID uuid.UUID, accountID int, kind domain.EntryKind, amount, balance int64) error {
	_, err := s.entryRepo.CreateEntry(ctx, &domain.LedgerEntry{
		AccountID:    accountID,
		TransferID:   transferID,
		Kind:         kind,
		Amount:       amount,
		BalanceAfter: balance,
		CreatedAt:    time.Now(),
	})
	return err
}

// logFailure keeps expected rejections out of the error log.
func logFailure(msg string, accountID int, err error) {
	if metrics.Outcome(err) != "error" {
		zap.L().Info(msg, zap.Int("accountID", accountID), zap.Error(err))
		return
	}
	zap.L().Error(msg, zap.Int("accountID", accountID), zap.Error(err))
}
