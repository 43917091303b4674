package memstore

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/GlebRadaev/gigmart/internal/domain"
)

func (s *Store) GetBalance(ctx context.Context, accountID int) (int64, error) {
	var balance int64
	err := s.within(ctx, func(t *tx) error {
		if err := t.lock(ctx, accountKey(accountID)); err != nil {
			return err
		}
		s.mu.Lock()
		balance = s.accounts[accountID]
		s.mu.Unlock()
		return nil
	})
	return balance, err
}

// LockAccounts takes the account locks in ascending id order whatever order they are passed in.
func (s *Store) LockAccounts(ctx context.Context, accountIDs []int) error {
	ids := append([]int(nil), accountIDs...)
	sort.Ints(ids)
	return s.within(ctx, func(t *tx) error {
		for _, id := range ids {
			if err := t.lock(ctx, accountKey(id)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) Credit(ctx context.Context, accountID int, amount int64) (int64, error) {
	var balance int64
	err := s.within(ctx, func(t *tx) error {
		if err := t.lock(ctx, accountKey(accountID)); err != nil {
			return err
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		prev, existed := s.accounts[accountID]
		if amount > math.MaxInt64-prev {
			return fmt.Errorf("%w: account %d holds %d", domain.ErrBalanceOverflow, accountID, prev)
		}
		balance = prev + amount
		s.accounts[accountID] = balance
		t.record(func() {
			if existed {
				s.accounts[accountID] = prev
			} else {
				delete(s.accounts, accountID)
			}
		})
		return nil
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func (s *Store) Debit(ctx context.Context, accountID int, amount int64) (int64, error) {
	var balance int64
	err := s.within(ctx, func(t *tx) error {
		if err := t.lock(ctx, accountKey(accountID)); err != nil {
			return err
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		prev := s.accounts[accountID]
		if prev < amount {
			return &domain.InsufficientFundsError{AccountID: accountID, Balance: prev, Amount: amount}
		}
		balance = prev - amount
		s.accounts[accountID] = balance
		t.record(func() { s.accounts[accountID] = prev })
		return nil
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func (s *Store) CreateEntry(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	err := s.within(ctx, func(t *tx) error {
		if err := t.lock(ctx, accountKey(entry.AccountID)); err != nil {
			return err
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		s.lastEntryID++
		entry.ID = s.lastEntryID
		accountID := entry.AccountID
		n := len(s.entries[accountID])
		s.entries[accountID] = append(s.entries[accountID], *entry)
		t.record(func() { s.entries[accountID] = s.entries[accountID][:n] })
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// GetEntriesByAccountID returns entries newest first.
func (s *Store) GetEntriesByAccountID(ctx context.Context, accountID int) ([]domain.LedgerEntry, error) {
	var entries []domain.LedgerEntry
	err := s.within(ctx, func(t *tx) error {
		if err := t.lock(ctx, accountKey(accountID)); err != nil {
			return err
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		stored := s.entries[accountID]
		for i := len(stored) - 1; i >= 0; i-- {
			entries = append(entries, stored[i])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries, nil
}
