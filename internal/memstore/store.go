// Package memstore keeps users, gigs, applications and the ledger in process memory.
// Each Begin scope takes exclusive per-key locks that are held until it commits or rolls back,
// so it offers the same isolation the Postgres stores get from row locks.
package memstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/gigmart/internal/domain"
	"github.com/GlebRadaev/gigmart/internal/pg"
)

type Store struct {
	lockTimeout time.Duration

	mu    sync.Mutex
	locks map[string]*keyLock

	users        map[int]domain.User
	usersByLogin map[string]int
	gigs         map[int]domain.Gig
	applications map[int]domain.Application
	accounts     map[int]int64
	entries      map[int][]domain.LedgerEntry

	lastUserID  int
	lastGigID   int
	lastAppID   int
	lastEntryID int
}

func New(lockTimeout time.Duration) *Store {
	return &Store{
		lockTimeout:  lockTimeout,
		locks:        make(map[string]*keyLock),
		users:        make(map[int]domain.User),
		usersByLogin: make(map[string]int),
		gigs:         make(map[int]domain.Gig),
		applications: make(map[int]domain.Application),
		accounts:     make(map[int]int64),
		entries:      make(map[int][]domain.LedgerEntry),
	}
}

func gigKey(gigID int) string         { return fmt.Sprintf("gig:%d", gigID) }
func accountKey(accountID int) string { return fmt.Sprintf("account:%d", accountID) }
func loginKey(login string) string    { return "login:" + login }

// keyLock is dropped from Store.locks once no scope holds or waits for it.
type keyLock struct {
	ch   chan struct{}
	refs int
}

type tx struct {
	store *Store
	held  map[string]*keyLock
	undo  []func()
}

type txKey struct{}

func txFromContext(ctx context.Context) (*tx, bool) {
	t, ok := ctx.Value(txKey{}).(*tx)
	return t, ok
}

// Begin satisfies pg.TXManager.
func (s *Store) Begin(ctx context.Context, fn pg.TransactionalFn) (err error) {
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	t := &tx{store: s, held: make(map[string]*keyLock)}
	defer func() {
		if p := recover(); p != nil {
			t.rollback()
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, t)); err != nil {
		t.rollback()
		return err
	}
	if err := ctx.Err(); err != nil {
		t.rollback()
		return fmt.Errorf("commit transaction: %w", err)
	}
	t.release()
	return nil
}

// within runs fn inside the caller's scope, or in a scope of its own when there is none.
func (s *Store) within(ctx context.Context, fn func(t *tx) error) error {
	return s.Begin(ctx, func(ctx context.Context) error {
		t, _ := txFromContext(ctx)
		return fn(t)
	})
}

// lock acquires key for the rest of the scope. Reentrant.
func (t *tx) lock(ctx context.Context, key string) error {
	if _, ok := t.held[key]; ok {
		return nil
	}

	t.store.mu.Lock()
	l, ok := t.store.locks[key]
	if !ok {
		l = &keyLock{ch: make(chan struct{}, 1)}
		t.store.locks[key] = l
	}
	l.refs++
	t.store.mu.Unlock()

	var timeout <-chan time.Time
	if t.store.lockTimeout > 0 {
		timer := time.NewTimer(t.store.lockTimeout)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case l.ch <- struct{}{}:
		t.held[key] = l
		return nil
	case <-timeout:
		t.store.unref(key, l)
		zap.L().Warn("lock wait timed out", zap.String("key", key), zap.Duration("timeout", t.store.lockTimeout))
		return fmt.Errorf("%w: lock %s", domain.ErrContention, key)
	case <-ctx.Done():
		t.store.unref(key, l)
		return ctx.Err()
	}
}

func (s *Store) unref(key string, l *keyLock) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l.refs--
	if l.refs == 0 {
		delete(s.locks, key)
	}
}

// record registers the inverse of a mutation already applied under s.mu.
func (t *tx) record(undo func()) {
	t.undo = append(t.undo, undo)
}

func (t *tx) rollback() {
	t.store.mu.Lock()
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.store.mu.Unlock()
	t.undo = nil
	t.release()
}

func (t *tx) release() {
	for key, l := range t.held {
		<-l.ch
		t.store.unref(key, l)
		delete(t.held, key)
	}
}
