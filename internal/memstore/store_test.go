package memstore

import (
	"context"
	"errors"
	"math"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/gigmart/internal/domain"
)

func TestStore_RollbackRestoresState(t *testing.T) {
	s := New(time.Second)
	ctx := context.Background()

	_, err := s.Credit(ctx, 1, 100)
	require.NoError(t, err)
	gig, err := s.CreateGig(ctx, &domain.Gig{PosterID: 1, Title: "t", State: domain.GigOpen})
	require.NoError(t, err)
	_, err = s.CreateApplication(ctx, &domain.Application{GigID: gig.ID, ApplicantID: 2})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = s.Begin(ctx, func(ctx context.Context) error {
		if err := s.AssignGig(ctx, gig.ID, 2); err != nil {
			return err
		}
		if _, err := s.DeleteApplicationsByGig(ctx, gig.ID); err != nil {
			return err
		}
		if _, err := s.Debit(ctx, 1, 40); err != nil {
			return err
		}
		if _, err := s.Credit(ctx, 2, 40); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := s.GetGig(ctx, gig.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.GigOpen, got.State)
	assert.Nil(t, got.AssigneeID)

	apps, err := s.ListApplicationsByGig(ctx, gig.ID)
	require.NoError(t, err)
	assert.Len(t, apps, 1)

	balance, err := s.GetBalance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(100), balance)
	balance, err = s.GetBalance(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)
}

func TestStore_PanicRollsBackAndReleases(t *testing.T) {
	s := New(100 * time.Millisecond)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = s.Begin(ctx, func(ctx context.Context) error {
			if _, err := s.Credit(ctx, 1, 10); err != nil {
				return err
			}
			panic("boom")
		})
	})

	balance, err := s.GetBalance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)
}

func TestStore_LockTimeoutIsContention(t *testing.T) {
	s := New(50 * time.Millisecond)
	ctx := context.Background()

	held := make(chan struct{})
	done := make(chan struct{})
	go func() {
		_ = s.Begin(ctx, func(ctx context.Context) error {
			if err := s.LockAccounts(ctx, []int{1}); err != nil {
				return err
			}
			close(held)
			<-done
			return nil
		})
	}()
	<-held

	_, err := s.Credit(ctx, 1, 10)
	assert.ErrorIs(t, err, domain.ErrContention)
	close(done)
}

func lockCount(s *Store) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.locks)
}

func TestStore_IdleLocksAreDropped(t *testing.T) {
	s := New(50 * time.Millisecond)
	ctx := context.Background()

	for id := 1; id <= 100; id++ {
		_, err := s.Credit(ctx, id, 10)
		require.NoError(t, err)
	}
	assert.Zero(t, lockCount(s))

	held := make(chan struct{})
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		_ = s.Begin(ctx, func(ctx context.Context) error {
			if err := s.LockAccounts(ctx, []int{1}); err != nil {
				return err
			}
			close(held)
			<-done
			return nil
		})
	}()
	<-held

	_, err := s.Credit(ctx, 1, 10)
	assert.ErrorIs(t, err, domain.ErrContention)
	assert.Equal(t, 1, lockCount(s))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = s.Credit(cancelled, 1, 10)
	assert.Error(t, err)
	assert.Equal(t, 1, lockCount(s))

	close(done)
	<-finished
	assert.Zero(t, lockCount(s))

	var g errgroup.Group
	for i := 0; i < 20; i++ {
		from, to := 1+i%2, 2-i%2
		g.Go(func() error {
			return s.Begin(ctx, func(ctx context.Context) error {
				if err := s.LockAccounts(ctx, []int{1, 2}); err != nil {
					return err
				}
				if _, err := s.Debit(ctx, from, 1); err != nil {
					return err
				}
				_, err := s.Credit(ctx, to, 1)
				return err
			})
		})
	}
	require.NoError(t, g.Wait())
	assert.Zero(t, lockCount(s))
}

func TestStore_CancelledContextAbortsCommit(t *testing.T) {
	s := New(time.Second)
	ctx, cancel := context.WithCancel(context.Background())

	err := s.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.Credit(ctx, 1, 10); err != nil {
			return err
		}
		cancel()
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)

	balance, err := s.GetBalance(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)
}

func TestStore_NestedBeginIsReentrant(t *testing.T) {
	s := New(50 * time.Millisecond)
	ctx := context.Background()

	err := s.Begin(ctx, func(ctx context.Context) error {
		if err := s.LockAccounts(ctx, []int{2, 1}); err != nil {
			return err
		}
		return s.Begin(ctx, func(ctx context.Context) error {
			_, err := s.Credit(ctx, 1, 5)
			return err
		})
	})
	assert.NoError(t, err)
}

func TestStore_ConcurrentDebitsNeverOverdraw(t *testing.T) {
	s := New(time.Second)
	ctx := context.Background()
	_, err := s.Credit(ctx, 1, 100)
	require.NoError(t, err)

	var ok, insufficient atomic.Int32
	var g errgroup.Group
	for i := 0; i < 10; i++ {
		g.Go(func() error {
			_, err := s.Debit(ctx, 1, 60)
			switch {
			case err == nil:
				ok.Add(1)
			case errors.Is(err, domain.ErrInsufficientFunds):
				insufficient.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int32(1), ok.Load())
	assert.Equal(t, int32(9), insufficient.Load())
	balance, err := s.GetBalance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(40), balance)
}

func TestStore_CreditOverflowLeavesBalance(t *testing.T) {
	s := New(time.Second)
	ctx := context.Background()

	_, err := s.Credit(ctx, 1, math.MaxInt64)
	require.NoError(t, err)

	_, err = s.Credit(ctx, 1, 1)
	assert.ErrorIs(t, err, domain.ErrBalanceOverflow)

	balance, err := s.GetBalance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), balance)

	_, err = s.Debit(ctx, 1, 1)
	require.NoError(t, err)
	balance, err = s.Credit(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), balance)
}

func TestStore_Applications(t *testing.T) {
	s := New(time.Second)
	ctx := context.Background()

	app, err := s.CreateApplication(ctx, &domain.Application{GigID: 1, ApplicantID: 2, Message: "hi"})
	require.NoError(t, err)

	_, err = s.CreateApplication(ctx, &domain.Application{GigID: 1, ApplicantID: 2})
	assert.ErrorIs(t, err, domain.ErrDuplicateApplication)

	found, err := s.FindApplication(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, app.ID, found.ID)

	require.NoError(t, s.DeleteApplication(ctx, app.ID))
	assert.ErrorIs(t, s.DeleteApplication(ctx, app.ID), domain.ErrApplicationNotFound)

	got, err := s.GetApplication(ctx, app.ID)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_GigTransitions(t *testing.T) {
	s := New(time.Second)
	ctx := context.Background()

	gig, err := s.CreateGig(ctx, &domain.Gig{PosterID: 1, Title: "t", State: domain.GigOpen})
	require.NoError(t, err)

	open, err := s.ListOpenGigs(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, open, 1)

	require.NoError(t, s.AssignGig(ctx, gig.ID, 2))
	assert.ErrorIs(t, s.AssignGig(ctx, gig.ID, 3), domain.ErrGigNotOpen)

	open, err = s.ListOpenGigs(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, open)

	require.NoError(t, s.CloseGig(ctx, gig.ID))
	assert.ErrorIs(t, s.CloseGig(ctx, gig.ID), domain.ErrGigNotOpen)

	got, err := s.GetGig(ctx, gig.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.GigClosed, got.State)
	require.NotNil(t, got.AssigneeID)
	assert.Equal(t, 2, *got.AssigneeID)
}

func TestStore_ListGigsByPoster(t *testing.T) {
	s := New(time.Second)
	ctx := context.Background()

	first, err := s.CreateGig(ctx, &domain.Gig{PosterID: 1, Title: "first", State: domain.GigOpen})
	require.NoError(t, err)
	second, err := s.CreateGig(ctx, &domain.Gig{PosterID: 1, Title: "second", State: domain.GigOpen})
	require.NoError(t, err)
	_, err = s.CreateGig(ctx, &domain.Gig{PosterID: 2, Title: "other", State: domain.GigOpen})
	require.NoError(t, err)
	require.NoError(t, s.CloseGig(ctx, first.ID))

	gigs, err := s.ListGigsByPoster(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, gigs, 2)
	assert.Equal(t, second.ID, gigs[0].ID)
	assert.Equal(t, first.ID, gigs[1].ID)
	assert.Equal(t, domain.GigClosed, gigs[1].State)

	gigs, err = s.ListGigsByPoster(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, gigs, 1)
	assert.Equal(t, second.ID, gigs[0].ID)

	gigs, err = s.ListGigsByPoster(ctx, 3, 10)
	require.NoError(t, err)
	assert.Empty(t, gigs)
}

func TestUserRepo(t *testing.T) {
	users := New(time.Second).Users()
	ctx := context.Background()

	user, err := users.Create(ctx, &domain.User{Login: "bob", PasswordHash: "h", Role: domain.RoleUser})
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)

	_, err = users.Create(ctx, &domain.User{Login: "bob", PasswordHash: "h"})
	assert.ErrorIs(t, err, domain.ErrLoginTaken)

	found, err := users.FindByLogin(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "h", found.PasswordHash)

	missing, err := users.FindByLogin(ctx, "alice")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}
