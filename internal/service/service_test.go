package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/gigmart/internal/config"
	"github.com/GlebRadaev/gigmart/internal/domain"
	"github.com/GlebRadaev/gigmart/internal/memstore"
	"github.com/GlebRadaev/gigmart/internal/pg"
	"github.com/GlebRadaev/gigmart/internal/repo"
	"github.com/GlebRadaev/gigmart/internal/service/assignservice"
	"github.com/GlebRadaev/gigmart/internal/service/authservice"
	"github.com/GlebRadaev/gigmart/internal/service/ledgerservice"
)

func testConfig(policy string) *config.Config {
	return &config.Config{
		JWTSecret:    "test-secret",
		TokenTTL:     time.Minute,
		RewardPolicy: policy,
		BcryptCost:   4,
	}
}

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repos := &repo.Repositories{
		UserRepo:        authservice.NewMockRepo(ctrl),
		GigRepo:         assignservice.NewMockGigRepo(ctrl),
		ApplicationRepo: assignservice.NewMockApplicationRepo(ctrl),
		LedgerRepo:      ledgerservice.NewMockLedgerRepo(ctrl),
		EntryRepo:       ledgerservice.NewMockEntryRepo(ctrl),
		TxManager:       pg.NewMockTXManager(ctrl),
	}

	services, err := New(repos, testConfig("on_close"))
	require.NoError(t, err)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.LedgerService)
	assert.NotNil(t, services.GigService)
	assert.NotNil(t, services.JWTService)
}

func TestNew_UnknownRewardPolicy(t *testing.T) {
	_, err := New(&repo.Repositories{}, testConfig("on_tuesday"))
	assert.ErrorContains(t, err, "reward policy")
}

func TestServices_InMemory(t *testing.T) {
	services, err := New(repo.NewInMemory(memstore.New(2*time.Second)), testConfig("on_accept"))
	require.NoError(t, err)

	runMarketplace(t, services, "mem")
}

// runMarketplace drives a full gig lifecycle through the public services.
func runMarketplace(t *testing.T, s *Services, prefix string) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, s.AuthService.EnsureAdmin(ctx, prefix+"-admin", "admin-password"))
	require.NoError(t, s.AuthService.EnsureAdmin(ctx, prefix+"-admin", "admin-password"))

	admin, err := s.AuthService.Authenticate(ctx, prefix+"-admin", "admin-password")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, admin.Role)

	poster, err := s.AuthService.Register(ctx, prefix+"-poster", "poster-password")
	require.NoError(t, err)
	worker, err := s.AuthService.Register(ctx, prefix+"-worker", "worker-password")
	require.NoError(t, err)
	rival, err := s.AuthService.Register(ctx, prefix+"-rival", "rival-password")
	require.NoError(t, err)

	token, err := s.AuthService.GenerateToken(worker)
	require.NoError(t, err)
	claims, err := s.JWTService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, worker.ID, claims.UserID)
	assert.Equal(t, domain.RoleUser, claims.Role)

	balance, err := s.LedgerService.Credit(ctx, poster.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), balance)

	gig, err := s.GigService.CreateGig(ctx, poster.ID, "Paint the fence", "white", 60)
	require.NoError(t, err)

	_, err = s.GigService.Apply(ctx, gig.ID, poster.ID, "")
	assert.ErrorIs(t, err, domain.ErrOwnGig)

	_, err = s.GigService.Apply(ctx, gig.ID, worker.ID, "I have brushes")
	require.NoError(t, err)
	_, err = s.GigService.Apply(ctx, gig.ID, worker.ID, "again")
	assert.ErrorIs(t, err, domain.ErrDuplicateApplication)
	_, err = s.GigService.Apply(ctx, gig.ID, rival.ID, "")
	require.NoError(t, err)

	apps, err := s.GigService.ListApplications(ctx, poster.ID, gig.ID)
	require.NoError(t, err)
	assert.Len(t, apps, 2)

	_, err = s.GigService.ListApplications(ctx, worker.ID, gig.ID)
	assert.ErrorIs(t, err, domain.ErrNotGigPoster)

	assigned, err := s.GigService.Accept(ctx, poster.ID, gig.ID, worker.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.GigAssigned, assigned.State)
	require.NotNil(t, assigned.AssigneeID)
	assert.Equal(t, worker.ID, *assigned.AssigneeID)

	apps, err = s.GigService.ListApplications(ctx, poster.ID, gig.ID)
	require.NoError(t, err)
	assert.Empty(t, apps)

	posterBalance, err := s.LedgerService.BalanceOf(ctx, poster.ID)
	require.NoError(t, err)
	workerBalance, err := s.LedgerService.BalanceOf(ctx, worker.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(40), posterBalance)
	assert.Equal(t, int64(60), workerBalance)

	history, err := s.LedgerService.History(ctx, worker.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, domain.EntryCredit, history[0].Kind)

	// A second paid gig the poster can no longer afford stays OPEN.
	pricey, err := s.GigService.CreateGig(ctx, poster.ID, "Build a shed", "", 500)
	require.NoError(t, err)
	_, err = s.GigService.Apply(ctx, pricey.ID, rival.ID, "")
	require.NoError(t, err)
	_, err = s.GigService.Accept(ctx, poster.ID, pricey.ID, rival.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	reloaded, err := s.GigService.GetGig(ctx, pricey.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.GigOpen, reloaded.State)
	apps, err = s.GigService.ListApplications(ctx, poster.ID, pricey.ID)
	require.NoError(t, err)
	assert.Len(t, apps, 1)

	closed, err := s.GigService.Close(ctx, poster.ID, pricey.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.GigClosed, closed.State)
	_, err = s.GigService.Close(ctx, poster.ID, pricey.ID)
	assert.ErrorIs(t, err, domain.ErrGigNotOpen)

	// Concurrent transfers out of the worker's account never overdraw it.
	var g errgroup.Group
	results := make(chan error, 10)
	for i := 0; i < 10; i++ {
		g.Go(func() error {
			_, err := s.LedgerService.Transfer(ctx, worker.ID, rival.ID, 25)
			results <- err
			return nil
		})
	}
	require.NoError(t, g.Wait())
	close(results)

	succeeded := 0
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, domain.ErrInsufficientFunds), errors.Is(err, domain.ErrContention):
		default:
			t.Fatalf("unexpected transfer error: %v", err)
		}
	}
	assert.LessOrEqual(t, succeeded, 2)

	workerBalance, err = s.LedgerService.BalanceOf(ctx, worker.ID)
	require.NoError(t, err)
	rivalBalance, err := s.LedgerService.BalanceOf(ctx, rival.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(60), workerBalance+rivalBalance, fmt.Sprintf("%d transfers succeeded", succeeded))
	assert.Equal(t, int64(60-25*succeeded), workerBalance)
}
