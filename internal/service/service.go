package service

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/gigmart/internal/config"
	"github.com/GlebRadaev/gigmart/internal/handlers/auth"
	"github.com/GlebRadaev/gigmart/internal/handlers/gigs"
	"github.com/GlebRadaev/gigmart/internal/handlers/ledger"
	"github.com/GlebRadaev/gigmart/internal/repo"
	"github.com/GlebRadaev/gigmart/internal/service/assignservice"
	"github.com/GlebRadaev/gigmart/internal/service/authservice"
	"github.com/GlebRadaev/gigmart/internal/service/ledgerservice"
	pkgauth "github.com/GlebRadaev/gigmart/pkg/auth"
)

type AuthService interface {
	auth.Service
	EnsureAdmin(ctx context.Context, login, password string) error
}

type Services struct {
	AuthService   AuthService
	LedgerService ledger.Service
	GigService    gigs.Service
	JWTService    pkgauth.JWTServiceInterface
}

func New(repo *repo.Repositories, cfg *config.Config) (*Services, error) {
	policy, err := assignservice.ParseRewardPolicy(cfg.RewardPolicy)
	if err != nil {
		return nil, fmt.Errorf("reward policy: %w", err)
	}

	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)
	ledgerService := ledgerservice.New(repo.LedgerRepo, repo.EntryRepo, repo.TxManager)
	gigService := assignservice.New(repo.GigRepo, repo.ApplicationRepo, ledgerService, repo.TxManager, policy)
	authService := authservice.New(repo.UserRepo, pkgauth.NewHashService(cfg.BcryptCost), jwtService, cfg.TokenTTL)

	return &Services{
		AuthService:   authService,
		LedgerService: ledgerService,
		GigService:    gigService,
		JWTService:    jwtService,
	}, nil
}
