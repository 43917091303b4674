package assignservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gigmart/internal/domain"
	"github.com/GlebRadaev/gigmart/internal/metrics"
	"github.com/GlebRadaev/gigmart/internal/pg"
)

//go:generate mockgen -source=assignservice.go -destination=mock_assignservice.go -package=assignservice

type GigRepo interface {
	CreateGig(ctx context.Context, gig *domain.Gig) (*domain.Gig, error)
	GetGig(ctx context.Context, gigID int) (*domain.Gig, error)
	GetGigForUpdate(ctx context.Context, gigID int) (*domain.Gig, error)
	ListOpenGigs(ctx context.Context, limit int) ([]domain.Gig, error)
	ListGigsByPoster(ctx context.Context, posterID, limit int) ([]domain.Gig, error)
	AssignGig(ctx context.Context, gigID, assigneeID int) error
	CloseGig(ctx context.Context, gigID int) error
}
type ApplicationRepo interface {
	CreateApplication(ctx context.Context, app *domain.Application) (*domain.Application, error)
	GetApplication(ctx context.Context, applicationID int) (*domain.Application, error)
	FindApplication(ctx context.Context, gigID, applicantID int) (*domain.Application, error)
	ListApplicationsByGig(ctx context.Context, gigID int) ([]domain.Application, error)
	DeleteApplication(ctx context.Context, applicationID int) error
	DeleteApplicationsByGig(ctx context.Context, gigID int) (int64, error)
}
// Ledger pays rewards inside the caller's transaction.
type Ledger interface {
	TransferInTx(ctx context.Context, from, to int, amount int64) (uuid.UUID, error)
}

// RewardPolicy decides when a gig's reward moves from poster to assignee.
type RewardPolicy string

const (
	RewardNone     RewardPolicy = "none"
	RewardOnAccept RewardPolicy = "on_accept"
	RewardOnClose  RewardPolicy = "on_close"
)

func ParseRewardPolicy(s string) (RewardPolicy, error) {
	switch p := RewardPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return RewardNone, nil
	case RewardNone, RewardOnAccept, RewardOnClose:
		return p, nil
	default:
		return "", fmt.Errorf("unknown reward policy %q", s)
	}
}

const DefaultListLimit = 50

type Service struct {
	gigRepo   GigRepo
	appRepo   ApplicationRepo
	ledger    Ledger
	txManager pg.TXManager
	policy    RewardPolicy
}

func New(gigRepo GigRepo, appRepo ApplicationRepo, ledger Ledger, txManager pg.TXManager, policy RewardPolicy) *Service {
	return &Service{
		gigRepo:   gigRepo,
		appRepo:   appRepo,
		ledger:    ledger,
		txManager: txManager,
		policy:    policy,
	}
}

func (s *Service) CreateGig(ctx context.Context, posterID int, title, description string, reward int64) (*domain.Gig, error) {
	title = strings.TrimSpace(title)
	if title == "" || reward < 0 {
		return nil, domain.ErrInvalidGig
	}

	gig, err := s.gigRepo.CreateGig(ctx, &domain.Gig{
		PosterID:    posterID,
		Title:       title,
		Description: description,
		Reward:      reward,
		State:       domain.GigOpen,
	})
	if err != nil {
		zap.L().Error("can't create gig", zap.Int("posterID", posterID), zap.Error(err))
		return nil, err
	}
	zap.L().Info("gig created", zap.Int("gigID", gig.ID), zap.Int("posterID", posterID))
	return gig, nil
}

func (s *Service) GetGig(ctx context.Context, gigID int) (*domain.Gig, error) {
	gig, err := s.gigRepo.GetGig(ctx, gigID)
	if err != nil {
		zap.L().Error("can't get gig", zap.Int("gigID", gigID), zap.Error(err))
		return nil, err
	}
	if gig == nil {
		return nil, domain.ErrGigNotFound
	}
	return gig, nil
}

func (s *Service) ListOpenGigs(ctx context.Context, limit int) ([]domain.Gig, error) {
	gigs, err := s.gigRepo.ListOpenGigs(ctx, listLimit(limit))
	if err != nil {
		zap.L().Error("can't list open gigs", zap.Error(err))
		return nil, err
	}
	return gigs, nil
}

// ListGigsByPoster returns a poster's gigs in every state, newest first.
func (s *Service) ListGigsByPoster(ctx context.Context, posterID, limit int) ([]domain.Gig, error) {
	gigs, err := s.gigRepo.ListGigsByPoster(ctx, posterID, listLimit(limit))
	if err != nil {
		zap.L().Error("can't list poster gigs", zap.Int("posterID", posterID), zap.Error(err))
		return nil, err
	}
	return gigs, nil
}

func listLimit(limit int) int {
	if limit <= 0 || limit > DefaultListLimit {
		return DefaultListLimit
	}
	return limit
}

// ListApplications is visible to the gig's poster only.
func (s *Service) ListApplications(ctx context.Context, callerID, gigID int) ([]domain.Application, error) {
	gig, err := s.GetGig(ctx, gigID)
	if err != nil {
		return nil, err
	}
	if gig.PosterID != callerID {
		return nil, domain.ErrNotGigPoster
	}
	apps, err := s.appRepo.ListApplicationsByGig(ctx, gigID)
	if err != nil {
		zap.L().Error("can't list applications", zap.Int("gigID", gigID), zap.Error(err))
		return nil, err
	}
	return apps, nil
}

func (s *Service) Apply(ctx context.Context, gigID, applicantID int, message string) (app *domain.Application, err error) {
	defer func() { metrics.RecordAssignmentOperation("apply", err) }()

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		gig, err := s.lockOpenGig(ctx, gigID)
		if err != nil {
			return err
		}
		if gig.PosterID == applicantID {
			return domain.ErrOwnGig
		}

		existing, err := s.appRepo.FindApplication(ctx, gigID, applicantID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicateApplication
		}

		app, err = s.appRepo.CreateApplication(ctx, &domain.Application{
			GigID:       gigID,
			ApplicantID: applicantID,
			Message:     message,
			CreatedAt:   time.Now(),
		})
		return err
	})
	if err != nil {
		logFailure("can't apply to gig", gigID, err)
		return nil, err
	}
	zap.L().Info("application submitted", zap.Int("gigID", gigID), zap.Int("applicationID", app.ID))
	return app, nil
}

// Withdraw removes the caller's own application. The gig lock orders it against a concurrent accept.
func (s *Service) Withdraw(ctx context.Context, callerID, applicationID int) (err error) {
	defer func() { metrics.RecordAssignmentOperation("withdraw", err) }()

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		app, err := s.appRepo.GetApplication(ctx, applicationID)
		if err != nil {
			return err
		}
		if app == nil {
			return domain.ErrApplicationNotFound
		}
		if app.ApplicantID != callerID {
			return domain.ErrNotApplicant
		}
		if _, err := s.gigRepo.GetGigForUpdate(ctx, app.GigID); err != nil {
			return err
		}
		return s.appRepo.DeleteApplication(ctx, applicationID)
	})
	if err != nil {
		logFailure("can't withdraw application", applicationID, err)
		return err
	}
	zap.L().Info("application withdrawn", zap.Int("applicationID", applicationID))
	return nil
}

// Accept assigns the gig to applicantID and discards every application for it,
// chaining the reward transfer when the policy pays on accept. All or nothing.
func (s *Service) Accept(ctx context.Context, posterID, gigID, applicantID int) (gig *domain.Gig, err error) {
	defer func() { metrics.RecordAssignmentOperation("accept", err) }()

	var (
		reward     int64
		transferID uuid.UUID
	)

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		gig, err = s.lockOpenGig(ctx, gigID)
		if err != nil {
			return err
		}
		if gig.PosterID != posterID {
			return domain.ErrNotGigPoster
		}

		app, err := s.appRepo.FindApplication(ctx, gigID, applicantID)
		if err != nil {
			return err
		}
		if app == nil {
			return domain.ErrApplicationNotFound
		}

		if err := s.gigRepo.AssignGig(ctx, gigID, applicantID); err != nil {
			return err
		}
		discarded, err := s.appRepo.DeleteApplicationsByGig(ctx, gigID)
		if err != nil {
			return err
		}
		zap.L().Debug("applications discarded", zap.Int("gigID", gigID), zap.Int64("count", discarded))

		if s.policy == RewardOnAccept && gig.Reward > 0 {
			reward = gig.Reward
			if transferID, err = s.ledger.TransferInTx(ctx, posterID, applicantID, reward); err != nil {
				return err
			}
		}

		gig.State = domain.GigAssigned
		gig.AssigneeID = &applicantID
		return nil
	})
	if reward > 0 {
		recordReward(gigID, transferID, reward, err)
	}
	if err != nil {
		logFailure("can't accept application", gigID, err)
		return nil, err
	}
	zap.L().Info("gig assigned", zap.Int("gigID", gigID), zap.Int("assigneeID", applicantID))
	return gig, nil
}

// Close ends the gig from OPEN or ASSIGNED. Under the on_close policy an assigned gig pays out here.
func (s *Service) Close(ctx context.Context, posterID, gigID int) (gig *domain.Gig, err error) {
	defer func() { metrics.RecordAssignmentOperation("close", err) }()

	var (
		reward     int64
		transferID uuid.UUID
	)

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		gig, err = s.gigRepo.GetGigForUpdate(ctx, gigID)
		if err != nil {
			return err
		}
		if gig == nil {
			return domain.ErrGigNotFound
		}
		if gig.PosterID != posterID {
			return domain.ErrNotGigPoster
		}
		if gig.State == domain.GigClosed {
			return domain.ErrGigNotOpen
		}

		if err := s.gigRepo.CloseGig(ctx, gigID); err != nil {
			return err
		}
		if _, err := s.appRepo.DeleteApplicationsByGig(ctx, gigID); err != nil {
			return err
		}

		if s.policy == RewardOnClose && gig.State == domain.GigAssigned && gig.AssigneeID != nil && gig.Reward > 0 {
			reward = gig.Reward
			if transferID, err = s.ledger.TransferInTx(ctx, posterID, *gig.AssigneeID, reward); err != nil {
				return err
			}
		}

		gig.State = domain.GigClosed
		return nil
	})
	if reward > 0 {
		recordReward(gigID, transferID, reward, err)
	}
	if err != nil {
		logFailure("can't close gig", gigID, err)
		return nil, err
	}
	zap.L().Info("gig closed", zap.Int("gigID", gigID))
	return gig, nil
}

func (s *Service) lockOpenGig(ctx context.Context, gigID int) (*domain.Gig, error) {
	gig, err := s.gigRepo.GetGigForUpdate(ctx, gigID)
	if err != nil {
		return nil, err
	}
	if gig == nil {
		return nil, domain.ErrGigNotFound
	}
	if gig.State != domain.GigOpen {
		return nil, domain.ErrGigNotOpen
	}
	return gig, nil
}

// recordReward counts a reward transfer once the transaction carrying it has committed or rolled back.
func recordReward(gigID int, transferID uuid.UUID, reward int64, err error) {
	metrics.RecordLedgerOperation("transfer", reward, err)
	if err == nil {
		zap.L().Info("reward paid",
			zap.Int("gigID", gigID),
			zap.String("transferID", transferID.String()),
			zap.Int64("amount", reward),
		)
	}
}

// logFailure keeps expected rejections out of the error log.
func logFailure(msg string, id int, err error) {
	if metrics.Outcome(err) != "error" {
		zap.L().Info(msg, zap.Int("id", id), zap.Error(err))
		return
	}
	zap.L().Error(msg, zap.Int("id", id), zap.Error(err))
}
