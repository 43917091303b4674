package gigrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gigmart/internal/domain"
	"github.com/GlebRadaev/gigmart/internal/pg"
)

const gigColumns = `id, poster_id, title, description, reward, state, assignee_id, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanGig(row pgx.Row) (*domain.Gig, error) {
	var gig domain.Gig
	var state string
	err := row.Scan(&gig.ID, &gig.PosterID, &gig.Title, &gig.Description, &gig.Reward, &state, &gig.AssigneeID, &gig.CreatedAt, &gig.UpdatedAt)
	if err != nil {
		return nil, err
	}
	gig.State = domain.GigState(state)
	return &gig, nil
}

func (r *Repository) CreateGig(ctx context.Context, gig *domain.Gig) (*domain.Gig, error) {
	query := `
		INSERT INTO gigs (poster_id, title, description, reward, state)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, gig.PosterID, gig.Title, gig.Description, gig.Reward, string(gig.State)).
		Scan(&gig.ID, &gig.CreatedAt, &gig.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save gig", zap.Error(err))
		return nil, err
	}
	return gig, nil
}

func (r *Repository) GetGig(ctx context.Context, gigID int) (*domain.Gig, error) {
	query := `SELECT ` + gigColumns + ` FROM gigs WHERE id = $1`
	return r.getGig(ctx, query, gigID)
}

// GetGigForUpdate locks the gig row until the surrounding transaction ends.
func (r *Repository) GetGigForUpdate(ctx context.Context, gigID int) (*domain.Gig, error) {
	query := `SELECT ` + gigColumns + ` FROM gigs WHERE id = $1 FOR UPDATE`
	return r.getGig(ctx, query, gigID)
}

func (r *Repository) getGig(ctx context.Context, query string, gigID int) (*domain.Gig, error) {
	gig, err := scanGig(r.db.QueryRow(ctx, query, gigID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get gig", zap.Int("gigID", gigID), zap.Error(err))
		return nil, err
	}
	return gig, nil
}

func (r *Repository) ListOpenGigs(ctx context.Context, limit int) ([]domain.Gig, error) {
	query := `
		SELECT ` + gigColumns + `
		FROM gigs
		WHERE state = 'OPEN'
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't list open gigs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var gigs []domain.Gig
	for rows.Next() {
		gig, err := scanGig(rows)
		if err != nil {
			zap.L().Error("can't scan gig row", zap.Error(err))
			return nil, err
		}
		gigs = append(gigs, *gig)
	}
	return gigs, rows.Err()
}

// ListGigsByPoster returns the poster's gigs in every state, newest first.
func (r *Repository) ListGigsByPoster(ctx context.Context, posterID, limit int) ([]domain.Gig, error) {
	query := `
		SELECT ` + gigColumns + `
		FROM gigs
		WHERE poster_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, posterID, limit)
	if err != nil {
		zap.L().Error("can't list poster gigs", zap.Int("posterID", posterID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var gigs []domain.Gig
	for rows.Next() {
		gig, err := scanGig(rows)
		if err != nil {
			zap.L().Error("can't scan gig row", zap.Error(err))
			return nil, err
		}
		gigs = append(gigs, *gig)
	}
	return gigs, rows.Err()
}

// AssignGig moves an open gig to ASSIGNED. A gig that already left OPEN yields domain.ErrGigNotOpen.
func (r *Repository) AssignGig(ctx context.Context, gigID, assigneeID int) error {
	query := `
		UPDATE gigs
		SET state = 'ASSIGNED', assignee_id = $1, updated_at = now()
		WHERE id = $2 AND state = 'OPEN'
	`
	tag, err := r.db.Exec(ctx, query, assigneeID, gigID)
	if err != nil {
		zap.L().Error("can't assign gig", zap.Int("gigID", gigID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrGigNotOpen
	}
	return nil
}

func (r *Repository) CloseGig(ctx context.Context, gigID int) error {
	query := `
		UPDATE gigs
		SET state = 'CLOSED', updated_at = now()
		WHERE id = $1 AND state <> 'CLOSED'
	`
	tag, err := r.db.Exec(ctx, query, gigID)
	if err != nil {
		zap.L().Error("can't close gig", zap.Int("gigID", gigID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrGigNotOpen
	}
	return nil
}
