package applicationrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gigmart/internal/domain"
	"github.com/GlebRadaev/gigmart/internal/pg"
)

const applicationColumns = `id, gig_id, applicant_id, message, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var app domain.Application
	if err := row.Scan(&app.ID, &app.GigID, &app.ApplicantID, &app.Message, &app.CreatedAt); err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *Repository) CreateApplication(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	query := `
		INSERT INTO applications (gig_id, applicant_id, message, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, app.GigID, app.ApplicantID, app.Message, app.CreatedAt).Scan(&app.ID)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, domain.ErrDuplicateApplication
		}
		zap.L().Error("can't save application", zap.Error(err))
		return nil, err
	}
	return app, nil
}

func (r *Repository) GetApplication(ctx context.Context, applicationID int) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`
	return r.getApplication(ctx, query, applicationID)
}

func (r *Repository) FindApplication(ctx context.Context, gigID, applicantID int) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE gig_id = $1 AND applicant_id = $2`
	return r.getApplication(ctx, query, gigID, applicantID)
}

func (r *Repository) getApplication(ctx context.Context, query string, args ...any) (*domain.Application, error) {
	app, err := scanApplication(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get application", zap.Error(err))
		return nil, err
	}
	return app, nil
}

func (r *Repository) ListApplicationsByGig(ctx context.Context, gigID int) ([]domain.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM applications
		WHERE gig_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.db.Query(ctx, query, gigID)
	if err != nil {
		zap.L().Error("can't list applications", zap.Int("gigID", gigID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			zap.L().Error("can't scan application row", zap.Error(err))
			return nil, err
		}
		apps = append(apps, *app)
	}
	return apps, rows.Err()
}

func (r *Repository) DeleteApplication(ctx context.Context, applicationID int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id = $1`, applicationID)
	if err != nil {
		zap.L().Error("can't delete application", zap.Int("applicationID", applicationID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}

func (r *Repository) DeleteApplicationsByGig(ctx context.Context, gigID int) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM applications WHERE gig_id = $1`, gigID)
	if err != nil {
		zap.L().Error("can't delete gig applications", zap.Int("gigID", gigID), zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
