package applicationrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/gigmart/internal/domain"
)

var columns = []string{"id", "gig_id", "applicant_id", "message", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestRepository_CreateApplication(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta(`INSERT INTO applications (gig_id, applicant_id, message, created_at) VALUES ($1, $2, $3, $4) RETURNING id`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
	}{
		{
			name: "Application created",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(10, 7, "pick me", now).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(3))
			},
		},
		{
			name: "Duplicate application",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(10, 7, "pick me", now).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectErr: domain.ErrDuplicateApplication,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(10, 7, "pick me", now).
					WillReturnError(errors.New("database error"))
			},
			expectErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			app := &domain.Application{GigID: 10, ApplicantID: 7, Message: "pick me", CreatedAt: now}
			result, err := repo.CreateApplication(context.Background(), app)
			if tt.expectErr != nil {
				assert.EqualError(t, err, tt.expectErr.Error())
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 3, result.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetApplication(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	byID := regexp.QuoteMeta(`SELECT id, gig_id, applicant_id, message, created_at FROM applications WHERE id = $1`)
	byPair := regexp.QuoteMeta(`FROM applications WHERE gig_id = $1 AND applicant_id = $2`)

	mock.ExpectQuery(byID).
		WithArgs(3).
		WillReturnRows(pgxmock.NewRows(columns).AddRow(3, 10, 7, "hi", now))
	app, err := repo.GetApplication(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, &domain.Application{ID: 3, GigID: 10, ApplicantID: 7, Message: "hi", CreatedAt: now}, app)

	mock.ExpectQuery(byID).WithArgs(4).WillReturnError(pgx.ErrNoRows)
	app, err = repo.GetApplication(context.Background(), 4)
	assert.NoError(t, err)
	assert.Nil(t, app)

	mock.ExpectQuery(byPair).
		WithArgs(10, 7).
		WillReturnRows(pgxmock.NewRows(columns).AddRow(3, 10, 7, "hi", now))
	app, err = repo.FindApplication(context.Background(), 10, 7)
	require.NoError(t, err)
	assert.Equal(t, 3, app.ID)

	mock.ExpectQuery(byPair).WithArgs(10, 8).WillReturnError(errors.New("database error"))
	_, err = repo.FindApplication(context.Background(), 10, 8)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListApplicationsByGig(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM applications WHERE gig_id = $1 ORDER BY created_at ASC`)).
		WithArgs(10).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(3, 10, 7, "first", now).
			AddRow(4, 10, 8, "second", now.Add(time.Second)))

	apps, err := repo.ListApplicationsByGig(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, "first", apps[0].Message)
	assert.Equal(t, 8, apps[1].ApplicantID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteApplication(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`DELETE FROM applications WHERE id = $1`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
	}{
		{
			name: "Deleted",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(3).WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
		},
		{
			name: "Already gone",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(3).WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
			expectErr: domain.ErrApplicationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.DeleteApplication(context.Background(), 3)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_DeleteApplicationsByGig(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM applications WHERE gig_id = $1`)).
		WithArgs(10).
		WillReturnResult(pgxmock.NewResult("DELETE", 2))

	n, err := repo.DeleteApplicationsByGig(context.Background(), 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
