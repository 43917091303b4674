package memstore

import (
	"context"
	"sort"
	"time"

	"github.com/GlebRadaev/gigmart/internal/domain"
)

// Applications are guarded by the lock of the gig they belong to.

func (s *Store) CreateApplication(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	err := s.within(ctx, func(t *tx) error {
		if err := t.lock(ctx, gigKey(app.GigID)); err != nil {
			return err
		}
		s.mu.Lock()
		defer s.mu.Unlock()

		for _, existing := range s.applications {
			if existing.GigID == app.GigID && existing.ApplicantID == app.ApplicantID {
				return domain.ErrDuplicateApplication
			}
		}
		s.lastAppID++
		app.ID = s.lastAppID
		if app.CreatedAt.IsZero() {
			app.CreatedAt = time.Now()
		}
		s.applications[app.ID] = *app

		id := app.ID
		t.record(func() { delete(s.applications, id) })
		return nil
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (s *Store) GetApplication(ctx context.Context, applicationID int) (*domain.Application, error) {
	s.mu.Lock()
	app, ok := s.applications[applicationID]
	s.mu.Unlock()
	if !ok {
		return nil, nil
	}

	var found *domain.Application
	err := s.within(ctx, func(t *tx) error {
		if err := t.lock(ctx, gigKey(app.GigID)); err != nil {
			return err
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		// re-read: it may have been deleted while we waited for the lock
		if current, ok := s.applications[applicationID]; ok {
			found = &current
		}
		return nil
	})
	return found, err
}

func (s *Store) FindApplication(ctx context.Context, gigID, applicantID int) (*domain.Application, error) {
	var found *domain.Application
	err := s.within(ctx, func(t *tx) error {
		if err := t.lock(ctx, gigKey(gigID)); err != nil {
			return err
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, app := range s.applications {
			if app.GigID == gigID && app.ApplicantID == applicantID {
				app := app
				found = &app
				break
			}
		}
		return nil
	})
	return found, err
}

func (s *Store) ListApplicationsByGig(ctx context.Context, gigID int) ([]domain.Application, error) {
	var apps []domain.Application
	err := s.within(ctx, func(t *tx) error {
		if err := t.lock(ctx, gigKey(gigID)); err != nil {
			return err
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, app := range s.applications {
			if app.GigID == gigID {
				apps = append(apps, app)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(apps, func(i, j int) bool {
		if !apps[i].CreatedAt.Equal(apps[j].CreatedAt) {
			return apps[i].CreatedAt.Before(apps[j].CreatedAt)
		}
		return apps[i].ID < apps[j].ID
	})
	return apps, nil
}

func (s *Store) DeleteApplication(ctx context.Context, applicationID int) error {
	s.mu.Lock()
	app, ok := s.applications[applicationID]
	s.mu.Unlock()
	if !ok {
		return domain.ErrApplicationNotFound
	}

	return s.within(ctx, func(t *tx) error {
		if err := t.lock(ctx, gigKey(app.GigID)); err != nil {
			return err
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		current, ok := s.applications[applicationID]
		if !ok {
			return domain.ErrApplicationNotFound
		}
		delete(s.applications, applicationID)
		t.record(func() { s.applications[applicationID] = current })
		return nil
	})
}

func (s *Store) DeleteApplicationsByGig(ctx context.Context, gigID int) (int64, error) {
	var deleted int64
	err := s.within(ctx, func(t *tx) error {
		if err := t.lock(ctx, gigKey(gigID)); err != nil {
			return err
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		for id, app := range s.applications {
			if app.GigID != gigID {
				continue
			}
			delete(s.applications, id)
			id, app := id, app
			t.record(func() { s.applications[id] = app })
			deleted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
