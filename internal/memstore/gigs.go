package memstore

import (
	"context"
	"sort"
	"time"

	"github.com/GlebRadaev/gigmart/internal/domain"
)

func copyGig(g domain.Gig) *domain.Gig {
	if g.AssigneeID != nil {
		assignee := *g.AssigneeID
		g.AssigneeID = &assignee
	}
	return &g
}

func (s *Store) CreateGig(ctx context.Context, gig *domain.Gig) (*domain.Gig, error) {
	err := s.within(ctx, func(t *tx) error {
		s.mu.Lock()
		s.lastGigID++
		gig.ID = s.lastGigID
		s.mu.Unlock()

		if err := t.lock(ctx, gigKey(gig.ID)); err != nil {
			return err
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		now := time.Now()
		gig.CreatedAt, gig.UpdatedAt = now, now
		s.gigs[gig.ID] = *copyGig(*gig)

		id := gig.ID
		t.record(func() { delete(s.gigs, id) })
		return nil
	})
	if err != nil {
		return nil, err
	}
	return gig, nil
}

func (s *Store) GetGig(ctx context.Context, gigID int) (*domain.Gig, error) {
	var found *domain.Gig
	err := s.within(ctx, func(t *tx) error {
		if err := t.lock(ctx, gigKey(gigID)); err != nil {
			return err
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if gig, ok := s.gigs[gigID]; ok {
			found = copyGig(gig)
		}
		return nil
	})
	return found, err
}

// GetGigForUpdate is GetGig: every read already holds the gig lock until the scope ends.
func (s *Store) GetGigForUpdate(ctx context.Context, gigID int) (*domain.Gig, error) {
	return s.GetGig(ctx, gigID)
}

// ListOpenGigs reads a snapshot without taking gig locks; each gig is copied whole under s.mu.
func (s *Store) ListOpenGigs(_ context.Context, limit int) ([]domain.Gig, error) {
	return s.snapshotGigs(func(gig domain.Gig) bool { return gig.State == domain.GigOpen }, limit), nil
}

// ListGigsByPoster is a lock-free snapshot like ListOpenGigs, in every state.
func (s *Store) ListGigsByPoster(_ context.Context, posterID, limit int) ([]domain.Gig, error) {
	return s.snapshotGigs(func(gig domain.Gig) bool { return gig.PosterID == posterID }, limit), nil
}

func (s *Store) snapshotGigs(keep func(gig domain.Gig) bool, limit int) []domain.Gig {
	s.mu.Lock()
	defer s.mu.Unlock()

	var gigs []domain.Gig
	for _, gig := range s.gigs {
		if keep(gig) {
			gigs = append(gigs, *copyGig(gig))
		}
	}
	sort.Slice(gigs, func(i, j int) bool {
		if !gigs[i].CreatedAt.Equal(gigs[j].CreatedAt) {
			return gigs[i].CreatedAt.After(gigs[j].CreatedAt)
		}
		return gigs[i].ID > gigs[j].ID
	})
	if limit > 0 && len(gigs) > limit {
		gigs = gigs[:limit]
	}
	return gigs
}

func (s *Store) AssignGig(ctx context.Context, gigID, assigneeID int) error {
	return s.updateGig(ctx, gigID, func(gig *domain.Gig) error {
		if gig.State != domain.GigOpen {
			return domain.ErrGigNotOpen
		}
		gig.State = domain.GigAssigned
		gig.AssigneeID = &assigneeID
		return nil
	})
}

func (s *Store) CloseGig(ctx context.Context, gigID int) error {
	return s.updateGig(ctx, gigID, func(gig *domain.Gig) error {
		if gig.State == domain.GigClosed {
			return domain.ErrGigNotOpen
		}
		gig.State = domain.GigClosed
		return nil
	})
}

func (s *Store) updateGig(ctx context.Context, gigID int, change func(gig *domain.Gig) error) error {
	return s.within(ctx, func(t *tx) error {
		if err := t.lock(ctx, gigKey(gigID)); err != nil {
			return err
		}
		s.mu.Lock()
		defer s.mu.Unlock()

		prev, ok := s.gigs[gigID]
		if !ok {
			return domain.ErrGigNotOpen
		}
		next := *copyGig(prev)
		if err := change(&next); err != nil {
			return err
		}
		next.UpdatedAt = time.Now()
		s.gigs[gigID] = next
		t.record(func() { s.gigs[gigID] = prev })
		return nil
	})
}
