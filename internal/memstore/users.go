package memstore

import (
	"context"
	"time"

	"github.com/GlebRadaev/gigmart/internal/domain"
)

// UserRepo exposes the user table of a Store.
type UserRepo struct {
	s *Store
}

func (s *Store) Users() *UserRepo {
	return &UserRepo{s: s}
}

func (r *UserRepo) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	var found *domain.User
	err := r.s.within(ctx, func(t *tx) error {
		if err := t.lock(ctx, loginKey(login)); err != nil {
			return err
		}
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
		if id, ok := r.s.usersByLogin[login]; ok {
			user := r.s.users[id]
			found = &user
		}
		return nil
	})
	return found, err
}

func (r *UserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	err := r.s.within(ctx, func(t *tx) error {
		if err := t.lock(ctx, loginKey(user.Login)); err != nil {
			return err
		}
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
		if _, ok := r.s.usersByLogin[user.Login]; ok {
			return domain.ErrLoginTaken
		}
		r.s.lastUserID++
		user.ID = r.s.lastUserID
		if user.CreatedAt.IsZero() {
			user.CreatedAt = time.Now()
		}
		r.s.users[user.ID] = *user
		r.s.usersByLogin[user.Login] = user.ID

		id, login := user.ID, user.Login
		t.record(func() {
			delete(r.s.users, id)
			delete(r.s.usersByLogin, login)
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
