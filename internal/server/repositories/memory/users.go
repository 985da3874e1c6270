package memory

import (
	"context"
	"time"

	"github.com/dmitrijs2005/blogkeeper/internal/common"
	"github.com/dmitrijs2005/blogkeeper/internal/server/models"
	"github.com/dmitrijs2005/blogkeeper/internal/server/repositories/users"
)

type userRepo struct{ s *store }

func (r userRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return nil, users.ErrEmailTaken
		}
		if existing.Username == u.Username {
			return nil, users.ErrUsernameTaken
		}
	}
	if _, ok := r.s.users[u.UserID]; ok {
		return nil, common.ErrorAlreadyExists
	}
	stored := *u
	stored.CreatedAt = time.Now()
	r.s.users[u.UserID] = stored
	return &stored, nil
}

func (r userRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r userRepo) FindByUserID(ctx context.Context, userID int64) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[userID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &u, nil
}

func (r userRepo) CountAll(ctx context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.users)), nil
}
