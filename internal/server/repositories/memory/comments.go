package memory

import (
	"context"
	"sort"
	"time"

	"github.com/dmitrijs2005/blogkeeper/internal/common"
	"github.com/dmitrijs2005/blogkeeper/internal/server/models"
)

type commentRepo struct{ s *store }

func (r commentRepo) Create(ctx context.Context, c *models.Comment) (*models.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.blogs[c.BlogID]; !ok {
		return nil, common.ErrorNotFound
	}
	stored := *c
	stored.CreatedAt = time.Now()
	r.s.comments[c.CommentID] = stored
	return &stored, nil
}

func (r commentRepo) FindByID(ctx context.Context, commentID int64) (*models.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.comments[commentID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &c, nil
}

func (r commentRepo) ListByBlog(ctx context.Context, blogID int64) ([]*models.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*models.Comment{}
	for _, c := range r.s.comments {
		if c.BlogID == blogID {
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CommentID < out[j].CommentID })
	return out, nil
}

func (r commentRepo) CountByBlog(ctx context.Context, blogID int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, c := range r.s.comments {
		if c.BlogID == blogID {
			n++
		}
	}
	return n, nil
}

func (r commentRepo) Delete(ctx context.Context, commentID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.comments[commentID]; !ok {
		return common.ErrorNotFound
	}
	delete(r.s.comments, commentID)
	return nil
}
