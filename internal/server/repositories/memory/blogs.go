package memory

import (
	"context"
	"sort"
	"time"

	"github.com/dmitrijs2005/blogkeeper/internal/common"
	"github.com/dmitrijs2005/blogkeeper/internal/server/models"
)

type blogRepo struct{ s *store }

func (r blogRepo) Create(ctx context.Context, b *models.Blog) (*models.Blog, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.blogs[b.BlogID]; ok {
		return nil, common.ErrorAlreadyExists
	}
	stored := *b
	stored.CreatedAt = time.Now()
	r.s.blogs[b.BlogID] = stored
	return &stored, nil
}

func (r blogRepo) FindByID(ctx context.Context, blogID int64) (*models.Blog, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.blogs[blogID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &b, nil
}

func (r blogRepo) List(ctx context.Context) ([]*models.Blog, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*models.Blog, 0, len(r.s.blogs))
	for _, b := range r.s.blogs {
		out = append(out, &b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BlogID < out[j].BlogID })
	return out, nil
}

func (r blogRepo) Update(ctx context.Context, blogID int64, patch models.BlogPatch) (*models.Blog, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.blogs[blogID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	patch.Apply(&b)
	r.s.blogs[blogID] = b
	return &b, nil
}

func (r blogRepo) AssignEditor(ctx context.Context, blogID, editorID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.blogs[blogID]
	if !ok {
		return common.ErrorNotFound
	}
	if b.HasEditor() {
		return common.ErrorConflict
	}
	b.AssignedEditorID = &editorID
	r.s.blogs[blogID] = b
	return nil
}

func (r blogRepo) Delete(ctx context.Context, blogID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.blogs[blogID]; !ok {
		return common.ErrorNotFound
	}
	delete(r.s.blogs, blogID)
	return nil
}
