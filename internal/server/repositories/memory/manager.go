// Package memory is an in-process RepositoryManager. It ignores the DBTX it
// is handed, so rolled back transactions still leave their writes behind.
package memory

import (
	"context"
	"database/sql"
	"sync"

	"github.com/dmitrijs2005/blogkeeper/internal/dbx"
	"github.com/dmitrijs2005/blogkeeper/internal/server/models"
	"github.com/dmitrijs2005/blogkeeper/internal/server/repositories/blogs"
	"github.com/dmitrijs2005/blogkeeper/internal/server/repositories/comments"
	"github.com/dmitrijs2005/blogkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/blogkeeper/internal/server/repositories/sequences"
	"github.com/dmitrijs2005/blogkeeper/internal/server/repositories/users"
)

type store struct {
	mu       sync.Mutex
	users    map[int64]models.User
	blogs    map[int64]models.Blog
	comments map[int64]models.Comment
	seq      map[string]int64
}

type Manager struct {
	s *store
}

var _ repomanager.RepositoryManager = (*Manager)(nil)

func NewManager() *Manager {
	return &Manager{s: &store{
		users:    map[int64]models.User{},
		blogs:    map[int64]models.Blog{},
		comments: map[int64]models.Comment{},
		seq:      map[string]int64{},
	}}
}

func (m *Manager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *Manager) Users(dbx.DBTX) users.Repository { return userRepo{m.s} }

func (m *Manager) Blogs(dbx.DBTX) blogs.Repository { return blogRepo{m.s} }

func (m *Manager) Comments(dbx.DBTX) comments.Repository { return commentRepo{m.s} }

func (m *Manager) Sequences(dbx.DBTX) sequences.Repository { return sequenceRepo{m.s} }

type sequenceRepo struct{ s *store }

func (r sequenceRepo) Next(ctx context.Context, name string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.seq[name]++
	return r.s.seq[name], nil
}
