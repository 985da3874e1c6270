package services

import (
	"context"
	"database/sql"
	"sort"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/blogkeeper/internal/common"
	"github.com/dmitrijs2005/blogkeeper/internal/dbx"
	"github.com/dmitrijs2005/blogkeeper/internal/server/archive"
	"github.com/dmitrijs2005/blogkeeper/internal/server/models"
	"github.com/dmitrijs2005/blogkeeper/internal/server/repositories/blogs"
	"github.com/dmitrijs2005/blogkeeper/internal/server/repositories/comments"
	"github.com/dmitrijs2005/blogkeeper/internal/server/repositories/sequences"
	"github.com/dmitrijs2005/blogkeeper/internal/server/repositories/users"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

// store is an in-memory backend shared by every fake repository.
type store struct {
	users    map[int64]*models.User
	blogs    map[int64]*models.Blog
	comments map[int64]*models.Comment
	seq      map[string]int64

	usersErr    error
	blogsErr    error
	commentsErr error
	seqErr      error
	createErr   error
}

func newStore() *store {
	return &store{
		users:    map[int64]*models.User{},
		blogs:    map[int64]*models.Blog{},
		comments: map[int64]*models.Comment{},
		seq:      map[string]int64{},
	}
}

func (s *store) addUser(id int64, email string, role models.Role) *models.User {
	u := &models.User{UserID: id, Username: email, Email: email, Role: role, Password: "x"}
	s.users[id] = u
	return u
}

func (s *store) addBlog(id int64, editor *int64) *models.Blog {
	b := &models.Blog{BlogID: id, Title: "T", Content: "C", AssignedEditorID: editor}
	s.blogs[id] = b
	return b
}

type fakeUsers struct{ s *store }

func (f fakeUsers) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.s.createErr != nil {
		return nil, f.s.createErr
	}
	for _, existing := range f.s.users {
		if existing.Email == u.Email {
			return nil, users.ErrEmailTaken
		}
		if existing.Username == u.Username {
			return nil, users.ErrUsernameTaken
		}
	}
	u.CreatedAt = time.Now()
	f.s.users[u.UserID] = u
	return u, nil
}

func (f fakeUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.s.usersErr != nil {
		return nil, f.s.usersErr
	}
	for _, u := range f.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f fakeUsers) FindByUserID(ctx context.Context, id int64) (*models.User, error) {
	if f.s.usersErr != nil {
		return nil, f.s.usersErr
	}
	if u, ok := f.s.users[id]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (f fakeUsers) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.s.users)), nil
}

type fakeBlogs struct{ s *store }

func (f fakeBlogs) Create(ctx context.Context, b *models.Blog) (*models.Blog, error) {
	if f.s.createErr != nil {
		return nil, f.s.createErr
	}
	f.s.blogs[b.BlogID] = b
	return b, nil
}

func (f fakeBlogs) FindByID(ctx context.Context, id int64) (*models.Blog, error) {
	if f.s.blogsErr != nil {
		return nil, f.s.blogsErr
	}
	b, ok := f.s.blogs[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *b
	return &cp, nil
}

func (f fakeBlogs) List(ctx context.Context) ([]*models.Blog, error) {
	if f.s.blogsErr != nil {
		return nil, f.s.blogsErr
	}
	out := []*models.Blog{}
	for _, b := range f.s.blogs {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BlogID < out[j].BlogID })
	return out, nil
}

func (f fakeBlogs) Update(ctx context.Context, blogID int64, patch models.BlogPatch) (*models.Blog, error) {
	if f.s.blogsErr != nil {
		return nil, f.s.blogsErr
	}
	b, ok := f.s.blogs[blogID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	patch.Apply(b)
	cp := *b
	return &cp, nil
}

func (f fakeBlogs) AssignEditor(ctx context.Context, blogID, editorID int64) error {
	b, ok := f.s.blogs[blogID]
	if !ok {
		return common.ErrorNotFound
	}
	if b.AssignedEditorID != nil {
		return common.ErrorConflict
	}
	b.AssignedEditorID = &editorID
	return nil
}

func (f fakeBlogs) Delete(ctx context.Context, id int64) error {
	if _, ok := f.s.blogs[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.s.blogs, id)
	return nil
}

type fakeComments struct{ s *store }

func (f fakeComments) Create(ctx context.Context, c *models.Comment) (*models.Comment, error) {
	if f.s.createErr != nil {
		return nil, f.s.createErr
	}
	f.s.comments[c.CommentID] = c
	return c, nil
}

func (f fakeComments) FindByID(ctx context.Context, id int64) (*models.Comment, error) {
	if f.s.commentsErr != nil {
		return nil, f.s.commentsErr
	}
	c, ok := f.s.comments[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return c, nil
}

func (f fakeComments) ListByBlog(ctx context.Context, blogID int64) ([]*models.Comment, error) {
	if f.s.commentsErr != nil {
		return nil, f.s.commentsErr
	}
	out := []*models.Comment{}
	for _, c := range f.s.comments {
		if c.BlogID == blogID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CommentID < out[j].CommentID })
	return out, nil
}

func (f fakeComments) CountByBlog(ctx context.Context, blogID int64) (int64, error) {
	if f.s.commentsErr != nil {
		return 0, f.s.commentsErr
	}
	var n int64
	for _, c := range f.s.comments {
		if c.BlogID == blogID {
			n++
		}
	}
	return n, nil
}

func (f fakeComments) Delete(ctx context.Context, id int64) error {
	if _, ok := f.s.comments[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.s.comments, id)
	return nil
}

type fakeSequences struct{ s *store }

func (f fakeSequences) Next(ctx context.Context, name string) (int64, error) {
	if f.s.seqErr != nil {
		return 0, f.s.seqErr
	}
	f.s.seq[name]++
	return f.s.seq[name], nil
}

type fakeRepoManager struct{ s *store }

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository           { return fakeUsers{m.s} }
func (m *fakeRepoManager) Blogs(db dbx.DBTX) blogs.Repository           { return fakeBlogs{m.s} }
func (m *fakeRepoManager) Comments(db dbx.DBTX) comments.Repository     { return fakeComments{m.s} }
func (m *fakeRepoManager) Sequences(db dbx.DBTX) sequences.Repository   { return fakeSequences{m.s} }

type fakeArchiver struct {
	records []*archive.Record
	err     error
}

func (a *fakeArchiver) Archive(ctx context.Context, rec *archive.Record) (string, error) {
	if a.err != nil {
		return "", a.err
	}
	a.records = append(a.records, rec)
	return "key", nil
}
