package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/blogkeeper/internal/common"
	"github.com/dmitrijs2005/blogkeeper/internal/dbx"
	"github.com/dmitrijs2005/blogkeeper/internal/server/archive"
	"github.com/dmitrijs2005/blogkeeper/internal/server/models"
	"github.com/dmitrijs2005/blogkeeper/internal/server/policy"
	"github.com/dmitrijs2005/blogkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/blogkeeper/internal/server/repositories/sequences"
)

// CreateBlogRequest is the input of BlogService.Create.
type CreateBlogRequest struct {
	Title            string
	Content          string
	AssignedEditorID *int64
}

type BlogService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	archiver    archive.Archiver
}

// NewBlogService wires a BlogService. A nil archiver disables archiving.
func NewBlogService(db *sql.DB, m repomanager.RepositoryManager, archiver archive.Archiver) *BlogService {
	if archiver == nil {
		archiver = archive.NopArchiver{}
	}
	return &BlogService{db: db, repomanager: m, archiver: archiver}
}

func (s *BlogService) List(ctx context.Context) ([]*models.Blog, error) {
	blogs, err := s.repomanager.Blogs(s.db).List(ctx)
	if err != nil {
		return nil, internal("list blogs", err)
	}
	return blogs, nil
}

func (s *BlogService) Get(ctx context.Context, blogID int64) (*models.Blog, error) {
	return s.findBlog(ctx, s.db, blogID)
}

// Create stores a new blog. A zero AssignedEditorID counts as absent.
func (s *BlogService) Create(ctx context.Context, req CreateBlogRequest) (*models.Blog, error) {
	if req.Title == "" || req.Content == "" {
		return nil, ErrMissingTitleContent
	}

	var editorID *int64
	if req.AssignedEditorID != nil && *req.AssignedEditorID != 0 {
		if err := s.checkEditor(ctx, *req.AssignedEditorID); err != nil {
			return nil, err
		}
		id := *req.AssignedEditorID
		editorID = &id
	}

	blog, err := dbx.WithTxValue(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) (*models.Blog, error) {
		id, err := s.repomanager.Sequences(tx).Next(ctx, sequences.Blogs)
		if err != nil {
			return nil, err
		}
		return s.repomanager.Blogs(tx).Create(ctx, &models.Blog{
			BlogID:           id,
			Title:            req.Title,
			Content:          req.Content,
			AssignedEditorID: editorID,
		})
	})
	if err != nil {
		return nil, internal("create blog", err)
	}
	return blog, nil
}

// AssignEditor performs the one-way Unassigned -> Assigned transition.
func (s *BlogService) AssignEditor(ctx context.Context, blogID int64, editorID *int64) error {
	if editorID == nil || *editorID == 0 {
		return ErrMissingEditorID
	}
	if err := s.checkEditor(ctx, *editorID); err != nil {
		return err
	}

	blog, err := s.findBlog(ctx, s.db, blogID)
	if err != nil {
		return err
	}
	if blog.HasEditor() {
		return ErrEditorAlreadySet
	}

	// the conditional update settles races between concurrent assigns
	err = s.repomanager.Blogs(s.db).AssignEditor(ctx, blogID, *editorID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrorConflict):
		return ErrEditorAlreadySet
	case errors.Is(err, common.ErrorNotFound):
		return ErrBlogNotFound
	}
	return internal("assign editor", err)
}

// Edit applies patch on behalf of p and returns the stored blog.
func (s *BlogService) Edit(ctx context.Context, p models.Principal, blogID int64, patch models.BlogPatch) (*models.Blog, error) {
	blog, err := s.findBlog(ctx, s.db, blogID)
	if err != nil {
		return nil, err
	}
	if !policy.CanEditBlog(p, blog) {
		return nil, ErrNotAssignedEditor
	}
	if patch.Empty() {
		return nil, ErrMissingBlogUpdate
	}

	updated, err := s.repomanager.Blogs(s.db).Update(ctx, blogID, patch)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, internal("update blog", err)
	}
	return updated, nil
}

// Delete archives the blog and then removes it. Its comments stay.
func (s *BlogService) Delete(ctx context.Context, p models.Principal, blogID int64) error {
	blog, err := s.findBlog(ctx, s.db, blogID)
	if err != nil {
		return err
	}

	count, err := s.repomanager.Comments(s.db).CountByBlog(ctx, blogID)
	if err != nil {
		return internal("count comments", err)
	}
	if _, err := s.archiver.Archive(ctx, &archive.Record{Blog: blog, CommentCount: count, DeletedBy: p.UserID}); err != nil {
		return internal("archive blog", err)
	}

	if err := s.repomanager.Blogs(s.db).Delete(ctx, blogID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return ErrBlogNotFound
		}
		return internal("delete blog", err)
	}
	return nil
}

func (s *BlogService) findBlog(ctx context.Context, db dbx.DBTX, blogID int64) (*models.Blog, error) {
	blog, err := s.repomanager.Blogs(db).FindByID(ctx, blogID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, internal("find blog", err)
	}
	return blog, nil
}

func (s *BlogService) checkEditor(ctx context.Context, userID int64) error {
	user, err := s.repomanager.Users(s.db).FindByUserID(ctx, userID)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		return internal("find editor", err)
	}
	if !policy.CanBeAssignedEditor(user) {
		return ErrInvalidEditor
	}
	return nil
}
