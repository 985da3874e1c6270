package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/blogkeeper/internal/common"
	"github.com/dmitrijs2005/blogkeeper/internal/dbx"
	"github.com/dmitrijs2005/blogkeeper/internal/server/models"
	"github.com/dmitrijs2005/blogkeeper/internal/server/policy"
	"github.com/dmitrijs2005/blogkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/blogkeeper/internal/server/repositories/sequences"
)

type CommentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCommentService(db *sql.DB, m repomanager.RepositoryManager) *CommentService {
	return &CommentService{db: db, repomanager: m}
}

// List returns the comments of an existing blog ordered by id.
func (s *CommentService) List(ctx context.Context, blogID int64) ([]*models.Comment, error) {
	if err := s.requireBlog(ctx, blogID); err != nil {
		return nil, err
	}
	comments, err := s.repomanager.Comments(s.db).ListByBlog(ctx, blogID)
	if err != nil {
		return nil, internal("list comments", err)
	}
	return comments, nil
}

// Post adds a comment by p to an existing blog.
func (s *CommentService) Post(ctx context.Context, p models.Principal, blogID int64, content string) (*models.Comment, error) {
	if content == "" {
		return nil, ErrMissingComment
	}
	if err := s.requireBlog(ctx, blogID); err != nil {
		return nil, err
	}

	comment, err := dbx.WithTxValue(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) (*models.Comment, error) {
		id, err := s.repomanager.Sequences(tx).Next(ctx, sequences.Comments)
		if err != nil {
			return nil, err
		}
		return s.repomanager.Comments(tx).Create(ctx, &models.Comment{
			CommentID: id,
			BlogID:    blogID,
			UserID:    p.UserID,
			Content:   content,
		})
	})
	if err != nil {
		return nil, internal("post comment", err)
	}
	return comment, nil
}

// Delete removes a comment of blogID. Only its author may do that.
func (s *CommentService) Delete(ctx context.Context, p models.Principal, blogID, commentID int64) error {
	if err := s.requireBlog(ctx, blogID); err != nil {
		return err
	}

	repo := s.repomanager.Comments(s.db)
	comment, err := repo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return ErrCommentNotFound
		}
		return internal("find comment", err)
	}
	if comment.BlogID != blogID {
		return ErrCommentNotFound
	}
	if !policy.CanDeleteComment(p, comment) {
		return ErrCannotDeleteComment
	}

	if err := repo.Delete(ctx, commentID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return ErrCommentNotFound
		}
		return internal("delete comment", err)
	}
	return nil
}

func (s *CommentService) requireBlog(ctx context.Context, blogID int64) error {
	_, err := s.repomanager.Blogs(s.db).FindByID(ctx, blogID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return ErrBlogNotFound
		}
		return internal("find blog", err)
	}
	return nil
}
