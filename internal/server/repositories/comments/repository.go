package comments

import (
	"context"

	"github.com/dmitrijs2005/blogkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, comment *models.Comment) (*models.Comment, error)
	FindByID(ctx context.Context, commentID int64) (*models.Comment, error)
	ListByBlog(ctx context.Context, blogID int64) ([]*models.Comment, error)
	CountByBlog(ctx context.Context, blogID int64) (int64, error)
	Delete(ctx context.Context, commentID int64) error
}
