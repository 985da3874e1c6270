package blogs

import (
	"context"

	"github.com/dmitrijs2005/blogkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, blog *models.Blog) (*models.Blog, error)
	FindByID(ctx context.Context, blogID int64) (*models.Blog, error)
	List(ctx context.Context) ([]*models.Blog, error)
	// Update writes only the fields present in patch and returns the stored row.
	Update(ctx context.Context, blogID int64, patch models.BlogPatch) (*models.Blog, error)
	// AssignEditor sets the editor only while none is assigned; it returns
	// common.ErrorConflict when the blog already has one.
	AssignEditor(ctx context.Context, blogID, editorID int64) error
	Delete(ctx context.Context, blogID int64) error
}
