package blogs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/blogkeeper/internal/common"
	"github.com/dmitrijs2005/blogkeeper/internal/dbx"
	"github.com/dmitrijs2005/blogkeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, blog *models.Blog) (*models.Blog, error) {
	query :=
		`INSERT INTO blogs (blog_id, title, content, assigned_editor_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		blog.BlogID, blog.Title, blog.Content, nullableID(blog.AssignedEditorID)).Scan(&blog.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return blog, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, blogID int64) (*models.Blog, error) {
	query :=
		`SELECT blog_id, title, content, assigned_editor_id, created_at FROM blogs
		 WHERE blog_id = $1
		 `

	blog, err := scanBlog(r.db.QueryRowContext(ctx, query, blogID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return blog, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Blog, error) {
	query :=
		`SELECT blog_id, title, content, assigned_editor_id, created_at FROM blogs
		 ORDER BY blog_id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Blog{}
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, blog)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, blogID int64, patch models.BlogPatch) (*models.Blog, error) {
	query :=
		`UPDATE blogs SET title = COALESCE($2, title), content = COALESCE($3, content)
		 WHERE blog_id = $1
		 RETURNING blog_id, title, content, assigned_editor_id, created_at
		 `

	title, hasTitle := patch.NewTitle()
	content, hasContent := patch.NewContent()

	blog, err := scanBlog(r.db.QueryRowContext(ctx, query, blogID,
		sql.NullString{String: title, Valid: hasTitle},
		sql.NullString{String: content, Valid: hasContent}))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return blog, nil
}

func (r *PostgresRepository) AssignEditor(ctx context.Context, blogID, editorID int64) error {
	query :=
		`UPDATE blogs SET assigned_editor_id = $2
		 WHERE blog_id = $1 AND assigned_editor_id IS NULL
		 `

	res, err := r.db.ExecContext(ctx, query, blogID, editorID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorConflict
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, blogID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM blogs WHERE blog_id = $1`, blogID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireRow(res)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBlog(s scanner) (*models.Blog, error) {
	blog := &models.Blog{}
	var editor sql.NullInt64
	if err := s.Scan(&blog.BlogID, &blog.Title, &blog.Content, &editor, &blog.CreatedAt); err != nil {
		return nil, err
	}
	if editor.Valid {
		id := editor.Int64
		blog.AssignedEditorID = &id
	}
	return blog, nil
}

func nullableID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
