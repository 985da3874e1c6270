package archive

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/blogkeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileArchiver_WritesRecord(t *testing.T) {
	a, err := NewFileArchiver(filepath.Join(t.TempDir(), "archive"))
	require.NoError(t, err)

	deletedAt := time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC)
	rec := &Record{
		Blog:         &models.Blog{BlogID: 7, Title: "t", Content: "c"},
		CommentCount: 2,
		DeletedBy:    1,
		DeletedAt:    deletedAt,
	}

	key, err := a.Archive(context.Background(), rec)
	require.NoError(t, err)
	assert.Regexp(t, `^blogs/2024/3/9/7-[0-9a-f-]{36}\.json$`, key)

	data, err := os.ReadFile(filepath.Join(a.Dir(), filepath.FromSlash(key)))
	require.NoError(t, err)

	var got Record
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, int64(7), got.Blog.BlogID)
	assert.Equal(t, int64(2), got.CommentCount)
	assert.True(t, deletedAt.Equal(got.DeletedAt))
}

func TestFileArchiver_StampsDeletedAt(t *testing.T) {
	origNow := now
	t.Cleanup(func() { now = origNow })
	fixed := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	now = func() time.Time { return fixed }

	a, err := NewFileArchiver(t.TempDir())
	require.NoError(t, err)

	rec := &Record{Blog: &models.Blog{BlogID: 1}}
	key, err := a.Archive(context.Background(), rec)
	require.NoError(t, err)
	assert.True(t, fixed.Equal(rec.DeletedAt))
	assert.Regexp(t, `^blogs/2025/1/2/1-`, key)
}

func TestFileArchiver_Errors(t *testing.T) {
	a, err := NewFileArchiver(t.TempDir())
	require.NoError(t, err)

	_, err = a.Archive(context.Background(), nil)
	require.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = a.Archive(ctx, &Record{Blog: &models.Blog{BlogID: 1}})
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewFileArchiver_BadDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	_, err := NewFileArchiver(path)
	require.Error(t, err)
}
