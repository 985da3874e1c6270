package archive

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dmitrijs2005/blogkeeper/internal/filex"
)

// FileArchiver writes records under a local directory using the same key
// layout as S3Archiver.
type FileArchiver struct {
	dir string
}

func NewFileArchiver(dir string) (*FileArchiver, error) {
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, fmt.Errorf("archive dir: %w", err)
	}
	return &FileArchiver{dir: abs}, nil
}

func (a *FileArchiver) Dir() string { return a.dir }

func (a *FileArchiver) Archive(ctx context.Context, rec *Record) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key, body, err := encode(rec)
	if err != nil {
		return "", err
	}

	if err := filex.WriteFileAtomic(filepath.Join(a.dir, filepath.FromSlash(key)), body); err != nil {
		return "", fmt.Errorf("archive write %s: %w", key, err)
	}
	return key, nil
}
