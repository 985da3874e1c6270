// Package archive keeps a copy of every deleted blog, in object storage or in
// a local directory.
package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/blogkeeper/internal/server/models"
)

// Record is the document written for a deleted blog.
type Record struct {
	Blog         *models.Blog `json:"blog"`
	CommentCount int64        `json:"commentCount"`
	DeletedBy    int64        `json:"deletedBy"`
	DeletedAt    time.Time    `json:"deletedAt"`
}

// Archiver stores a Record and returns the key it was stored under.
type Archiver interface {
	Archive(ctx context.Context, rec *Record) (string, error)
}

// NopArchiver is used when archiving is off.
type NopArchiver struct{}

func (NopArchiver) Archive(context.Context, *Record) (string, error) { return "", nil }

// encode stamps DeletedAt when unset and returns the key and JSON body.
func encode(rec *Record) (string, []byte, error) {
	if rec == nil || rec.Blog == nil {
		return "", nil, fmt.Errorf("archive: empty record")
	}
	if rec.DeletedAt.IsZero() {
		rec.DeletedAt = now().UTC()
	}

	body, err := json.Marshal(rec)
	if err != nil {
		return "", nil, fmt.Errorf("archive: %w", err)
	}
	return ObjectKey(rec.Blog.BlogID, rec.DeletedAt), body, nil
}
