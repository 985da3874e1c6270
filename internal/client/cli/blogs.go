package cli

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/blogkeeper/internal/client/models"
)

func (a *App) ListBlogs(ctx context.Context) error {
	blogs, err := a.api.ListBlogs(ctx)
	if err != nil {
		return err
	}
	if len(blogs) == 0 {
		a.say("No blogs")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tEDITOR\tCREATED")
	for _, b := range blogs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", b.BlogID, b.Title, editorLabel(b), b.CreatedAt.Format(time.DateTime))
	}
	return tw.Flush()
}

func (a *App) ShowBlog(ctx context.Context, args []string) error {
	id, err := ids(args, 1, "blog <id>")
	if err != nil {
		return err
	}
	b, err := a.api.GetBlog(ctx, id[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "#%d %s\neditor: %s\ncreated: %s\n\n%s\n",
		b.BlogID, b.Title, editorLabel(b), b.CreatedAt.Format(time.DateTime), b.Content)
	return nil
}

func (a *App) CreateBlog(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Enter content", a.out)
	if err != nil {
		return err
	}
	editor, err := getSimpleText(a.reader, "Editor user id (empty for none)", a.out)
	if err != nil {
		return err
	}

	var editorID *int64
	if editor != "" {
		id, err := ids([]string{editor}, 1, "editor id")
		if err != nil {
			return err
		}
		editorID = &id[0]
	}

	msg, err := a.api.CreateBlog(ctx, title, content, editorID)
	if err != nil {
		return err
	}
	a.say(msg)
	return nil
}

func (a *App) AssignEditor(ctx context.Context, args []string) error {
	id, err := ids(args, 2, "assign <blogId> <editorId>")
	if err != nil {
		return err
	}
	msg, err := a.api.AssignEditor(ctx, id[0], id[1])
	if err != nil {
		return err
	}
	a.say(msg)
	return nil
}

// EditBlog prompts for a new title and body; an empty answer keeps the
// current value.
func (a *App) EditBlog(ctx context.Context, args []string) error {
	id, err := ids(args, 1, "edit <blogId>")
	if err != nil {
		return err
	}

	title, err := getSimpleText(a.reader, "New title (empty to keep)", a.out)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "New content (empty to keep)", a.out)
	if err != nil {
		return err
	}

	msg, err := a.api.EditBlog(ctx, id[0], optional(title), optional(content))
	if err != nil {
		return err
	}
	a.say(msg)
	return nil
}

func (a *App) DeleteBlog(ctx context.Context, args []string) error {
	id, err := ids(args, 1, "delete <blogId>")
	if err != nil {
		return err
	}
	msg, err := a.api.DeleteBlog(ctx, id[0])
	if err != nil {
		return err
	}
	a.say(msg)
	return nil
}

func editorLabel(b *models.Blog) string {
	if b.AssignedEditorID == nil {
		return "-"
	}
	return strconv.FormatInt(*b.AssignedEditorID, 10)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
