package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"
)

func (a *App) ListComments(ctx context.Context, args []string) error {
	id, err := ids(args, 1, "comments <blogId>")
	if err != nil {
		return err
	}
	comments, err := a.api.ListComments(ctx, id[0])
	if err != nil {
		return err
	}
	if len(comments) == 0 {
		a.say("No comments")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSER\tCREATED\tCOMMENT")
	for _, c := range comments {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\n", c.CommentID, c.UserID, c.CreatedAt.Format(time.DateTime), c.Content)
	}
	return tw.Flush()
}

// PostComment uses the words after the blog id as the comment, or prompts
// when there are none.
func (a *App) PostComment(ctx context.Context, args []string) error {
	id, err := ids(args, 1, "comment <blogId> [text...]")
	if err != nil {
		return err
	}

	text := strings.Join(args[1:], " ")
	if text == "" {
		if text, err = getSimpleText(a.reader, "Enter comment", a.out); err != nil {
			return err
		}
	}

	msg, err := a.api.PostComment(ctx, id[0], text)
	if err != nil {
		return err
	}
	a.say(msg)
	return nil
}

func (a *App) DeleteComment(ctx context.Context, args []string) error {
	id, err := ids(args, 2, "uncomment <blogId> <commentId>")
	if err != nil {
		return err
	}
	msg, err := a.api.DeleteComment(ctx, id[0], id[1])
	if err != nil {
		return err
	}
	a.say(msg)
	return nil
}
