package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dmitrijs2005/blogkeeper/internal/client/client"
	"github.com/dmitrijs2005/blogkeeper/internal/client/config"
)

var errUsage = errors.New("usage")

type App struct {
	config   *config.Config
	api      client.Client
	reader   *bufio.Reader
	out      io.Writer
	userName string
	token    string
}

func NewApp(c *config.Config) (*App, error) {
	api, err := client.NewHTTPClient(c.ServerURL, c.Token, c.RequestTimeout)
	if err != nil {
		return nil, err
	}
	return newApp(c, api, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, api client.Client, in io.Reader, out io.Writer) *App {
	return &App{
		config: c,
		api:    api,
		reader: bufio.NewReader(in),
		out:    out,
		token:  c.Token,
	}
}

// Run executes args as a single command, or starts the interactive loop
// when args is empty.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.Root(ctx)
		return nil
	}
	return a.Exec(ctx, args[0], args[1:])
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}

// Exec dispatches one command.
func (a *App) Exec(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "health":
		return a.Health(ctx)
	case "signup", "register":
		return a.Signup(ctx, args)
	case "login":
		return a.Login(ctx, args)
	case "logout":
		return a.Logout(ctx)
	case "token":
		fmt.Fprintln(a.out, a.token)
		return nil
	case "blogs", "l", "list":
		return a.ListBlogs(ctx)
	case "blog", "show":
		return a.ShowBlog(ctx, args)
	case "create":
		return a.CreateBlog(ctx)
	case "assign":
		return a.AssignEditor(ctx, args)
	case "edit":
		return a.EditBlog(ctx, args)
	case "delete":
		return a.DeleteBlog(ctx, args)
	case "comments":
		return a.ListComments(ctx, args)
	case "comment":
		return a.PostComment(ctx, args)
	case "uncomment":
		return a.DeleteComment(ctx, args)
	}
	return fmt.Errorf("unknown command: %s", cmd)
}

// ids parses exactly n numeric ids from args.
func ids(args []string, n int, usage string) ([]int64, error) {
	if len(args) < n {
		return nil, fmt.Errorf("%w: %s", errUsage, usage)
	}
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseInt(args[i], 10, 64)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("invalid id %q", args[i])
		}
		out[i] = v
	}
	return out, nil
}

func (a *App) say(msg string) {
	fmt.Fprintln(a.out, msg)
}
