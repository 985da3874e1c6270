package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/blogkeeper/internal/client/client"
	"github.com/dmitrijs2005/blogkeeper/internal/client/config"
	"github.com/dmitrijs2005/blogkeeper/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func i64(v int64) *int64   { return &v }
func str(v string) *string { return &v }

func TestNewApp(t *testing.T) {
	cfg := &config.Config{ServerURL: "http://localhost:1", Token: "abc", RequestTimeout: time.Second}
	a, err := NewApp(cfg)
	require.NoError(t, err)
	assert.True(t, a.isLoggedIn())

	_, err = NewApp(&config.Config{ServerURL: "localhost"})
	require.Error(t, err)
}

func TestExec_OneShotCommands(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		input string
		want  call
		out   string
	}{
		{name: "assign", args: []string{"assign", "3", "7"}, want: call{"AssignEditor", []any{int64(3), int64(7)}}, out: "Editor assigned successfully\n"},
		{name: "delete", args: []string{"delete", "3"}, want: call{"DeleteBlog", []any{int64(3)}}, out: "Blog deleted successfully\n"},
		{name: "comment inline", args: []string{"comment", "3", "nice", "post"}, want: call{"PostComment", []any{int64(3), "nice post"}}, out: "Comment posted successfully\n"},
		{name: "comment prompted", args: []string{"comment", "3"}, input: "typed\n", want: call{"PostComment", []any{int64(3), "typed"}}},
		{name: "uncomment", args: []string{"uncomment", "3", "9"}, want: call{"DeleteComment", []any{int64(3), int64(9)}}, out: "Comment deleted successfully\n"},
		{name: "create with editor", args: []string{"create"}, input: "Title\nline one\nline two\n\n4\n", want: call{"CreateBlog", []any{"Title", "line one\nline two", i64(4)}}},
		{name: "create without editor", args: []string{"create"}, input: "Title\nbody\n\n\n", want: call{"CreateBlog", []any{"Title", "body", (*int64)(nil)}}},
		{name: "edit title only", args: []string{"edit", "5"}, input: "New\n\n", want: call{"EditBlog", []any{int64(5), str("New"), (*string)(nil)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, fc, out := newTestApp(t, tt.input)
			require.NoError(t, a.Run(context.Background(), tt.args))
			require.Len(t, fc.calls, 1)
			assert.Equal(t, tt.want, fc.calls[0])
			if tt.out != "" {
				assert.Equal(t, tt.out, out.String())
			}
		})
	}
}

func TestExec_BadArguments(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"assign", "3"}, "usage"},
		{[]string{"delete", "abc"}, `invalid id "abc"`},
		{[]string{"blog", "0"}, `invalid id "0"`},
		{[]string{"uncomment", "1", "-2"}, `invalid id "-2"`},
		{[]string{"frobnicate"}, "unknown command: frobnicate"},
	}
	for _, tt := range tests {
		a, fc, _ := newTestApp(t, "")
		err := a.Run(context.Background(), tt.args)
		require.Error(t, err, "%v", tt.args)
		assert.Contains(t, err.Error(), tt.want)
		assert.Empty(t, fc.calls)
	}
}

func TestExec_ClientErrorReturned(t *testing.T) {
	a, fc, out := newTestApp(t, "")
	fc.err = &client.APIError{StatusCode: 403, Message: "Not authorized"}

	err := a.Run(context.Background(), []string{"delete", "1"})
	require.ErrorIs(t, err, client.ErrForbidden)
	assert.Empty(t, out.String())
}

func TestSignupAndLogin(t *testing.T) {
	stubPassword(t, "password1")
	a, fc, _ := newTestApp(t, "")

	require.NoError(t, a.Exec(context.Background(), "signup", []string{"alice", "a@b.c", "Writer"}))
	assert.Equal(t, call{"Signup", []any{client.SignupRequest{Username: "alice", Email: "a@b.c", Role: "Writer", Password: "password1"}}}, fc.calls[0])

	require.NoError(t, a.Exec(context.Background(), "login", []string{"a@b.c"}))
	assert.Equal(t, call{"Login", []any{"a@b.c", "password1"}}, fc.calls[1])
	assert.True(t, a.isLoggedIn())
	assert.Equal(t, " (a@b.c)", a.getStatus())

	require.NoError(t, a.Exec(context.Background(), "logout", nil))
	assert.False(t, a.isLoggedIn())
	assert.Equal(t, "", a.getStatus())
	assert.Equal(t, "", fc.token)
}

func TestSignup_Prompts(t *testing.T) {
	stubPassword(t, "password1")
	a, fc, _ := newTestApp(t, "bob\nb@b.c\n")

	require.NoError(t, a.Exec(context.Background(), "signup", nil))
	req := fc.calls[0].args[0].(client.SignupRequest)
	assert.Equal(t, "bob", req.Username)
	assert.Equal(t, "b@b.c", req.Email)
	assert.Empty(t, req.Role)
}

func TestLogin_FailureKeepsSession(t *testing.T) {
	stubPassword(t, "bad")
	a, fc, _ := newTestApp(t, "")
	a.token = "old"
	fc.err = errors.New("boom")

	require.Error(t, a.Exec(context.Background(), "login", []string{"a@b.c"}))
	assert.Equal(t, "old", a.token)
}

func TestListBlogs_Output(t *testing.T) {
	a, fc, out := newTestApp(t, "")
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	fc.blogs = []*models.Blog{
		{BlogID: 1, Title: "first", CreatedAt: ts},
		{BlogID: 2, Title: "second", AssignedEditorID: i64(9), CreatedAt: ts},
	}

	require.NoError(t, a.Exec(context.Background(), "blogs", nil))
	assert.Contains(t, out.String(), "first")
	assert.Contains(t, out.String(), "2024-01-02 03:04:05")
	assert.Regexp(t, `2\s+second\s+9`, out.String())
	assert.Regexp(t, `1\s+first\s+-`, out.String())
}

func TestListEmpty(t *testing.T) {
	a, _, out := newTestApp(t, "")
	require.NoError(t, a.Exec(context.Background(), "blogs", nil))
	require.NoError(t, a.Exec(context.Background(), "comments", []string{"1"}))
	assert.Equal(t, "No blogs\nNo comments\n", out.String())
}

func TestShowBlog(t *testing.T) {
	a, fc, out := newTestApp(t, "")
	fc.blogs = []*models.Blog{{BlogID: 4, Title: "T", Content: "body"}}

	require.NoError(t, a.Exec(context.Background(), "blog", []string{"4"}))
	assert.Contains(t, out.String(), "#4 T")
	assert.Contains(t, out.String(), "body")
}

func TestToken(t *testing.T) {
	a, _, out := newTestApp(t, "")
	a.token = "xyz"
	require.NoError(t, a.Exec(context.Background(), "token", nil))
	assert.Equal(t, "xyz\n", out.String())
}
