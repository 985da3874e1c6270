package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/blogkeeper/internal/client/client"
	"github.com/dmitrijs2005/blogkeeper/internal/client/config"
	"github.com/dmitrijs2005/blogkeeper/internal/client/models"
)

type call struct {
	name string
	args []any
}

type fakeClient struct {
	calls    []call
	token    string
	blogs    []*models.Blog
	comments []*models.Comment
	err      error
}

func (f *fakeClient) record(name string, args ...any) { f.calls = append(f.calls, call{name, args}) }

func (f *fakeClient) Health(context.Context) error { f.record("Health"); return f.err }
func (f *fakeClient) Signup(_ context.Context, req client.SignupRequest) (string, error) {
	f.record("Signup", req)
	return "User created successfully", f.err
}
func (f *fakeClient) Login(_ context.Context, email, password string) (string, error) {
	f.record("Login", email, password)
	if f.err != nil {
		return "", f.err
	}
	return "tok", nil
}
func (f *fakeClient) ListBlogs(context.Context) ([]*models.Blog, error) {
	f.record("ListBlogs")
	return f.blogs, f.err
}
func (f *fakeClient) GetBlog(_ context.Context, id int64) (*models.Blog, error) {
	f.record("GetBlog", id)
	if f.err != nil {
		return nil, f.err
	}
	return f.blogs[0], nil
}
func (f *fakeClient) CreateBlog(_ context.Context, title, content string, editorID *int64) (string, error) {
	f.record("CreateBlog", title, content, editorID)
	return "Blog created successfully", f.err
}
func (f *fakeClient) AssignEditor(_ context.Context, blogID, editorID int64) (string, error) {
	f.record("AssignEditor", blogID, editorID)
	return "Editor assigned successfully", f.err
}
func (f *fakeClient) EditBlog(_ context.Context, blogID int64, title, content *string) (string, error) {
	f.record("EditBlog", blogID, title, content)
	return "Blog updated successfully", f.err
}
func (f *fakeClient) DeleteBlog(_ context.Context, blogID int64) (string, error) {
	f.record("DeleteBlog", blogID)
	return "Blog deleted successfully", f.err
}
func (f *fakeClient) ListComments(_ context.Context, blogID int64) ([]*models.Comment, error) {
	f.record("ListComments", blogID)
	return f.comments, f.err
}
func (f *fakeClient) PostComment(_ context.Context, blogID int64, comment string) (string, error) {
	f.record("PostComment", blogID, comment)
	return "Comment posted successfully", f.err
}
func (f *fakeClient) DeleteComment(_ context.Context, blogID, commentID int64) (string, error) {
	f.record("DeleteComment", blogID, commentID)
	return "Comment deleted successfully", f.err
}
func (f *fakeClient) SetToken(token string) { f.token = token }

func newTestApp(t *testing.T, input string) (*App, *fakeClient, *bytes.Buffer) {
	t.Helper()
	fc := &fakeClient{}
	out := &bytes.Buffer{}
	cfg := &config.Config{}
	cfg.LoadDefaults()
	return newApp(cfg, fc, strings.NewReader(input), out), fc, out
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(*bufio.Reader, io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}

func rdrLines(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}
