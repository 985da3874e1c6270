package httpserver

import (
	"context"

	"github.com/dmitrijs2005/blogkeeper/internal/common"
	"github.com/dmitrijs2005/blogkeeper/internal/server/models"
	"github.com/dmitrijs2005/blogkeeper/internal/server/services"
)

// fakeUsers resolves the token "<email>" to the user with that email.
type fakeUsers struct {
	byEmail   map[string]*models.User
	signupReq services.SignupRequest
	signupErr error
	loginErr  error
	authErr   error
}

func (f *fakeUsers) Signup(ctx context.Context, req services.SignupRequest) (*models.User, error) {
	f.signupReq = req
	if f.signupErr != nil {
		return nil, f.signupErr
	}
	return &models.User{UserID: 9, Email: req.Email, Role: models.RoleUser}, nil
}

func (f *fakeUsers) Login(ctx context.Context, email, password string) (string, error) {
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return "token-for-" + email, nil
}

func (f *fakeUsers) Authenticate(ctx context.Context, token string) (*models.User, error) {
	if f.authErr != nil {
		return nil, f.authErr
	}
	if u, ok := f.byEmail[token]; ok {
		return u, nil
	}
	return nil, services.ErrInvalidAccessToken
}

type blogCall struct {
	principal models.Principal
	blogID    int64
	editorID  *int64
	patch     models.BlogPatch
	create    services.CreateBlogRequest
}

type fakeBlogs struct {
	blogs []*models.Blog
	err   error
	calls []blogCall
}

func (f *fakeBlogs) List(ctx context.Context) ([]*models.Blog, error) {
	return f.blogs, f.err
}

func (f *fakeBlogs) Get(ctx context.Context, blogID int64) (*models.Blog, error) {
	f.calls = append(f.calls, blogCall{blogID: blogID})
	if f.err != nil {
		return nil, f.err
	}
	for _, b := range f.blogs {
		if b.BlogID == blogID {
			return b, nil
		}
	}
	return nil, services.ErrBlogNotFound
}

func (f *fakeBlogs) Create(ctx context.Context, req services.CreateBlogRequest) (*models.Blog, error) {
	f.calls = append(f.calls, blogCall{create: req})
	if f.err != nil {
		return nil, f.err
	}
	return &models.Blog{BlogID: 1, Title: req.Title, Content: req.Content}, nil
}

func (f *fakeBlogs) AssignEditor(ctx context.Context, blogID int64, editorID *int64) error {
	f.calls = append(f.calls, blogCall{blogID: blogID, editorID: editorID})
	return f.err
}

func (f *fakeBlogs) Edit(ctx context.Context, p models.Principal, blogID int64, patch models.BlogPatch) (*models.Blog, error) {
	f.calls = append(f.calls, blogCall{principal: p, blogID: blogID, patch: patch})
	if f.err != nil {
		return nil, f.err
	}
	return &models.Blog{BlogID: blogID}, nil
}

func (f *fakeBlogs) Delete(ctx context.Context, p models.Principal, blogID int64) error {
	f.calls = append(f.calls, blogCall{principal: p, blogID: blogID})
	return f.err
}

type commentCall struct {
	principal models.Principal
	blogID    int64
	commentID int64
	content   string
}

type fakeComments struct {
	comments []*models.Comment
	err      error
	calls    []commentCall
}

func (f *fakeComments) List(ctx context.Context, blogID int64) ([]*models.Comment, error) {
	f.calls = append(f.calls, commentCall{blogID: blogID})
	return f.comments, f.err
}

func (f *fakeComments) Post(ctx context.Context, p models.Principal, blogID int64, content string) (*models.Comment, error) {
	f.calls = append(f.calls, commentCall{principal: p, blogID: blogID, content: content})
	if f.err != nil {
		return nil, f.err
	}
	return &models.Comment{CommentID: 1, BlogID: blogID, UserID: p.UserID, Content: content}, nil
}

func (f *fakeComments) Delete(ctx context.Context, p models.Principal, blogID, commentID int64) error {
	f.calls = append(f.calls, commentCall{principal: p, blogID: blogID, commentID: commentID})
	return f.err
}

var errInternal = common.ErrorInternal
