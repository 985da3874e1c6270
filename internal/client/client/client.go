package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/blogkeeper/internal/client/models"
	"github.com/dmitrijs2005/blogkeeper/internal/common"
)

type Client interface {
	Health(ctx context.Context) error
	Signup(ctx context.Context, req SignupRequest) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	ListBlogs(ctx context.Context) ([]*models.Blog, error)
	GetBlog(ctx context.Context, blogID int64) (*models.Blog, error)
	CreateBlog(ctx context.Context, title, content string, editorID *int64) (string, error)
	AssignEditor(ctx context.Context, blogID, editorID int64) (string, error)
	EditBlog(ctx context.Context, blogID int64, title, content *string) (string, error)
	DeleteBlog(ctx context.Context, blogID int64) (string, error)
	ListComments(ctx context.Context, blogID int64) ([]*models.Comment, error)
	PostComment(ctx context.Context, blogID int64, comment string) (string, error)
	DeleteComment(ctx context.Context, blogID, commentID int64) (string, error)
	SetToken(token string)
}

type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Role     string `json:"role,omitempty"`
}

// HTTPClient talks to the API over HTTP. Not safe for concurrent SetToken.
type HTTPClient struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewHTTPClient(baseURL, token string, timeout time.Duration) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid server url %q: scheme must be http or https", baseURL)
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

func (c *HTTPClient) SetToken(token string) { c.token = token }

func (c *HTTPClient) Health(ctx context.Context) error {
	_, err := c.text(ctx, http.MethodGet, "/health", nil)
	return err
}

func (c *HTTPClient) Signup(ctx context.Context, req SignupRequest) (string, error) {
	return c.text(ctx, http.MethodPost, "/signup", req)
}

// Login returns the access token and remembers it for later calls.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	token, err := c.text(ctx, http.MethodPost, "/login", map[string]string{"email": email, "password": password})
	if err != nil {
		return "", err
	}
	c.token = token
	return token, nil
}

func (c *HTTPClient) ListBlogs(ctx context.Context) ([]*models.Blog, error) {
	var out []*models.Blog
	err := c.getJSON(ctx, "/blog", &out)
	return out, err
}

func (c *HTTPClient) GetBlog(ctx context.Context, blogID int64) (*models.Blog, error) {
	var out models.Blog
	if err := c.getJSON(ctx, "/blog/"+id(blogID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateBlog(ctx context.Context, title, content string, editorID *int64) (string, error) {
	body := struct {
		Title            string `json:"title"`
		Content          string `json:"content"`
		AssignedEditorID *int64 `json:"assignedEditorId,omitempty"`
	}{title, content, editorID}
	return c.text(ctx, http.MethodPost, "/blog/create", body)
}

func (c *HTTPClient) AssignEditor(ctx context.Context, blogID, editorID int64) (string, error) {
	return c.text(ctx, http.MethodPut, "/blog/assign-editor/"+id(blogID), map[string]int64{"assignedEditorId": editorID})
}

func (c *HTTPClient) EditBlog(ctx context.Context, blogID int64, title, content *string) (string, error) {
	body := struct {
		Title   *string `json:"title,omitempty"`
		Content *string `json:"content,omitempty"`
	}{title, content}
	return c.text(ctx, http.MethodPut, "/blog/edit/"+id(blogID), body)
}

func (c *HTTPClient) DeleteBlog(ctx context.Context, blogID int64) (string, error) {
	return c.text(ctx, http.MethodDelete, "/blog/delete/"+id(blogID), nil)
}

func (c *HTTPClient) ListComments(ctx context.Context, blogID int64) ([]*models.Comment, error) {
	var out []*models.Comment
	err := c.getJSON(ctx, "/blog/"+id(blogID)+"/comment", &out)
	return out, err
}

func (c *HTTPClient) PostComment(ctx context.Context, blogID int64, comment string) (string, error) {
	return c.text(ctx, http.MethodPost, "/blog/"+id(blogID)+"/comment", map[string]string{"comment": comment})
}

func (c *HTTPClient) DeleteComment(ctx context.Context, blogID, commentID int64) (string, error) {
	return c.text(ctx, http.MethodDelete, "/blog/"+id(blogID)+"/comment/"+id(commentID), nil)
}

func id(v int64) string { return strconv.FormatInt(v, 10) }

// do sends the request and returns the body of a 2xx answer.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(data))}
	}
	return data, nil
}

func (c *HTTPClient) text(ctx context.Context, method, path string, body any) (string, error) {
	data, err := c.do(ctx, method, path, body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, out any) error {
	data, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
