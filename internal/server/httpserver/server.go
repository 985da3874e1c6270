// Package httpserver exposes the blog API over HTTP: routing, the
// authorization gate, handlers and server lifecycle.
package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/blogkeeper/internal/logging"
	"github.com/dmitrijs2005/blogkeeper/internal/server/config"
	"github.com/dmitrijs2005/blogkeeper/internal/server/models"
	"github.com/dmitrijs2005/blogkeeper/internal/server/services"
)

type UserService interface {
	Signup(ctx context.Context, req services.SignupRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

type BlogService interface {
	List(ctx context.Context) ([]*models.Blog, error)
	Get(ctx context.Context, blogID int64) (*models.Blog, error)
	Create(ctx context.Context, req services.CreateBlogRequest) (*models.Blog, error)
	AssignEditor(ctx context.Context, blogID int64, editorID *int64) error
	Edit(ctx context.Context, p models.Principal, blogID int64, patch models.BlogPatch) (*models.Blog, error)
	Delete(ctx context.Context, p models.Principal, blogID int64) error
}

type CommentService interface {
	List(ctx context.Context, blogID int64) ([]*models.Comment, error)
	Post(ctx context.Context, p models.Principal, blogID int64, content string) (*models.Comment, error)
	Delete(ctx context.Context, p models.Principal, blogID, commentID int64) error
}

type HTTPServer struct {
	config   *config.Config
	logger   logging.Logger
	users    UserService
	blogs    BlogService
	comments CommentService
}

func NewHTTPServer(c *config.Config, l logging.Logger, us UserService, bs BlogService, cs CommentService) *HTTPServer {
	return &HTTPServer{
		config:   c,
		logger:   l.With("module", "http_server"),
		users:    us,
		blogs:    bs,
		comments: cs,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully within
// the configured timeout.
func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.config.EndpointAddrHTTP,
		Handler:      s.Router(ctx),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", s.config.EndpointAddrHTTP)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout())
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func (s *HTTPServer) shutdownTimeout() time.Duration {
	if s.config.ShutdownTimeout > 0 {
		return s.config.ShutdownTimeout
	}
	return 10 * time.Second
}
