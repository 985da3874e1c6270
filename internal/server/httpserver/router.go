package httpserver

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/blogkeeper/internal/server/policy"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Router builds the API handler. ctx bounds background work such as the
// rate limiter janitor.
func (s *HTTPServer) Router(ctx context.Context) http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   s.config.CorsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}).Handler)

	r.Get("/health", s.health)

	r.Post("/signup", s.signup)

	loginLimiter := NewRateLimiter(ctx, s.config.LoginRateLimit, s.config.LoginRateWindow)
	r.With(loginLimiter.Limit).Post("/login", s.login)

	r.Route("/blog", func(r chi.Router) {
		r.Get("/", s.listBlogs)
		r.Get("/{blogId}", s.getBlog)
		r.Get("/{blogId}/comment", s.listComments)

		r.With(s.RequireOperation(policy.CreateBlog)).Post("/create", s.createBlog)
		r.With(s.RequireOperation(policy.AssignEditor)).Put("/assign-editor/{blogId}", s.assignEditor)
		r.With(s.RequireOperation(policy.EditBlog)).Put("/edit/{blogId}", s.editBlog)
		r.With(s.RequireOperation(policy.DeleteBlog)).Delete("/delete/{blogId}", s.deleteBlog)
		r.With(s.RequireOperation(policy.PostComment)).Post("/{blogId}/comment", s.postComment)
		r.With(s.RequireOperation(policy.DeleteComment)).Delete("/{blogId}/comment/{commentId}", s.deleteComment)
	})

	return r
}
