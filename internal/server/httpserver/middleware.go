package httpserver

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/blogkeeper/internal/common"
	"github.com/dmitrijs2005/blogkeeper/internal/server/models"
	"github.com/dmitrijs2005/blogkeeper/internal/server/policy"
	"github.com/dmitrijs2005/blogkeeper/internal/server/services"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

type ctxKey string

const principalKey ctxKey = "principal"

const authAction = "authenticating the user"

// PrincipalFrom returns the caller attached by RequireOperation.
func PrincipalFrom(ctx context.Context) (models.Principal, bool) {
	p, ok := ctx.Value(principalKey).(models.Principal)
	return p, ok
}

func withPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// bearerToken takes whatever follows the scheme in the Authorization header.
func bearerToken(r *http.Request) string {
	_, token, found := strings.Cut(strings.TrimSpace(r.Header.Get(common.AuthorizationHeaderName)), " ")
	if !found {
		return ""
	}
	return strings.TrimSpace(token)
}

// RequireOperation authenticates the caller and checks the role allow-list
// of op before calling next. One user lookup per request, no caching.
func (s *HTTPServer) RequireOperation(op policy.Operation) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token := bearerToken(r)
			if token == "" {
				s.writeError(w, r, authAction, services.ErrInvalidAccessToken)
				return
			}

			user, err := s.users.Authenticate(ctx, token)
			if err != nil {
				s.writeError(w, r, authAction, err)
				return
			}

			if !policy.Allows(op, user.Role) {
				s.logger.Warn(ctx, "operation denied", "operation", op.String(), "user_id", user.UserID, "role", user.Role)
				s.writeError(w, r, authAction, services.ErrRoleNotAllowed)
				return
			}

			next.ServeHTTP(w, r.WithContext(withPrincipal(ctx, user.Principal())))
		})
	}
}

// requestID reuses an incoming X-Request-ID or mints a uuid, and stores it
// where chi's middleware.GetReqID finds it.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(common.RequestIDHeaderName)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(common.RequestIDHeaderName, id)
		ctx := context.WithValue(r.Context(), middleware.RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *HTTPServer) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).String(),
			"remote", r.RemoteAddr,
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
