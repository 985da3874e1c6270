// Package services contains server-side business logic: signup, login and
// token authentication (UserService), blog management (BlogService) and
// comments (CommentService). Every failure a caller can act on is a
// *common.Error; anything else matches common.ErrorInternal.
package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/blogkeeper/internal/common"
	"github.com/dmitrijs2005/blogkeeper/internal/dbx"
	"github.com/dmitrijs2005/blogkeeper/internal/server/auth"
	"github.com/dmitrijs2005/blogkeeper/internal/server/config"
	"github.com/dmitrijs2005/blogkeeper/internal/server/models"
	"github.com/dmitrijs2005/blogkeeper/internal/server/policy"
	"github.com/dmitrijs2005/blogkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/blogkeeper/internal/server/repositories/sequences"
	"github.com/dmitrijs2005/blogkeeper/internal/server/repositories/users"
)

const minPasswordLength = 8

// SignupRequest is the input of Signup. Role is only a wish: see policy.SignupRole.
type SignupRequest struct {
	Username string
	Password string
	Email    string
	Role     string
}

// UserService provides account operations:
// - Signup: create users, the first one as Admin
// - Login: verify credentials and mint an access token
// - Authenticate: resolve an access token back to its user
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	bcryptCost                  int
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		bcryptCost:                  cfg.BcryptCost,
	}
}

// ValidEmail is the acceptance rule for signup addresses.
func ValidEmail(email string) bool {
	return strings.Contains(email, "@") && strings.HasSuffix(email, ".com")
}

// Signup validates req and stores a new user. Id allocation, the first-user
// check and the insert share one transaction.
func (s *UserService) Signup(ctx context.Context, req SignupRequest) (*models.User, error) {
	if req.Username == "" || req.Password == "" || req.Email == "" {
		return nil, ErrMissingFields
	}
	if len(req.Password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if !ValidEmail(req.Email) {
		return nil, ErrInvalidEmail
	}

	_, err := s.repomanager.Users(s.db).FindByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return nil, ErrEmailTaken
	case !errors.Is(err, common.ErrorNotFound):
		return nil, internal("find user", err)
	}

	hash, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, internal("hash password", err)
	}

	user, err := dbx.WithTxValue(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) (*models.User, error) {
		id, err := s.repomanager.Sequences(tx).Next(ctx, sequences.Users)
		if err != nil {
			return nil, err
		}
		repo := s.repomanager.Users(tx)
		count, err := repo.CountAll(ctx)
		if err != nil {
			return nil, err
		}
		return repo.Create(ctx, &models.User{
			UserID:   id,
			Username: req.Username,
			Password: hash,
			Email:    req.Email,
			Role:     policy.SignupRole(count, req.Role),
		})
	})
	if err != nil {
		switch {
		case errors.Is(err, users.ErrEmailTaken):
			return nil, ErrEmailTaken
		case errors.Is(err, users.ErrUsernameTaken):
			return nil, ErrUsernameTaken
		}
		return nil, internal("create user", err)
	}
	return user, nil
}

// Login checks the password of the account registered under email and
// returns a signed access token.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrMissingCredentials
	}

	user, err := s.repomanager.Users(s.db).FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", ErrUserNotFound
		}
		return "", internal("find user", err)
	}
	if !auth.CheckPassword(user.Password, password) {
		return "", ErrIncorrectPassword
	}

	token, err := auth.GenerateToken(user.Email, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", internal("generate token", err)
	}
	return token, nil
}

// Authenticate verifies token and loads its user. A token whose user no
// longer exists is as invalid as a forged one.
func (s *UserService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	email, err := auth.GetEmailFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, ErrInvalidAccessToken
	}

	user, err := s.repomanager.Users(s.db).FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, ErrInvalidAccessToken
		}
		return nil, internal("find user", err)
	}
	return user, nil
}
