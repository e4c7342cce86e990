package service

import (
	"context"
	"errors"
	"time"

	"github.com/lockbox/lockbox-go/internal/crypto"
	"github.com/lockbox/lockbox-go/internal/model"
	"github.com/lockbox/lockbox-go/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameRequired   = errors.New("username is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrUsernameTaken      = errors.New("username already taken")
)

// AuthService handles registration and login.
type AuthService struct {
	repo         *repository.UserRepository
	jwtSecret    string
	jwtExpiry    time.Duration
	storeTimeout time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *repository.UserRepository, secret string, expiry, storeTimeout time.Duration) *AuthService {
	return &AuthService{
		repo:         repo,
		jwtSecret:    secret,
		jwtExpiry:    expiry,
		storeTimeout: storeTimeout,
	}
}

// Register creates a new user account. It does not log the user in; the
// client follows up with a login call.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) error {
	if req.Username == "" {
		return ErrUsernameRequired
	}
	if req.Password == "" {
		return ErrPasswordRequired
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		Username:     req.Username,
		PasswordHash: hash,
	}

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return ErrUsernameTaken
		}
		return storeErr(err)
	}

	return nil
}

// dummyHash is a well-formed Argon2id hash (all-zero salt and key) that
// matches no password. Verifying against it keeps the unknown-username login
// path as expensive as a real comparison, so response timing does not reveal
// whether a username exists.
const dummyHash = "$argon2id$v=19$m=65536,t=3,p=2$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// Login verifies credentials and issues a session token. An unknown username
// and a wrong password are deliberately indistinguishable, in both response
// and timing.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	user, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			crypto.VerifyPassword(req.Password, dummyHash)
			return model.LoginResponse{}, ErrInvalidCredentials
		}
		return model.LoginResponse{}, storeErr(err)
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return model.LoginResponse{}, err
	}
	if !match {
		return model.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(user.ID, user.Username, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.LoginResponse{}, err
	}

	return model.LoginResponse{Token: token}, nil
}

// GetUser retrieves the profile of an authenticated user.
func (s *AuthService) GetUser(ctx context.Context, userID int64) (model.UserResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return model.UserResponse{}, storeErr(err)
	}

	return model.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}, nil
}
