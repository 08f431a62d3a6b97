package services

import (
	"context"
	"errors"
	"time"

	"github.com/baharkarakas/farm-market/internal/apperr"
	"github.com/baharkarakas/farm-market/internal/auth"
	"github.com/baharkarakas/farm-market/internal/metrics"
	"github.com/baharkarakas/farm-market/internal/models"
	repo "github.com/baharkarakas/farm-market/internal/repository"
)

type UserService struct {
	users  repo.Users
	tokens *auth.TokenManager
	now    func() time.Time
}

func NewUserService(users repo.Users, tokens *auth.TokenManager) *UserService {
	return &UserService{users: users, tokens: tokens, now: time.Now}
}

// Register stores a new account and signs the caller in.
func (s *UserService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	_, err := s.users.GetByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return models.AuthResponse{}, apperr.Duplicate("Email already registered")
	case !isNotFound(err):
		return models.AuthResponse{}, storeErr(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return models.AuthResponse{}, apperr.Internal(err)
	}
	u := models.User{
		ID:           newID(),
		Email:        req.Email,
		Name:         req.Name,
		Phone:        req.Phone,
		Role:         req.Role,
		Location:     req.Location,
		CreatedAt:    stamp(s.now),
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, u); err != nil {
		// lost a race with a concurrent registration of the same email
		if errors.Is(err, repo.ErrDuplicate) {
			return models.AuthResponse{}, apperr.Duplicate("Email already registered")
		}
		return models.AuthResponse{}, storeErr(err)
	}
	metrics.UsersRegistered.WithLabelValues(string(u.Role)).Inc()

	return s.signIn(u)
}

func (s *UserService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if isNotFound(err) {
			return models.AuthResponse{}, invalidCredentials()
		}
		return models.AuthResponse{}, storeErr(err)
	}
	if err := auth.VerifyPassword(req.Password, u.PasswordHash); err != nil {
		return models.AuthResponse{}, invalidCredentials()
	}
	return s.signIn(u)
}

// Resolve maps a bearer token to the user it was issued for.
func (s *UserService) Resolve(ctx context.Context, token string) (models.User, error) {
	id, err := s.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			metrics.AuthFailures.WithLabelValues("expired").Inc()
			return models.User{}, apperr.Unauthorized("Token expired")
		}
		metrics.AuthFailures.WithLabelValues("invalid_token").Inc()
		return models.User{}, apperr.Unauthorized("Invalid authentication")
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			metrics.AuthFailures.WithLabelValues("unknown_user").Inc()
			return models.User{}, apperr.Unauthorized("User not found")
		}
		return models.User{}, storeErr(err)
	}
	return u, nil
}

func (s *UserService) signIn(u models.User) (models.AuthResponse, error) {
	token, _, err := s.tokens.Issue(u.ID)
	if err != nil {
		return models.AuthResponse{}, apperr.Internal(err)
	}
	return models.AuthResponse{Token: token, User: u}, nil
}

func invalidCredentials() error {
	metrics.AuthFailures.WithLabelValues("invalid_credentials").Inc()
	return apperr.Unauthorized("Invalid credentials")
}
