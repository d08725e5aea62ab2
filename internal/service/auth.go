package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/moodlog/moodlog-go/internal/crypto"
	"github.com/moodlog/moodlog-go/internal/model"
	"github.com/moodlog/moodlog-go/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrFirstNameRequired  = errors.New("first name is required")
	ErrLastNameRequired   = errors.New("last name is required")
	ErrInvalidDateOfBirth = errors.New("date of birth must be formatted as YYYY-MM-DD")
	ErrEmailTaken         = errors.New("email already taken")
	ErrUserNotFound       = errors.New("user not found")
)

const minPasswordLength = 6

// AuthService handles registration, login and profile business logic.
type AuthService struct {
	repo       *repository.UserRepository
	jwtSecret  string
	sessionTTL time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *repository.UserRepository, secret string, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		repo:       repo,
		jwtSecret:  secret,
		sessionTTL: sessionTTL,
	}
}

// Register creates a new user account and returns a session token.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error) {
	if req.Email == "" {
		return model.AuthResponse{}, ErrEmailRequired
	}
	if len(req.Password) < minPasswordLength {
		return model.AuthResponse{}, ErrPasswordTooShort
	}
	if strings.TrimSpace(req.FirstName) == "" {
		return model.AuthResponse{}, ErrFirstNameRequired
	}
	if strings.TrimSpace(req.LastName) == "" {
		return model.AuthResponse{}, ErrLastNameRequired
	}
	if err := validDateOfBirth(req.DateOfBirth); err != nil {
		return model.AuthResponse{}, err
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.AuthResponse{}, err
	}

	user := &model.User{
		Email:       req.Email,
		AuthHash:    hash,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: req.DateOfBirth,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.AuthResponse{}, ErrEmailTaken
		}
		return model.AuthResponse{}, err
	}

	token, err := crypto.GenerateToken(user.ID, user.Email, s.jwtSecret, s.sessionTTL)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{Token: token, User: userSummary(user)}, nil
}

// Login authenticates a user and returns a session token.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, user.AuthHash)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if !match {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(user.ID, user.Email, s.jwtSecret, s.sessionTTL)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{Token: token, User: userSummary(user)}, nil
}

// SessionTTL returns the lifetime of issued session tokens.
func (s *AuthService) SessionTTL() time.Duration {
	return s.sessionTTL
}

// GetProfile retrieves a user's profile, excluding the credential hash.
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (model.ProfileResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.ProfileResponse{}, ErrUserNotFound
		}
		return model.ProfileResponse{}, err
	}

	return profileResponse(user), nil
}

// UpdateProfile applies a partial profile update and returns the stored
// profile. Optional fields left out of the request keep their stored values.
func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, req model.UpdateProfileRequest) (model.ProfileResponse, error) {
	if strings.TrimSpace(req.FirstName) == "" {
		return model.ProfileResponse{}, ErrFirstNameRequired
	}
	if strings.TrimSpace(req.LastName) == "" {
		return model.ProfileResponse{}, ErrLastNameRequired
	}
	if err := validDateOfBirth(req.DateOfBirth); err != nil {
		return model.ProfileResponse{}, err
	}

	if err := s.repo.UpdateProfile(ctx, userID, req.FirstName, req.LastName, req.DateOfBirth, req.ProfilePicture); err != nil {
		return model.ProfileResponse{}, err
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.ProfileResponse{}, ErrUserNotFound
		}
		return model.ProfileResponse{}, err
	}

	return profileResponse(user), nil
}

func validDateOfBirth(dob *string) error {
	if dob == nil {
		return nil
	}
	if _, err := time.Parse("2006-01-02", *dob); err != nil {
		return ErrInvalidDateOfBirth
	}
	return nil
}

func userSummary(user *model.User) model.UserResponse {
	return model.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
	}
}

func profileResponse(user *model.User) model.ProfileResponse {
	return model.ProfileResponse{
		ID:             user.ID,
		Email:          user.Email,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		DateOfBirth:    user.DateOfBirth,
		ProfilePicture: user.ProfilePicture,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
}
