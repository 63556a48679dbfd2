package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/nafiuibnemazhar/workspot-bd-sub000/config"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/model"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/repository"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/pkg/logger"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/pkg/redis"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthService interface {
	Register(input RegisterInput) (*model.User, *util.TokenPair, error)
	Login(input LoginInput) (*model.User, *util.TokenPair, error)
	RefreshTokens(refreshToken string) (*util.TokenPair, error)
	Logout(ctx context.Context, accessToken string) error
	GetCurrentUser(userID uint) (*model.User, error)
}

type authService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	jwtConfig   config.JWTConfig
}

func NewAuthService(userRepo repository.UserRepository, profileRepo repository.ProfileRepository, jwtConfig config.JWTConfig) AuthService {
	return &authService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		jwtConfig:   jwtConfig,
	}
}

// Register creates the account and its profile in one step. The profile gets
// a generated username the user can change later.
func (s *authService) Register(input RegisterInput) (*model.User, *util.TokenPair, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, err
	}

	hash, err := util.HashPassword(input.Password)
	if err != nil {
		return nil, nil, err
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hash,
		Name:         input.Name,
		Role:         model.RoleUser,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, nil, err
	}

	profile := &model.Profile{
		UserID:   user.ID,
		FullName: input.Name,
		Username: s.uniqueUsername(input.Name),
	}
	if err := s.profileRepo.Create(profile); err != nil {
		logger.Error("Failed to create profile for new user", err, map[string]interface{}{
			"user_id": user.ID,
		})
		return nil, nil, err
	}
	user.Profile = profile

	pair, err := s.tokenPair(user)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("User registered", map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
	})
	return user, pair, nil
}

func (s *authService) Login(input LoginInput) (*model.User, *util.TokenPair, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !util.VerifyPassword(user.PasswordHash, input.Password) {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.tokenPair(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

func (s *authService) RefreshTokens(refreshToken string) (*util.TokenPair, error) {
	claims, err := util.ValidateToken(refreshToken, s.jwtConfig.Secret)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return s.tokenPair(user)
}

// Logout revokes the presented access token for its remaining lifetime
func (s *authService) Logout(ctx context.Context, accessToken string) error {
	claims, err := util.ValidateToken(accessToken, s.jwtConfig.Secret)
	if err != nil {
		// Already invalid, nothing to revoke
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	return redis.BlacklistToken(ctx, accessToken, ttl)
}

func (s *authService) GetCurrentUser(userID uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) tokenPair(user *model.User) (*util.TokenPair, error) {
	return util.GenerateTokenPair(
		user.ID,
		user.Email,
		string(user.Role),
		s.jwtConfig.Secret,
		s.jwtConfig.AccessTokenExpiry,
		s.jwtConfig.RefreshTokenExpiry,
	)
}

// uniqueUsername retries the random suffix until the username is free
func (s *authService) uniqueUsername(name string) string {
	for i := 0; i < 5; i++ {
		candidate := util.GenerateUsername(name)
		if _, err := s.profileRepo.FindByUsername(candidate); errors.Is(err, gorm.ErrRecordNotFound) {
			return candidate
		}
	}
	return util.GenerateUsername(name)
}
