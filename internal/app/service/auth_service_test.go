package service

import (
	"testing"
	"time"

	"github.com/nafiuibnemazhar/workspot-bd-sub000/config"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/model"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/repository"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/db"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:             "test-secret",
		AccessTokenExpiry:  time.Hour,
		RefreshTokenExpiry: 24 * time.Hour,
	}
}

func setupAuthServiceTest(t *testing.T) (AuthService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	authService := NewAuthService(
		repository.NewUserRepository(testDB),
		repository.NewProfileRepository(testDB),
		testJWTConfig(),
	)
	return authService, testDB
}

func TestAuthService_Register(t *testing.T) {
	authService, testDB := setupAuthServiceTest(t)

	user, pair, err := authService.Register(RegisterInput{
		Email:    "Nafiu@Example.COM",
		Password: "password123",
		Name:     "Nafiu Mazhar",
	})
	require.NoError(t, err)
	assert.Equal(t, "nafiu@example.com", user.Email, "email is normalized")
	assert.Equal(t, model.RoleUser, user.Role)
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	// A profile with a generated username came along
	var profile model.Profile
	require.NoError(t, testDB.Where("user_id = ?", user.ID).First(&profile).Error)
	assert.Equal(t, "Nafiu Mazhar", profile.FullName)
	assert.NotEmpty(t, profile.Username)

	claims, err := util.ValidateToken(pair.AccessToken, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	authService, _ := setupAuthServiceTest(t)

	input := RegisterInput{Email: "dup@example.com", Password: "password123", Name: "First"}
	_, _, err := authService.Register(input)
	require.NoError(t, err)

	_, _, err = authService.Register(input)
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	authService, _ := setupAuthServiceTest(t)

	_, _, err := authService.Register(RegisterInput{
		Email: "login@example.com", Password: "password123", Name: "Login Test",
	})
	require.NoError(t, err)

	user, pair, err := authService.Login(LoginInput{Email: "login@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "login@example.com", user.Email)
	assert.NotEmpty(t, pair.AccessToken)

	_, _, err = authService.Login(LoginInput{Email: "login@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = authService.Login(LoginInput{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_RefreshTokens(t *testing.T) {
	authService, _ := setupAuthServiceTest(t)

	user, pair, err := authService.Register(RegisterInput{
		Email: "refresh@example.com", Password: "password123", Name: "Refresh Test",
	})
	require.NoError(t, err)

	fresh, err := authService.RefreshTokens(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := util.ValidateToken(fresh.AccessToken, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	_, err = authService.RefreshTokens("garbage")
	assert.ErrorIs(t, err, util.ErrInvalidToken)
}

func TestAuthService_GetCurrentUser(t *testing.T) {
	authService, _ := setupAuthServiceTest(t)

	user, _, err := authService.Register(RegisterInput{
		Email: "me@example.com", Password: "password123", Name: "Me",
	})
	require.NoError(t, err)

	found, err := authService.GetCurrentUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, found.Email)

	_, err = authService.GetCurrentUser(9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
