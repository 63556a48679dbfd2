package service

import (
	"testing"

	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/model"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/repository"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupProfileServiceTest(t *testing.T) (ProfileService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	return NewProfileService(repository.NewProfileRepository(testDB)), testDB
}

func seedProfile(t *testing.T, testDB *gorm.DB, username string) *model.Profile {
	user := model.User{Email: username + "@example.com", PasswordHash: "x", Name: "Seed"}
	require.NoError(t, testDB.Create(&user).Error)

	profile := model.Profile{UserID: user.ID, FullName: "Seed User", Username: username}
	require.NoError(t, testDB.Create(&profile).Error)
	return &profile
}

func TestProfileService_GetByUsername(t *testing.T) {
	profileService, testDB := setupProfileServiceTest(t)
	seedProfile(t, testDB, "nafiu_mazhar")

	profile, err := profileService.GetByUsername("Nafiu_Mazhar")
	require.NoError(t, err)
	assert.Equal(t, "nafiu_mazhar", profile.Username, "lookup is case-insensitive")

	_, err = profileService.GetByUsername("nobody")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestProfileService_UpdateProfile(t *testing.T) {
	profileService, testDB := setupProfileServiceTest(t)
	profile := seedProfile(t, testDB, "original")

	fullName := "New Name"
	bio := "I work from cafes"
	status := model.WorkStatusOpenToWork
	updated, err := profileService.UpdateProfile(profile.UserID, UpdateProfileInput{
		FullName:   &fullName,
		Bio:        &bio,
		WorkStatus: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.FullName)
	assert.Equal(t, "I work from cafes", updated.Bio)
	assert.Equal(t, model.WorkStatusOpenToWork, updated.WorkStatus)
	assert.Equal(t, "original", updated.Username, "untouched fields keep their values")
}

func TestProfileService_UpdateProfile_UsernameRules(t *testing.T) {
	profileService, testDB := setupProfileServiceTest(t)
	profile := seedProfile(t, testDB, "original")
	seedProfile(t, testDB, "taken")

	tests := []struct {
		name     string
		username string
		want     string
		wantErr  error
	}{
		{"Uppercase is normalized", "New_Name1", "new_name1", nil},
		{"Taken username", "taken", "", ErrUsernameTaken},
		{"Too short", "ab", "", ErrInvalidUsername},
		{"Illegal characters", "bad name!", "", ErrInvalidUsername},
		{"Keeping own username", "original", "original", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset so every case starts from the seeded username
			require.NoError(t, testDB.Model(&model.Profile{}).
				Where("user_id = ?", profile.UserID).
				Update("username", "original").Error)

			updated, err := profileService.UpdateProfile(profile.UserID, UpdateProfileInput{
				Username: &tt.username,
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, updated.Username)
		})
	}
}

func TestProfileService_UpdateProfile_InvalidWorkStatus(t *testing.T) {
	profileService, testDB := setupProfileServiceTest(t)
	profile := seedProfile(t, testDB, "statuscheck")

	bad := model.WorkStatus("vacationing")
	_, err := profileService.UpdateProfile(profile.UserID, UpdateProfileInput{WorkStatus: &bad})
	assert.ErrorIs(t, err, ErrInvalidWorkStatus)
}

func TestProfileService_UpdateProfile_UnknownUser(t *testing.T) {
	profileService, _ := setupProfileServiceTest(t)

	name := "Ghost"
	_, err := profileService.UpdateProfile(9999, UpdateProfileInput{FullName: &name})
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
