package service

import (
	"errors"
	"regexp"
	"strings"

	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/model"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/repository"
	"gorm.io/gorm"
)

var (
	ErrProfileNotFound   = errors.New("profile not found")
	ErrUsernameTaken     = errors.New("username already taken")
	ErrInvalidUsername   = errors.New("username must be lowercase letters, digits or underscores")
	ErrInvalidWorkStatus = errors.New("invalid work status")
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9_]{3,30}$`)

type UpdateProfileInput struct {
	FullName    *string           `json:"full_name"`
	Username    *string           `json:"username"`
	Bio         *string           `json:"bio"`
	Website     *string           `json:"website"`
	Role        *string           `json:"role"`
	WorkStatus  *model.WorkStatus `json:"work_status"`
	TwitterURL  *string           `json:"twitter_url"`
	LinkedinURL *string           `json:"linkedin_url"`
	GithubURL   *string           `json:"github_url"`
	AvatarURL   *string           `json:"avatar_url"`
}

type ProfileService interface {
	GetByUsername(username string) (*model.Profile, error)
	GetByUserID(userID uint) (*model.Profile, error)
	UpdateProfile(userID uint, input UpdateProfileInput) (*model.Profile, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) GetByUsername(username string) (*model.Profile, error) {
	profile, err := s.profileRepo.FindByUsername(strings.ToLower(username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (s *profileService) GetByUserID(userID uint) (*model.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (s *profileService) UpdateProfile(userID uint, input UpdateProfileInput) (*model.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	if input.Username != nil {
		username := strings.ToLower(strings.TrimSpace(*input.Username))
		if !usernamePattern.MatchString(username) {
			return nil, ErrInvalidUsername
		}
		if username != profile.Username {
			existing, err := s.profileRepo.FindByUsername(username)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			if existing != nil {
				return nil, ErrUsernameTaken
			}
			profile.Username = username
		}
	}

	if input.WorkStatus != nil {
		switch *input.WorkStatus {
		case model.WorkStatusOpenToWork, model.WorkStatusHiring, model.WorkStatusNone:
			profile.WorkStatus = *input.WorkStatus
		default:
			return nil, ErrInvalidWorkStatus
		}
	}

	if input.FullName != nil {
		profile.FullName = *input.FullName
	}
	if input.Bio != nil {
		profile.Bio = *input.Bio
	}
	if input.Website != nil {
		profile.Website = *input.Website
	}
	if input.Role != nil {
		profile.Role = *input.Role
	}
	if input.TwitterURL != nil {
		profile.TwitterURL = *input.TwitterURL
	}
	if input.LinkedinURL != nil {
		profile.LinkedinURL = *input.LinkedinURL
	}
	if input.GithubURL != nil {
		profile.GithubURL = *input.GithubURL
	}
	if input.AvatarURL != nil {
		profile.AvatarURL = *input.AvatarURL
	}

	if err := s.profileRepo.Update(profile); err != nil {
		return nil, err
	}
	return profile, nil
}
