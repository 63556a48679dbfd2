package service

import (
	"errors"
	"strings"

	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/model"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/repository"
	"gorm.io/gorm"
)

var (
	ErrJobNotFound    = errors.New("job listing not found")
	ErrJobNotOwner    = errors.New("only the poster can modify this job listing")
	ErrInvalidJobType = errors.New("invalid job or location type")
)

type JobService interface {
	CreateJob(userID uint, job *model.Job) (*model.Job, error)
	UpdateJob(jobID, userID uint, isAdmin bool, updates *model.Job) (*model.Job, error)
	DeleteJob(jobID, userID uint, isAdmin bool) error
	GetJobByID(id uint) (*model.Job, error)
	ListJobs(filter repository.JobFilter) ([]model.Job, int64, error)
	ListUserJobs(userID uint) ([]model.Job, error)
}

type jobService struct {
	jobRepo repository.JobRepository
}

func NewJobService(jobRepo repository.JobRepository) JobService {
	return &jobService{jobRepo: jobRepo}
}

func validateJob(job *model.Job) error {
	if strings.TrimSpace(job.Title) == "" || strings.TrimSpace(job.CompanyName) == "" {
		return errors.New("title and company name are required")
	}
	if !model.ValidJobType(job.JobType) || !model.ValidJobLocationType(job.LocationType) {
		return ErrInvalidJobType
	}
	return nil
}

func (s *jobService) CreateJob(userID uint, job *model.Job) (*model.Job, error) {
	if err := validateJob(job); err != nil {
		return nil, err
	}

	job.UserID = userID
	job.IsActive = true
	if err := s.jobRepo.Create(job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *jobService) UpdateJob(jobID, userID uint, isAdmin bool, updates *model.Job) (*model.Job, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	if job.UserID != userID && !isAdmin {
		return nil, ErrJobNotOwner
	}

	job.Title = updates.Title
	job.CompanyName = updates.CompanyName
	job.JobType = updates.JobType
	job.LocationType = updates.LocationType
	job.SalaryRange = updates.SalaryRange
	job.ApplyLink = updates.ApplyLink
	job.Description = updates.Description
	job.IsActive = updates.IsActive

	if err := validateJob(job); err != nil {
		return nil, err
	}

	if err := s.jobRepo.Update(job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *jobService) DeleteJob(jobID, userID uint, isAdmin bool) error {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrJobNotFound
		}
		return err
	}

	if job.UserID != userID && !isAdmin {
		return ErrJobNotOwner
	}

	return s.jobRepo.Delete(jobID)
}

func (s *jobService) GetJobByID(id uint) (*model.Job, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}

func (s *jobService) ListJobs(filter repository.JobFilter) ([]model.Job, int64, error) {
	return s.jobRepo.FindWithFilter(filter)
}

func (s *jobService) ListUserJobs(userID uint) ([]model.Job, error) {
	return s.jobRepo.FindByUserID(userID)
}
