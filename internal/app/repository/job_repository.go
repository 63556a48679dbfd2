package repository

import (
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/model"
	"gorm.io/gorm"
)

type JobFilter struct {
	JobType      *model.JobType
	LocationType *model.JobLocationType
	Search       string
	ActiveOnly   bool
	Limit        int
	Offset       int
}

type JobRepository interface {
	Create(job *model.Job) error
	Update(job *model.Job) error
	Delete(id uint) error
	FindByID(id uint) (*model.Job, error)
	FindWithFilter(filter JobFilter) ([]model.Job, int64, error)
	FindByUserID(userID uint) ([]model.Job, error)
	FindTopByTitle(query string, limit int) ([]model.Job, error)
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(job *model.Job) error {
	return r.db.Create(job).Error
}

func (r *jobRepository) Update(job *model.Job) error {
	return r.db.Save(job).Error
}

func (r *jobRepository) Delete(id uint) error {
	return r.db.Delete(&model.Job{}, id).Error
}

func (r *jobRepository) FindByID(id uint) (*model.Job, error) {
	var job model.Job
	if err := r.db.First(&job, id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) FindWithFilter(filter JobFilter) ([]model.Job, int64, error) {
	query := r.db.Model(&model.Job{})

	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if filter.JobType != nil {
		query = query.Where("job_type = ?", *filter.JobType)
	}
	if filter.LocationType != nil {
		query = query.Where("location_type = ?", *filter.LocationType)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("LOWER(title) LIKE LOWER(?) OR LOWER(company_name) LIKE LOWER(?)", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC")
	if filter.Limit > 0 {
		query = query.Offset(filter.Offset).Limit(filter.Limit)
	}

	var jobs []model.Job
	if err := query.Find(&jobs).Error; err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

func (r *jobRepository) FindByUserID(userID uint) ([]model.Job, error) {
	var jobs []model.Job
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// FindTopByTitle is the bounded command-palette lookup for jobs
func (r *jobRepository) FindTopByTitle(query string, limit int) ([]model.Job, error) {
	var jobs []model.Job
	like := "%" + query + "%"
	err := r.db.Model(&model.Job{}).
		Where("is_active = ?", true).
		Where("LOWER(title) LIKE LOWER(?)", like).
		Limit(limit).
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}
