package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/model"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/repository"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/service"
	apperrors "github.com/nafiuibnemazhar/workspot-bd-sub000/internal/errors"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/middleware"
)

type JobController struct {
	jobService service.JobService
}

func NewJobController(jobService service.JobService) *JobController {
	return &JobController{
		jobService: jobService,
	}
}

type jobInput struct {
	Title        string                `json:"title" binding:"required"`
	CompanyName  string                `json:"company_name" binding:"required"`
	JobType      model.JobType         `json:"job_type" binding:"required"`
	LocationType model.JobLocationType `json:"location_type" binding:"required"`
	SalaryRange  string                `json:"salary_range"`
	ApplyLink    string                `json:"apply_link"`
	Description  string                `json:"description"`
	IsActive     bool                  `json:"is_active"`
}

func (in *jobInput) toModel() *model.Job {
	return &model.Job{
		Title:        in.Title,
		CompanyName:  in.CompanyName,
		JobType:      in.JobType,
		LocationType: in.LocationType,
		SalaryRange:  in.SalaryRange,
		ApplyLink:    in.ApplyLink,
		Description:  in.Description,
		IsActive:     in.IsActive,
	}
}

// ListJobs serves the jobs board with type and location filters
func (ctrl *JobController) ListJobs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	filter := repository.JobFilter{
		Search:     c.Query("search"),
		ActiveOnly: true,
		Offset:     (page - 1) * pageSize,
		Limit:      pageSize,
	}
	if jt := c.Query("job_type"); jt != "" {
		v := model.JobType(jt)
		filter.JobType = &v
	}
	if lt := c.Query("location_type"); lt != "" {
		v := model.JobLocationType(lt)
		filter.LocationType = &v
	}

	jobs, total, err := ctrl.jobService.ListJobs(filter)
	if err != nil {
		apperrors.InternalError(c, "Failed to load job listings")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      jobs,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetJob serves one job listing
func (ctrl *JobController) GetJob(c *gin.Context) {
	jobID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid job ID")
		return
	}

	job, err := ctrl.jobService.GetJobByID(uint(jobID))
	if err != nil {
		if errors.Is(err, service.ErrJobNotFound) {
			apperrors.NotFound(c, apperrors.JobNotFound, "Job listing not found")
			return
		}
		apperrors.InternalError(c, "Failed to load job listing")
		return
	}

	c.JSON(http.StatusOK, job)
}

// GetMyJobs lists the authenticated user's postings
func (ctrl *JobController) GetMyJobs(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	jobs, err := ctrl.jobService.ListUserJobs(userID)
	if err != nil {
		apperrors.InternalError(c, "Failed to load your job listings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": jobs})
}

// CreateJob posts a job listing
func (ctrl *JobController) CreateJob(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	var input jobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid job details")
		return
	}

	job, err := ctrl.jobService.CreateJob(userID, input.toModel())
	if err != nil {
		if errors.Is(err, service.ErrInvalidJobType) {
			apperrors.BadRequest(c, apperrors.JobInvalidType, "Invalid job or location type")
			return
		}
		apperrors.InternalError(c, "Failed to post job listing")
		return
	}

	c.JSON(http.StatusCreated, job)
}

// UpdateJob edits a listing; poster or admin only
func (ctrl *JobController) UpdateJob(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	jobID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid job ID")
		return
	}

	var input jobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid job details")
		return
	}

	job, err := ctrl.jobService.UpdateJob(uint(jobID), userID, middleware.IsAdmin(c), input.toModel())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrJobNotFound):
			apperrors.NotFound(c, apperrors.JobNotFound, "Job listing not found")
		case errors.Is(err, service.ErrJobNotOwner):
			apperrors.Forbidden(c, "Only the poster can edit this listing")
		case errors.Is(err, service.ErrInvalidJobType):
			apperrors.BadRequest(c, apperrors.JobInvalidType, "Invalid job or location type")
		default:
			apperrors.InternalError(c, "Failed to update job listing")
		}
		return
	}

	c.JSON(http.StatusOK, job)
}

// DeleteJob removes a listing; poster or admin only
func (ctrl *JobController) DeleteJob(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	jobID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid job ID")
		return
	}

	if err := ctrl.jobService.DeleteJob(uint(jobID), userID, middleware.IsAdmin(c)); err != nil {
		switch {
		case errors.Is(err, service.ErrJobNotFound):
			apperrors.NotFound(c, apperrors.JobNotFound, "Job listing not found")
		case errors.Is(err, service.ErrJobNotOwner):
			apperrors.Forbidden(c, "Only the poster can delete this listing")
		default:
			apperrors.InternalError(c, "Failed to delete job listing")
		}
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
