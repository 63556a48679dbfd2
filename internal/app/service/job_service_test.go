package service

import (
	"testing"

	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/model"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/repository"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupJobServiceTest(t *testing.T) JobService {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	return NewJobService(repository.NewJobRepository(testDB))
}

func validJob() *model.Job {
	return &model.Job{
		Title:        "Barista",
		CompanyName:  "North End",
		JobType:      model.JobTypeFullTime,
		LocationType: model.JobLocationOnSite,
	}
}

func TestJobService_CreateJob(t *testing.T) {
	jobService := setupJobServiceTest(t)

	job, err := jobService.CreateJob(7, validJob())
	require.NoError(t, err)
	assert.Equal(t, uint(7), job.UserID)
	assert.True(t, job.IsActive, "new listings go live immediately")
}

func TestJobService_CreateJob_InvalidType(t *testing.T) {
	jobService := setupJobServiceTest(t)

	bad := validJob()
	bad.JobType = model.JobType("gig")
	_, err := jobService.CreateJob(7, bad)
	assert.ErrorIs(t, err, ErrInvalidJobType)

	bad = validJob()
	bad.LocationType = model.JobLocationType("moon")
	_, err = jobService.CreateJob(7, bad)
	assert.ErrorIs(t, err, ErrInvalidJobType)
}

func TestJobService_UpdateJob_PosterOrAdminOnly(t *testing.T) {
	jobService := setupJobServiceTest(t)

	job, err := jobService.CreateJob(7, validJob())
	require.NoError(t, err)

	updates := validJob()
	updates.Title = "Senior Barista"

	_, err = jobService.UpdateJob(job.ID, 8, false, updates)
	assert.ErrorIs(t, err, ErrJobNotOwner)

	updated, err := jobService.UpdateJob(job.ID, 8, true, updates)
	require.NoError(t, err)
	assert.Equal(t, "Senior Barista", updated.Title)

	updates.Title = "Lead Barista"
	updated, err = jobService.UpdateJob(job.ID, 7, false, updates)
	require.NoError(t, err)
	assert.Equal(t, "Lead Barista", updated.Title)
}

func TestJobService_DeleteJob(t *testing.T) {
	jobService := setupJobServiceTest(t)

	job, err := jobService.CreateJob(7, validJob())
	require.NoError(t, err)

	err = jobService.DeleteJob(job.ID, 8, false)
	assert.ErrorIs(t, err, ErrJobNotOwner)

	require.NoError(t, jobService.DeleteJob(job.ID, 7, false))

	_, err = jobService.GetJobByID(job.ID)
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestJobService_ListJobs_Filters(t *testing.T) {
	jobService := setupJobServiceTest(t)

	fullTime := validJob()
	_, err := jobService.CreateJob(1, fullTime)
	require.NoError(t, err)

	remote := validJob()
	remote.Title = "Community Manager"
	remote.JobType = model.JobTypePartTime
	remote.LocationType = model.JobLocationRemote
	_, err = jobService.CreateJob(2, remote)
	require.NoError(t, err)

	jt := model.JobTypePartTime
	jobs, total, err := jobService.ListJobs(repository.JobFilter{
		JobType:    &jt,
		ActiveOnly: true,
		Limit:      10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Community Manager", jobs[0].Title)

	lt := model.JobLocationOnSite
	jobs, total, err = jobService.ListJobs(repository.JobFilter{
		LocationType: &lt,
		ActiveOnly:   true,
		Limit:        10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Barista", jobs[0].Title)
}
