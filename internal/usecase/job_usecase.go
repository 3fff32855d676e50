package usecase

import (
	"context"
	"errors"

	"talentai-backend/internal/domain"
	"talentai-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo            domain.JobRepository
	companyProfileRepo domain.CompanyProfileRepository
}

func NewJobUsecase(jobRepo domain.JobRepository, companyProfileRepo domain.CompanyProfileRepository) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:            jobRepo,
		companyProfileRepo: companyProfileRepo,
	}
}

func (u *jobUsecase) CreateJob(ctx context.Context, userID string, job *domain.Job) error {
	// Get employer's company profile to set CompanyID
	companyProfile, err := u.companyProfileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return apperror.NotFound("Company profile not found. Please complete onboarding first.")
	}
	job.CompanyID = companyProfile.ID

	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if job.SalaryMin > job.SalaryMax {
		return apperror.BadRequest("SalaryMin cannot be greater than SalaryMax")
	}

	return u.jobRepo.Create(ctx, job)
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}
	return job, nil
}

func (u *jobUsecase) ListPublicActiveJobs(ctx context.Context, page, pageSize int) ([]domain.JobWithCompany, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	return u.jobRepo.FetchPublicActiveJobs(ctx, pageSize, offset)
}

func (u *jobUsecase) ListJobsByEmployer(ctx context.Context, userID string, page, pageSize int) ([]domain.Job, int64, error) {
	companyProfile, err := u.companyProfileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, 0, apperror.NotFound("Company profile not found")
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	return u.jobRepo.FetchByCompanyID(ctx, companyProfile.ID, pageSize, offset)
}

func (u *jobUsecase) UpdateJob(ctx context.Context, userID string, job *domain.Job) error {
	if err := u.checkOwnership(ctx, userID, job.ID); err != nil {
		return err
	}
	if job.SalaryMin > job.SalaryMax {
		return apperror.BadRequest("SalaryMin cannot be greater than SalaryMax")
	}
	return u.jobRepo.Update(ctx, job)
}

func (u *jobUsecase) DeleteJob(ctx context.Context, userID string, id int64) error {
	if err := u.checkOwnership(ctx, userID, id); err != nil {
		return err
	}
	return u.jobRepo.Delete(ctx, id)
}

// checkOwnership verifies the job belongs to the caller's company
func (u *jobUsecase) checkOwnership(ctx context.Context, userID string, jobID int64) error {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return err
	}
	companyProfile, err := u.companyProfileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return apperror.NotFound("Company profile not found")
	}
	if job.CompanyID != companyProfile.ID {
		return apperror.Forbidden("You can only manage your own job posts")
	}
	return nil
}
